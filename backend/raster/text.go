package raster

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/internal/cache"
)

// family is a built-in font family.
type family uint8

const (
	familySans family = iota
	familySerif
	familyMono
)

// faceKey selects one of the built-in fonts.
type faceKey struct {
	family       family
	bold, italic bool
}

var fontData = map[faceKey][]byte{
	{family: familySans}:                            goregular.TTF,
	{family: familySans, bold: true}:                gobold.TTF,
	{family: familySans, italic: true}:              goitalic.TTF,
	{family: familySans, bold: true, italic: true}:  gobolditalic.TTF,
	{family: familyMono}:                            gomono.TTF,
	{family: familyMono, bold: true}:                gomonobold.TTF,
	{family: familyMono, italic: true}:              gomonoitalic.TTF,
	{family: familyMono, bold: true, italic: true}:  gomonobolditalic.TTF,
	{family: familySerif}:                           lmroman10regular.TTF,
	{family: familySerif, bold: true}:               lmroman10bold.TTF,
	{family: familySerif, italic: true}:             lmroman10italic.TTF,
	{family: familySerif, bold: true, italic: true}: lmroman10bolditalic.TTF,
}

// faceKeyOf maps a CSS font to a built-in face. The first family the
// backend recognizes wins; unknown families fall through to the next,
// and sans-serif is the last resort.
func faceKeyOf(f canvas2d.Font) faceKey {
	key := faceKey{bold: f.Bold(), italic: f.Style != canvas2d.FontStyleNormal}
	for _, fam := range f.Families() {
		switch strings.ToLower(fam) {
		case "monospace", "ui-monospace", "go mono", "courier", "courier new":
			key.family = familyMono
			return key
		case "serif", "ui-serif", "times", "times new roman", "georgia", "latin modern roman":
			key.family = familySerif
			return key
		case "sans-serif", "system-ui", "ui-sans-serif", "cursive", "fantasy",
			"go", "helvetica", "arial":
			return key
		}
	}
	return key
}

// fontFace holds one font parsed twice: for shaping and for outlines.
type fontFace struct {
	shaping *gotext.Font
	outline *sfnt.Font
}

// placedGlyph is a shaped glyph positioned relative to the run origin,
// y pointing down.
type placedGlyph struct {
	gid  sfnt.GlyphIndex
	x, y float64
}

type glyphRun struct {
	glyphs  []placedGlyph
	advance float64
}

// textEngine shapes and outlines text. It is not safe for concurrent
// use; Backend serializes access.
type textEngine struct {
	faces  map[faceKey]*fontFace
	glyphs *cache.Cache[glyphKey, []sfnt.Segment]
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// glyphKey identifies one glyph outline at one size.
type glyphKey struct {
	face faceKey
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// glyphCacheSize bounds the number of cached glyph outlines.
const glyphCacheSize = 1024

func newTextEngine() *textEngine {
	return &textEngine{
		faces:  make(map[faceKey]*fontFace),
		glyphs: cache.New[glyphKey, []sfnt.Segment](glyphCacheSize),
	}
}

// segments returns the outline of gid, loading it on a cache miss.
func (e *textEngine) segments(key faceKey, ff *fontFace, gid sfnt.GlyphIndex, ppem fixed.Int26_6) ([]sfnt.Segment, error) {
	k := glyphKey{face: key, gid: gid, ppem: ppem}
	if segs, ok := e.glyphs.Get(k); ok {
		return segs, nil
	}
	segs, err := ff.outline.LoadGlyph(&e.buf, gid, ppem, nil)
	if err != nil {
		return nil, err
	}
	// LoadGlyph reuses e.buf.
	segs = append([]sfnt.Segment(nil), segs...)
	e.glyphs.Set(k, segs)
	return segs, nil
}

func (e *textEngine) face(f canvas2d.Font) (*fontFace, error) {
	key := faceKeyOf(f)
	if ff, ok := e.faces[key]; ok {
		return ff, nil
	}
	data := fontData[key]
	shapingFace, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	ff := &fontFace{shaping: shapingFace.Font, outline: outline}
	e.faces[key] = ff
	return ff, nil
}

// shape lays out text in visual order at size pixels per em.
func (e *textEngine) shape(text string, ff *fontFace, size float64) glyphRun {
	var run glyphRun
	runes := []rune(text)
	if len(runes) == 0 {
		return run
	}
	face := gotext.NewFace(ff.shaping)
	for _, r := range bidiRuns(text, len(runes)) {
		out := e.shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: r.dir,
			Face:      face,
			Size:      toFixed(size),
			Script:    detectScript(runes[r.start:r.end]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			run.glyphs = append(run.glyphs, placedGlyph{
				gid: sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // Go fonts have fewer than 65536 glyphs
				x:   run.advance + fromFixed(g.XOffset),
				y:   -fromFixed(g.YOffset),
			})
			run.advance += fromFixed(g.Advance)
		}
	}
	return run
}

type bidiRun struct {
	start, end int
	dir        di.Direction
}

// bidiRuns splits text into directional runs in visual order. Rune
// indexes are half-open.
func bidiRuns(text string, n int) []bidiRun {
	whole := []bidiRun{{start: 0, end: n, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}
	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos()
		if start < 0 || start >= n {
			continue
		}
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, bidiRun{start: start, end: min(end+1, n), dir: dir})
	}
	if len(runs) == 0 {
		return whole
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func (e *textEngine) measure(text string, f canvas2d.Font) (canvas2d.TextMetrics, error) {
	ff, err := e.face(f)
	if err != nil {
		return canvas2d.TextMetrics{}, err
	}
	run := e.shape(text, ff, f.Size)
	ppem := toFixed(f.Size)

	tm := canvas2d.TextMetrics{Width: run.advance}
	if m, err := ff.outline.Metrics(&e.buf, ppem, font.HintingNone); err == nil {
		tm.FontBoundingBoxAscent = fromFixed(m.Ascent)
		tm.FontBoundingBoxDescent = fromFixed(m.Descent)
	}
	for _, g := range run.glyphs {
		b, _, err := ff.outline.GlyphBounds(&e.buf, g.gid, ppem, font.HintingNone)
		if err != nil || b.Empty() {
			continue
		}
		tm.ActualBoundingBoxAscent = max(tm.ActualBoundingBoxAscent, -(g.y + fromFixed(b.Min.Y)))
		tm.ActualBoundingBoxDescent = max(tm.ActualBoundingBoxDescent, g.y+fromFixed(b.Max.Y))
	}
	return tm, nil
}

// outline returns the glyph outlines of text with its alphabetic
// baseline starting at (x, y), mapped to device space by m.
func (e *textEngine) outline(text string, x, y float64, f canvas2d.Font, m canvas2d.Matrix) (*canvas2d.Path, error) {
	ff, err := e.face(f)
	if err != nil {
		return nil, err
	}
	run := e.shape(text, ff, f.Size)
	ppem := toFixed(f.Size)

	p := canvas2d.NewPath()
	for _, g := range run.glyphs {
		segs, err := e.segments(faceKeyOf(f), ff, g.gid, ppem)
		if err != nil {
			// Missing or bitmap-only glyphs draw nothing.
			continue
		}
		ox, oy := x+g.x, y+g.y
		pt := func(q fixed.Point26_6) canvas2d.Point {
			return m.TransformPoint(canvas2d.Pt(ox+fromFixed(q.X), oy+fromFixed(q.Y)))
		}
		open := false
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.Close()
				}
				a := pt(s.Args[0])
				p.MoveTo(a.X, a.Y)
				open = true
			case sfnt.SegmentOpLineTo:
				a := pt(s.Args[0])
				p.LineTo(a.X, a.Y)
			case sfnt.SegmentOpQuadTo:
				c, a := pt(s.Args[0]), pt(s.Args[1])
				p.QuadraticTo(c.X, c.Y, a.X, a.Y)
			case sfnt.SegmentOpCubeTo:
				c1, c2, a := pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])
				p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, a.X, a.Y)
			}
		}
		if open {
			p.Close()
		}
	}
	st := e.glyphs.Stats()
	canvas2d.Logger().Debug("raster: outlined text",
		"glyphs", len(run.glyphs), "cached", st.Len, "hits", st.Hits, "misses", st.Misses)
	return p, nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
