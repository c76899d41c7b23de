package raster

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/canvas2d"
)

func mustFont(t *testing.T, s string) canvas2d.Font {
	t.Helper()
	f, err := canvas2d.ParseFont(s)
	if err != nil {
		t.Fatalf("ParseFont(%q) error = %v", s, err)
	}
	return f
}

func TestFaceKeyOf(t *testing.T) {
	tests := []struct {
		font string
		want faceKey
	}{
		{"10px sans-serif", faceKey{}},
		{"bold 12px serif", faceKey{family: familySerif, bold: true}},
		{"12px Georgia, serif", faceKey{family: familySerif}},
		{"italic 12px Arial", faceKey{italic: true}},
		{"italic bold 12px monospace", faceKey{family: familyMono, bold: true, italic: true}},
		{"12px Unknown, monospace", faceKey{family: familyMono}},
		{"12px Unknown", faceKey{}},
	}
	for _, tt := range tests {
		t.Run(tt.font, func(t *testing.T) {
			if got := faceKeyOf(mustFont(t, tt.font)); got != tt.want {
				t.Errorf("faceKeyOf(%q) = %+v, want %+v", tt.font, got, tt.want)
			}
		})
	}
}

func TestMeasureText(t *testing.T) {
	b := New(10, 10)
	font := mustFont(t, "20px sans-serif")

	m, err := b.MeasureText("Hello", font)
	if err != nil {
		t.Fatalf("MeasureText() error = %v", err)
	}
	if m.Width <= 0 {
		t.Errorf("Width = %v, want > 0", m.Width)
	}
	if m.ActualBoundingBoxAscent <= 0 || m.ActualBoundingBoxAscent > 20 {
		t.Errorf("ActualBoundingBoxAscent = %v", m.ActualBoundingBoxAscent)
	}
	if m.FontBoundingBoxAscent <= 0 || m.FontBoundingBoxDescent <= 0 {
		t.Errorf("font box = %v / %v", m.FontBoundingBoxAscent, m.FontBoundingBoxDescent)
	}

	again, _ := b.MeasureText("Hello", font)
	if again.Width != m.Width {
		t.Errorf("repeated width = %v, want %v", again.Width, m.Width)
	}

	empty, err := b.MeasureText("", font)
	if err != nil || empty.Width != 0 {
		t.Errorf("MeasureText(\"\") = %v, %v", empty.Width, err)
	}
}

func TestMeasureTextScalesWithSize(t *testing.T) {
	b := New(10, 10)
	small, _ := b.MeasureText("canvas", mustFont(t, "10px sans-serif"))
	large, _ := b.MeasureText("canvas", mustFont(t, "40px sans-serif"))
	if ratio := large.Width / small.Width; math.Abs(ratio-4) > 0.2 {
		t.Errorf("width ratio = %v, want about 4", ratio)
	}
}

func TestMeasureTextMonospace(t *testing.T) {
	b := New(10, 10)
	font := mustFont(t, "16px monospace")
	narrow, _ := b.MeasureText("iii", font)
	wide, _ := b.MeasureText("mmm", font)
	if narrow.Width != wide.Width {
		t.Errorf("monospace widths differ: %v vs %v", narrow.Width, wide.Width)
	}
}

func TestFillTextDrawsInk(t *testing.T) {
	ctx, b := newContext(t, 120, 60)
	ctx.SetFont("40px sans-serif")
	if err := ctx.FillText("H", 10, 50); err != nil {
		t.Fatal(err)
	}

	var inked, above int
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if alphaAt(b, x, y) == 0 {
				continue
			}
			inked++
			if y < 10 {
				above++
			}
		}
	}
	if inked == 0 {
		t.Fatal("FillText drew nothing")
	}
	if above != 0 {
		t.Errorf("%d pixels inked above the cap height", above)
	}
}

func TestStrokeTextDrawsLessThanFill(t *testing.T) {
	count := func(stroke bool) int {
		ctx, b := newContext(t, 200, 150)
		ctx.SetFont("bold 100px sans-serif")
		var err error
		if stroke {
			err = ctx.StrokeText("O", 10, 120)
		} else {
			err = ctx.FillText("O", 10, 120)
		}
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		pix := b.Image().Pix
		for i := 3; i < len(pix); i += 4 {
			if pix[i] > 0 {
				n++
			}
		}
		return n
	}
	filled, stroked := count(false), count(true)
	if stroked == 0 || stroked >= filled {
		t.Errorf("stroked ink = %d, filled ink = %d", stroked, filled)
	}
}

func TestBidiRunsLatin(t *testing.T) {
	runs := bidiRuns("hello", 5)
	if len(runs) != 1 || runs[0].start != 0 || runs[0].end != 5 {
		t.Errorf("bidiRuns = %+v, want one run over [0, 5)", runs)
	}
}

func TestGlyphOutlinesCached(t *testing.T) {
	var logs bytes.Buffer
	canvas2d.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { canvas2d.SetLogger(nil) })

	e := newTextEngine()
	f := mustFont(t, "20px sans-serif")
	if _, err := e.outline("aa", 0, 20, f, canvas2d.Identity()); err != nil {
		t.Fatalf("outline: %v", err)
	}
	first := e.glyphs.Stats()
	if first.Len != 1 {
		t.Fatalf("cached glyphs = %d, want 1", first.Len)
	}
	if _, err := e.outline("a", 0, 20, f, canvas2d.Identity()); err != nil {
		t.Fatalf("outline: %v", err)
	}
	if got := e.glyphs.Stats(); got.Len != 1 || got.Hits <= first.Hits {
		t.Errorf("stats = %+v, want a hit and no new entry", got)
	}
	if out := logs.String(); !strings.Contains(out, "raster: outlined text") || !strings.Contains(out, "cached=1") {
		t.Errorf("glyph cache stats not logged: %q", out)
	}
}

func TestSerifFace(t *testing.T) {
	e := newTextEngine()
	serif, err := e.measure("Hello", mustFont(t, "20px serif"))
	if err != nil {
		t.Fatalf("measure serif: %v", err)
	}
	if serif.Width <= 0 || serif.ActualBoundingBoxAscent <= 0 {
		t.Errorf("serif metrics = %+v", serif)
	}
	p, err := e.outline("H", 0, 20, mustFont(t, "20px serif"), canvas2d.Identity())
	if err != nil {
		t.Fatalf("outline serif: %v", err)
	}
	if p.IsEmpty() {
		t.Error("serif glyph has no outline")
	}
}
