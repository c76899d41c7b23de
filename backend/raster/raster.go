package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/backend"
)

func init() {
	backend.Register(backend.Raster, func(width, height int) (canvas2d.Backend, error) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
		}
		return New(width, height), nil
	})
}

// DefaultTolerance is the default curve flattening tolerance in device
// pixels.
const DefaultTolerance = 0.25

// Option configures a Backend.
type Option func(*Backend)

// WithTolerance sets the curve flattening tolerance in device pixels.
// Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(b *Backend) {
		if tol > 0 {
			b.tolerance = tol
		}
	}
}

// WithBackground fills the target with c before any drawing.
func WithBackground(c canvas2d.RGBA) Option {
	return func(b *Backend) {
		b.fillSolid(c)
	}
}

// Backend is a canvas2d.Backend drawing into an RGBA image.
//
// Backend is safe for concurrent use; calls are serialized.
type Backend struct {
	mu        sync.Mutex
	img       *image.RGBA
	tolerance float64
	text      *textEngine
}

// New creates a backend with a transparent width x height target.
func New(width, height int, opts ...Option) *Backend {
	b := &Backend{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		tolerance: DefaultTolerance,
		text:      newTextEngine(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Image returns the target image. The image is shared with the backend;
// do not read it while another goroutine draws.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Width returns the target width in pixels.
func (b *Backend) Width() int { return b.img.Rect.Dx() }

// Height returns the target height in pixels.
func (b *Backend) Height() int { return b.img.Rect.Dy() }

// Pixel returns the non-premultiplied color at (x, y).
func (b *Backend) Pixel(x, y int) canvas2d.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return canvas2d.FromColor(b.img.At(x, y))
}

// Clear resets every pixel to transparent black.
func (b *Backend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.img.Pix)
}

// Fill sets every pixel to c.
func (b *Backend) Fill(c canvas2d.RGBA) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fillSolid(c)
}

func (b *Backend) fillSolid(c canvas2d.RGBA) {
	px := premultiply(c)
	for i := 0; i < len(b.img.Pix); i += 4 {
		copy(b.img.Pix[i:i+4], px[:])
	}
}

// EncodePNG writes the target as PNG.
func (b *Backend) EncodePNG(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the target to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// FillPath implements canvas2d.Backend.
func (b *Backend) FillPath(p *canvas2d.Path, paint *canvas2d.Paint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	polys := fillPolygons(p.Flatten(b.tolerance))
	b.paintMask(b.coverage(polys, paint.FillRule), paint)
	return nil
}

// StrokePath implements canvas2d.Backend.
func (b *Backend) StrokePath(p *canvas2d.Path, paint *canvas2d.Paint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	polys := strokePolygons(p.Flatten(b.tolerance), strokeStyleOf(paint))
	b.paintMask(b.coverage(polys, canvas2d.FillRuleNonZero), paint)
	return nil
}

// FillText implements canvas2d.Backend.
func (b *Backend) FillText(text string, x, y float64, paint *canvas2d.Paint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, err := b.text.outline(text, x, y, paint.Font, paint.Transform)
	if err != nil {
		return err
	}
	polys := fillPolygons(p.Flatten(b.tolerance))
	b.paintMask(b.coverage(polys, canvas2d.FillRuleNonZero), paint)
	return nil
}

// StrokeText implements canvas2d.Backend.
func (b *Backend) StrokeText(text string, x, y float64, paint *canvas2d.Paint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, err := b.text.outline(text, x, y, paint.Font, paint.Transform)
	if err != nil {
		return err
	}
	polys := strokePolygons(p.Flatten(b.tolerance), strokeStyleOf(paint))
	b.paintMask(b.coverage(polys, canvas2d.FillRuleNonZero), paint)
	return nil
}

// MeasureText implements canvas2d.Backend.
func (b *Backend) MeasureText(text string, font canvas2d.Font) (canvas2d.TextMetrics, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text.measure(text, font)
}

// paintMask draws the shadow of mask, if any, then mask itself, both
// through the paint's composite operation.
func (b *Backend) paintMask(mask *image.Alpha, paint *canvas2d.Paint) {
	color := paint.EffectiveColor()
	op := paint.Composite
	if op != canvas2d.CompositeClear && paint.Shadow.Visible() {
		sc := paint.Shadow.Color.WithAlpha(paint.GlobalAlpha)
		b.composite(shadowMask(mask, paint.Shadow), sc, op)
	}
	b.composite(mask, color, op)

	canvas2d.Logger().Debug("raster: painted mask",
		"op", string(op), "color", color.String(), "shadow", paint.Shadow.Visible())
}
