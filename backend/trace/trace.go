// Package trace provides a canvas2d backend that records every call
// instead of drawing. Tests and debugging tools use it to inspect exactly
// what a Context asked the backend to do.
package trace

import (
	"sync"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/backend"
)

func init() {
	backend.Register(backend.Trace, func(int, int) (canvas2d.Backend, error) {
		return New(), nil
	})
}

// Operation names recorded in Call.Op.
const (
	OpFillPath   = "fillPath"
	OpStrokePath = "strokePath"
	OpFillText   = "fillText"
	OpStrokeText = "strokeText"
	OpMeasure    = "measureText"
)

// Call is one recorded backend call.
type Call struct {
	Op     string
	Path   *canvas2d.Path // deep copy; nil for text calls
	Bounds canvas2d.Rect
	Paint  canvas2d.Paint
	Text   string
	X, Y   float64
}

// Backend records calls. MeasureText is deterministic: every rune
// advances by Advance times the font size.
//
// Backend is safe for concurrent use.
type Backend struct {
	// Advance is the per-rune advance as a fraction of the font size.
	Advance float64

	// Err, when set, is returned by every call after it is recorded.
	Err error

	mu    sync.Mutex
	calls []Call
}

// New creates a trace backend with an advance of 0.5 em per rune.
func New() *Backend {
	return &Backend{Advance: 0.5}
}

// FillPath implements canvas2d.Backend.
func (b *Backend) FillPath(p *canvas2d.Path, paint *canvas2d.Paint) error {
	return b.recordPath(OpFillPath, p, paint)
}

// StrokePath implements canvas2d.Backend.
func (b *Backend) StrokePath(p *canvas2d.Path, paint *canvas2d.Paint) error {
	return b.recordPath(OpStrokePath, p, paint)
}

// FillText implements canvas2d.Backend.
func (b *Backend) FillText(text string, x, y float64, paint *canvas2d.Paint) error {
	return b.recordText(OpFillText, text, x, y, paint)
}

// StrokeText implements canvas2d.Backend.
func (b *Backend) StrokeText(text string, x, y float64, paint *canvas2d.Paint) error {
	return b.recordText(OpStrokeText, text, x, y, paint)
}

// MeasureText implements canvas2d.Backend.
func (b *Backend) MeasureText(text string, font canvas2d.Font) (canvas2d.TextMetrics, error) {
	b.record(Call{Op: OpMeasure, Text: text, Paint: canvas2d.Paint{Font: font}})
	n := float64(len([]rune(text)))
	return canvas2d.TextMetrics{
		Width:                    n * b.Advance * font.Size,
		ActualBoundingBoxAscent:  0.7 * font.Size,
		ActualBoundingBoxDescent: 0.2 * font.Size,
		FontBoundingBoxAscent:    0.8 * font.Size,
		FontBoundingBoxDescent:   0.2 * font.Size,
	}, b.Err
}

func (b *Backend) recordPath(op string, p *canvas2d.Path, paint *canvas2d.Paint) error {
	b.record(Call{Op: op, Path: p.Clone(), Bounds: p.Bounds(), Paint: *paint})
	return b.Err
}

func (b *Backend) recordText(op, text string, x, y float64, paint *canvas2d.Paint) error {
	b.record(Call{Op: op, Text: text, X: x, Y: y, Paint: *paint})
	return b.Err
}

func (b *Backend) record(c Call) {
	canvas2d.Logger().Debug("trace: backend call",
		"op", c.Op, "bounds", c.Bounds, "text", c.Text, "color", c.Paint.Color.String())

	b.mu.Lock()
	b.calls = append(b.calls, c)
	b.mu.Unlock()
}

// Calls returns a copy of the recorded calls, oldest first.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// Draws returns the recorded calls that paint, skipping measurements.
func (b *Backend) Draws() []Call {
	var out []Call
	for _, c := range b.Calls() {
		if c.Op != OpMeasure {
			out = append(out, c)
		}
	}
	return out
}

// Ops returns the operation name of every recorded call.
func (b *Backend) Ops() []string {
	calls := b.Calls()
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset discards the recorded calls.
func (b *Backend) Reset() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}
