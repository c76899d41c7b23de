package canvas2d

import (
	"fmt"
	"strings"
)

// Context is a Canvas 2D drawing context bound to one Backend.
//
// It keeps the drawing state and its save/restore stack, plus one current
// path that is not part of that state. Geometry is mapped into device
// space when it is added, so later transform changes do not move
// existing path segments.
//
// Context is not safe for concurrent use.
type Context struct {
	backend Backend
	width   int
	height  int

	defaults drawState
	state    drawState
	stack    []drawState
	path     *Path2D
}

// NewContext creates a drawing context of the given size over backend.
//
//	ctx := canvas2d.NewContext(raster.New(400, 400), 400, 400)
func NewContext(backend Backend, width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Context{
		backend:  backend,
		width:    width,
		height:   height,
		defaults: options.state,
		state:    options.state,
		stack:    make([]drawState, 0, 8),
		path:     NewPath2D(),
	}
}

// Width returns the width of the drawing surface.
func (c *Context) Width() int { return c.width }

// Height returns the height of the drawing surface.
func (c *Context) Height() int { return c.height }

// Backend returns the backend the context draws through.
func (c *Context) Backend() Backend { return c.backend }

// Save pushes a copy of the drawing state.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved drawing state. It does nothing when
// the stack is empty.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Reset restores the initial drawing state, empties the state stack and
// clears the current path.
func (c *Context) Reset() {
	c.state = c.defaults
	c.stack = c.stack[:0]
	c.path.Reset()
}

// SetFillStyle sets the fill color from a CSS color string. Unparsable
// strings are ignored.
func (c *Context) SetFillStyle(color string) {
	col, err := ParseColor(color)
	if err != nil {
		ignored("fillStyle", color, err)
		return
	}
	c.state.fillStyle = col
}

// FillStyle returns the serialized fill color.
func (c *Context) FillStyle() string { return c.state.fillStyle.String() }

// SetFillColor sets the fill color directly.
func (c *Context) SetFillColor(col RGBA) { c.state.fillStyle = col }

// SetStrokeStyle sets the stroke color from a CSS color string.
// Unparsable strings are ignored.
func (c *Context) SetStrokeStyle(color string) {
	col, err := ParseColor(color)
	if err != nil {
		ignored("strokeStyle", color, err)
		return
	}
	c.state.strokeStyle = col
}

// StrokeStyle returns the serialized stroke color.
func (c *Context) StrokeStyle() string { return c.state.strokeStyle.String() }

// SetStrokeColor sets the stroke color directly.
func (c *Context) SetStrokeColor(col RGBA) { c.state.strokeStyle = col }

// SetGlobalAlpha sets the alpha applied to every drawing operation.
// Values outside [0, 1] are ignored.
func (c *Context) SetGlobalAlpha(alpha float64) {
	if !AllFinite(alpha) || alpha < 0 || alpha > 1 {
		return
	}
	c.state.globalAlpha = alpha
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetGlobalCompositeOperation sets the compositing operation. Unknown
// names are ignored.
func (c *Context) SetGlobalCompositeOperation(op string) {
	if o, ok := ParseCompositeOperation(op); ok {
		c.state.composite = o
	}
}

// GlobalCompositeOperation returns the compositing operation name.
func (c *Context) GlobalCompositeOperation() string { return string(c.state.composite) }

// SetShadowBlur sets the shadow blur level. Negative values are ignored.
func (c *Context) SetShadowBlur(blur float64) {
	if !AllFinite(blur) || blur < 0 {
		return
	}
	c.state.shadow.Blur = blur
}

// ShadowBlur returns the shadow blur level.
func (c *Context) ShadowBlur() float64 { return c.state.shadow.Blur }

// SetShadowColor sets the shadow color from a CSS color string.
func (c *Context) SetShadowColor(color string) {
	col, err := ParseColor(color)
	if err != nil {
		ignored("shadowColor", color, err)
		return
	}
	c.state.shadow.Color = col
}

// ShadowColor returns the serialized shadow color.
func (c *Context) ShadowColor() string { return c.state.shadow.Color.String() }

// SetShadowOffsetX sets the horizontal shadow offset in device pixels.
func (c *Context) SetShadowOffsetX(x float64) {
	if AllFinite(x) {
		c.state.shadow.OffsetX = x
	}
}

// ShadowOffsetX returns the horizontal shadow offset.
func (c *Context) ShadowOffsetX() float64 { return c.state.shadow.OffsetX }

// SetShadowOffsetY sets the vertical shadow offset in device pixels.
func (c *Context) SetShadowOffsetY(y float64) {
	if AllFinite(y) {
		c.state.shadow.OffsetY = y
	}
}

// ShadowOffsetY returns the vertical shadow offset.
func (c *Context) ShadowOffsetY() float64 { return c.state.shadow.OffsetY }

// SetFont sets the font from a CSS font shorthand. Unparsable strings are
// ignored.
func (c *Context) SetFont(font string) {
	f, err := ParseFont(font)
	if err != nil {
		ignored("font", font, err)
		return
	}
	c.state.font = f
}

// Font returns the serialized font.
func (c *Context) Font() string { return c.state.font.String() }

// FontFace returns the parsed font.
func (c *Context) FontFace() Font { return c.state.font }

// SetLineWidth sets the stroke width. Non-positive values are ignored.
func (c *Context) SetLineWidth(width float64) {
	if !AllFinite(width) || width <= 0 {
		return
	}
	c.state.lineWidth = width
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.state.lineWidth }

// SetLineCap sets the line cap: "butt", "round" or "square".
func (c *Context) SetLineCap(lineCap string) {
	for i, name := range lineCapNames {
		if name == lineCap {
			c.state.lineCap = LineCap(i)
		}
	}
}

// LineCap returns the line cap name.
func (c *Context) LineCap() string { return c.state.lineCap.String() }

// SetLineJoin sets the line join: "miter", "round" or "bevel".
func (c *Context) SetLineJoin(lineJoin string) {
	for i, name := range lineJoinNames {
		if name == lineJoin {
			c.state.lineJoin = LineJoin(i)
		}
	}
}

// LineJoin returns the line join name.
func (c *Context) LineJoin() string { return c.state.lineJoin.String() }

// SetMiterLimit sets the miter limit. Non-positive values are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if !AllFinite(limit) || limit <= 0 {
		return
	}
	c.state.miterLimit = limit
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 { return c.state.miterLimit }

// SetTextAlign sets the text alignment. Unknown values are ignored.
func (c *Context) SetTextAlign(align string) {
	if a := TextAlign(strings.TrimSpace(align)); a.valid() {
		c.state.textAlign = a
	}
}

// TextAlign returns the text alignment.
func (c *Context) TextAlign() string { return string(c.state.textAlign) }

// SetTextBaseline sets the text baseline. Unknown values are ignored.
func (c *Context) SetTextBaseline(baseline string) {
	if b := TextBaseline(strings.TrimSpace(baseline)); b.valid() {
		c.state.textBaseline = b
	}
}

// TextBaseline returns the text baseline.
func (c *Context) TextBaseline() string { return string(c.state.textBaseline) }

// Translate moves the origin by (x, y).
func (c *Context) Translate(x, y float64) {
	if AllFinite(x, y) {
		c.state.transform = c.state.transform.Multiply(Translate(x, y))
	}
}

// Scale scales the user space by (x, y).
func (c *Context) Scale(x, y float64) {
	if AllFinite(x, y) {
		c.state.transform = c.state.transform.Multiply(Scale(x, y))
	}
}

// Rotate rotates the user space by angle radians.
func (c *Context) Rotate(angle float64) {
	if AllFinite(angle) {
		c.state.transform = c.state.transform.Multiply(Rotate(angle))
	}
}

// Transform multiplies the current transform by the given matrix.
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	m := NewMatrix(a, b, cc, d, e, f)
	if m.Finite() {
		c.state.transform = c.state.transform.Multiply(m)
	}
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(m Matrix) {
	if m.Finite() {
		c.state.transform = m
	}
}

// ResetTransform sets the current transform to identity.
func (c *Context) ResetTransform() {
	c.state.transform = Identity()
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Matrix {
	return c.state.transform
}

// BeginPath clears the current path.
func (c *Context) BeginPath() {
	c.path.Reset()
}

// CurrentPath returns a copy of the current path in device space.
func (c *Context) CurrentPath() *Path2D {
	return c.path.Clone()
}

// MoveTo starts a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path.moveTo(c.state.transform, x, y)
}

// LineTo adds a line to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.path.lineTo(c.state.transform, x, y)
}

// QuadraticCurveTo adds a quadratic curve.
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.path.quadTo(c.state.transform, cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic curve.
func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.path.cubicTo(c.state.transform, cp1x, cp1y, cp2x, cp2y, x, y)
}

// ArcTo adds a tangent arc. See [Path2D.ArcTo].
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) error {
	return c.path.arcTo(c.state.transform, x1, y1, x2, y2, r)
}

// Arc adds a circular arc. See [Path2D.Arc].
func (c *Context) Arc(x, y, r, startAngle, endAngle float64, counterclockwise bool) error {
	return c.path.ellipse(c.state.transform, x, y, r, r, 0, startAngle, endAngle, counterclockwise)
}

// Ellipse adds an elliptical arc. See [Path2D.Ellipse].
func (c *Context) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, counterclockwise bool) error {
	return c.path.ellipse(c.state.transform, x, y, rx, ry, rotation, startAngle, endAngle, counterclockwise)
}

// Rect adds a closed rectangle sub-path.
func (c *Context) Rect(x, y, w, h float64) {
	c.path.rect(c.state.transform, x, y, w, h)
}

// ClosePath closes the current sub-path. See [Path2D.ClosePath].
func (c *Context) ClosePath() {
	c.path.ClosePath()
}

// FillRect fills a rectangle with the fill style. Nothing is drawn when
// the rectangle has zero area or a non-finite argument.
func (c *Context) FillRect(x, y, w, h float64) error {
	if w == 0 || h == 0 {
		return nil
	}
	p := NewPath2D()
	p.rect(c.state.transform, x, y, w, h)
	if p.IsEmpty() {
		return nil
	}
	return c.fill("fillRect", p.Path(), c.state.fillPaint())
}

// StrokeRect strokes a rectangle with the stroke style.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	if w == 0 && h == 0 {
		return nil
	}
	p := NewPath2D()
	p.rect(c.state.transform, x, y, w, h)
	if p.IsEmpty() {
		return nil
	}
	return c.stroke("strokeRect", p.Path(), c.state.strokePaint())
}

// ClearRect sets every pixel of a rectangle to transparent black. Shadow
// and global alpha do not apply.
func (c *Context) ClearRect(x, y, w, h float64) error {
	if w == 0 || h == 0 {
		return nil
	}
	p := NewPath2D()
	p.rect(c.state.transform, x, y, w, h)
	if p.IsEmpty() {
		return nil
	}
	paint := c.state.fillPaint()
	paint.Color = Transparent
	paint.GlobalAlpha = 1
	paint.Composite = CompositeClear
	paint.Shadow = Shadow{Color: Transparent}
	return c.fill("clearRect", p.Path(), paint)
}

// Fill fills the current path with the non-zero rule.
func (c *Context) Fill() error {
	return c.FillWithRule(FillRuleNonZero)
}

// FillWithRule fills the current path with rule.
func (c *Context) FillWithRule(rule FillRule) error {
	if c.path.IsEmpty() {
		return nil
	}
	paint := c.state.fillPaint()
	paint.FillRule = rule
	return c.fill("fill", c.path.Path(), paint)
}

// FillPath fills p, given in user space, with rule.
func (c *Context) FillPath(p *Path2D, rule FillRule) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	paint := c.state.fillPaint()
	paint.FillRule = rule
	return c.fill("fill", p.Path().Transform(c.state.transform), paint)
}

// Stroke strokes the current path.
func (c *Context) Stroke() error {
	if c.path.IsEmpty() {
		return nil
	}
	return c.stroke("stroke", c.path.Path(), c.state.strokePaint())
}

// StrokePath strokes p, given in user space.
func (c *Context) StrokePath(p *Path2D) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	return c.stroke("stroke", p.Path().Transform(c.state.transform), c.state.strokePaint())
}

// IsPointInPath reports whether the device-space point (x, y) is inside
// the current path under rule.
func (c *Context) IsPointInPath(x, y float64, rule FillRule) bool {
	return c.path.Contains(x, y, rule)
}

func (c *Context) fill(op string, path *Path, paint *Paint) error {
	if c.backend == nil {
		return fmt.Errorf("%s: %w", op, ErrNoBackend)
	}
	if err := c.backend.FillPath(path, paint); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBackend, op, err)
	}
	return nil
}

func (c *Context) stroke(op string, path *Path, paint *Paint) error {
	if c.backend == nil {
		return fmt.Errorf("%s: %w", op, ErrNoBackend)
	}
	if err := c.backend.StrokePath(path, paint); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBackend, op, err)
	}
	return nil
}

// FillText draws text at (x, y) with the fill style, honoring the text
// alignment and baseline.
func (c *Context) FillText(text string, x, y float64) error {
	return c.drawText("fillText", text, x, y, c.state.fillPaint(), Backend.FillText)
}

// StrokeText outlines text at (x, y) with the stroke style.
func (c *Context) StrokeText(text string, x, y float64) error {
	return c.drawText("strokeText", text, x, y, c.state.strokePaint(), Backend.StrokeText)
}

// MeasureText measures text in the current font.
func (c *Context) MeasureText(text string) (TextMetrics, error) {
	if c.backend == nil {
		return TextMetrics{}, fmt.Errorf("measureText: %w", ErrNoBackend)
	}
	m, err := c.backend.MeasureText(text, c.state.font)
	if err != nil {
		return TextMetrics{}, fmt.Errorf("%w: measureText: %w", ErrBackend, err)
	}
	return m, nil
}

// ignored logs a style assignment that left the state unchanged.
func ignored(property, value string, err error) {
	Logger().Debug("canvas2d: ignored invalid value", "property", property, "value", value, "err", err)
}

type textFunc func(b Backend, text string, x, y float64, paint *Paint) error

func (c *Context) drawText(op, text string, x, y float64, paint *Paint, draw textFunc) error {
	if !AllFinite(x, y) || text == "" {
		return nil
	}
	if c.backend == nil {
		return fmt.Errorf("%s: %w", op, ErrNoBackend)
	}
	x, y, err := c.alignText(text, x, y)
	if err != nil {
		return err
	}
	if err := draw(c.backend, text, x, y, paint); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBackend, op, err)
	}
	return nil
}

// alignText moves (x, y) from the anchor selected by textAlign and
// textBaseline to the left end of the alphabetic baseline. Text is laid
// out left to right.
func (c *Context) alignText(text string, x, y float64) (float64, float64, error) {
	align, baseline := c.state.textAlign, c.state.textBaseline
	if (align == TextAlignStart || align == TextAlignLeft) && baseline == TextBaselineAlphabetic {
		return x, y, nil
	}
	m, err := c.MeasureText(text)
	if err != nil {
		return 0, 0, err
	}
	switch align {
	case TextAlignCenter:
		x -= m.Width / 2
	case TextAlignRight, TextAlignEnd:
		x -= m.Width
	}
	ascent, descent := m.FontBoundingBoxAscent, m.FontBoundingBoxDescent
	switch baseline {
	case TextBaselineTop:
		y += ascent
	case TextBaselineHanging:
		y += 0.8 * ascent
	case TextBaselineMiddle:
		y += (ascent - descent) / 2
	case TextBaselineBottom, TextBaselineIdeographic:
		y -= descent
	}
	if !AllFinite(x, y) {
		return 0, 0, fmt.Errorf("%w: text metrics %+v", ErrBackend, m)
	}
	return x, y, nil
}
