package canvas2d

import (
	"errors"
	"math"
	"testing"
)

type backendCall struct {
	op    string
	path  *Path
	paint Paint
	text  string
	x, y  float64
}

// fakeBackend records calls. Text is measured at 10 units per rune.
type fakeBackend struct {
	calls []backendCall
	err   error
}

func (b *fakeBackend) FillPath(p *Path, paint *Paint) error {
	b.calls = append(b.calls, backendCall{op: "fill", path: p.Clone(), paint: *paint})
	return b.err
}

func (b *fakeBackend) StrokePath(p *Path, paint *Paint) error {
	b.calls = append(b.calls, backendCall{op: "stroke", path: p.Clone(), paint: *paint})
	return b.err
}

func (b *fakeBackend) FillText(text string, x, y float64, paint *Paint) error {
	b.calls = append(b.calls, backendCall{op: "fillText", text: text, x: x, y: y, paint: *paint})
	return b.err
}

func (b *fakeBackend) StrokeText(text string, x, y float64, paint *Paint) error {
	b.calls = append(b.calls, backendCall{op: "strokeText", text: text, x: x, y: y, paint: *paint})
	return b.err
}

func (b *fakeBackend) MeasureText(text string, font Font) (TextMetrics, error) {
	return TextMetrics{
		Width:                  float64(len([]rune(text))) * 10,
		FontBoundingBoxAscent:  8,
		FontBoundingBoxDescent: 2,
	}, b.err
}

func newTestContext() (*Context, *fakeBackend) {
	b := &fakeBackend{}
	return NewContext(b, 400, 400), b
}

func TestSaveRestoreFillStyle(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.SetFillStyle("#ff0")
	before := ctx.FillStyle()

	ctx.Save()
	ctx.SetFillStyle("blue")
	if ctx.FillStyle() != "#0000ff" {
		t.Fatalf("FillStyle() = %q after set", ctx.FillStyle())
	}
	ctx.Restore()

	if got := ctx.FillStyle(); got != before {
		t.Errorf("FillStyle() after restore = %q, want %q", got, before)
	}
}

func TestSaveRestoreState(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Save()
	ctx.SetGlobalAlpha(0.2)
	ctx.SetLineWidth(5)
	ctx.SetFont("bold 30px Arial")
	ctx.Translate(10, 20)
	ctx.SetShadowBlur(4)
	ctx.SetGlobalCompositeOperation("copy")
	ctx.Restore()

	if ctx.GlobalAlpha() != 1 || ctx.LineWidth() != 1 || ctx.Font() != "10px sans-serif" ||
		!ctx.GetTransform().IsIdentity() || ctx.ShadowBlur() != 0 || ctx.GlobalCompositeOperation() != "source-over" {
		t.Error("Restore did not bring back the saved state")
	}
}

func TestRestoreEmptyStack(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.SetFillStyle("red")
	ctx.Restore()
	if ctx.FillStyle() != "#ff0000" {
		t.Errorf("Restore on empty stack changed state: %q", ctx.FillStyle())
	}
}

func TestPathNotPartOfState(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Save()
	ctx.MoveTo(0, 0)
	ctx.LineTo(10, 10)
	ctx.Restore()
	if ctx.CurrentPath().IsEmpty() {
		t.Error("Restore must not discard the current path")
	}
}

func TestInvalidSettersIgnored(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.SetFillStyle("nonsense")
	ctx.SetStrokeStyle("#12")
	ctx.SetGlobalAlpha(1.5)
	ctx.SetGlobalAlpha(-0.1)
	ctx.SetGlobalAlpha(math.NaN())
	ctx.SetLineWidth(0)
	ctx.SetLineWidth(-3)
	ctx.SetLineWidth(math.Inf(1))
	ctx.SetShadowBlur(-1)
	ctx.SetFont("huge")
	ctx.SetGlobalCompositeOperation("multiply-ish")
	ctx.SetLineCap("pointy")
	ctx.SetTextAlign("justify")
	ctx.SetMiterLimit(0)

	checks := []struct {
		name, got, want string
	}{
		{"fillStyle", ctx.FillStyle(), "#000000"},
		{"strokeStyle", ctx.StrokeStyle(), "#000000"},
		{"font", ctx.Font(), "10px sans-serif"},
		{"composite", ctx.GlobalCompositeOperation(), "source-over"},
		{"lineCap", ctx.LineCap(), "butt"},
		{"textAlign", ctx.TextAlign(), "start"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if ctx.GlobalAlpha() != 1 || ctx.LineWidth() != 1 || ctx.ShadowBlur() != 0 || ctx.MiterLimit() != 10 {
		t.Error("numeric setters accepted invalid values")
	}
}

func TestFillRectStrokeRect(t *testing.T) {
	ctx, b := newTestContext()
	ctx.SetFillStyle("#ff0")
	ctx.SetStrokeStyle("#0000ff")
	if err := ctx.FillRect(10, 10, 100, 200); err != nil {
		t.Fatal(err)
	}
	if err := ctx.StrokeRect(200, 220, 50, 100); err != nil {
		t.Fatal(err)
	}

	if len(b.calls) != 2 {
		t.Fatalf("backend calls = %d, want 2", len(b.calls))
	}
	fill, stroke := b.calls[0], b.calls[1]
	if fill.op != "fill" || fill.path.Bounds() != XYWH(10, 10, 100, 200) || fill.paint.Color.String() != "#ffff00" {
		t.Errorf("fill call = %s %v %s", fill.op, fill.path.Bounds(), fill.paint.Color)
	}
	if stroke.op != "stroke" || stroke.path.Bounds() != XYWH(200, 220, 50, 100) || stroke.paint.Color.String() != "#0000ff" {
		t.Errorf("stroke call = %s %v %s", stroke.op, stroke.path.Bounds(), stroke.paint.Color)
	}
}

func TestFillRectDegenerate(t *testing.T) {
	ctx, b := newTestContext()
	_ = ctx.FillRect(0, 0, 0, 10)
	_ = ctx.FillRect(math.NaN(), 0, 10, 10)
	_ = ctx.StrokeRect(0, 0, 0, 0)
	_ = ctx.ClearRect(0, 0, 10, 0)
	if len(b.calls) != 0 {
		t.Errorf("degenerate rects produced %d backend calls", len(b.calls))
	}
}

func TestClearRect(t *testing.T) {
	ctx, b := newTestContext()
	ctx.SetGlobalAlpha(0.5)
	ctx.SetShadowBlur(10)
	ctx.SetShadowColor("black")
	if err := ctx.ClearRect(0, 0, 400, 400); err != nil {
		t.Fatal(err)
	}
	p := b.calls[0].paint
	if p.Composite != CompositeClear || p.GlobalAlpha != 1 || p.Shadow.Visible() {
		t.Errorf("clearRect paint = %+v", p)
	}
}

func TestTransformAppliedAtCallTime(t *testing.T) {
	ctx, b := newTestContext()
	ctx.Translate(100, 0)
	ctx.MoveTo(0, 0)
	ctx.LineTo(10, 0)
	ctx.ResetTransform()
	ctx.LineTo(10, 10)
	if err := ctx.Stroke(); err != nil {
		t.Fatal(err)
	}

	segs := b.calls[0].path.Elements()
	want := []PathElement{
		MoveTo{Point: Pt(100, 0)},
		LineTo{Point: Pt(110, 0)},
		LineTo{Point: Pt(10, 10)},
	}
	for i, w := range want {
		if segs[i] != w {
			t.Errorf("segment %d = %v, want %v", i, segs[i], w)
		}
	}
}

func TestScaledLineWidth(t *testing.T) {
	ctx, b := newTestContext()
	ctx.Scale(2, 2)
	ctx.SetLineWidth(3)
	if err := ctx.StrokeRect(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	p := b.calls[0].paint
	if got := p.DeviceLineWidth(); got != 6 {
		t.Errorf("DeviceLineWidth = %v, want 6", got)
	}
	if b.calls[0].path.Bounds() != XYWH(0, 0, 20, 20) {
		t.Errorf("path bounds = %v, want 20x20", b.calls[0].path.Bounds())
	}
}

func TestFillAndStrokeCurrentPath(t *testing.T) {
	ctx, b := newTestContext()
	if err := ctx.Fill(); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 0 {
		t.Fatal("fill on empty path should not reach the backend")
	}

	ctx.BeginPath()
	if err := ctx.Arc(100, 50, 50, 0, 2*math.Pi, false); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Stroke(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.FillWithRule(FillRuleEvenOdd); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 2 || b.calls[1].paint.FillRule != FillRuleEvenOdd {
		t.Errorf("calls = %+v", b.calls)
	}
}

func TestFillPathUsesTransform(t *testing.T) {
	ctx, b := newTestContext()
	p := NewPath2D()
	p.Rect(0, 0, 10, 10)
	ctx.Translate(5, 5)
	if err := ctx.FillPath(p, FillRuleNonZero); err != nil {
		t.Fatal(err)
	}
	if got := b.calls[0].path.Bounds(); got != XYWH(5, 5, 10, 10) {
		t.Errorf("bounds = %v", got)
	}
	if p.Bounds() != XYWH(0, 0, 10, 10) {
		t.Error("FillPath must not modify its argument")
	}
}

func TestContextArcNegativeRadius(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.MoveTo(1, 1)
	if err := ctx.Arc(0, 0, -5, 0, 1, false); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Arc error = %v, want ErrInvalidArgument", err)
	}
	if err := ctx.ArcTo(0, 0, 1, 1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ArcTo error = %v, want ErrInvalidArgument", err)
	}
	if ctx.CurrentPath().Path().Len() != 1 {
		t.Error("path changed after invalid arc")
	}
}

func TestContextArcToUnderTransform(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Translate(100, 100)
	ctx.MoveTo(0, 0)
	if err := ctx.ArcTo(10, 0, 10, 10, 5); err != nil {
		t.Fatal(err)
	}
	cur, _ := ctx.CurrentPath().CurrentPoint()
	if !pointsClose(cur, Pt(110, 105)) {
		t.Errorf("current point = %v, want (110, 105)", cur)
	}
}

func TestBackendErrorWrapped(t *testing.T) {
	ctx, b := newTestContext()
	boom := errors.New("device lost")
	b.err = boom
	err := ctx.FillRect(0, 0, 1, 1)
	if !errors.Is(err, ErrBackend) || !errors.Is(err, boom) {
		t.Errorf("error = %v, want ErrBackend wrapping the cause", err)
	}
}

func TestNoBackend(t *testing.T) {
	ctx := NewContext(nil, 10, 10)
	if err := ctx.FillRect(0, 0, 1, 1); !errors.Is(err, ErrNoBackend) {
		t.Errorf("error = %v, want ErrNoBackend", err)
	}
}

func TestMeasureAndFillTextAgree(t *testing.T) {
	ctx, b := newTestContext()
	ctx.SetFont("30px Arial")
	m, err := ctx.MeasureText("hello")
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 50 {
		t.Errorf("width = %v, want 50", m.Width)
	}
	if err := ctx.FillText("hello", 10, 250); err != nil {
		t.Fatal(err)
	}
	call := b.calls[0]
	if call.op != "fillText" || call.x != 10 || call.y != 250 || call.paint.Font.Size != 30 {
		t.Errorf("fillText call = %+v", call)
	}
}

func TestTextAlignment(t *testing.T) {
	tests := []struct {
		align, baseline string
		wantX, wantY    float64
	}{
		{"start", "alphabetic", 100, 100},
		{"center", "alphabetic", 75, 100},
		{"right", "top", 50, 108},
		{"end", "bottom", 50, 98},
		{"left", "middle", 100, 103},
	}
	for _, tt := range tests {
		t.Run(tt.align+"/"+tt.baseline, func(t *testing.T) {
			ctx, b := newTestContext()
			ctx.SetTextAlign(tt.align)
			ctx.SetTextBaseline(tt.baseline)
			if err := ctx.StrokeText("abcde", 100, 100); err != nil {
				t.Fatal(err)
			}
			call := b.calls[len(b.calls)-1]
			if call.x != tt.wantX || call.y != tt.wantY {
				t.Errorf("origin = (%v, %v), want (%v, %v)", call.x, call.y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestIsPointInPath(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Translate(50, 50)
	ctx.Rect(0, 0, 10, 10)
	if !ctx.IsPointInPath(55, 55, FillRuleNonZero) {
		t.Error("device point (55, 55) should be inside")
	}
	if ctx.IsPointInPath(5, 5, FillRuleNonZero) {
		t.Error("user-space coordinates must not be transformed")
	}
}

func TestReset(t *testing.T) {
	ctx := NewContext(&fakeBackend{}, 10, 10, WithFillStyle("red"))
	ctx.SetFillStyle("blue")
	ctx.Save()
	ctx.Rect(0, 0, 1, 1)
	ctx.Reset()

	if ctx.FillStyle() != "#ff0000" {
		t.Errorf("Reset fillStyle = %q, want configured default", ctx.FillStyle())
	}
	if !ctx.CurrentPath().IsEmpty() {
		t.Error("Reset should clear the path")
	}
	ctx.SetFillStyle("green")
	ctx.Restore()
	if ctx.FillStyle() != "#008000" {
		t.Error("Reset should clear the state stack")
	}
}

func TestContextOptions(t *testing.T) {
	ctx := NewContext(&fakeBackend{}, 10, 10,
		WithFillStyle("#123456"),
		WithStrokeStyle("bogus"),
		WithFont("12px Go"),
		WithCompositeOperation(CompositeDestinationOut),
		WithCompositeOperation(CompositeClear),
	)
	if ctx.FillStyle() != "#123456" || ctx.StrokeStyle() != "#000000" ||
		ctx.Font() != "12px Go" || ctx.GlobalCompositeOperation() != "destination-out" {
		t.Errorf("options not applied: %s %s %s %s",
			ctx.FillStyle(), ctx.StrokeStyle(), ctx.Font(), ctx.GlobalCompositeOperation())
	}
}
