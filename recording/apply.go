package recording

import (
	"fmt"

	"github.com/gogpu/canvas2d"
)

// Apply executes one command against ctx. Setter commands never fail;
// geometry commands fail only on a negative radius; drawing commands
// return the backend's error.
func Apply(ctx *canvas2d.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Save:
		ctx.Save()
	case Restore:
		ctx.Restore()
	case Reset:
		ctx.Reset()

	case SetFillStyle:
		ctx.SetFillStyle(c.Style)
	case SetStrokeStyle:
		ctx.SetStrokeStyle(c.Style)
	case SetGlobalAlpha:
		ctx.SetGlobalAlpha(c.Alpha)
	case SetCompositeOperation:
		ctx.SetGlobalCompositeOperation(c.Op)
	case SetShadowBlur:
		ctx.SetShadowBlur(c.Blur)
	case SetShadowColor:
		ctx.SetShadowColor(c.Color)
	case SetShadowOffset:
		ctx.SetShadowOffsetX(c.X)
		ctx.SetShadowOffsetY(c.Y)
	case SetFont:
		ctx.SetFont(c.Font)
	case SetLineWidth:
		ctx.SetLineWidth(c.Width)
	case SetLineCap:
		ctx.SetLineCap(c.Cap)
	case SetLineJoin:
		ctx.SetLineJoin(c.Join)
	case SetMiterLimit:
		ctx.SetMiterLimit(c.Limit)
	case SetTextAlign:
		ctx.SetTextAlign(c.Align)
	case SetTextBaseline:
		ctx.SetTextBaseline(c.Baseline)

	case Translate:
		ctx.Translate(c.X, c.Y)
	case Scale:
		ctx.Scale(c.X, c.Y)
	case Rotate:
		ctx.Rotate(c.Angle)
	case Transform:
		m := c.Matrix
		ctx.Transform(m.A, m.B, m.C, m.D, m.E, m.F)
	case SetTransform:
		ctx.SetTransform(c.Matrix)
	case ResetTransform:
		ctx.ResetTransform()

	case BeginPath:
		ctx.BeginPath()
	case MoveTo:
		ctx.MoveTo(c.X, c.Y)
	case LineTo:
		ctx.LineTo(c.X, c.Y)
	case QuadraticCurveTo:
		ctx.QuadraticCurveTo(c.CPX, c.CPY, c.X, c.Y)
	case BezierCurveTo:
		ctx.BezierCurveTo(c.CP1X, c.CP1Y, c.CP2X, c.CP2Y, c.X, c.Y)
	case ArcTo:
		return ctx.ArcTo(c.X1, c.Y1, c.X2, c.Y2, c.Radius)
	case Arc:
		return ctx.Arc(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.CounterClockwise)
	case Ellipse:
		return ctx.Ellipse(c.X, c.Y, c.RadiusX, c.RadiusY, c.Rotation, c.StartAngle, c.EndAngle, c.CounterClockwise)
	case Rect:
		ctx.Rect(c.X, c.Y, c.W, c.H)
	case ClosePath:
		ctx.ClosePath()

	case FillRect:
		return ctx.FillRect(c.X, c.Y, c.W, c.H)
	case StrokeRect:
		return ctx.StrokeRect(c.X, c.Y, c.W, c.H)
	case ClearRect:
		return ctx.ClearRect(c.X, c.Y, c.W, c.H)
	case Fill:
		return ctx.FillWithRule(c.Rule)
	case Stroke:
		return ctx.Stroke()
	case FillPath:
		return ctx.FillPath(c.Path, c.Rule)
	case StrokePath:
		return ctx.StrokePath(c.Path)
	case FillText:
		return ctx.FillText(c.Text, c.X, c.Y)
	case StrokeText:
		return ctx.StrokeText(c.Text, c.X, c.Y)

	case Func:
		if c == nil {
			return nil
		}
		return c(ctx)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return nil
}
