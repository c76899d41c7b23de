package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/gogpu/canvas2d"
)

var methods = map[string]method{
	"save":           none((*canvas2d.Context).Save),
	"restore":        none((*canvas2d.Context).Restore),
	"reset":          none((*canvas2d.Context).Reset),
	"beginPath":      none((*canvas2d.Context).BeginPath),
	"closePath":      none((*canvas2d.Context).ClosePath),
	"resetTransform": none((*canvas2d.Context).ResetTransform),

	"setFillStyle":                setter((*canvas2d.Context).SetFillStyle),
	"setStrokeStyle":              setter((*canvas2d.Context).SetStrokeStyle),
	"setFont":                     setter((*canvas2d.Context).SetFont),
	"setLineCap":                  setter((*canvas2d.Context).SetLineCap),
	"setLineJoin":                 setter((*canvas2d.Context).SetLineJoin),
	"setShadowColor":              setter((*canvas2d.Context).SetShadowColor),
	"setTextAlign":                setter((*canvas2d.Context).SetTextAlign),
	"setTextBaseline":             setter((*canvas2d.Context).SetTextBaseline),
	"setGlobalCompositeOperation": setter((*canvas2d.Context).SetGlobalCompositeOperation),

	"getFillStyle":   getter((*canvas2d.Context).FillStyle),
	"getStrokeStyle": getter((*canvas2d.Context).StrokeStyle),
	"getFont":        getter((*canvas2d.Context).Font),

	"setGlobalAlpha":   unary((*canvas2d.Context).SetGlobalAlpha),
	"setLineWidth":     unary((*canvas2d.Context).SetLineWidth),
	"setMiterLimit":    unary((*canvas2d.Context).SetMiterLimit),
	"setShadowBlur":    unary((*canvas2d.Context).SetShadowBlur),
	"setShadowOffsetX": unary((*canvas2d.Context).SetShadowOffsetX),
	"setShadowOffsetY": unary((*canvas2d.Context).SetShadowOffsetY),
	"rotate":           unary((*canvas2d.Context).Rotate),

	"translate": pair((*canvas2d.Context).Translate),
	"scale":     pair((*canvas2d.Context).Scale),
	"moveTo":    pair((*canvas2d.Context).MoveTo),
	"lineTo":    pair((*canvas2d.Context).LineTo),

	"transform": floats(6, func(c *canvas2d.Context, v []float64) error {
		c.Transform(v[0], v[1], v[2], v[3], v[4], v[5])
		return nil
	}),
	"setTransform": floats(6, func(c *canvas2d.Context, v []float64) error {
		c.SetTransform(canvas2d.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5]))
		return nil
	}),
	"quadraticCurveTo": floats(4, func(c *canvas2d.Context, v []float64) error {
		c.QuadraticCurveTo(v[0], v[1], v[2], v[3])
		return nil
	}),
	"bezierCurveTo": floats(6, func(c *canvas2d.Context, v []float64) error {
		c.BezierCurveTo(v[0], v[1], v[2], v[3], v[4], v[5])
		return nil
	}),
	"arcTo": floats(5, func(c *canvas2d.Context, v []float64) error {
		return c.ArcTo(v[0], v[1], v[2], v[3], v[4])
	}),
	"rect": floats(4, func(c *canvas2d.Context, v []float64) error {
		c.Rect(v[0], v[1], v[2], v[3])
		return nil
	}),
	"fillRect":   box((*canvas2d.Context).FillRect),
	"strokeRect": box((*canvas2d.Context).StrokeRect),
	"clearRect":  box((*canvas2d.Context).ClearRect),

	"arc":        arc,
	"ellipse":    ellipse,
	"fill":       fill,
	"stroke":     stroke,
	"fillText":   textAt((*canvas2d.Context).FillText),
	"strokeText": textAt((*canvas2d.Context).StrokeText),

	"measureText":   measureText,
	"isPointInPath": isPointInPath,
}

func none(f func(*canvas2d.Context)) method {
	return func(c *canvas2d.Context, _ luaArgs) ([]rt.Value, error) {
		f(c)
		return nil, nil
	}
}

func setter(f func(*canvas2d.Context, string)) method {
	return func(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
		s, err := a.str(0)
		if err != nil {
			return nil, err
		}
		f(c, s)
		return nil, nil
	}
}

func getter(f func(*canvas2d.Context) string) method {
	return func(c *canvas2d.Context, _ luaArgs) ([]rt.Value, error) {
		return []rt.Value{rt.StringValue(f(c))}, nil
	}
}

func unary(f func(*canvas2d.Context, float64)) method {
	return func(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
		v, err := a.number(0)
		if err != nil {
			return nil, err
		}
		f(c, v)
		return nil, nil
	}
}

func pair(f func(*canvas2d.Context, float64, float64)) method {
	return func(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
		v, err := a.numbers(2)
		if err != nil {
			return nil, err
		}
		f(c, v[0], v[1])
		return nil, nil
	}
}

func floats(n int, f func(*canvas2d.Context, []float64) error) method {
	return func(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
		v, err := a.numbers(n)
		if err != nil {
			return nil, err
		}
		return nil, f(c, v)
	}
}

func box(f func(*canvas2d.Context, float64, float64, float64, float64) error) method {
	return floats(4, func(c *canvas2d.Context, v []float64) error {
		return f(c, v[0], v[1], v[2], v[3])
	})
}

func textAt(f func(*canvas2d.Context, string, float64, float64) error) method {
	return func(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
		s, err := a.str(0)
		if err != nil {
			return nil, err
		}
		x, err := a.number(1)
		if err != nil {
			return nil, err
		}
		y, err := a.number(2)
		if err != nil {
			return nil, err
		}
		return nil, f(c, s, x, y)
	}
}

func arc(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
	v, err := a.numbers(5)
	if err != nil {
		return nil, err
	}
	return nil, c.Arc(v[0], v[1], v[2], v[3], v[4], a.flag(5))
}

func ellipse(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
	v, err := a.numbers(7)
	if err != nil {
		return nil, err
	}
	return nil, c.Ellipse(v[0], v[1], v[2], v[3], v[4], v[5], v[6], a.flag(7))
}

func fill(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
	rule, err := ruleArg(a, 0)
	if err != nil {
		return nil, err
	}
	return nil, c.FillWithRule(rule)
}

func stroke(c *canvas2d.Context, _ luaArgs) ([]rt.Value, error) {
	return nil, c.Stroke()
}

func measureText(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
	s, err := a.str(0)
	if err != nil {
		return nil, err
	}
	m, err := c.MeasureText(s)
	if err != nil {
		return nil, err
	}
	t := rt.NewTable()
	t.Set(rt.StringValue("width"), rt.FloatValue(m.Width))
	t.Set(rt.StringValue("actualBoundingBoxAscent"), rt.FloatValue(m.ActualBoundingBoxAscent))
	t.Set(rt.StringValue("actualBoundingBoxDescent"), rt.FloatValue(m.ActualBoundingBoxDescent))
	t.Set(rt.StringValue("fontBoundingBoxAscent"), rt.FloatValue(m.FontBoundingBoxAscent))
	t.Set(rt.StringValue("fontBoundingBoxDescent"), rt.FloatValue(m.FontBoundingBoxDescent))
	return []rt.Value{rt.TableValue(t)}, nil
}

func isPointInPath(c *canvas2d.Context, a luaArgs) ([]rt.Value, error) {
	v, err := a.numbers(2)
	if err != nil {
		return nil, err
	}
	rule, err := ruleArg(a, 2)
	if err != nil {
		return nil, err
	}
	return []rt.Value{rt.BoolValue(c.IsPointInPath(v[0], v[1], rule))}, nil
}

func ruleArg(a luaArgs, i int) (canvas2d.FillRule, error) {
	if i >= len(a) || a[i].IsNil() {
		return canvas2d.FillRuleNonZero, nil
	}
	s, err := a.str(i)
	if err != nil {
		return 0, err
	}
	rule, ok := canvas2d.ParseFillRule(s)
	if !ok {
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
	return rule, nil
}
