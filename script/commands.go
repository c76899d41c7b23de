package script

import (
	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/recording"
)

type builder func(a args) (recording.Command, error)

var builders = map[string]builder{
	"save":           fixed(recording.Save{}),
	"restore":        fixed(recording.Restore{}),
	"reset":          fixed(recording.Reset{}),
	"beginPath":      fixed(recording.BeginPath{}),
	"closePath":      fixed(recording.ClosePath{}),
	"stroke":         fixed(recording.Stroke{}),
	"resetTransform": fixed(recording.ResetTransform{}),

	"fillStyle":   text(func(s string) recording.Command { return recording.SetFillStyle{Style: s} }),
	"strokeStyle": text(func(s string) recording.Command { return recording.SetStrokeStyle{Style: s} }),

	"globalCompositeOperation": text(func(s string) recording.Command { return recording.SetCompositeOperation{Op: s} }),

	"shadowColor":  text(func(s string) recording.Command { return recording.SetShadowColor{Color: s} }),
	"font":         text(func(s string) recording.Command { return recording.SetFont{Font: s} }),
	"lineCap":      text(func(s string) recording.Command { return recording.SetLineCap{Cap: s} }),
	"lineJoin":     text(func(s string) recording.Command { return recording.SetLineJoin{Join: s} }),
	"textAlign":    text(func(s string) recording.Command { return recording.SetTextAlign{Align: s} }),
	"textBaseline": text(func(s string) recording.Command { return recording.SetTextBaseline{Baseline: s} }),

	"globalAlpha":  nums(1, func(v []float64) recording.Command { return recording.SetGlobalAlpha{Alpha: v[0]} }),
	"shadowBlur":   nums(1, func(v []float64) recording.Command { return recording.SetShadowBlur{Blur: v[0]} }),
	"shadowOffset": nums(2, func(v []float64) recording.Command { return recording.SetShadowOffset{X: v[0], Y: v[1]} }),
	"lineWidth":    nums(1, func(v []float64) recording.Command { return recording.SetLineWidth{Width: v[0]} }),
	"miterLimit":   nums(1, func(v []float64) recording.Command { return recording.SetMiterLimit{Limit: v[0]} }),

	"translate": nums(2, func(v []float64) recording.Command { return recording.Translate{X: v[0], Y: v[1]} }),
	"scale":     nums(2, func(v []float64) recording.Command { return recording.Scale{X: v[0], Y: v[1]} }),
	"rotate":    nums(1, func(v []float64) recording.Command { return recording.Rotate{Angle: v[0]} }),
	"transform": nums(6, func(v []float64) recording.Command {
		return recording.Transform{Matrix: canvas2d.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])}
	}),
	"setTransform": nums(6, func(v []float64) recording.Command {
		return recording.SetTransform{Matrix: canvas2d.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])}
	}),

	"moveTo":           nums(2, func(v []float64) recording.Command { return recording.MoveTo{X: v[0], Y: v[1]} }),
	"lineTo":           nums(2, func(v []float64) recording.Command { return recording.LineTo{X: v[0], Y: v[1]} }),
	"quadraticCurveTo": nums(4, func(v []float64) recording.Command {
		return recording.QuadraticCurveTo{CPX: v[0], CPY: v[1], X: v[2], Y: v[3]}
	}),
	"bezierCurveTo": nums(6, func(v []float64) recording.Command {
		return recording.BezierCurveTo{CP1X: v[0], CP1Y: v[1], CP2X: v[2], CP2Y: v[3], X: v[4], Y: v[5]}
	}),
	"arcTo": nums(5, func(v []float64) recording.Command {
		return recording.ArcTo{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], Radius: v[4]}
	}),
	"arc":     arc,
	"ellipse": ellipse,
	"rect":    nums(4, func(v []float64) recording.Command { return recording.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]} }),

	"fillRect":   nums(4, func(v []float64) recording.Command { return recording.FillRect{X: v[0], Y: v[1], W: v[2], H: v[3]} }),
	"strokeRect": nums(4, func(v []float64) recording.Command { return recording.StrokeRect{X: v[0], Y: v[1], W: v[2], H: v[3]} }),
	"clearRect":  nums(4, func(v []float64) recording.Command { return recording.ClearRect{X: v[0], Y: v[1], W: v[2], H: v[3]} }),
	"fill":       fill,
	"fillPath":   fillPath,
	"strokePath": strokePath,
	"fillText":   textAt(func(s string, x, y float64) recording.Command { return recording.FillText{Text: s, X: x, Y: y} }),
	"strokeText": textAt(func(s string, x, y float64) recording.Command { return recording.StrokeText{Text: s, X: x, Y: y} }),
}

// fixed builds argument-less commands.
func fixed(cmd recording.Command) builder {
	return func(a args) (recording.Command, error) {
		if err := a.count(0, 0); err != nil {
			return nil, err
		}
		return cmd, nil
	}
}

// text builds commands taking one string.
func text(mk func(string) recording.Command) builder {
	return func(a args) (recording.Command, error) {
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		s, err := a.scalar(0)
		if err != nil {
			return nil, err
		}
		return mk(s), nil
	}
}

// nums builds commands taking exactly n numbers.
func nums(n int, mk func([]float64) recording.Command) builder {
	return func(a args) (recording.Command, error) {
		if err := a.count(n, n); err != nil {
			return nil, err
		}
		v, err := a.numbers()
		if err != nil {
			return nil, err
		}
		return mk(v), nil
	}
}

func textAt(mk func(string, float64, float64) recording.Command) builder {
	return func(a args) (recording.Command, error) {
		if err := a.count(3, 3); err != nil {
			return nil, err
		}
		s, err := a.scalar(0)
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
		return mk(s, x, y), nil
	}
}

func arc(a args) (recording.Command, error) {
	if err := a.count(5, 6); err != nil {
		return nil, err
	}
	v, err := (args{nodes: a.nodes[:5]}).numbers()
	if err != nil {
		return nil, err
	}
	ccw, err := a.flag(5)
	if err != nil {
		return nil, err
	}
	return recording.Arc{X: v[0], Y: v[1], Radius: v[2], StartAngle: v[3], EndAngle: v[4], CounterClockwise: ccw}, nil
}

func ellipse(a args) (recording.Command, error) {
	if err := a.count(7, 8); err != nil {
		return nil, err
	}
	v, err := (args{nodes: a.nodes[:7]}).numbers()
	if err != nil {
		return nil, err
	}
	ccw, err := a.flag(7)
	if err != nil {
		return nil, err
	}
	return recording.Ellipse{
		X: v[0], Y: v[1], RadiusX: v[2], RadiusY: v[3], Rotation: v[4],
		StartAngle: v[5], EndAngle: v[6], CounterClockwise: ccw,
	}, nil
}

func fill(a args) (recording.Command, error) {
	if err := a.count(0, 1); err != nil {
		return nil, err
	}
	rule, err := a.rule(0)
	if err != nil {
		return nil, err
	}
	return recording.Fill{Rule: rule}, nil
}

func fillPath(a args) (recording.Command, error) {
	if err := a.count(1, 2); err != nil {
		return nil, err
	}
	p, err := svgPath(a)
	if err != nil {
		return nil, err
	}
	rule, err := a.rule(1)
	if err != nil {
		return nil, err
	}
	return recording.FillPath{Path: p, Rule: rule}, nil
}

func strokePath(a args) (recording.Command, error) {
	if err := a.count(1, 1); err != nil {
		return nil, err
	}
	p, err := svgPath(a)
	if err != nil {
		return nil, err
	}
	return recording.StrokePath{Path: p}, nil
}

func svgPath(a args) (*canvas2d.Path2D, error) {
	d, err := a.scalar(0)
	if err != nil {
		return nil, err
	}
	return canvas2d.NewPath2DFromSVG(d)
}
