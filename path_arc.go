package canvas2d

import "math"

// ArcTo is an elliptical arc segment. The ellipse is centred at Center with
// radii Radii in its own frame; Frame maps that frame into path space,
// carrying both the ellipse rotation and any transform applied to the path.
// Angles are in degrees; a positive sweep turns clockwise on a y-down
// surface.
type ArcTo struct {
	Center     Point
	Radii      Point
	StartAngle float64
	SweepAngle float64
	Frame      Matrix
}

func (ArcTo) isPathElement() {}

// PointAt returns the point on the arc's ellipse at angle degrees, in path
// space.
func (a ArcTo) PointAt(angle float64) Point {
	sin, cos := math.Sincos(Radians(angle))
	return a.Frame.TransformPoint(Point{
		X: a.Center.X + a.Radii.X*cos,
		Y: a.Center.Y + a.Radii.Y*sin,
	})
}

// StartPoint returns the first point of the arc in path space.
func (a ArcTo) StartPoint() Point {
	return a.PointAt(a.StartAngle)
}

// EndPoint returns the last point of the arc in path space.
func (a ArcTo) EndPoint() Point {
	return a.PointAt(a.StartAngle + a.SweepAngle)
}

// Cubics approximates the arc with cubic Bezier curves of at most 90
// degrees each, in path space. A zero sweep yields no curves.
func (a ArcTo) Cubics() []CubicTo {
	if a.SweepAngle == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(a.SweepAngle)/90 - 1e-9))
	n = max(n, 1)
	step := Radians(a.SweepAngle) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	out := make([]CubicTo, 0, n)
	theta := Radians(a.StartAngle)
	sin0, cos0 := math.Sincos(theta)
	for range n {
		sin1, cos1 := math.Sincos(theta + step)
		c1 := Point{X: cos0 - k*sin0, Y: sin0 + k*cos0}
		c2 := Point{X: cos1 + k*sin1, Y: sin1 - k*cos1}
		end := Point{X: cos1, Y: sin1}
		out = append(out, CubicTo{
			Control1: a.mapUnit(c1),
			Control2: a.mapUnit(c2),
			Point:    a.mapUnit(end),
		})
		theta += step
		sin0, cos0 = sin1, cos1
	}
	return out
}

// mapUnit maps a point on the unit circle onto the arc's ellipse in path
// space.
func (a ArcTo) mapUnit(u Point) Point {
	return a.Frame.TransformPoint(Point{
		X: a.Center.X + a.Radii.X*u.X,
		Y: a.Center.Y + a.Radii.Y*u.Y,
	})
}
