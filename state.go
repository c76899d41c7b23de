package canvas2d

// drawState is the part of a Context that Save and Restore snapshot.
// The current path is deliberately not part of it.
type drawState struct {
	fillStyle   RGBA
	strokeStyle RGBA
	globalAlpha float64
	composite   CompositeOperation
	shadow      Shadow
	transform   Matrix
	font        Font

	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64

	textAlign    TextAlign
	textBaseline TextBaseline
}

// defaultState returns the initial canvas state.
func defaultState() drawState {
	return drawState{
		fillStyle:    Black,
		strokeStyle:  Black,
		globalAlpha:  1,
		composite:    CompositeSourceOver,
		shadow:       Shadow{Color: Transparent},
		transform:    Identity(),
		font:         DefaultFont,
		lineWidth:    1,
		lineCap:      LineCapButt,
		lineJoin:     LineJoinMiter,
		miterLimit:   10,
		textAlign:    TextAlignStart,
		textBaseline: TextBaselineAlphabetic,
	}
}

// fillPaint returns the paint for a fill operation.
func (s *drawState) fillPaint() *Paint {
	p := s.paint()
	p.Color = s.fillStyle
	return p
}

// strokePaint returns the paint for a stroke operation.
func (s *drawState) strokePaint() *Paint {
	p := s.paint()
	p.Color = s.strokeStyle
	return p
}

func (s *drawState) paint() *Paint {
	return &Paint{
		GlobalAlpha: s.globalAlpha,
		Composite:   s.composite,
		Shadow:      s.shadow,
		Transform:   s.transform,
		LineWidth:   s.lineWidth,
		LineCap:     s.lineCap,
		LineJoin:    s.lineJoin,
		MiterLimit:  s.miterLimit,
		Font:        s.font,
		FillRule:    FillRuleNonZero,
	}
}
