package canvas2d

import "strings"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "unknown"
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

var lineJoinNames = [...]string{"miter", "round", "bevel"}

func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return "unknown"
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// ParseFillRule parses "nonzero" or "evenodd".
func ParseFillRule(s string) (FillRule, bool) {
	switch strings.TrimSpace(s) {
	case "nonzero":
		return FillRuleNonZero, true
	case "evenodd":
		return FillRuleEvenOdd, true
	}
	return FillRuleNonZero, false
}

// CompositeOperation is a globalCompositeOperation value.
type CompositeOperation string

const (
	CompositeSourceOver      CompositeOperation = "source-over"
	CompositeSourceIn        CompositeOperation = "source-in"
	CompositeSourceOut       CompositeOperation = "source-out"
	CompositeSourceAtop      CompositeOperation = "source-atop"
	CompositeDestinationOver CompositeOperation = "destination-over"
	CompositeDestinationIn   CompositeOperation = "destination-in"
	CompositeDestinationOut  CompositeOperation = "destination-out"
	CompositeDestinationAtop CompositeOperation = "destination-atop"
	CompositeLighter         CompositeOperation = "lighter"
	CompositeCopy            CompositeOperation = "copy"
	CompositeXor             CompositeOperation = "xor"

	// CompositeClear sets covered pixels to transparent black. It is not a
	// settable canvas value; ClearRect uses it.
	CompositeClear CompositeOperation = "clear"
)

var settableComposites = map[CompositeOperation]bool{
	CompositeSourceOver:      true,
	CompositeSourceIn:        true,
	CompositeSourceOut:       true,
	CompositeSourceAtop:      true,
	CompositeDestinationOver: true,
	CompositeDestinationIn:   true,
	CompositeDestinationOut:  true,
	CompositeDestinationAtop: true,
	CompositeLighter:         true,
	CompositeCopy:            true,
	CompositeXor:             true,
}

// ParseCompositeOperation returns the operation named s and whether the
// name is a valid globalCompositeOperation.
func ParseCompositeOperation(s string) (CompositeOperation, bool) {
	op := CompositeOperation(strings.TrimSpace(s))
	return op, settableComposites[op]
}

// TextAlign is the horizontal alignment of text relative to its origin.
type TextAlign string

const (
	TextAlignStart  TextAlign = "start"
	TextAlignEnd    TextAlign = "end"
	TextAlignLeft   TextAlign = "left"
	TextAlignRight  TextAlign = "right"
	TextAlignCenter TextAlign = "center"
)

func (a TextAlign) valid() bool {
	switch a {
	case TextAlignStart, TextAlignEnd, TextAlignLeft, TextAlignRight, TextAlignCenter:
		return true
	}
	return false
}

// TextBaseline is the vertical anchor of text relative to its origin.
type TextBaseline string

const (
	TextBaselineAlphabetic  TextBaseline = "alphabetic"
	TextBaselineTop         TextBaseline = "top"
	TextBaselineHanging     TextBaseline = "hanging"
	TextBaselineMiddle      TextBaseline = "middle"
	TextBaselineIdeographic TextBaseline = "ideographic"
	TextBaselineBottom      TextBaseline = "bottom"
)

func (b TextBaseline) valid() bool {
	switch b {
	case TextBaselineAlphabetic, TextBaselineTop, TextBaselineHanging,
		TextBaselineMiddle, TextBaselineIdeographic, TextBaselineBottom:
		return true
	}
	return false
}

// Shadow describes the drop shadow applied to a drawing operation.
type Shadow struct {
	Blur    float64
	Color   RGBA
	OffsetX float64
	OffsetY float64
}

// Visible reports whether the shadow would paint anything.
func (s Shadow) Visible() bool {
	return s.Color.A > 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// Paint is the complete style of one backend call. Paths handed to the
// backend are already in device space; Transform is the user-to-device
// transform in effect; it applies to text origins and glyphs and scales
// LineWidth. Shadow offsets and blur are in device space.
type Paint struct {
	// Color is the fill or stroke color, before GlobalAlpha.
	Color RGBA

	GlobalAlpha float64
	Composite   CompositeOperation
	Shadow      Shadow
	Transform   Matrix

	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64

	Font     Font
	FillRule FillRule
}

// NewPaint creates a Paint with the canvas defaults.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		GlobalAlpha: 1,
		Composite:   CompositeSourceOver,
		Shadow:      Shadow{Color: Transparent},
		Transform:   Identity(),
		LineWidth:   1,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		MiterLimit:  10,
		Font:        DefaultFont,
		FillRule:    FillRuleNonZero,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}

// EffectiveColor returns Color with GlobalAlpha applied.
func (p *Paint) EffectiveColor() RGBA {
	return p.Color.WithAlpha(p.GlobalAlpha)
}

// DeviceLineWidth returns the stroke width in device space.
func (p *Paint) DeviceLineWidth() float64 {
	return p.LineWidth * p.Transform.ScaleFactor()
}
