package recording

import (
	"fmt"

	"github.com/gogpu/canvas2d"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Push drawing state
	CmdRestore                    // Pop drawing state
	CmdReset                      // Restore defaults, clear stack and path

	// Style commands
	CmdSetFillStyle
	CmdSetStrokeStyle
	CmdSetGlobalAlpha
	CmdSetCompositeOperation
	CmdSetShadowBlur
	CmdSetShadowColor
	CmdSetShadowOffset
	CmdSetFont
	CmdSetLineWidth
	CmdSetLineCap
	CmdSetLineJoin
	CmdSetMiterLimit
	CmdSetTextAlign
	CmdSetTextBaseline

	// Transform commands
	CmdTranslate
	CmdScale
	CmdRotate
	CmdTransform
	CmdSetTransform
	CmdResetTransform

	// Path commands
	CmdBeginPath
	CmdMoveTo
	CmdLineTo
	CmdQuadraticCurveTo
	CmdBezierCurveTo
	CmdArcTo
	CmdArc
	CmdEllipse
	CmdRect
	CmdClosePath

	// Drawing commands
	CmdFillRect
	CmdStrokeRect
	CmdClearRect
	CmdFill
	CmdStroke
	CmdFillPath
	CmdStrokePath
	CmdFillText
	CmdStrokeText

	// CmdFunc runs caller code against the context.
	CmdFunc
)

var commandTypeNames = [...]string{
	CmdSave:                  "save",
	CmdRestore:               "restore",
	CmdReset:                 "reset",
	CmdSetFillStyle:          "fillStyle",
	CmdSetStrokeStyle:        "strokeStyle",
	CmdSetGlobalAlpha:        "globalAlpha",
	CmdSetCompositeOperation: "globalCompositeOperation",
	CmdSetShadowBlur:         "shadowBlur",
	CmdSetShadowColor:        "shadowColor",
	CmdSetShadowOffset:       "shadowOffset",
	CmdSetFont:               "font",
	CmdSetLineWidth:          "lineWidth",
	CmdSetLineCap:            "lineCap",
	CmdSetLineJoin:           "lineJoin",
	CmdSetMiterLimit:         "miterLimit",
	CmdSetTextAlign:          "textAlign",
	CmdSetTextBaseline:       "textBaseline",
	CmdTranslate:             "translate",
	CmdScale:                 "scale",
	CmdRotate:                "rotate",
	CmdTransform:             "transform",
	CmdSetTransform:          "setTransform",
	CmdResetTransform:        "resetTransform",
	CmdBeginPath:             "beginPath",
	CmdMoveTo:                "moveTo",
	CmdLineTo:                "lineTo",
	CmdQuadraticCurveTo:      "quadraticCurveTo",
	CmdBezierCurveTo:         "bezierCurveTo",
	CmdArcTo:                 "arcTo",
	CmdArc:                   "arc",
	CmdEllipse:               "ellipse",
	CmdRect:                  "rect",
	CmdClosePath:             "closePath",
	CmdFillRect:              "fillRect",
	CmdStrokeRect:            "strokeRect",
	CmdClearRect:             "clearRect",
	CmdFill:                  "fill",
	CmdStroke:                "stroke",
	CmdFillPath:              "fillPath",
	CmdStrokePath:            "strokePath",
	CmdFillText:              "fillText",
	CmdStrokeText:            "strokeText",
	CmdFunc:                  "func",
}

// String returns the Canvas name of the operation.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return fmt.Sprintf("CommandType(%d)", c)
}

// Command is implemented by every drawing command.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// Save pushes the drawing state.
type Save struct{}

// Type implements Command.
func (Save) Type() CommandType { return CmdSave }

// Restore pops the drawing state.
type Restore struct{}

// Type implements Command.
func (Restore) Type() CommandType { return CmdRestore }

// Reset restores the context defaults.
type Reset struct{}

// Type implements Command.
func (Reset) Type() CommandType { return CmdReset }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFillStyle sets the fill color from a CSS color.
type SetFillStyle struct{ Style string }

// Type implements Command.
func (SetFillStyle) Type() CommandType { return CmdSetFillStyle }

// SetStrokeStyle sets the stroke color from a CSS color.
type SetStrokeStyle struct{ Style string }

// Type implements Command.
func (SetStrokeStyle) Type() CommandType { return CmdSetStrokeStyle }

// SetGlobalAlpha sets the global alpha.
type SetGlobalAlpha struct{ Alpha float64 }

// Type implements Command.
func (SetGlobalAlpha) Type() CommandType { return CmdSetGlobalAlpha }

// SetCompositeOperation sets globalCompositeOperation.
type SetCompositeOperation struct{ Op string }

// Type implements Command.
func (SetCompositeOperation) Type() CommandType { return CmdSetCompositeOperation }

// SetShadowBlur sets the shadow blur level.
type SetShadowBlur struct{ Blur float64 }

// Type implements Command.
func (SetShadowBlur) Type() CommandType { return CmdSetShadowBlur }

// SetShadowColor sets the shadow color from a CSS color.
type SetShadowColor struct{ Color string }

// Type implements Command.
func (SetShadowColor) Type() CommandType { return CmdSetShadowColor }

// SetShadowOffset sets both shadow offsets.
type SetShadowOffset struct{ X, Y float64 }

// Type implements Command.
func (SetShadowOffset) Type() CommandType { return CmdSetShadowOffset }

// SetFont sets the font from a CSS font shorthand.
type SetFont struct{ Font string }

// Type implements Command.
func (SetFont) Type() CommandType { return CmdSetFont }

// SetLineWidth sets the stroke width.
type SetLineWidth struct{ Width float64 }

// Type implements Command.
func (SetLineWidth) Type() CommandType { return CmdSetLineWidth }

// SetLineCap sets the line cap by name.
type SetLineCap struct{ Cap string }

// Type implements Command.
func (SetLineCap) Type() CommandType { return CmdSetLineCap }

// SetLineJoin sets the line join by name.
type SetLineJoin struct{ Join string }

// Type implements Command.
func (SetLineJoin) Type() CommandType { return CmdSetLineJoin }

// SetMiterLimit sets the miter limit.
type SetMiterLimit struct{ Limit float64 }

// Type implements Command.
func (SetMiterLimit) Type() CommandType { return CmdSetMiterLimit }

// SetTextAlign sets the text alignment.
type SetTextAlign struct{ Align string }

// Type implements Command.
func (SetTextAlign) Type() CommandType { return CmdSetTextAlign }

// SetTextBaseline sets the text baseline.
type SetTextBaseline struct{ Baseline string }

// Type implements Command.
func (SetTextBaseline) Type() CommandType { return CmdSetTextBaseline }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// Translate moves the origin.
type Translate struct{ X, Y float64 }

// Type implements Command.
func (Translate) Type() CommandType { return CmdTranslate }

// Scale scales user space.
type Scale struct{ X, Y float64 }

// Type implements Command.
func (Scale) Type() CommandType { return CmdScale }

// Rotate rotates user space by Angle radians.
type Rotate struct{ Angle float64 }

// Type implements Command.
func (Rotate) Type() CommandType { return CmdRotate }

// Transform multiplies the current transform by Matrix.
type Transform struct{ Matrix canvas2d.Matrix }

// Type implements Command.
func (Transform) Type() CommandType { return CmdTransform }

// SetTransform replaces the current transform.
type SetTransform struct{ Matrix canvas2d.Matrix }

// Type implements Command.
func (SetTransform) Type() CommandType { return CmdSetTransform }

// ResetTransform sets the transform to identity.
type ResetTransform struct{}

// Type implements Command.
func (ResetTransform) Type() CommandType { return CmdResetTransform }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPath clears the current path.
type BeginPath struct{}

// Type implements Command.
func (BeginPath) Type() CommandType { return CmdBeginPath }

// MoveTo starts a sub-path.
type MoveTo struct{ X, Y float64 }

// Type implements Command.
func (MoveTo) Type() CommandType { return CmdMoveTo }

// LineTo adds a line.
type LineTo struct{ X, Y float64 }

// Type implements Command.
func (LineTo) Type() CommandType { return CmdLineTo }

// QuadraticCurveTo adds a quadratic curve.
type QuadraticCurveTo struct{ CPX, CPY, X, Y float64 }

// Type implements Command.
func (QuadraticCurveTo) Type() CommandType { return CmdQuadraticCurveTo }

// BezierCurveTo adds a cubic curve.
type BezierCurveTo struct{ CP1X, CP1Y, CP2X, CP2Y, X, Y float64 }

// Type implements Command.
func (BezierCurveTo) Type() CommandType { return CmdBezierCurveTo }

// ArcTo adds a tangent arc.
type ArcTo struct{ X1, Y1, X2, Y2, Radius float64 }

// Type implements Command.
func (ArcTo) Type() CommandType { return CmdArcTo }

// Arc adds a circular arc. Angles are in radians.
type Arc struct {
	X, Y, Radius         float64
	StartAngle, EndAngle float64
	CounterClockwise     bool
}

// Type implements Command.
func (Arc) Type() CommandType { return CmdArc }

// Ellipse adds an elliptical arc. Angles are in radians.
type Ellipse struct {
	X, Y                 float64
	RadiusX, RadiusY     float64
	Rotation             float64
	StartAngle, EndAngle float64
	CounterClockwise     bool
}

// Type implements Command.
func (Ellipse) Type() CommandType { return CmdEllipse }

// Rect adds a closed rectangle sub-path.
type Rect struct{ X, Y, W, H float64 }

// Type implements Command.
func (Rect) Type() CommandType { return CmdRect }

// ClosePath closes the current sub-path.
type ClosePath struct{}

// Type implements Command.
func (ClosePath) Type() CommandType { return CmdClosePath }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRect fills a rectangle.
type FillRect struct{ X, Y, W, H float64 }

// Type implements Command.
func (FillRect) Type() CommandType { return CmdFillRect }

// StrokeRect strokes a rectangle.
type StrokeRect struct{ X, Y, W, H float64 }

// Type implements Command.
func (StrokeRect) Type() CommandType { return CmdStrokeRect }

// ClearRect clears a rectangle to transparent black.
type ClearRect struct{ X, Y, W, H float64 }

// Type implements Command.
func (ClearRect) Type() CommandType { return CmdClearRect }

// Fill fills the current path.
type Fill struct{ Rule canvas2d.FillRule }

// Type implements Command.
func (Fill) Type() CommandType { return CmdFill }

// Stroke strokes the current path.
type Stroke struct{}

// Type implements Command.
func (Stroke) Type() CommandType { return CmdStroke }

// FillPath fills a standalone path given in user space.
type FillPath struct {
	Path *canvas2d.Path2D
	Rule canvas2d.FillRule
}

// Type implements Command.
func (FillPath) Type() CommandType { return CmdFillPath }

// StrokePath strokes a standalone path given in user space.
type StrokePath struct{ Path *canvas2d.Path2D }

// Type implements Command.
func (StrokePath) Type() CommandType { return CmdStrokePath }

// FillText draws filled text.
type FillText struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (FillText) Type() CommandType { return CmdFillText }

// StrokeText draws outlined text.
type StrokeText struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (StrokeText) Type() CommandType { return CmdStrokeText }

// Func runs arbitrary code against the context being replayed. The
// context is passed in, never captured, so a Func stays valid across
// context rebinding.
type Func func(ctx *canvas2d.Context) error

// Type implements Command.
func (Func) Type() CommandType { return CmdFunc }
