package canvas2d

// ContextOption configures the initial state of a Context.
// Invalid values are ignored, the same way the corresponding setters
// ignore them.
//
// Example:
//
//	ctx := canvas2d.NewContext(backend, 400, 400,
//	    canvas2d.WithFillStyle("#333"),
//	    canvas2d.WithFont("16px Go"),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds the defaults a Context starts from and returns to
// on Reset.
type contextOptions struct {
	state drawState
}

func defaultOptions() contextOptions {
	return contextOptions{state: defaultState()}
}

// WithFillStyle sets the initial fill color.
func WithFillStyle(color string) ContextOption {
	return func(o *contextOptions) {
		if c, err := ParseColor(color); err == nil {
			o.state.fillStyle = c
		}
	}
}

// WithStrokeStyle sets the initial stroke color.
func WithStrokeStyle(color string) ContextOption {
	return func(o *contextOptions) {
		if c, err := ParseColor(color); err == nil {
			o.state.strokeStyle = c
		}
	}
}

// WithFont sets the initial font from a CSS font shorthand.
func WithFont(font string) ContextOption {
	return func(o *contextOptions) {
		if f, err := ParseFont(font); err == nil {
			o.state.font = f
		}
	}
}

// WithCompositeOperation sets the initial globalCompositeOperation.
func WithCompositeOperation(op CompositeOperation) ContextOption {
	return func(o *contextOptions) {
		if settableComposites[op] {
			o.state.composite = op
		}
	}
}
