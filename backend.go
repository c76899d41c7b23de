package canvas2d

// Backend is the vector rendering backend a Context draws through. It
// rasterizes, composites and shapes text; the Context only describes what
// to draw.
//
// Paths arrive in device space. Text origins arrive in user space and
// are mapped, together with the glyphs, by Paint.Transform.
type Backend interface {
	// FillPath fills path with paint.
	FillPath(path *Path, paint *Paint) error

	// StrokePath strokes path with paint.
	StrokePath(path *Path, paint *Paint) error

	// FillText draws text with its alphabetic baseline left end at (x, y).
	FillText(text string, x, y float64, paint *Paint) error

	// StrokeText outlines text with its alphabetic baseline left end at
	// (x, y).
	StrokeText(text string, x, y float64, paint *Paint) error

	// MeasureText reports the metrics of text set in font. The width
	// must match the advance FillText uses for the same font.
	MeasureText(text string, font Font) (TextMetrics, error)
}

// TextMetrics are the measurements of a run of text, in CSS pixels.
type TextMetrics struct {
	// Width is the advance width of the run.
	Width float64

	// ActualBoundingBoxAscent and ActualBoundingBoxDescent are the
	// distances from the alphabetic baseline to the top and bottom of
	// the inked glyphs.
	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64

	// FontBoundingBoxAscent and FontBoundingBoxDescent are the font's
	// ascent and descent, both measured as positive distances from the
	// alphabetic baseline.
	FontBoundingBoxAscent  float64
	FontBoundingBoxDescent float64
}
