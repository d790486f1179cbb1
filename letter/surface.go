package letter

// The engine consumes a drawing backend and a text-metrics provider through
// the interfaces below. Coordinates handed to a Surface are points with y
// growing downward from the top edge of the page; the y passed to DrawText
// is the text baseline. Backends convert to their native coordinate
// convention internally, so swapping surfaces changes no layout math.

// Surface is the minimal drawing backend required by the renderer. A Surface
// instance belongs to a single render call; it is not safe for concurrent
// use.
type Surface interface {
	// DrawText draws a single line of text with its baseline at (x, y).
	DrawText(x, y float64, text string, font Font, size float64, col Color)
	// DrawLine strokes a line segment of the given width in points.
	DrawLine(x1, y1, x2, y2 float64, col Color, width float64, dashed bool)
	// NewPage finishes the current page and starts the next one.
	NewPage()
	// Finish finalizes the document and returns its bytes. The surface must
	// not be used afterwards.
	Finish() ([]byte, error)
}

// Measurer reports the rendered width of a string in points. The simulator
// and the renderer must share one Measurer or their page counts diverge.
type Measurer interface {
	TextWidth(text string, font Font, size float64) float64
}

// MetaSurface is implemented by surfaces that can record document metadata.
type MetaSurface interface {
	SetMeta(title, author, subject string)
}
