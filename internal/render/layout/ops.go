// Package layout computes the full page layout of a rendered document as a
// list of drawing commands. It draws nothing itself: coordinates are PDF
// points with the origin at the page's bottom-left corner, and a backend
// replays the commands into an actual PDF. Keeping the pagination arithmetic
// here, behind a width-measuring interface, makes every page-break decision
// testable without a PDF library.
package layout

// Style selects between the two embedded font faces.
type Style int

const (
	Regular Style = iota
	Bold
)

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Op is a single drawing command.
type Op interface {
	op()
}

// Text draws value with its baseline at (X, Y).
type Text struct {
	X, Y  float64
	Size  float64
	Style Style
	Color RGB
	Value string
}

// Rect draws a filled rectangle anchored at its bottom-left corner,
// optionally stroked.
type Rect struct {
	X, Y, W, H  float64
	Fill        RGB
	Border      *RGB
	BorderWidth float64
}

// Line draws a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          RGB
}

// Image draws the document's registered logo, anchored at its bottom-left
// corner and scaled to W×H points.
type Image struct {
	X, Y, W, H float64
}

func (Text) op()  {}
func (Rect) op()  {}
func (Line) op()  {}
func (Image) op() {}

// Page is the ordered command list for one page.
type Page struct {
	Ops []Op
}

// Document is the finished layout.
type Document struct {
	Pages []Page
}

// Measurer reports rendered text widths in points. The PDF backend supplies
// real font metrics; tests supply a fake.
type Measurer interface {
	TextWidth(value string, style Style, size float64) float64
}
