// Package pdf renders layout draw commands into a PDF byte stream.
package pdf

import (
	"bytes"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/smallbiznis/quickdocs/internal/document/domain"
	"github.com/smallbiznis/quickdocs/internal/render/layout"
)

const fontFamily = "Helvetica"

// creationDate is pinned so identical requests produce byte-identical
// output.
var creationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer owns one gofpdf document. It doubles as the layout.Measurer so
// page breaks are decided against the same font metrics that draw the text.
type Renderer struct {
	doc *gofpdf.Fpdf
	tr  func(string) string

	hasLogo bool
}

// New prepares a renderer, registering the logo bytes when one is present.
func New(logo *domain.Logo) (*Renderer, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(creationDate)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	r := &Renderer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}

	if logo != nil {
		doc.RegisterImageOptionsReader("logo", imageOptions(logo), bytes.NewReader(logo.Data))
		if err := doc.Error(); err != nil {
			return nil, err
		}
		r.hasLogo = true
	}
	return r, nil
}

// CanEmbed reports whether gofpdf accepts the logo's encoding. It uses a
// scratch document so a rejected image cannot poison a real render.
func CanEmbed(logo *domain.Logo) bool {
	scratch := gofpdf.New("P", "pt", "Letter", "")
	scratch.RegisterImageOptionsReader("probe", imageOptions(logo), bytes.NewReader(logo.Data))
	return scratch.Error() == nil
}

func imageOptions(logo *domain.Logo) gofpdf.ImageOptions {
	kind := "PNG"
	if logo.Kind == domain.LogoJPEG {
		kind = "JPG"
	}
	return gofpdf.ImageOptions{ImageType: kind}
}

// TextWidth implements layout.Measurer.
func (r *Renderer) TextWidth(value string, style layout.Style, size float64) float64 {
	r.doc.SetFont(fontFamily, fontStyle(style), size)
	return r.doc.GetStringWidth(r.tr(value))
}

// Render replays the document's draw commands. Layout coordinates grow
// upward from the bottom-left corner; PDF pages here grow downward, so
// every Y is flipped against the page height.
func (r *Renderer) Render(doc layout.Document) ([]byte, error) {
	for _, page := range doc.Pages {
		r.doc.AddPage()
		for _, op := range page.Ops {
			r.draw(op)
		}
	}

	var buf bytes.Buffer
	if err := r.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) draw(op layout.Op) {
	switch v := op.(type) {
	case layout.Text:
		r.doc.SetFont(fontFamily, fontStyle(v.Style), v.Size)
		r.doc.SetTextColor(channel(v.Color.R), channel(v.Color.G), channel(v.Color.B))
		r.doc.Text(v.X, layout.PageHeight-v.Y, r.tr(v.Value))
	case layout.Rect:
		r.doc.SetFillColor(channel(v.Fill.R), channel(v.Fill.G), channel(v.Fill.B))
		style := "F"
		if v.Border != nil {
			r.doc.SetDrawColor(channel(v.Border.R), channel(v.Border.G), channel(v.Border.B))
			r.doc.SetLineWidth(v.BorderWidth)
			style = "FD"
		}
		r.doc.Rect(v.X, layout.PageHeight-v.Y-v.H, v.W, v.H, style)
	case layout.Line:
		r.doc.SetDrawColor(channel(v.Color.R), channel(v.Color.G), channel(v.Color.B))
		r.doc.SetLineWidth(v.Width)
		r.doc.Line(v.X1, layout.PageHeight-v.Y1, v.X2, layout.PageHeight-v.Y2)
	case layout.Image:
		if !r.hasLogo {
			return
		}
		r.doc.ImageOptions("logo", v.X, layout.PageHeight-v.Y-v.H, v.W, v.H, false, gofpdf.ImageOptions{}, 0, "")
	}
}

func fontStyle(s layout.Style) string {
	if s == layout.Bold {
		return "B"
	}
	return ""
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}
