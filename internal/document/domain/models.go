// Package domain contains the transient document model reconstructed from
// each render request. Nothing here is persisted: the editor keeps its own
// copy in browser storage, and every render rebuilds the record from scratch.
package domain

// LineItem is one billable row. Quantity and rate stay as the raw text the
// user typed; the renderer re-parses them leniently so a half-typed number
// never breaks a render.
type LineItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Qty   string `json:"qty"`
	Rate  string `json:"rate"`
}

// LogoKind identifies the embedded image codec.
type LogoKind string

const (
	LogoPNG  LogoKind = "png"
	LogoJPEG LogoKind = "jpg"
)

// Logo is a decoded inline logo image with known pixel dimensions.
type Logo struct {
	Kind   LogoKind
	Data   []byte
	Width  int
	Height int
}

// DocumentRecord is the fully resolved document: every default has already
// been applied, so drawing code never needs to re-derive fallbacks.
type DocumentRecord struct {
	ID string

	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string
	Logo           *Logo

	CustomerName string
	ProjectTitle string

	Items   []LineItem
	TaxRate float64

	Notes       string
	Terms       string
	PaymentInfo string
}

// Totals are derived values, never stored.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// RenderRequest carries the raw query parameters of one render. Every field
// may be empty; resolution to a DocumentRecord applies the documented
// defaults exactly once.
type RenderRequest struct {
	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string
	LogoDataURL    string

	CustomerName string
	ProjectTitle string

	ItemsJSON string
	TaxRate   string

	Notes       string
	Terms       string
	PaymentInfo string
}

// RenderResponse is the finished artifact.
type RenderResponse struct {
	Filename string
	Pages    int
	PDF      []byte
}
