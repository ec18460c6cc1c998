package layout

import (
	"strconv"
	"strings"

	"github.com/smallbiznis/quickdocs/internal/document/format"
)

// Page geometry (US Letter, points) and the layout constants the editor
// preview was tuned against. Changing any of these changes where pages break.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 50.0

	topBodyY    = PageHeight - 155 // first baseline under the header band
	bottomSafeY = 110.0            // nothing may cross below this line
	footerY     = 60.0

	headerBandHeight = 120.0
	logoBoxSize      = 48.0

	rowHeight       = 22.0
	totalsBoxHeight = 86.0

	colQtyOffset  = 320.0
	colRateOffset = 385.0
	colAmtOffset  = 470.0

	// TitleMaxRunes hard-truncates item titles so they fit the fixed
	// description column. No ellipsis, no wrapping.
	TitleMaxRunes = 60

	// WrapBudget is the per-line character budget for free-text blocks.
	WrapBudget = 95

	NotesMaxLines   = 6
	TermsMaxLines   = 8
	PaymentMaxLines = 8
)

var (
	headerTint  = RGB{R: 0.96, G: 0.97, B: 0.98}
	panelTint   = RGB{R: 0.98, G: 0.98, B: 0.99}
	panelBorder = gray(0.88)
	rowRule     = gray(0.92)
	dividerRule = gray(0.90)
)

func gray(v float64) RGB { return RGB{R: v, G: v, B: v} }

// Item is one table row with its derived amount.
type Item struct {
	Title  string
	Qty    string // raw text; printed as-is, dash when empty
	Rate   float64
	Amount float64
}

// LogoInfo carries the logo's pixel dimensions; the image bytes stay with
// the backend that registered them.
type LogoInfo struct {
	Width  int
	Height int
}

// Input is a fully resolved document plus its derived totals.
type Input struct {
	DocID string
	Brand string // right-hand footer text

	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string
	Logo           *LogoInfo

	ProjectTitle string
	CustomerName string

	Items   []Item
	TaxRate float64

	Subtotal float64
	Tax      float64
	Total    float64

	Notes       string
	Terms       string
	PaymentInfo string
}

// Build lays out the whole document. The vertical cursor is threaded through
// each drawing step; every step returns the cursor position that the next
// one starts from.
func Build(in Input, m Measurer) Document {
	b := &builder{in: in, m: m}

	y := b.startPage()
	y = b.drawSectionLabel("Line Items", y)
	y = b.drawTableHeader(y)

	for _, it := range in.Items {
		// The reserve below keeps room for the totals box so a row
		// never strands the summary against the footer.
		if y-rowHeight < bottomSafeY+120 {
			y = b.breakToTablePage()
		}
		y = b.drawRow(it, y)
	}

	if y-b.summaryHeight() < bottomSafeY {
		y = b.breakToSummaryPage("")
	} else {
		b.push(Line{X1: Margin, Y1: y - 8, X2: PageWidth - Margin, Y2: y - 8, Width: 1, Color: dividerRule})
		y -= 26
	}

	y = b.drawTotalsBox(y)

	y = b.drawTextBlock("Notes", in.Notes, NotesMaxLines, y)
	y = b.drawTextBlock("Terms", in.Terms, TermsMaxLines, y)
	y = b.drawTextBlock("Payment", in.PaymentInfo, PaymentMaxLines, y)

	b.drawFooter()
	b.flushPage()

	return Document{Pages: b.pages}
}

type builder struct {
	in    Input
	m     Measurer
	pages []Page
	ops   []Op
}

func (b *builder) push(ops ...Op) {
	b.ops = append(b.ops, ops...)
}

func (b *builder) flushPage() {
	b.pages = append(b.pages, Page{Ops: b.ops})
	b.ops = nil
}

// startPage opens a fresh page with the header band and returns the first
// body baseline.
func (b *builder) startPage() float64 {
	in := b.in

	b.push(Rect{X: 0, Y: PageHeight - headerBandHeight, W: PageWidth, H: headerBandHeight, Fill: headerTint})

	leftX := Margin
	if in.Logo != nil {
		scale := logoBoxSize / float64(in.Logo.Width)
		if alt := logoBoxSize / float64(in.Logo.Height); alt < scale {
			scale = alt
		}
		w := float64(in.Logo.Width) * scale
		h := float64(in.Logo.Height) * scale
		b.push(Image{X: Margin, Y: PageHeight - 78 - h/2, W: w, H: h})
		leftX = Margin + 62
	}

	b.push(Text{X: leftX, Y: PageHeight - 56, Size: 16, Style: Bold, Color: gray(0.05), Value: in.CompanyName})

	contact := joinNonEmpty(" • ", in.CompanyEmail, in.CompanyPhone)
	if contact != "" {
		b.push(Text{X: leftX, Y: PageHeight - 74, Size: 10, Color: gray(0.45), Value: contact})
	}
	if in.CompanyAddress != "" {
		b.push(Text{X: leftX, Y: PageHeight - 88, Size: 10, Color: gray(0.45), Value: in.CompanyAddress})
	}

	b.pushRight(in.ProjectTitle, PageWidth-Margin, PageHeight-58, Bold, 18, gray(0.05))
	prepared := "Prepared for: " + format.OrDash(in.CustomerName)
	b.pushRight(prepared, PageWidth-Margin, PageHeight-78, Regular, 10, gray(0.45))

	return topBodyY
}

func (b *builder) drawSectionLabel(label string, y float64) float64 {
	b.push(Text{X: Margin, Y: y, Size: 12, Style: Bold, Color: gray(0.1), Value: label})
	return y - 14
}

func (b *builder) drawTableHeader(y float64) float64 {
	border := panelBorder
	b.push(Rect{X: Margin, Y: y - 18, W: PageWidth - Margin*2, H: 24, Fill: panelTint, Border: &border, BorderWidth: 1})

	labelY := y - 12
	b.push(
		Text{X: Margin + 10, Y: labelY, Size: 10, Style: Bold, Color: gray(0.35), Value: "Description"},
		Text{X: Margin + colQtyOffset, Y: labelY, Size: 10, Style: Bold, Color: gray(0.35), Value: "Qty"},
		Text{X: Margin + colRateOffset, Y: labelY, Size: 10, Style: Bold, Color: gray(0.35), Value: "Rate"},
		Text{X: Margin + colAmtOffset, Y: labelY, Size: 10, Style: Bold, Color: gray(0.35), Value: "Amount"},
	)

	return y - 30
}

func (b *builder) drawRow(it Item, y float64) float64 {
	b.push(Line{X1: Margin, Y1: y - 6, X2: PageWidth - Margin, Y2: y - 6, Width: 1, Color: rowRule})

	desc := format.Truncate(format.OrDash(it.Title), TitleMaxRunes)
	b.push(
		Text{X: Margin + 10, Y: y, Size: 10.5, Color: gray(0.15), Value: desc},
		Text{X: Margin + colQtyOffset, Y: y, Size: 10.5, Color: gray(0.2), Value: format.OrDash(it.Qty)},
		Text{X: Margin + colRateOffset, Y: y, Size: 10.5, Color: gray(0.2), Value: "$" + format.Money(it.Rate)},
	)
	b.pushRight("$"+format.Money(it.Amount), PageWidth-Margin-10, y, Regular, 10.5, gray(0.15))

	return y - rowHeight
}

// breakToTablePage closes the current page and opens the next one with the
// continuation label and a repeated column header.
func (b *builder) breakToTablePage() float64 {
	b.drawFooter()
	b.flushPage()

	y := b.startPage()
	y = b.drawSectionLabel("Line Items (cont.)", y)
	return b.drawTableHeader(y)
}

// breakToSummaryPage closes the current page and opens a summary-only page:
// header, optional label, no table header.
func (b *builder) breakToSummaryPage(label string) float64 {
	b.drawFooter()
	b.flushPage()

	y := b.startPage()
	if label != "" {
		b.push(Text{X: Margin, Y: y, Size: 12, Style: Bold, Color: gray(0.1), Value: label})
		y -= 18
	}
	return y
}

// summaryHeight is the worst-case vertical space the totals box and the
// remaining text blocks may need, including the footer buffer.
func (b *builder) summaryHeight() float64 {
	needed := totalsBoxHeight + 12
	needed += blockEstimate(b.in.Notes, 4)
	needed += blockEstimate(b.in.Terms, 5)
	needed += blockEstimate(b.in.PaymentInfo, 5)
	return needed + 60
}

func blockEstimate(text string, maxLines int) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	lines := len(format.WrapText(text, WrapBudget))
	if lines > maxLines {
		lines = maxLines
	}
	return 11 + 14 + 12*float64(lines) + 10
}

func (b *builder) drawTotalsBox(y float64) float64 {
	in := b.in

	// Clamp so the box never sinks into the footer reservation.
	totalsY := y - totalsBoxHeight + 12
	if totalsY < bottomSafeY+120 {
		totalsY = bottomSafeY + 120
	}

	border := panelBorder
	b.push(Rect{X: Margin, Y: totalsY, W: PageWidth - Margin*2, H: totalsBoxHeight, Fill: panelTint, Border: &border, BorderWidth: 1})

	left := Margin + 16.0
	right := PageWidth - Margin - 16.0

	b.push(
		Text{X: left, Y: totalsY + 58, Size: 10, Color: gray(0.4), Value: "Subtotal"},
		Text{X: left, Y: totalsY + 38, Size: 10, Color: gray(0.4), Value: "Tax"},
		Text{X: left, Y: totalsY + 14, Size: 11, Style: Bold, Color: gray(0.2), Value: "Total"},
	)

	taxValue := "$" + format.Money(in.Tax) + " (" + strconv.FormatFloat(in.TaxRate, 'f', 2, 64) + "%)"
	b.pushRight("$"+format.Money(in.Subtotal), right, totalsY+58, Regular, 10, gray(0.15))
	b.pushRight(taxValue, right, totalsY+38, Regular, 10, gray(0.15))
	b.pushRight("$"+format.Money(in.Total), right, totalsY+12, Bold, 14, gray(0.05))

	return totalsY - 18
}

// drawTextBlock renders one titled free-text block, word-wrapped and capped
// at maxLines. Overflow lines are dropped, not elided. A block that does not
// fit whole moves to a fresh summary page.
func (b *builder) drawTextBlock(title, text string, maxLines int, y float64) float64 {
	if strings.TrimSpace(text) == "" {
		return y
	}

	lines := format.WrapText(text, WrapBudget)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	needed := 14 + 12*float64(len(lines)) + 10
	if y-needed < bottomSafeY {
		y = b.breakToSummaryPage("Summary (cont.)")
	}

	b.push(Text{X: Margin, Y: y, Size: 11, Style: Bold, Color: gray(0.2), Value: title})
	y -= 14

	for _, line := range lines {
		b.push(Text{X: Margin, Y: y, Size: 9.5, Color: gray(0.25), Value: line})
		y -= 12
	}
	return y - 10
}

func (b *builder) drawFooter() {
	b.push(Text{X: Margin, Y: footerY, Size: 8.5, Color: gray(0.5), Value: "Document ID: " + b.in.DocID})
	b.pushRight(b.in.Brand, PageWidth-Margin, footerY, Regular, 8.5, gray(0.5))
}

// pushRight draws value with its right edge at x.
func (b *builder) pushRight(value string, x, y float64, style Style, size float64, color RGB) {
	b.push(Text{
		X:     x - b.m.TextWidth(value, style, size),
		Y:     y,
		Size:  size,
		Style: style,
		Color: color,
		Value: value,
	})
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
