package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charMeasurer approximates Helvetica metrics well enough for layout
// decisions in tests.
type charMeasurer struct{}

func (charMeasurer) TextWidth(value string, _ Style, size float64) float64 {
	return 0.5 * size * float64(len([]rune(value)))
}

func baseInput() Input {
	return Input{
		DocID:        "doc_ab12cd34",
		Brand:        "Generated with QuickDocs",
		CompanyName:  "Acme Studio",
		ProjectTitle: "Estimate",
		CustomerName: "Jane Doe",
		Items: []Item{
			{Title: "Design", Qty: "2", Rate: 50, Amount: 100},
		},
		TaxRate:  10,
		Subtotal: 100,
		Tax:      10,
		Total:    110,
	}
}

func pageTexts(p Page) []string {
	var out []string
	for _, op := range p.Ops {
		if t, ok := op.(Text); ok {
			out = append(out, t.Value)
		}
	}
	return out
}

func containsText(p Page, value string) bool {
	for _, v := range pageTexts(p) {
		if v == value {
			return true
		}
	}
	return false
}

func TestBuildSinglePage(t *testing.T) {
	doc := Build(baseInput(), charMeasurer{})
	require.Len(t, doc.Pages, 1)

	p := doc.Pages[0]
	assert.True(t, containsText(p, "Acme Studio"))
	assert.True(t, containsText(p, "Estimate"))
	assert.True(t, containsText(p, "Prepared for: Jane Doe"))
	assert.True(t, containsText(p, "Line Items"))
	assert.True(t, containsText(p, "Description"))
	assert.True(t, containsText(p, "Design"))
	assert.True(t, containsText(p, "Document ID: doc_ab12cd34"))
	assert.True(t, containsText(p, "Generated with QuickDocs"))
}

func TestBuildTotalsValues(t *testing.T) {
	doc := Build(baseInput(), charMeasurer{})
	p := doc.Pages[0]

	assert.True(t, containsText(p, "$100.00"))
	assert.True(t, containsText(p, "$10.00 (10.00%)"))
	assert.True(t, containsText(p, "$110.00"))
}

func TestBuildContactLineOmittedWhenEmpty(t *testing.T) {
	in := baseInput()
	doc := Build(in, charMeasurer{})
	for _, v := range pageTexts(doc.Pages[0]) {
		assert.NotContains(t, v, "•")
	}

	in.CompanyEmail = "hi@acme.test"
	in.CompanyPhone = "555-0100"
	doc = Build(in, charMeasurer{})
	assert.True(t, containsText(doc.Pages[0], "hi@acme.test • 555-0100"))
}

func TestBuildTitleTruncation(t *testing.T) {
	in := baseInput()
	long := strings.Repeat("x", 80)
	in.Items = []Item{{Title: long, Qty: "1", Rate: 1, Amount: 1}}

	doc := Build(in, charMeasurer{})
	assert.True(t, containsText(doc.Pages[0], strings.Repeat("x", 60)))
	assert.False(t, containsText(doc.Pages[0], long))
}

func TestBuildManyItemsPaginates(t *testing.T) {
	in := baseInput()
	in.Items = nil
	for i := 0; i < 40; i++ {
		in.Items = append(in.Items, Item{Title: "Work", Qty: "1", Rate: 10, Amount: 10})
	}

	doc := Build(in, charMeasurer{})
	require.GreaterOrEqual(t, len(doc.Pages), 2)

	// Continuation pages repeat the column header under their own label.
	second := doc.Pages[1]
	assert.True(t, containsText(second, "Line Items (cont.)"))
	assert.True(t, containsText(second, "Description"))

	// Every page carries the footer.
	for _, p := range doc.Pages {
		assert.True(t, containsText(p, "Document ID: doc_ab12cd34"))
		assert.True(t, containsText(p, "Generated with QuickDocs"))
	}
}

func TestBuildNotesLineCap(t *testing.T) {
	in := baseInput()
	in.Notes = strings.TrimSpace(strings.Repeat("word ", 400))

	doc := Build(in, charMeasurer{})

	var notesLines int
	for _, p := range doc.Pages {
		for _, op := range p.Ops {
			txt, ok := op.(Text)
			if ok && txt.Size == 9.5 && strings.HasPrefix(txt.Value, "word") {
				notesLines++
			}
		}
	}
	assert.Equal(t, NotesMaxLines, notesLines)
}

func TestBuildBlockOverflowStartsSummaryPage(t *testing.T) {
	in := baseInput()
	in.Items = nil
	// 18 rows leave the summary just enough room for the totals box and
	// the first two blocks, so the last block must move to its own page.
	for i := 0; i < 18; i++ {
		in.Items = append(in.Items, Item{Title: "Work", Qty: "1", Rate: 10, Amount: 10})
	}
	in.Notes = strings.TrimSpace(strings.Repeat("nota ", 300))
	in.Terms = strings.TrimSpace(strings.Repeat("term ", 300))
	in.PaymentInfo = strings.TrimSpace(strings.Repeat("wire ", 300))

	doc := Build(in, charMeasurer{})
	require.GreaterOrEqual(t, len(doc.Pages), 2)

	var sawSummaryCont bool
	for _, p := range doc.Pages {
		if containsText(p, "Summary (cont.)") {
			sawSummaryCont = true
			// A summary page has no table header.
			assert.False(t, containsText(p, "Description"))
		}
	}
	assert.True(t, sawSummaryCont)
}

func TestBuildSummaryMovesToOwnPageWithoutTableHeader(t *testing.T) {
	in := baseInput()
	in.Items = nil
	// 29 rows leave too little room for the summary, which moves whole to
	// a page that repeats the header band but not the column header.
	for i := 0; i < 29; i++ {
		in.Items = append(in.Items, Item{Title: "Work", Qty: "1", Rate: 10, Amount: 10})
	}
	in.Notes = "net 30"

	doc := Build(in, charMeasurer{})
	require.Len(t, doc.Pages, 3)

	last := doc.Pages[2]
	assert.True(t, containsText(last, "Acme Studio"))
	assert.True(t, containsText(last, "Subtotal"))
	assert.False(t, containsText(last, "Description"))
	assert.False(t, containsText(last, "Line Items (cont.)"))
	assert.False(t, containsText(last, "Summary (cont.)"))
}

func TestBuildTotalsBoxNeverBelowReserve(t *testing.T) {
	for _, count := range []int{1, 10, 16, 17, 30} {
		in := baseInput()
		in.Items = nil
		for i := 0; i < count; i++ {
			in.Items = append(in.Items, Item{Title: "Work", Qty: "1", Rate: 10, Amount: 10})
		}

		doc := Build(in, charMeasurer{})
		last := doc.Pages[len(doc.Pages)-1]
		var found bool
		for _, op := range last.Ops {
			r, ok := op.(Rect)
			if ok && r.H == totalsBoxHeight {
				found = true
				assert.GreaterOrEqual(t, r.Y, bottomSafeY+120)
			}
		}
		assert.True(t, found, "totals box missing for %d items", count)
	}
}

func TestBuildRightAlignedAmounts(t *testing.T) {
	doc := Build(baseInput(), charMeasurer{})

	m := charMeasurer{}
	for _, op := range doc.Pages[0].Ops {
		t2, ok := op.(Text)
		if ok && t2.Value == "$110.00" {
			assert.InDelta(t, PageWidth-Margin-16-m.TextWidth("$110.00", Bold, 14), t2.X, 0.001)
			return
		}
	}
	t.Fatal("grand total text not found")
}
