package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/smallbiznis/quickdocs/internal/config"
	"github.com/smallbiznis/quickdocs/internal/document/domain"
	"github.com/smallbiznis/quickdocs/internal/document/format"
	obscontext "github.com/smallbiznis/quickdocs/internal/observability/context"
	"github.com/smallbiznis/quickdocs/internal/observability/logger"
	"github.com/smallbiznis/quickdocs/internal/observability/metrics"
	"github.com/smallbiznis/quickdocs/internal/render/layout"
	"github.com/smallbiznis/quickdocs/internal/render/pdf"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log      *zap.Logger
	Branding *config.BrandingHolder
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	branding *config.BrandingHolder
	metrics  *metrics.Metrics
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:      p.Log.Named("document.service"),
		branding: p.Branding,
		metrics:  p.Metrics,
	}
}

func (s *Service) RenderPDF(ctx context.Context, docID string, req domain.RenderRequest) (domain.RenderResponse, error) {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return domain.RenderResponse{}, domain.ErrInvalidDocumentID
	}
	ctx = obscontext.WithDocumentID(ctx, docID)

	start := time.Now()
	branding := s.branding.Get()
	record := s.resolveRecord(docID, req, branding)

	renderer, err := pdf.New(record.Logo)
	if err != nil {
		// The logo was pre-validated, so a registration failure here
		// means the PDF writer itself is in a bad state.
		s.observe(ctx, "error", 0, start)
		return domain.RenderResponse{}, fmt.Errorf("%w: preparing writer: %v", domain.ErrRenderFailed, err)
	}

	doc := layout.Build(s.layoutInput(record, branding), renderer)

	out, err := renderer.Render(doc)
	if err != nil {
		s.observe(ctx, "error", len(doc.Pages), start)
		return domain.RenderResponse{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	s.observe(ctx, "ok", len(doc.Pages), start)
	logger.WithContext(ctx, s.log).Info("document rendered",
		zap.Int("pages", len(doc.Pages)),
		zap.Int("bytes", len(out)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return domain.RenderResponse{
		Filename: docID + ".pdf",
		Pages:    len(doc.Pages),
		PDF:      out,
	}, nil
}

func (s *Service) observe(ctx context.Context, status string, pages int, start time.Time) {
	s.metrics.RecordRender(ctx, status, pages, time.Since(start))
}

// resolveRecord applies defaults and parses the raw request fields exactly
// once so layout and totals work from the same values.
func (s *Service) resolveRecord(docID string, req domain.RenderRequest, branding config.Branding) domain.DocumentRecord {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		companyName = branding.DefaultCompanyName
	}
	projectTitle := strings.TrimSpace(req.ProjectTitle)
	if projectTitle == "" {
		projectTitle = branding.DefaultProjectTitle
	}

	items := parseItems(req.ItemsJSON)
	taxRate := format.ParseDecimal(req.TaxRate)

	return domain.DocumentRecord{
		ID:             docID,
		CompanyName:    companyName,
		CompanyEmail:   strings.TrimSpace(req.CompanyEmail),
		CompanyPhone:   strings.TrimSpace(req.CompanyPhone),
		CompanyAddress: strings.TrimSpace(req.CompanyAddress),
		Logo:           decodeLogo(req.LogoDataURL),
		ProjectTitle:   projectTitle,
		CustomerName:   strings.TrimSpace(req.CustomerName),
		Items:          items,
		TaxRate:        taxRate,
		Notes:          req.Notes,
		Terms:          req.Terms,
		PaymentInfo:    req.PaymentInfo,
	}
}

func (s *Service) layoutInput(record domain.DocumentRecord, branding config.Branding) layout.Input {
	items := make([]layout.Item, 0, len(record.Items))
	for _, it := range record.Items {
		rate := format.ParseDecimal(it.Rate)
		items = append(items, layout.Item{
			Title:  it.Title,
			Qty:    strings.TrimSpace(it.Qty),
			Rate:   rate,
			Amount: format.ParseDecimal(it.Qty) * rate,
		})
	}

	totals := computeTotals(record.Items, record.TaxRate)

	var logo *layout.LogoInfo
	if record.Logo != nil {
		logo = &layout.LogoInfo{Width: record.Logo.Width, Height: record.Logo.Height}
	}

	return layout.Input{
		DocID:          record.ID,
		Brand:          branding.FooterText,
		CompanyName:    record.CompanyName,
		CompanyEmail:   record.CompanyEmail,
		CompanyPhone:   record.CompanyPhone,
		CompanyAddress: record.CompanyAddress,
		Logo:           logo,
		ProjectTitle:   record.ProjectTitle,
		CustomerName:   record.CustomerName,
		Items:          items,
		TaxRate:        record.TaxRate,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
		Notes:          record.Notes,
		Terms:          record.Terms,
		PaymentInfo:    record.PaymentInfo,
	}
}

// computeTotals derives the summary figures from raw item fields using the
// same lenient parsing the table rows use.
func computeTotals(items []domain.LineItem, taxRate float64) domain.Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += format.ParseDecimal(it.Qty) * format.ParseDecimal(it.Rate)
	}
	tax := subtotal * taxRate / 100
	return domain.Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// placeholderItems stands in when the items payload is empty or malformed so
// the table always has at least one row.
func placeholderItems() []domain.LineItem {
	return []domain.LineItem{{ID: "x", Title: format.Dash, Qty: "0", Rate: "0"}}
}

// flexString accepts JSON strings and numbers alike, so hand-built payloads
// with unquoted quantities still decode.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type wireItem struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Qty   flexString `json:"qty"`
	Rate  flexString `json:"rate"`
}

func parseItems(raw string) []domain.LineItem {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return placeholderItems()
	}

	var wire []wireItem
	if err := json.Unmarshal([]byte(raw), &wire); err != nil || len(wire) == 0 {
		return placeholderItems()
	}

	items := make([]domain.LineItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, domain.LineItem{
			ID:    w.ID,
			Title: w.Title,
			Qty:   string(w.Qty),
			Rate:  string(w.Rate),
		})
	}
	return items
}
