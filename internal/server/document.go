package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	documentdomain "github.com/smallbiznis/quickdocs/internal/document/domain"
)

// RenderDocumentPDF streams the rendered PDF for a document. Every document
// field arrives in the query string; anything missing or malformed falls
// back to a renderable default, so this endpoint only fails when the PDF
// writer itself does.
func (s *Server) RenderDocumentPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}
	c.Set("doc_id", id)

	req := documentdomain.RenderRequest{
		CompanyName:    c.Query("companyName"),
		CompanyEmail:   c.Query("companyEmail"),
		CompanyPhone:   c.Query("companyPhone"),
		CompanyAddress: c.Query("companyAddress"),
		LogoDataURL:    c.Query("logoDataUrl"),
		CustomerName:   c.Query("customerName"),
		ProjectTitle:   c.Query("projectTitle"),
		ItemsJSON:      c.Query("items"),
		TaxRate:        c.Query("taxRate"),
		Notes:          c.Query("notes"),
		Terms:          c.Query("terms"),
		PaymentInfo:    c.Query("paymentInfo"),
	}

	resp, err := s.documentSvc.RenderPDF(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+resp.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", resp.PDF)
}
