package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/smallbiznis/quickdocs/internal/config"
	"github.com/smallbiznis/quickdocs/internal/document/service"
	"github.com/smallbiznis/quickdocs/internal/observability"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	holder, err := config.NewBrandingHolder(config.Config{BrandingDir: t.TempDir()})
	require.NoError(t, err)

	docSvc := service.NewService(service.ServiceParam{
		Log:      zaptest.NewLogger(t),
		Branding: holder,
	})

	engine := NewEngine(observability.Config{LogLevel: "info"})
	return NewServer(ServerParams{
		Gin:         engine,
		Cfg:         config.Config{PublicDir: t.TempDir()},
		DocumentSvc: docSvc,
	})
}

func renderRequest(t *testing.T, s *Server, docID string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/documents/"+docID+"/pdf?"+query.Encode(), nil)
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestRenderDocumentPDF(t *testing.T) {
	s := newTestServer(t)

	query := url.Values{}
	query.Set("companyName", "Acme Studio")
	query.Set("projectTitle", "Website Redesign")
	query.Set("customerName", "Jane Doe")
	query.Set("items", `[{"id":"a","title":"Design","qty":"2","rate":"50"}]`)
	query.Set("taxRate", "10")

	rec := renderRequest(t, s, "doc_ab12cd34", query)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="doc_ab12cd34.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestRenderDocumentPDFMalformedItems(t *testing.T) {
	s := newTestServer(t)

	query := url.Values{}
	query.Set("items", "{{{")

	rec := renderRequest(t, s, "doc_ab12cd34", query)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestRenderDocumentPDFRepeatable(t *testing.T) {
	s := newTestServer(t)

	query := url.Values{}
	query.Set("items", `[{"id":"a","title":"Design","qty":"2","rate":"50"}]`)
	query.Set("taxRate", "8.25")

	first := renderRequest(t, s, "doc_ab12cd34", query)
	second := renderRequest(t, s, "doc_ab12cd34", query)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestRenderDocumentPDFBlankID(t *testing.T) {
	s := newTestServer(t)

	rec := renderRequest(t, s, "%20", url.Values{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
	assert.Contains(t, rec.Body.String(), "invalid_id")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
