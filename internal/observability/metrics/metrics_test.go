package metrics

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("status", "ok"),
		attribute.String("doc_id", "doc_ab12cd34"),
		attribute.String("endpoint", "/api/documents/:id/pdf"),
	)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "status" && attrs[1].Key != "status" {
		t.Fatalf("expected status to be retained")
	}
	if attrs[0].Key != "endpoint" && attrs[1].Key != "endpoint" {
		t.Fatalf("expected endpoint to be retained")
	}
}

func TestRecordRenderNilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRender(context.Background(), "ok", 1, time.Millisecond)
}

func TestNewWithNoopProvider(t *testing.T) {
	m, err := New(Config{ServiceName: "quickdocs"}, noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.RecordRender(context.Background(), "error", 0, time.Millisecond)
}
