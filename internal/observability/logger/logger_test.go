package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	obscontext "github.com/smallbiznis/quickdocs/internal/observability/context"
)

func TestWithContextAddsCorrelationFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := obscontext.WithRequestID(context.Background(), "req-1")
	ctx = obscontext.WithDocumentID(ctx, "doc_ab12cd34")

	WithContext(ctx, base).Info("rendered")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Fatalf("expected request_id req-1, got %v", fields["request_id"])
	}
	if fields["doc_id"] != "doc_ab12cd34" {
		t.Fatalf("expected doc_id doc_ab12cd34, got %v", fields["doc_id"])
	}
	if _, ok := fields["trace_id"]; !ok {
		t.Fatalf("expected trace_id field")
	}
}

func TestWithContextNilContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	WithContext(nil, base).Info("rendered")

	if len(logs.All()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(logs.All()))
	}
	if len(logs.All()[0].Context) != 0 {
		t.Fatalf("expected no added fields without a context")
	}
}
