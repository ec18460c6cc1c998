// Package obscontext carries correlation identifiers through request
// contexts without importing the packages that produce them.
package obscontext

import (
	"context"
	"strings"
)

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	documentIDKey contextKey = "document_id"
)

// WithRequestID attaches the request identifier to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, strings.TrimSpace(requestID))
}

// RequestIDFromContext returns the request identifier, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithDocumentID attaches the document identifier being rendered.
func WithDocumentID(ctx context.Context, docID string) context.Context {
	return context.WithValue(ctx, documentIDKey, strings.TrimSpace(docID))
}

// DocumentIDFromContext returns the document identifier, or "".
func DocumentIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(documentIDKey).(string); ok {
		return v
	}
	return ""
}
