package domain

import (
	"context"
	"errors"
)

type Service interface {
	RenderPDF(ctx context.Context, docID string, req RenderRequest) (RenderResponse, error)
}

var (
	ErrInvalidDocumentID = errors.New("invalid_document_id")
	ErrRenderFailed      = errors.New("render_failed")
)
