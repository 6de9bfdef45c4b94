// Package ocr converts provider-native document analysis responses into the
// canonical page representation. Each backend's response shape is known only
// to its adapter; everything downstream sees models.OCRPageResult.
package ocr

import (
	"context"

	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/models"
)

// Provider runs one OCR backend and adapts its response. pageCount is the
// caller's knowledge of the document's page count (0 when unknown); adapters
// use it when the provider response carries no pagination of its own.
type Provider interface {
	Name() string
	Process(ctx context.Context, doc []byte, mimeType string, pageCount int) ([]models.OCRPageResult, error)
}

// NewProvider constructs the single active adapter for this deployment.
// Provider identity must never be branched on outside this package.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.OCRBackend {
	case config.BackendDocumentAI:
		return NewDocumentAIProvider(ctx, cfg)
	case config.BackendTextract:
		return NewTextractProvider(ctx, cfg)
	default:
		return nil, apperr.New(apperr.CodeConfiguration, "unsupported OCR backend %q", cfg.OCRBackend)
	}
}

// ErrNoExtractableText is the hard failure raised when a backend reports zero
// blocks or lines for the whole document. It is never folded into an empty
// but successful result.
var ErrNoExtractableText = apperr.New(apperr.CodeNoText, "no extractable text in provider response")
