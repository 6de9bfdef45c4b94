// Package pdfinfo inspects uploaded PDF bytes for page count and page
// dimensions, so downstream rendering can resolve normalized bounding boxes
// into page coordinates.
package pdfinfo

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/veridoc/veridoc/internal/models"
)

// US Letter in points, the fallback when dimensions are unavailable.
const (
	DefaultPageWidth  = 612
	DefaultPageHeight = 792
)

// Inspect returns the page count and per-page sizes of a PDF document.
// Non-PDF input or an unreadable PDF yields (0, nil, err); callers treat that
// as "pagination unknown" rather than a request failure.
func Inspect(doc []byte) (int, []models.PageSize, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(doc), model.NewDefaultConfiguration())
	if err != nil {
		return 0, nil, err
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return ctx.PageCount, nil, nil
	}

	sizes := make([]models.PageSize, 0, len(dims))
	for _, d := range dims {
		sizes = append(sizes, models.PageSize{Width: d.Width, Height: d.Height})
	}
	return ctx.PageCount, sizes, nil
}

// SizeOrDefault returns the size of the 1-based page number, falling back to
// US Letter when the page is unknown.
func SizeOrDefault(sizes []models.PageSize, page int) models.PageSize {
	if page >= 1 && page <= len(sizes) {
		return sizes[page-1]
	}
	return models.PageSize{Width: DefaultPageWidth, Height: DefaultPageHeight}
}
