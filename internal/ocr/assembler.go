package ocr

import (
	"sort"
	"time"

	"github.com/veridoc/veridoc/internal/models"
)

// Assemble wraps adapter output with document meta. Pure aggregation: no
// confidence or geometry is recomputed, and pages are ordered by page number
// regardless of the order they were adapted in.
func Assemble(filename, provider string, pages []models.OCRPageResult, pageSizes []models.PageSize) models.OCRResult {
	ordered := make([]models.OCRPageResult, len(pages))
	copy(ordered, pages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Page < ordered[j].Page
	})

	return models.OCRResult{
		Meta: models.OCRMeta{
			Filename:    filename,
			Pages:       len(ordered),
			Provider:    provider,
			ProcessedAt: time.Now().UTC().Format(time.RFC3339),
			PageSizes:   pageSizes,
		},
		OCR: ordered,
	}
}
