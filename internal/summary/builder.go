// Package summary turns a canonical OCR result into a validated summary:
// request shaping toward the summarization backend, repair of the backend's
// candidate object into an invariant-respecting result, and the mock
// generator used when no backend is available.
package summary

import (
	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/models"
)

// maxBlocksPerPage bounds the payload sent to the summarization backend.
// Entities are never capped.
const maxBlocksPerPage = 50

// DefaultInstruction substitutes for an empty user instruction string.
const DefaultInstruction = "analyze thoroughly"

// RequestPayload is the exact document description the summarization backend
// consumes.
type RequestPayload struct {
	Filename     string        `json:"filename"`
	PageCount    int           `json:"pageCount"`
	Provider     string        `json:"provider"`
	Instructions string        `json:"instructions"`
	Pages        []PagePayload `json:"pages"`
}

// PagePayload is one page of the document description.
type PagePayload struct {
	Page       int                `json:"page"`
	Text       string             `json:"text"`
	Confidence float64            `json:"confidence"`
	Blocks     []models.OCRBlock  `json:"blocks"`
	Entities   []models.OCREntity `json:"entities"`
}

// BuildRequest shapes an OCR result plus optional user instructions into the
// backend payload. The only failure mode is structurally invalid input, which
// is rejected before any backend call.
func BuildRequest(ocr *models.OCRResult, instructions string) (*RequestPayload, error) {
	if ocr == nil {
		return nil, apperr.New(apperr.CodeInvalidInput, "ocr_result is required")
	}
	if ocr.Meta.Filename == "" && ocr.Meta.Provider == "" && ocr.Meta.Pages == 0 {
		return nil, apperr.New(apperr.CodeInvalidInput, "ocr_result is missing meta")
	}
	if ocr.OCR == nil {
		return nil, apperr.New(apperr.CodeInvalidInput, "ocr_result is missing the ocr page array")
	}

	if instructions == "" {
		instructions = DefaultInstruction
	}

	pages := make([]PagePayload, 0, len(ocr.OCR))
	for _, page := range ocr.OCR {
		blocks := page.Blocks
		if len(blocks) > maxBlocksPerPage {
			blocks = blocks[:maxBlocksPerPage]
		}
		pages = append(pages, PagePayload{
			Page:       page.Page,
			Text:       page.Text,
			Confidence: page.Confidence,
			Blocks:     blocks,
			Entities:   page.Entities,
		})
	}

	return &RequestPayload{
		Filename:     ocr.Meta.Filename,
		PageCount:    ocr.Meta.Pages,
		Provider:     ocr.Meta.Provider,
		Instructions: instructions,
		Pages:        pages,
	}, nil
}
