package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	documentai "google.golang.org/api/documentai/v1"

	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/models"
)

// DocumentAIProvider runs documents through a Google Document AI processor.
// Document AI reports text as offset ranges into a document-global text
// buffer, geometry as normalized-vertex polygons, and entities at the
// document level with optional page anchors.
type DocumentAIProvider struct {
	service       *documentai.Service
	processorName string
}

// NewDocumentAIProvider creates the Document AI adapter from configuration.
func NewDocumentAIProvider(ctx context.Context, cfg *config.Config) (*DocumentAIProvider, error) {
	svc, err := documentai.NewService(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "failed to create Document AI service")
	}
	return &DocumentAIProvider{
		service: svc,
		processorName: fmt.Sprintf("projects/%s/locations/%s/processors/%s",
			cfg.DocAIProjectID, cfg.DocAILocation, cfg.DocAIProcessorID),
	}, nil
}

func (p *DocumentAIProvider) Name() string { return config.BackendDocumentAI }

// Process sends the raw document to the processor and adapts the response.
func (p *DocumentAIProvider) Process(ctx context.Context, doc []byte, mimeType string, pageCount int) ([]models.OCRPageResult, error) {
	req := &documentai.GoogleCloudDocumentaiV1ProcessRequest{
		RawDocument: &documentai.GoogleCloudDocumentaiV1RawDocument{
			Content:  base64.StdEncoding.EncodeToString(doc),
			MimeType: mimeType,
		},
	}

	resp, err := p.service.Projects.Locations.Processors.Process(p.processorName, req).Context(ctx).Do()
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeBackendFailed, err, "Document AI process call failed")
	}
	if resp.Document == nil {
		return nil, ErrNoExtractableText
	}

	return adaptDocument(ctx, resp.Document, pageCount)
}

// adaptDocument converts one Document AI document into canonical page
// results. Pages adapt independently and in parallel; output order follows
// page numbers regardless of completion order.
func adaptDocument(ctx context.Context, doc *documentai.GoogleCloudDocumentaiV1Document, pageCount int) ([]models.OCRPageResult, error) {
	if countTextUnits(doc) == 0 {
		return nil, ErrNoExtractableText
	}

	pages := make([]models.OCRPageResult, len(doc.Pages))
	eg, _ := errgroup.WithContext(ctx)
	for i, page := range doc.Pages {
		eg.Go(func() error {
			pageNum := int(page.PageNumber)
			if pageNum == 0 {
				pageNum = i + 1
			}
			pages[i] = adaptPage(doc.Text, page, pageNum)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	attachEntities(pages, doc.Entities)
	return pages, nil
}

// adaptPage builds one page result from paragraph-level units, falling back
// to line-level units when the page carries no paragraphs at all.
func adaptPage(fullText string, page *documentai.GoogleCloudDocumentaiV1DocumentPage, pageNum int) models.OCRPageResult {
	var blocks []models.OCRBlock

	if len(page.Paragraphs) > 0 {
		for i, par := range page.Paragraphs {
			blocks = append(blocks, layoutBlock(fullText, par.Layout, pageNum, i, models.BlockTypeParagraph))
		}
	} else {
		for i, line := range page.Lines {
			blocks = append(blocks, layoutBlock(fullText, line.Layout, pageNum, i, models.BlockTypeLine))
		}
	}
	if blocks == nil {
		blocks = []models.OCRBlock{}
	}

	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}

	return models.OCRPageResult{
		Page:       pageNum,
		Text:       strings.TrimSpace(strings.Join(texts, "\n")),
		Blocks:     blocks,
		Entities:   []models.OCREntity{},
		Confidence: models.PageConfidence(blocks),
	}
}

func layoutBlock(fullText string, layout *documentai.GoogleCloudDocumentaiV1DocumentPageLayout, pageNum, index int, bt models.BlockType) models.OCRBlock {
	block := models.OCRBlock{
		ID:        fmt.Sprintf("p%d-b%d", pageNum, index),
		BlockType: bt,
	}
	if layout == nil {
		return block
	}
	block.Text = anchorText(fullText, layout.TextAnchor)
	block.Confidence = models.ClampConfidence(layout.Confidence)
	if layout.BoundingPoly != nil {
		block.BoundingBox = boxFromPolygon(normalizedVertices(layout.BoundingPoly))
	}
	return block
}

// anchorText reconstructs block text by concatenating the substrings
// addressed by each segment of the text anchor, in segment order.
func anchorText(fullText string, anchor *documentai.GoogleCloudDocumentaiV1DocumentTextAnchor) string {
	if anchor == nil {
		return ""
	}
	if len(anchor.TextSegments) == 0 {
		return strings.TrimSpace(anchor.Content)
	}
	var sb strings.Builder
	for _, seg := range anchor.TextSegments {
		start, end := seg.StartIndex, seg.EndIndex
		if start < 0 {
			start = 0
		}
		if end > int64(len(fullText)) {
			end = int64(len(fullText))
		}
		if start >= end {
			continue
		}
		sb.WriteString(fullText[start:end])
	}
	return strings.TrimSpace(sb.String())
}

func normalizedVertices(poly *documentai.GoogleCloudDocumentaiV1BoundingPoly) []vertex {
	vs := make([]vertex, 0, len(poly.NormalizedVertices))
	for _, nv := range poly.NormalizedVertices {
		if nv == nil {
			continue
		}
		vs = append(vs, vertex{X: nv.X, Y: nv.Y})
	}
	return vs
}

// attachEntities assigns document-level entities to their anchored page.
// An entity without a page anchor is attached to every page being processed,
// matching the most permissive backend behavior.
func attachEntities(pages []models.OCRPageResult, entities []*documentai.GoogleCloudDocumentaiV1DocumentEntity) {
	for _, ent := range entities {
		if ent == nil {
			continue
		}
		converted := models.OCREntity{
			Type:       ent.Type,
			Text:       ent.MentionText,
			Confidence: models.ClampConfidence(ent.Confidence),
			Raw:        ent.MentionText,
		}
		if ent.NormalizedValue != nil && ent.NormalizedValue.Text != "" {
			converted.Text = ent.NormalizedValue.Text
		}

		if pageNum, ok := entityPage(ent); ok {
			for i := range pages {
				if pages[i].Page == pageNum {
					converted.Page = pageNum
					pages[i].Entities = append(pages[i].Entities, converted)
				}
			}
			continue
		}
		// TODO: attach page-agnostic entities to a page-less bucket instead
		// of duplicating them onto every page.
		for i := range pages {
			e := converted
			e.Page = pages[i].Page
			pages[i].Entities = append(pages[i].Entities, e)
		}
	}
}

// entityPage resolves an entity's 1-based page number from its page anchor.
// Document AI page refs are zero-based indexes into the pages array.
func entityPage(ent *documentai.GoogleCloudDocumentaiV1DocumentEntity) (int, bool) {
	if ent.PageAnchor == nil || len(ent.PageAnchor.PageRefs) == 0 {
		return 0, false
	}
	ref := ent.PageAnchor.PageRefs[0]
	if ref == nil {
		return 0, false
	}
	return int(ref.Page) + 1, true
}

func countTextUnits(doc *documentai.GoogleCloudDocumentaiV1Document) int {
	var n int
	for _, page := range doc.Pages {
		n += len(page.Paragraphs) + len(page.Lines)
	}
	return n
}
