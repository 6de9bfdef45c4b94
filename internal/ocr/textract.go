package ocr

import (
	"context"
	"fmt"
	"sort"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/models"
)

// TextractProvider runs documents through AWS Textract. Textract reports a
// flat, ID-linked block graph with literal block text, per-block page
// numbers, and confidence on a 0-100 scale.
type TextractProvider struct {
	client *textract.Client
}

// NewTextractProvider creates the Textract adapter from configuration.
func NewTextractProvider(ctx context.Context, cfg *config.Config) (*TextractProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "failed to load AWS configuration")
	}
	return &TextractProvider{client: textract.NewFromConfig(awsCfg)}, nil
}

func (p *TextractProvider) Name() string { return config.BackendTextract }

// Process analyzes the document with forms and tables enabled and adapts the
// resulting block graph.
func (p *TextractProvider) Process(ctx context.Context, doc []byte, mimeType string, pageCount int) ([]models.OCRPageResult, error) {
	out, err := p.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: doc},
		FeatureTypes: []types.FeatureType{types.FeatureTypeForms, types.FeatureTypeTables},
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeBackendFailed, err, "Textract analyze call failed")
	}
	return adaptBlocks(out.Blocks, pageCount)
}

// adaptBlocks converts the Textract block graph into canonical page results.
// LINE blocks become text blocks; KEY_VALUE_SET key nodes are resolved into
// KEY_VALUE entities by following CHILD and VALUE relationship edges.
func adaptBlocks(blocks []types.Block, pageCount int) ([]models.OCRPageResult, error) {
	byID := make(map[string]types.Block, len(blocks))
	for _, b := range blocks {
		if b.Id != nil {
			byID[*b.Id] = b
		}
	}

	lines := make(map[int][]models.OCRBlock)
	entities := make(map[int][]models.OCREntity)
	for _, b := range blocks {
		page := blockPage(b)
		switch b.BlockType {
		case types.BlockTypeLine:
			lines[page] = append(lines[page], models.OCRBlock{
				ID:          textOrEmpty(b.Id),
				Text:        strings.TrimSpace(textOrEmpty(b.Text)),
				Confidence:  textractConfidence(b.Confidence),
				BoundingBox: blockBox(b),
				BlockType:   models.BlockTypeLine,
			})
		case types.BlockTypeKeyValueSet:
			if !isKeyNode(b) {
				continue
			}
			key := childText(b, byID)
			value := valueText(b, byID)
			entities[page] = append(entities[page], models.OCREntity{
				Type:       "KEY_VALUE",
				Text:       strings.TrimSpace(fmt.Sprintf("%s: %s", key, value)),
				Page:       page,
				Confidence: textractConfidence(b.Confidence),
				Raw:        key,
			})
		}
	}

	if len(lines) == 0 {
		return nil, ErrNoExtractableText
	}

	pageNums := make([]int, 0, len(lines))
	for page := range lines {
		pageNums = append(pageNums, page)
	}
	for page := range entities {
		if _, ok := lines[page]; !ok {
			pageNums = append(pageNums, page)
		}
	}
	sort.Ints(pageNums)

	pages := make([]models.OCRPageResult, 0, len(pageNums))
	for _, page := range pageNums {
		pageBlocks := lines[page]
		if pageBlocks == nil {
			pageBlocks = []models.OCRBlock{}
		}
		pageEntities := entities[page]
		if pageEntities == nil {
			pageEntities = []models.OCREntity{}
		}
		texts := make([]string, 0, len(pageBlocks))
		for _, blk := range pageBlocks {
			texts = append(texts, blk.Text)
		}
		pages = append(pages, models.OCRPageResult{
			Page:       page,
			Text:       strings.TrimSpace(strings.Join(texts, "\n")),
			Blocks:     pageBlocks,
			Entities:   pageEntities,
			Confidence: models.PageConfidence(pageBlocks),
		})
	}
	return pages, nil
}

// childText resolves the text of a node's CHILD edges: each child's literal
// text, joined with single spaces and trimmed.
func childText(b types.Block, byID map[string]types.Block) string {
	var parts []string
	for _, rel := range b.Relationships {
		if rel.Type != types.RelationshipTypeChild {
			continue
		}
		for _, id := range rel.Ids {
			child, ok := byID[id]
			if !ok || child.Text == nil {
				continue
			}
			parts = append(parts, *child.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// valueText follows a KEY node's VALUE edge to its value node, then resolves
// that node's children.
func valueText(key types.Block, byID map[string]types.Block) string {
	for _, rel := range key.Relationships {
		if rel.Type != types.RelationshipTypeValue {
			continue
		}
		for _, id := range rel.Ids {
			if valueNode, ok := byID[id]; ok {
				return childText(valueNode, byID)
			}
		}
	}
	return ""
}

func isKeyNode(b types.Block) bool {
	for _, et := range b.EntityTypes {
		if et == types.EntityTypeKey {
			return true
		}
	}
	return false
}

// textractConfidence rescales Textract's 0-100 confidence onto the canonical
// 0-1 scale. Missing confidence becomes 0.
func textractConfidence(c *float32) float64 {
	if c == nil {
		return 0
	}
	return models.ClampConfidence(float64(*c) / 100)
}

func blockBox(b types.Block) models.BoundingBox {
	if b.Geometry == nil {
		return models.BoundingBox{}
	}
	if bb := b.Geometry.BoundingBox; bb != nil {
		return models.BoundingBox{
			X:      float64(bb.Left),
			Y:      float64(bb.Top),
			Width:  float64(bb.Width),
			Height: float64(bb.Height),
		}
	}
	vs := make([]vertex, 0, len(b.Geometry.Polygon))
	for _, p := range b.Geometry.Polygon {
		vs = append(vs, vertex{X: float64(p.X), Y: float64(p.Y)})
	}
	return boxFromPolygon(vs)
}

func blockPage(b types.Block) int {
	if b.Page == nil || *b.Page < 1 {
		return 1
	}
	return int(*b.Page)
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
