package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	documentai "google.golang.org/api/documentai/v1"

	"github.com/veridoc/veridoc/internal/models"
)

func anchoredLayout(start, end int64, confidence float64) *documentai.GoogleCloudDocumentaiV1DocumentPageLayout {
	return &documentai.GoogleCloudDocumentaiV1DocumentPageLayout{
		TextAnchor: &documentai.GoogleCloudDocumentaiV1DocumentTextAnchor{
			TextSegments: []*documentai.GoogleCloudDocumentaiV1DocumentTextAnchorTextSegment{
				{StartIndex: start, EndIndex: end},
			},
		},
		Confidence: confidence,
	}
}

func TestAdaptDocumentReconstructsTextFromAnchors(t *testing.T) {
	fullText := "RESIDENTIAL LEASE\nentered into by the parties below.\n"
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: fullText,
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{
				PageNumber: 1,
				Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{
					{Layout: anchoredLayout(0, 18, 0.95)},
					{Layout: anchoredLayout(18, 53, 0.85)},
				},
			},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 1)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Blocks, 2)
	assert.Equal(t, "RESIDENTIAL LEASE", page.Blocks[0].Text)
	assert.Equal(t, "entered into by the parties below.", page.Blocks[1].Text)
	assert.Equal(t, models.BlockTypeParagraph, page.Blocks[0].BlockType)
	assert.Equal(t, "RESIDENTIAL LEASE\nentered into by the parties below.", page.Text)
	assert.InDelta(t, 0.9, page.Confidence, 1e-9)
}

func TestAdaptDocumentMultiSegmentAnchor(t *testing.T) {
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "alpha beta gamma",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{
				PageNumber: 1,
				Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{
					{Layout: &documentai.GoogleCloudDocumentaiV1DocumentPageLayout{
						TextAnchor: &documentai.GoogleCloudDocumentaiV1DocumentTextAnchor{
							TextSegments: []*documentai.GoogleCloudDocumentaiV1DocumentTextAnchorTextSegment{
								{StartIndex: 0, EndIndex: 6},
								{StartIndex: 11, EndIndex: 16},
							},
						},
					}},
				},
			},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 1)
	require.NoError(t, err)
	assert.Equal(t, "alpha gamma", pages[0].Blocks[0].Text)
}

func TestAdaptDocumentPolygonBecomesBox(t *testing.T) {
	layout := anchoredLayout(0, 4, 0.9)
	layout.BoundingPoly = &documentai.GoogleCloudDocumentaiV1BoundingPoly{
		NormalizedVertices: []*documentai.GoogleCloudDocumentaiV1NormalizedVertex{
			{X: 0.1, Y: 0.2},
			{X: 0.6, Y: 0.2},
			{X: 0.6, Y: 0.3},
			{X: 0.1, Y: 0.3},
		},
	}
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "text",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{PageNumber: 1, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: layout}}},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 1)
	require.NoError(t, err)

	box := pages[0].Blocks[0].BoundingBox
	assert.InDelta(t, 0.1, box.X, 1e-9)
	assert.InDelta(t, 0.2, box.Y, 1e-9)
	assert.InDelta(t, 0.5, box.Width, 1e-9)
	assert.InDelta(t, 0.1, box.Height, 1e-9)
}

func TestAdaptDocumentShortPolygonFallsBackToZeroBox(t *testing.T) {
	layout := anchoredLayout(0, 4, 0.9)
	layout.BoundingPoly = &documentai.GoogleCloudDocumentaiV1BoundingPoly{
		NormalizedVertices: []*documentai.GoogleCloudDocumentaiV1NormalizedVertex{
			{X: 0.1, Y: 0.2},
			{X: 0.6, Y: 0.2},
		},
	}
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "text",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{PageNumber: 1, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: layout}}},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 1)
	require.NoError(t, err)
	assert.Equal(t, models.BoundingBox{}, pages[0].Blocks[0].BoundingBox)
}

func TestAdaptDocumentFallsBackToLines(t *testing.T) {
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "only lines here",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{
				PageNumber: 1,
				Lines: []*documentai.GoogleCloudDocumentaiV1DocumentPageLine{
					{Layout: anchoredLayout(0, 10, 0.7)},
					{Layout: anchoredLayout(10, 15, 0.7)},
				},
			},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 1)
	require.NoError(t, err)
	require.Len(t, pages[0].Blocks, 2)
	assert.Equal(t, models.BlockTypeLine, pages[0].Blocks[0].BlockType)
}

func TestAdaptDocumentAnchoredEntityGoesToOnePage(t *testing.T) {
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "page one text page two text",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{PageNumber: 1, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: anchoredLayout(0, 13, 0.9)}}},
			{PageNumber: 2, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: anchoredLayout(14, 27, 0.9)}}},
		},
		Entities: []*documentai.GoogleCloudDocumentaiV1DocumentEntity{
			{
				Type:        "DATE",
				MentionText: "March 1, 2024",
				Confidence:  0.88,
				NormalizedValue: &documentai.GoogleCloudDocumentaiV1DocumentEntityNormalizedValue{
					Text: "2024-03-01",
				},
				PageAnchor: &documentai.GoogleCloudDocumentaiV1DocumentPageAnchor{
					PageRefs: []*documentai.GoogleCloudDocumentaiV1DocumentPageAnchorPageRef{{Page: 1}},
				},
			},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 2)
	require.NoError(t, err)

	assert.Empty(t, pages[0].Entities)
	require.Len(t, pages[1].Entities, 1)
	entity := pages[1].Entities[0]
	assert.Equal(t, "DATE", entity.Type)
	assert.Equal(t, "2024-03-01", entity.Text)
	assert.Equal(t, "March 1, 2024", entity.Raw)
	assert.Equal(t, 2, entity.Page)
}

func TestAdaptDocumentPageAgnosticEntityBroadcasts(t *testing.T) {
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "page one text page two text",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{PageNumber: 1, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: anchoredLayout(0, 13, 0.9)}}},
			{PageNumber: 2, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: anchoredLayout(14, 27, 0.9)}}},
		},
		Entities: []*documentai.GoogleCloudDocumentaiV1DocumentEntity{
			{Type: "NAME", MentionText: "Jordan Avery", Confidence: 0.8},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 2)
	require.NoError(t, err)

	require.Len(t, pages[0].Entities, 1)
	require.Len(t, pages[1].Entities, 1)
	assert.Equal(t, 1, pages[0].Entities[0].Page)
	assert.Equal(t, 2, pages[1].Entities[0].Page)
}

func TestAdaptDocumentClampsConfidence(t *testing.T) {
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text: "text",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{
			{PageNumber: 1, Paragraphs: []*documentai.GoogleCloudDocumentaiV1DocumentPageParagraph{{Layout: anchoredLayout(0, 4, 1.7)}}},
		},
	}

	pages, err := adaptDocument(context.Background(), doc, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pages[0].Blocks[0].Confidence)
}

func TestAdaptDocumentNoUnitsIsHardFailure(t *testing.T) {
	doc := &documentai.GoogleCloudDocumentaiV1Document{
		Text:  "",
		Pages: []*documentai.GoogleCloudDocumentaiV1DocumentPage{{PageNumber: 1}},
	}

	_, err := adaptDocument(context.Background(), doc, 1)
	assert.ErrorIs(t, err, ErrNoExtractableText)
}
