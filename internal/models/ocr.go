package models

// BlockType classifies the granularity of a recognized text block.
type BlockType string

const (
	BlockTypeLine      BlockType = "LINE"
	BlockTypeWord      BlockType = "WORD"
	BlockTypeParagraph BlockType = "PARAGRAPH"
)

// BoundingBox is an axis-aligned rectangle normalized to [0,1] of the page
// dimensions. Fields are zero (not absent) when the provider omits geometry.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PixelBox is a bounding box resolved against concrete page dimensions.
type PixelBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale resolves the normalized box against a page of pageW x pageH units
// (points for PDFs, pixels for images).
func (b BoundingBox) Scale(pageW, pageH float64) PixelBox {
	return PixelBox{
		X:      b.X * pageW,
		Y:      b.Y * pageH,
		Width:  b.Width * pageW,
		Height: b.Height * pageH,
	}
}

// PageSize holds one page's dimensions in points.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OCRBlock is one contiguous span of recognized text on a page.
// ID is unique within its page. Confidence is always within [0,1].
type OCRBlock struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Confidence  float64     `json:"confidence"`
	BoundingBox BoundingBox `json:"boundingBox"`
	BlockType   BlockType   `json:"blockType"`
}

// OCREntity is a semantically typed span (date, name, key-value pair)
// independent of block structure. Type is provider-defined, not a closed set.
type OCREntity struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	Page       int     `json:"page"`
	Confidence float64 `json:"confidence"`
	Raw        string  `json:"raw,omitempty"`
}

// OCRPageResult aggregates one page: 1-based page number, newline-joined
// block text, blocks in document order, entities, and the mean block
// confidence (0 when the page has no blocks).
type OCRPageResult struct {
	Page       int         `json:"page"`
	Text       string      `json:"text"`
	Blocks     []OCRBlock  `json:"blocks"`
	Entities   []OCREntity `json:"entities"`
	Confidence float64     `json:"confidence"`
}

// OCRMeta carries document-level information about one OCR run.
type OCRMeta struct {
	Filename    string     `json:"filename"`
	Pages       int        `json:"pages"`
	Provider    string     `json:"provider"`
	ProcessedAt string     `json:"processedAt"`
	PageSizes   []PageSize `json:"pageSizes,omitempty"`
}

// OCRResult is the document-level OCR output: meta plus one page result per
// page, ordered by page number ascending from 1. Created once per submission
// and immutable afterwards.
type OCRResult struct {
	Meta OCRMeta         `json:"meta"`
	OCR  []OCRPageResult `json:"ocr"`
}

// PageConfidence is the arithmetic mean of block confidences, 0 for an empty
// block list. Never NaN.
func PageConfidence(blocks []OCRBlock) float64 {
	if len(blocks) == 0 {
		return 0
	}
	var sum float64
	for _, b := range blocks {
		sum += b.Confidence
	}
	return sum / float64(len(blocks))
}

// ClampConfidence forces a confidence value into [0,1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
