package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

// --- Summarizer Model Prompts ---
const SummarizerSystemPrompt = "You are a legal document analyst. You are given the OCR extraction of a scanned legal document and must produce a structured analysis. You must output your response as a single valid JSON object and nothing else."
const SummarizerUserPromptTemplate = `Analyze the legal document described by the OCR extraction below.

User instructions: %s

Produce a single JSON object with exactly these keys:
- "short_summary": a 2-4 sentence plain-language summary of the document.
- "parties": array of {"role", "name", "excerpt"} for every party to the document.
- "important_dates": array of {"type", "date", "excerpt"}; "date" must be ISO-8601 (YYYY-MM-DD).
- "obligations": array of {"who", "action", "excerpt"}.
- "payment_terms": string describing payment terms, or null if the document has none.
- "termination_clauses": string describing termination clauses, or null.
- "governing_law": string naming the governing jurisdiction, or null.
- "risk_flags": array of {"score", "reason"}; "score" is an integer from 1 (minor) to 10 (severe).
- "suggested_redactions": array of {"page", "start_char", "end_char", "reason"}; "page" is the 1-based page number and the character offsets index into that page's text with start_char < end_char.
- "confidence_score": your confidence in this analysis as a number between 0 and 1.

Base every excerpt on the extracted text. Do not invent parties, dates, or clauses that the text does not support. Return ONLY the JSON object, with no surrounding prose and no markdown fences.

OCR extraction:
%s`

// VertexClient holds the pre-configured summarizer model.
type VertexClient struct {
	SummarizerModel *genai.GenerativeModel
	baseClient      *genai.Client
}

// NewVertexClient creates a client with the summarizer model configured for
// deterministic JSON output.
func NewVertexClient(ctx context.Context, projectID, region, model string) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	summarizerModel := baseClient.GenerativeModel(model)
	summarizerModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SummarizerSystemPrompt)},
	}
	summarizerModel.GenerationConfig = genai.GenerationConfig{
		// Force JSON output. Low temperature for stable, structured analysis.
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}
	summarizerModel.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
	}

	return &VertexClient{
		SummarizerModel: summarizerModel,
		baseClient:      baseClient,
	}, nil
}

func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}
