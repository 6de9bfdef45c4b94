package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/gcp"
)

// Summarizer produces a candidate summary object from a shaped request.
type Summarizer interface {
	Summarize(ctx context.Context, payload *RequestPayload) (Candidate, error)
}

// GeminiSummarizer calls the Vertex AI summarizer model.
type GeminiSummarizer struct {
	client *gcp.VertexClient
	log    *logrus.Entry
}

func NewGeminiSummarizer(client *gcp.VertexClient, log *logrus.Entry) *GeminiSummarizer {
	return &GeminiSummarizer{client: client, log: log}
}

// Summarize sends the document description to Gemini and decodes the JSON
// object from its response. The caller is responsible for normalizing the
// returned candidate.
func (s *GeminiSummarizer) Summarize(ctx context.Context, payload *RequestPayload) (Candidate, error) {
	doc, err := json.Marshal(payload)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidInput, err, "failed to encode summarization payload")
	}

	prompt := fmt.Sprintf(gcp.SummarizerUserPromptTemplate, payload.Instructions, string(doc))

	resp, err := s.client.SummarizerModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.WithError(err).Error("Vertex AI summarization call failed")
		return nil, apperr.Wrap(apperr.CodeBackendFailed, err, "summarization backend call failed")
	}

	text := responseText(resp)
	if text == "" {
		return nil, apperr.New(apperr.CodeParseFailed, "summarization backend returned an empty response")
	}

	candidate, err := ExtractCandidate(text)
	if err != nil {
		s.log.WithField("response", text).Warn("Could not extract JSON from model response")
		return nil, err
	}
	return candidate, nil
}

// responseText concatenates the text parts of the first response candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}
