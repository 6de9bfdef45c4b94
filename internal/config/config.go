// Package config loads the process configuration exactly once at startup.
// Components receive this struct explicitly; nothing else in the repository
// reads environment variables.
package config

import (
	"fmt"
	"os"
)

// OCR backend selectors.
const (
	BackendDocumentAI = "documentai"
	BackendTextract   = "textract"
)

// Config holds every runtime setting for the service.
type Config struct {
	Port string

	// OCR backend selection. Exactly one adapter is active per deployment.
	OCRBackend string

	// Google Document AI.
	DocAIProjectID   string
	DocAILocation    string
	DocAIProcessorID string

	// AWS Textract.
	AWSRegion string

	// Vertex AI summarization.
	VertexProjectID string
	VertexRegion    string
	SummaryModel    string

	// ForceMockSummary skips the summarization backend entirely and serves
	// the fixed mock summary.
	ForceMockSummary bool
}

// Load reads configuration from the environment and validates the parts the
// selected OCR backend needs. Summarization credentials are deliberately not
// validated here: their absence degrades to the mock generator at runtime.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		OCRBackend:       getEnv("OCR_BACKEND", BackendDocumentAI),
		DocAIProjectID:   getEnv("DOCAI_PROJECT_ID", ""),
		DocAILocation:    getEnv("DOCAI_LOCATION", "us"),
		DocAIProcessorID: getEnv("DOCAI_PROCESSOR_ID", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		VertexProjectID:  getEnv("VERTEX_PROJECT_ID", ""),
		VertexRegion:     getEnv("VERTEX_AI_REGION", "us-central1"),
		SummaryModel:     getEnv("SUMMARY_MODEL", "gemini-1.5-pro"),
		ForceMockSummary: getEnv("FORCE_MOCK_SUMMARY", "") == "true",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the OCR side of the configuration. Failures here are
// configuration errors, not transient backend failures.
func (c *Config) Validate() error {
	switch c.OCRBackend {
	case BackendDocumentAI:
		if c.DocAIProjectID == "" {
			return fmt.Errorf("DOCAI_PROJECT_ID must be set when OCR_BACKEND=%s", BackendDocumentAI)
		}
		if c.DocAIProcessorID == "" {
			return fmt.Errorf("DOCAI_PROCESSOR_ID must be set when OCR_BACKEND=%s", BackendDocumentAI)
		}
	case BackendTextract:
		if c.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION must be set when OCR_BACKEND=%s", BackendTextract)
		}
	default:
		return fmt.Errorf("unsupported OCR_BACKEND %q (want %s or %s)", c.OCRBackend, BackendDocumentAI, BackendTextract)
	}
	return nil
}

// SummaryBackendConfigured reports whether the Vertex credentials needed for
// real summarization are present.
func (c *Config) SummaryBackendConfigured() bool {
	return c.VertexProjectID != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
