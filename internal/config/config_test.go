package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocumentAIRequiresProcessor(t *testing.T) {
	t.Setenv("OCR_BACKEND", BackendDocumentAI)
	t.Setenv("DOCAI_PROJECT_ID", "proj")
	t.Setenv("DOCAI_PROCESSOR_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCAI_PROCESSOR_ID")
}

func TestLoadDocumentAIComplete(t *testing.T) {
	t.Setenv("OCR_BACKEND", BackendDocumentAI)
	t.Setenv("DOCAI_PROJECT_ID", "proj")
	t.Setenv("DOCAI_PROCESSOR_ID", "proc-123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendDocumentAI, cfg.OCRBackend)
	assert.Equal(t, "us", cfg.DocAILocation)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadTextract(t *testing.T) {
	t.Setenv("OCR_BACKEND", BackendTextract)
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("OCR_BACKEND", "clippy")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCR_BACKEND")
}

func TestSummaryBackendConfigured(t *testing.T) {
	assert.False(t, (&Config{}).SummaryBackendConfigured())
	assert.True(t, (&Config{VertexProjectID: "proj"}).SummaryBackendConfigured())
}

func TestForceMockFlag(t *testing.T) {
	t.Setenv("OCR_BACKEND", BackendTextract)
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("FORCE_MOCK_SUMMARY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.ForceMockSummary)
}
