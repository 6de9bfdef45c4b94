package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/veridoc/internal/apperr"
)

func TestExtractCandidateBareObject(t *testing.T) {
	candidate, err := ExtractCandidate(`{"short_summary":"ok"}`)
	require.NoError(t, err)
	assert.Equal(t, "ok", candidate["short_summary"])
}

func TestExtractCandidateWrappedInProse(t *testing.T) {
	text := "Here is the analysis you asked for:\n```json\n{\"confidence_score\": 0.7}\n```\nLet me know if you need more."
	candidate, err := ExtractCandidate(text)
	require.NoError(t, err)
	assert.Equal(t, 0.7, candidate["confidence_score"])
}

func TestExtractCandidateNestedBraces(t *testing.T) {
	text := `prefix {"parties":[{"role":"Buyer","name":"Acme"}]} suffix`
	candidate, err := ExtractCandidate(text)
	require.NoError(t, err)
	assert.Contains(t, candidate, "parties")
}

func TestExtractCandidateNoObjectIsHardFailure(t *testing.T) {
	_, err := ExtractCandidate("I could not analyze this document.")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeParseFailed, apperr.CodeOf(err))
}

func TestExtractCandidateInvalidJSONIsHardFailure(t *testing.T) {
	_, err := ExtractCandidate(`{"short_summary": oops}`)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeParseFailed, apperr.CodeOf(err))
}
