package summary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/veridoc/internal/models"
)

func TestMockSummarySatisfiesInvariants(t *testing.T) {
	mock := MockSummary()

	assertInvariants(t, mock)
	assert.Equal(t, MockConfidenceScore, mock.ConfidenceScore)
	assert.NotEmpty(t, mock.Parties)
	for _, flag := range mock.RiskFlags {
		assert.GreaterOrEqual(t, flag.Score, 1)
		assert.LessOrEqual(t, flag.Score, 10)
	}
	for _, red := range mock.SuggestedRedactions {
		assert.True(t, red.Valid())
	}
	for _, date := range mock.ImportantDates {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, date.Date)
	}
}

func TestMockSummaryIsFixedPointOfNormalize(t *testing.T) {
	mock := MockSummary()

	raw, err := json.Marshal(mock)
	require.NoError(t, err)
	var candidate Candidate
	require.NoError(t, json.Unmarshal(raw, &candidate))

	assert.Equal(t, mock, Normalize(candidate))
}

func TestMockSummaryIsStable(t *testing.T) {
	assert.Equal(t, MockSummary(), MockSummary())
}

func TestMockRiskFlagsCoverAllLevels(t *testing.T) {
	levels := map[string]bool{}
	for _, flag := range MockSummary().RiskFlags {
		levels[models.RiskLevel(flag.Score)] = true
	}
	assert.True(t, levels["low"])
	assert.True(t, levels["medium"])
	assert.True(t, levels["high"])
}
