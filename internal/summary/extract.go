package summary

import (
	"encoding/json"
	"strings"

	"github.com/veridoc/veridoc/internal/apperr"
)

// ExtractCandidate locates the outermost brace pair in a model response and
// decodes it into a candidate object. The response may wrap the JSON in
// prose or markdown fences; text with no JSON object at all is a hard parse
// failure, distinct from an incomplete object the normalizer can repair.
func ExtractCandidate(text string) (Candidate, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, apperr.New(apperr.CodeParseFailed, "no JSON object found in model response")
	}

	var candidate Candidate
	if err := json.Unmarshal([]byte(text[start:end+1]), &candidate); err != nil {
		return nil, apperr.Wrap(apperr.CodeParseFailed, err, "model response is not valid JSON")
	}
	return candidate, nil
}
