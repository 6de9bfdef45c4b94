package summary

import (
	"encoding/json"

	"github.com/veridoc/veridoc/internal/models"
)

// Candidate is an untrusted, possibly-incomplete summary object as decoded
// from a backend response. Only Normalize may turn one into a
// models.SummaryResult.
type Candidate map[string]any

// Normalize repairs an arbitrary candidate into a fully invariant-respecting
// summary. It is total (every shape is handled) and idempotent: normalizing
// an already-normalized result leaves it unchanged. Fields are independent;
// a bad value in one never affects another.
func Normalize(candidate Candidate) models.SummaryResult {
	return models.SummaryResult{
		ShortSummary:        stringField(candidate, "short_summary", models.DefaultShortSummary),
		Parties:             sliceField[models.Party](candidate, "parties"),
		ImportantDates:      sliceField[models.ImportantDate](candidate, "important_dates"),
		Obligations:         sliceField[models.Obligation](candidate, "obligations"),
		PaymentTerms:        optionalString(candidate, "payment_terms"),
		TerminationClauses:  optionalString(candidate, "termination_clauses"),
		GoverningLaw:        optionalString(candidate, "governing_law"),
		RiskFlags:           sliceField[models.RiskFlag](candidate, "risk_flags"),
		SuggestedRedactions: sliceField[models.Redaction](candidate, "suggested_redactions"),
		ConfidenceScore:     scoreField(candidate, "confidence_score"),
	}
}

// stringField returns the candidate value when it is a non-empty string,
// otherwise the field's fixed default.
func stringField(c Candidate, key, fallback string) string {
	if s, ok := c[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// optionalString returns the candidate value when it is a non-empty string,
// otherwise nil as the explicit absent marker. An empty string never stands
// in for absence.
func optionalString(c Candidate, key string) *string {
	if s, ok := c[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

// sliceField accepts the candidate value only when it is verifiably an
// ordered sequence, substituting an empty (non-nil) slice otherwise.
// Elements are not validated: a malformed element inside a valid sequence
// decodes best-effort and passes through.
func sliceField[T any](c Candidate, key string) []T {
	out := []T{}
	v, ok := c[key]
	if !ok || v == nil {
		return out
	}

	raw, err := json.Marshal(v)
	if err != nil || len(raw) == 0 || raw[0] != '[' {
		return out
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out
	}

	for _, elem := range elems {
		var t T
		// Decode errors are deliberately ignored: whatever fields did decode
		// pass through, the rest stay zero.
		_ = json.Unmarshal(elem, &t)
		out = append(out, t)
	}
	return out
}

// scoreField accepts only numeric confidence values, clamped into [0,1].
// Anything else becomes 0.5: unknown confidence, distinct from a backend
// that actually reported zero.
func scoreField(c Candidate, key string) float64 {
	v, ok := c[key]
	if !ok {
		return 0.5
	}
	switch n := v.(type) {
	case float64:
		return models.ClampConfidence(n)
	case float32:
		return models.ClampConfidence(float64(n))
	case int:
		return models.ClampConfidence(float64(n))
	case int64:
		return models.ClampConfidence(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0.5
		}
		return models.ClampConfidence(f)
	default:
		return 0.5
	}
}
