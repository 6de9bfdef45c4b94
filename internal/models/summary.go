package models

// DefaultShortSummary is the placeholder used when the model supplies no
// usable short summary.
const DefaultShortSummary = "No summary available."

// Party identifies one party to the document.
type Party struct {
	Role    string `json:"role"`
	Name    string `json:"name"`
	Excerpt string `json:"excerpt"`
}

// ImportantDate is one dated event extracted from the document.
// Date is ISO-8601 (YYYY-MM-DD).
type ImportantDate struct {
	Type    string `json:"type"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
}

// Obligation is one duty the document places on a party.
type Obligation struct {
	Who     string `json:"who"`
	Action  string `json:"action"`
	Excerpt string `json:"excerpt"`
}

// RiskFlag marks a clause worth reviewing. Score is an integer 1-10.
type RiskFlag struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Redaction suggests hiding a character range on a page.
type Redaction struct {
	Page      int    `json:"page"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
	Reason    string `json:"reason"`
}

// Valid reports whether the redaction addresses a real range on a real page.
func (r Redaction) Valid() bool {
	return r.Page >= 1 && r.StartChar < r.EndChar
}

// RiskLevel buckets a 1-10 risk score into "low", "medium" or "high".
func RiskLevel(score int) string {
	switch {
	case score <= 3:
		return "low"
	case score <= 6:
		return "medium"
	default:
		return "high"
	}
}

// SummaryResult is the canonical output of document analysis. Every
// slice-typed field is non-nil, confidence is within [0,1], and the optional
// text fields use nil (JSON null) as the explicit absent marker. Values of
// this type are produced only by the normalizer or the mock generator and are
// never mutated afterwards.
type SummaryResult struct {
	ShortSummary        string          `json:"short_summary"`
	Parties             []Party         `json:"parties"`
	ImportantDates      []ImportantDate `json:"important_dates"`
	Obligations         []Obligation    `json:"obligations"`
	PaymentTerms        *string         `json:"payment_terms"`
	TerminationClauses  *string         `json:"termination_clauses"`
	GoverningLaw        *string         `json:"governing_law"`
	RiskFlags           []RiskFlag      `json:"risk_flags"`
	SuggestedRedactions []Redaction     `json:"suggested_redactions"`
	ConfidenceScore     float64         `json:"confidence_score"`
}
