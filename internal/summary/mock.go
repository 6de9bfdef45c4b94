package summary

import "github.com/veridoc/veridoc/internal/models"

// MockConfidenceScore is the fixed confidence reported by the mock summary.
const MockConfidenceScore = 0.95

// MockSummary produces a complete, realistic summary without any backend
// call. The returned value satisfies every SummaryResult invariant and is a
// fixed point of Normalize.
func MockSummary() models.SummaryResult {
	payment := "Monthly rent of $2,400 due on the first of each month, with a 5% late fee after a 5-day grace period."
	termination := "Either party may terminate with 60 days written notice; early termination by the tenant incurs a penalty of two months rent."
	law := "State of California"

	return models.SummaryResult{
		ShortSummary: "Residential lease agreement between Meridian Property Group LLC and Jordan Avery for the premises at 1420 Sycamore Lane, " +
			"running twelve months from March 1, 2024. Rent is $2,400 per month with a $3,600 security deposit, and the lease renews " +
			"automatically unless either party gives 60 days notice.",
		Parties: []models.Party{
			{Role: "Landlord", Name: "Meridian Property Group LLC", Excerpt: "this lease is entered into by Meridian Property Group LLC (\"Landlord\")"},
			{Role: "Tenant", Name: "Jordan Avery", Excerpt: "and Jordan Avery (\"Tenant\"), collectively the \"Parties\""},
		},
		ImportantDates: []models.ImportantDate{
			{Type: "commencement", Date: "2024-03-01", Excerpt: "the term begins on March 1, 2024"},
			{Type: "expiration", Date: "2025-02-28", Excerpt: "and ends on February 28, 2025"},
			{Type: "notice_deadline", Date: "2024-12-31", Excerpt: "notice of non-renewal must be delivered no later than December 31, 2024"},
		},
		Obligations: []models.Obligation{
			{Who: "Tenant", Action: "pay rent of $2,400 by the first of each month", Excerpt: "Tenant shall pay rent in the amount of $2,400.00 on or before the first day of each month"},
			{Who: "Landlord", Action: "maintain the premises in habitable condition", Excerpt: "Landlord shall keep the premises in a habitable condition as required by law"},
			{Who: "Tenant", Action: "carry renters insurance for the full term", Excerpt: "Tenant agrees to maintain renters insurance throughout the term"},
		},
		PaymentTerms:       &payment,
		TerminationClauses: &termination,
		GoverningLaw:       &law,
		RiskFlags: []models.RiskFlag{
			{Score: 7, Reason: "Automatic renewal clause with a long 60-day notice window"},
			{Score: 5, Reason: "Early termination penalty of two months rent"},
			{Score: 2, Reason: "Standard late fee provision"},
		},
		SuggestedRedactions: []models.Redaction{
			{Page: 1, StartChar: 112, EndChar: 141, Reason: "Tenant personal address"},
			{Page: 1, StartChar: 388, EndChar: 399, Reason: "Bank account number in payment instructions"},
		},
		ConfidenceScore: MockConfidenceScore,
	}
}
