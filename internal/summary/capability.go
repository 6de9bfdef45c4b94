package summary

import "github.com/veridoc/veridoc/internal/config"

// Capability records whether a real summarization backend is usable for this
// process, decided once at startup. When unavailable, the summarization
// stage serves the mock generator instead of failing; Reason explains why in
// logs.
type Capability struct {
	Available bool
	Reason    string
}

// DetectCapability evaluates the summarization backend availability from
// configuration. Missing credentials are a degradation, not an error.
func DetectCapability(cfg *config.Config) Capability {
	if cfg.ForceMockSummary {
		return Capability{Reason: "mock summarization forced by configuration"}
	}
	if !cfg.SummaryBackendConfigured() {
		return Capability{Reason: "no summarization credentials configured"}
	}
	return Capability{Available: true}
}
