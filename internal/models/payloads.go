package models

// These structs define the JSON payloads for the two HTTP endpoints.

// AnalyzeRequest is the input for the OCR endpoint. Exactly one of Document
// (inline base64) or GCSUri must be set.
type AnalyzeRequest struct {
	Document string `json:"document,omitempty"`
	GCSUri   string `json:"gcsUri,omitempty"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
}

// SummarizeRequest is the input for the summarization endpoint.
type SummarizeRequest struct {
	OCRResult        *OCRResult `json:"ocr_result"`
	UserInstructions string     `json:"user_instructions,omitempty"`
}

// ErrorResponse is the uniform error body for both endpoints. Error is a
// short machine-checkable category, Details a human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
