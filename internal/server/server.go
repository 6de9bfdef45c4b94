// Package server exposes the OCR and summarization pipelines over HTTP.
// Handlers validate input, delegate to the pipeline packages, and translate
// taxonomy errors into status codes; they hold no pipeline logic of their
// own.
package server

import (
	"encoding/json"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/models"
	"github.com/veridoc/veridoc/internal/ocr"
	"github.com/veridoc/veridoc/internal/summary"
)

// Service wires the request handlers to their collaborators. All fields are
// set once at startup; requests share no mutable state.
type Service struct {
	cfg        *config.Config
	provider   ocr.Provider
	summarizer summary.Summarizer
	capability summary.Capability
	storage    *storage.Client
	log        *logrus.Logger
}

// New creates the service. storageClient may be nil, in which case gcsUri
// inputs are rejected. summarizer may be nil only when capability reports
// the backend unavailable.
func New(cfg *config.Config, provider ocr.Provider, summarizer summary.Summarizer, capability summary.Capability, storageClient *storage.Client, log *logrus.Logger) *Service {
	return &Service{
		cfg:        cfg,
		provider:   provider,
		summarizer: summarizer,
		capability: capability,
		storage:    storageClient,
		log:        log,
	}
}

func (s *Service) requestLogger(r *http.Request) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"requestId": uuid.NewString(),
		"method":    r.Method,
		"path":      r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForCode(apperr.CodeOf(err)), models.ErrorResponse{
		Error:   string(apperr.CodeOf(err)),
		Details: apperr.MessageOf(err),
	})
}

// statusForCode maps the error taxonomy onto HTTP statuses: input problems
// are 400-class, backend and configuration problems 500-class, and a
// document with no extractable text 422.
func statusForCode(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidInput:
		return http.StatusBadRequest
	case apperr.CodeNoText:
		return http.StatusUnprocessableEntity
	case apperr.CodeBackendFailed, apperr.CodeParseFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
