package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/veridoc/veridoc/internal/apperr"
	"github.com/veridoc/veridoc/internal/gcp"
	"github.com/veridoc/veridoc/internal/models"
	"github.com/veridoc/veridoc/internal/ocr"
	"github.com/veridoc/veridoc/internal/pdfinfo"
	"github.com/veridoc/veridoc/internal/summary"
)

// HandleOCR accepts a document (inline base64 or a GCS URI), runs it through
// the active OCR backend, and returns the assembled document-level result.
func (s *Service) HandleOCR(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	if r.Method != http.MethodPost {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "method %s not allowed", r.Method))
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Wrap(apperr.CodeInvalidInput, err, "could not parse request body"))
		return
	}

	doc, err := s.resolveDocument(r, &req)
	if err != nil {
		log.WithError(err).Warn("Rejected OCR request")
		writeError(w, err)
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = "document"
	}
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(doc)
	}

	var pageCount int
	var pageSizes []models.PageSize
	if mimeType == "application/pdf" {
		if n, sizes, err := pdfinfo.Inspect(doc); err != nil {
			log.WithError(err).Warn("Could not inspect PDF; proceeding without pagination")
		} else {
			pageCount, pageSizes = n, sizes
		}
	}

	log.WithFields(map[string]any{
		"filename": filename,
		"mimeType": mimeType,
		"provider": s.provider.Name(),
		"bytes":    len(doc),
	}).Info("Starting OCR")

	pages, err := s.provider.Process(r.Context(), doc, mimeType, pageCount)
	if err != nil {
		log.WithError(err).Error("OCR processing failed")
		writeError(w, err)
		return
	}

	result := ocr.Assemble(filename, s.provider.Name(), pages, pageSizes)
	log.WithField("pages", result.Meta.Pages).Info("OCR complete")
	writeJSON(w, http.StatusOK, result)
}

// resolveDocument decodes the inline payload or fetches the GCS object.
func (s *Service) resolveDocument(r *http.Request, req *models.AnalyzeRequest) ([]byte, error) {
	switch {
	case req.Document != "":
		doc, err := base64.StdEncoding.DecodeString(req.Document)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeInvalidInput, err, "document is not valid base64")
		}
		if len(doc) == 0 {
			return nil, apperr.New(apperr.CodeInvalidInput, "document is empty")
		}
		return doc, nil
	case req.GCSUri != "":
		if s.storage == nil {
			return nil, apperr.New(apperr.CodeConfiguration, "GCS input is not configured")
		}
		doc, err := gcp.FetchObject(r.Context(), s.storage, req.GCSUri)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeBackendFailed, err, "could not fetch document from GCS")
		}
		return doc, nil
	default:
		return nil, apperr.New(apperr.CodeInvalidInput, "document is required")
	}
}

// HandleSummarize accepts a previously assembled OCR result plus optional
// user instructions and returns a normalized summary. When no summarization
// backend is available the fixed mock summary is served instead.
func (s *Service) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	if r.Method != http.MethodPost {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "method %s not allowed", r.Method))
		return
	}

	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Wrap(apperr.CodeInvalidInput, err, "could not parse request body"))
		return
	}

	payload, err := summary.BuildRequest(req.OCRResult, req.UserInstructions)
	if err != nil {
		log.WithError(err).Warn("Rejected summarize request")
		writeError(w, err)
		return
	}

	if !s.capability.Available {
		log.WithField("reason", s.capability.Reason).Info("Serving mock summary")
		writeJSON(w, http.StatusOK, summary.MockSummary())
		return
	}

	candidate, err := s.summarizer.Summarize(r.Context(), payload)
	if err != nil {
		log.WithError(err).Error("Summarization failed")
		writeError(w, err)
		return
	}

	result := summary.Normalize(candidate)
	log.WithField("confidence", result.ConfidenceScore).Info("Summarization complete")
	writeJSON(w, http.StatusOK, result)
}
