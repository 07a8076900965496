package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/sanitize"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handlePreprocessJD extracts a structured job description from raw text.
func (s *Server) handlePreprocessJD(w http.ResponseWriter, r *http.Request) {
	var req types.PreprocessJDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "jd", Message: err.Error()})
		return
	}
	if err := checkInputLength("jd", req.JD); err != nil {
		s.errorResponse(w, err)
		return
	}

	jd, err := s.analyzer.PreprocessJD(r.Context(), req.JD)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jd)
}

// handlePreprocessResume extracts a structured resume from raw text.
func (s *Server) handlePreprocessResume(w http.ResponseWriter, r *http.Request) {
	var req types.PreprocessResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "resumeText", Message: err.Error()})
		return
	}
	if err := checkInputLength("resumeText", req.ResumeText); err != nil {
		s.errorResponse(w, err)
		return
	}

	resume, err := s.analyzer.PreprocessResume(r.Context(), req.ResumeText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleAnalyze runs the full pipeline. Requests carrying a structured resume
// skip the resume extraction step; requests with raw resume text run it first.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	if err := checkInputLength("jd", req.JD); err != nil {
		s.errorResponse(w, err)
		return
	}
	if req.StructuredResume == nil {
		if err := checkInputLength("resume", req.Resume); err != nil {
			s.errorResponse(w, err)
			return
		}
	}

	var (
		result *types.AnalysisResult
		err    error
	)
	if req.StructuredResume != nil {
		result, err = s.analyzer.Analyze(r.Context(), &req)
	} else {
		result, err = s.analyzer.AnalyzeRaw(r.Context(), &req)
	}
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// checkInputLength enforces the sanitized-length bounds on a text field.
func checkInputLength(field, text string) error {
	if !sanitize.ValidateLength(text, sanitize.DefaultMinInput, sanitize.DefaultMaxInput) {
		return &ErrValidation{
			Field: field,
			Message: fmt.Sprintf("%s must be between %d and %d characters after sanitization",
				field, sanitize.DefaultMinInput, sanitize.DefaultMaxInput),
		}
	}
	return nil
}
