package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PreprocessJDRequest is the request body for POST /api/preprocess/jd.
type PreprocessJDRequest struct {
	JD string `json:"jd" validate:"required"`
}

// PreprocessResumeRequest is the request body for POST /api/preprocess/resume.
type PreprocessResumeRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

// AnalyzeRequest is the request body for POST /api/analyze. Exactly one of
// Resume (raw text) or StructuredResume must be supplied; JobMetadata is an
// optional raw metadata source consulted only on the structured path.
type AnalyzeRequest struct {
	JD               string            `json:"jd" validate:"required"`
	Resume           string            `json:"resume,omitempty"`
	StructuredResume *StructuredResume `json:"structuredResume,omitempty"`
	JobMetadata      string            `json:"jobMetadata,omitempty"`
}

// Validate validates the PreprocessJDRequest using the validator.
func (r *PreprocessJDRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("jd is required")
	}
	return nil
}

// Validate validates the PreprocessResumeRequest using the validator.
func (r *PreprocessResumeRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("resumeText is required")
	}
	return nil
}

// Validate validates the AnalyzeRequest using the validator plus the
// resume/structuredResume exclusivity rule.
func (r *AnalyzeRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("jd is required")
	}
	if r.Resume == "" && r.StructuredResume == nil {
		return fmt.Errorf("either resume or structuredResume is required")
	}
	return nil
}
