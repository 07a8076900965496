package analysis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// BuildTailorMessages renders the tailoring prompt pair. The full structured
// entities go in untruncated; tailoring needs every bullet available.
func BuildTailorMessages(jd *types.StructuredJobDescription, resume *types.StructuredResume) ([]llm.Message, error) {
	jdJSON, err := json.Marshal(jd)
	if err != nil {
		return nil, err
	}
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, err
	}

	user := prompts.Format(prompts.MustGet("analysis.json", "tailor-user"), map[string]string{
		"StructuredJD": string(jdJSON),
		"Resume":       string(resumeJSON),
	})
	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("analysis.json", "tailor-system")},
		{Role: llm.RoleUser, Content: user},
	}, nil
}

// GenerateTailoredResume rewrites the resume content to target the extracted
// job description.
func GenerateTailoredResume(ctx context.Context, client llm.Client, jd *types.StructuredJobDescription, resume *types.StructuredResume) (*types.TailoredResume, error) {
	messages, err := BuildTailorMessages(jd, resume)
	if err != nil {
		return nil, err
	}

	content, err := client.Complete(ctx, messages, llm.CallOptions{
		Temperature: tailorTemperature,
		MaxTokens:   tailorMaxTokens,
	})
	if err != nil {
		return nil, &parsing.APICallError{Task: "tailoring", Err: err}
	}

	cleaned := llm.CleanJSONBlock(content)
	if err := schemas.Check(schemas.TailoredResume, cleaned); err != nil {
		log.Printf("[analysis] tailored resume shape warning: %v", err)
	}

	var tailored types.TailoredResume
	if err := json.Unmarshal([]byte(cleaned), &tailored); err != nil {
		return nil, &parsing.ParseError{Task: "tailoring", Content: cleaned, Err: err}
	}

	tailored.Normalize()
	return &tailored, nil
}
