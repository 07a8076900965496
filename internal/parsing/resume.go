package parsing

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/sanitize"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// degradedSummaryLimit caps how much sanitized input is preserved in the
// summary field when resume extraction degrades.
const degradedSummaryLimit = 1000

// BuildResumeMessages sanitizes the resume text and renders the extraction
// prompt pair.
func BuildResumeMessages(resumeText string) []llm.Message {
	sanitized := sanitize.Sanitize(resumeText)
	user := prompts.Format(prompts.MustGet("extraction.json", "resume-user"), map[string]string{
		"ResumeText": sanitized,
	})
	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("extraction.json", "resume-system")},
		{Role: llm.RoleUser, Content: user},
	}
}

// ExtractResume runs the structured resume extraction. Completion failures
// surface as *APICallError. Unlike job descriptions, unparseable output does
// not fail the call: the caller still gets a usable resume whose summary
// carries a slice of the sanitized input.
func ExtractResume(ctx context.Context, client llm.Client, resumeText string) (*types.StructuredResume, error) {
	sanitized := sanitize.Sanitize(resumeText)

	content, err := client.Complete(ctx, BuildResumeMessages(resumeText), llm.CallOptions{
		Temperature: resumeTemperature,
		MaxTokens:   resumeMaxTokens,
	})
	if err != nil {
		return nil, &APICallError{Task: "resume", Err: err}
	}

	cleaned := llm.CleanJSONBlock(content)
	if err := schemas.Check(schemas.Resume, cleaned); err != nil {
		log.Printf("[parsing] resume shape warning: %v", err)
	}

	var resume types.StructuredResume
	if err := json.Unmarshal([]byte(cleaned), &resume); err != nil {
		log.Printf("[parsing] unparseable resume output, degrading: %s", snippet(cleaned))
		return types.DegradedResume(sanitized, degradedSummaryLimit), nil
	}

	resume.Normalize()
	return &resume, nil
}
