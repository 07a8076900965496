// Package parsing turns raw job description, resume, and posting-page text
// into structured entities via prompt construction, a completion call, and
// lenient JSON decoding.
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

// Sampling parameters per extraction task.
const (
	jdTemperature = 0.3
	jdMaxTokens   = 1200

	resumeTemperature = 0.2
	resumeMaxTokens   = 1200

	metadataTemperature = 0.2
	metadataMaxTokens   = 1000
)

// BuildJDMessages sanitizes the job description text and renders the
// extraction prompt pair.
func BuildJDMessages(jdText string) []llm.Message {
	sanitized := sanitize.Sanitize(jdText)
	user := prompts.Format(prompts.MustGet("extraction.json", "jd-user"), map[string]string{
		"JDText": sanitized,
	})
	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("extraction.json", "jd-system")},
		{Role: llm.RoleUser, Content: user},
	}
}

// ExtractJobDescription runs the structured JD extraction. A completion
// failure surfaces as *APICallError and unparseable output as *ParseError; a
// successful parse is normalized so every list field is non-nil.
func ExtractJobDescription(ctx context.Context, client llm.Client, jdText string) (*types.StructuredJobDescription, error) {
	content, err := client.Complete(ctx, BuildJDMessages(jdText), llm.CallOptions{
		Temperature: jdTemperature,
		MaxTokens:   jdMaxTokens,
	})
	if err != nil {
		return nil, &APICallError{Task: "job description", Err: err}
	}

	cleaned := llm.CleanJSONBlock(content)
	if err := schemas.Check(schemas.JobDescription, cleaned); err != nil {
		log.Printf("[parsing] job description shape warning: %v", err)
	}

	var jd types.StructuredJobDescription
	if err := json.Unmarshal([]byte(cleaned), &jd); err != nil {
		log.Printf("[parsing] unparseable job description output: %s", snippet(cleaned))
		return nil, &ParseError{Task: "job description", Content: cleaned, Err: err}
	}

	jd.Normalize()
	return &jd, nil
}
