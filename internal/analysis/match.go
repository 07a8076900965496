// Package analysis implements the job/resume comparison pipeline: the match
// analysis, resume tailoring, and the orchestrator that sequences them with
// the extraction steps.
package analysis

import (
	"context"
	"encoding/json"
	"log"
	"math"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/sanitize"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	matchTemperature = 0.5
	matchMaxTokens   = 1800
	// matchJDLimit caps the raw JD text in the match prompt; the structured
	// extraction alongside it carries the rest of the signal.
	matchJDLimit = 3000

	tailorTemperature = 0.7
	tailorMaxTokens   = 2000
)

// matchAnalysis is the decoded match response. The score is decoded as a
// float since models emit fractional or out-of-range values.
type matchAnalysis struct {
	MatchScore    float64  `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Suggestions   []string `json:"suggestions"`
	SampleBullets []string `json:"sampleBullets"`
	Summary       string   `json:"summary"`
}

// BuildMatchMessages renders the match analysis prompt pair from the raw JD
// text, its structured extraction, and the structured resume.
func BuildMatchMessages(jdText string, jd *types.StructuredJobDescription, resume *types.StructuredResume) ([]llm.Message, error) {
	jdJSON, err := json.Marshal(jd)
	if err != nil {
		return nil, err
	}
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, err
	}

	user := prompts.Format(prompts.MustGet("analysis.json", "match-user"), map[string]string{
		"JDText":       sanitize.Truncate(sanitize.Sanitize(jdText), matchJDLimit),
		"StructuredJD": string(jdJSON),
		"Resume":       string(resumeJSON),
	})
	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("analysis.json", "match-system")},
		{Role: llm.RoleUser, Content: user},
	}, nil
}

// BuildRawMatchMessages renders the match prompt pair over raw JD and resume
// text, used by the single-call analyze variant that skips extraction.
func BuildRawMatchMessages(jdText, resumeText string) []llm.Message {
	user := prompts.Format(prompts.MustGet("analysis.json", "match-raw-user"), map[string]string{
		"JDText":     sanitize.Truncate(sanitize.Sanitize(jdText), matchJDLimit),
		"ResumeText": sanitize.Sanitize(resumeText),
	})
	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("analysis.json", "match-system")},
		{Role: llm.RoleUser, Content: user},
	}
}

// runMatchAnalysis executes the match step. It is mandatory: completion and
// parse failures propagate to the caller.
func runMatchAnalysis(ctx context.Context, client llm.Client, jdText string, jd *types.StructuredJobDescription, resume *types.StructuredResume) (*matchAnalysis, error) {
	messages, err := BuildMatchMessages(jdText, jd, resume)
	if err != nil {
		return nil, err
	}
	return completeMatch(ctx, client, messages)
}

func completeMatch(ctx context.Context, client llm.Client, messages []llm.Message) (*matchAnalysis, error) {
	content, err := client.Complete(ctx, messages, llm.CallOptions{
		Temperature: matchTemperature,
		MaxTokens:   matchMaxTokens,
	})
	if err != nil {
		return nil, &parsing.APICallError{Task: "match analysis", Err: err}
	}

	cleaned := llm.CleanJSONBlock(content)
	if err := schemas.Check(schemas.MatchAnalysis, cleaned); err != nil {
		log.Printf("[analysis] match shape warning: %v", err)
	}

	var match matchAnalysis
	if err := json.Unmarshal([]byte(cleaned), &match); err != nil {
		return nil, &parsing.ParseError{Task: "match analysis", Content: cleaned, Err: err}
	}

	return &match, nil
}

// clampScore rounds the model's score and pins it to [0, 100].
func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
