package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer sequences the extraction, match, and tailoring steps against a
// single completion client. Steps run sequentially; each consumes the output
// of earlier ones.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer builds an Analyzer on the given completion client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// PreprocessJD extracts a structured job description from raw text.
func (a *Analyzer) PreprocessJD(ctx context.Context, jdText string) (*types.StructuredJobDescription, error) {
	return parsing.ExtractJobDescription(ctx, a.client, jdText)
}

// PreprocessResume extracts a structured resume from raw text.
func (a *Analyzer) PreprocessResume(ctx context.Context, resumeText string) (*types.StructuredResume, error) {
	return parsing.ExtractResume(ctx, a.client, resumeText)
}

// Analyze runs the full pipeline with an already-structured resume. JD
// extraction and the match analysis are mandatory; metadata extraction and
// tailoring are best-effort and degrade without failing the call.
func (a *Analyzer) Analyze(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalysisResult, error) {
	resume := req.StructuredResume
	resume.Normalize()
	return a.run(ctx, req.JD, req.JobMetadata, resume)
}

// AnalyzeRaw is the single-call variant over raw JD and resume text: one
// match analysis, no extraction, no metadata, no tailoring. The result
// carries an empty tailored-resume placeholder and no structured JD.
func (a *Analyzer) AnalyzeRaw(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalysisResult, error) {
	match, err := completeMatch(ctx, a.client, BuildRawMatchMessages(req.JD, req.Resume))
	if err != nil {
		return nil, err
	}

	result := &types.AnalysisResult{
		MatchScore:     clampScore(match.MatchScore),
		MatchedSkills:  match.MatchedSkills,
		MissingSkills:  match.MissingSkills,
		Suggestions:    match.Suggestions,
		SampleBullets:  match.SampleBullets,
		Summary:        match.Summary,
		TailoredResume: types.EmptyTailoredResume(),
	}
	normalizeResult(result)
	return result, nil
}

func (a *Analyzer) run(ctx context.Context, jdText, metadataHTML string, resume *types.StructuredResume) (*types.AnalysisResult, error) {
	jd, err := parsing.ExtractJobDescription(ctx, a.client, jdText)
	if err != nil {
		return nil, err
	}

	var metadata *types.JobMetadataResponse
	if strings.TrimSpace(metadataHTML) != "" {
		metadata, err = parsing.ExtractJobMetadata(ctx, a.client, metadataHTML)
		if err != nil {
			log.Printf("[analyze] metadata extraction failed, continuing without it: %v", err)
			metadata = nil
		}
	}

	match, err := runMatchAnalysis(ctx, a.client, jdText, jd, resume)
	if err != nil {
		return nil, err
	}

	tailored, err := GenerateTailoredResume(ctx, a.client, jd, resume)
	if err != nil {
		log.Printf("[analyze] tailoring failed, returning empty placeholder: %v", err)
		tailored = types.EmptyTailoredResume()
	}

	result := &types.AnalysisResult{
		MatchScore:     clampScore(match.MatchScore),
		MatchedSkills:  match.MatchedSkills,
		MissingSkills:  match.MissingSkills,
		Suggestions:    match.Suggestions,
		SampleBullets:  match.SampleBullets,
		Summary:        match.Summary,
		StructuredJD:   jd,
		TailoredResume: tailored,
		JobMetadata:    metadata,
	}
	normalizeResult(result)
	return result, nil
}

// normalizeResult guarantees the response-level list fields are non-nil.
func normalizeResult(r *types.AnalysisResult) {
	if r.MatchedSkills == nil {
		r.MatchedSkills = []string{}
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	if r.SampleBullets == nil {
		r.SampleBullets = []string{}
	}
}
