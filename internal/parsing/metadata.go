package parsing

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/sanitize"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// BuildMetadataMessages strips non-content elements from the posting HTML,
// truncates it, and renders the metadata extraction prompt pair. The markup
// itself is kept since hrefs and img attributes carry the URLs the extraction
// asks for.
func BuildMetadataMessages(html string) []llm.Message {
	stripped := sanitize.Truncate(ingestion.StripHTMLNoise(html), sanitize.MaxLength)
	user := prompts.Format(prompts.MustGet("extraction.json", "metadata-user"), map[string]string{
		"HTML": stripped,
	})
	return []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("extraction.json", "metadata-system")},
		{Role: llm.RoleUser, Content: user},
	}
}

// ExtractJobMetadata extracts posting metadata from raw listing-page HTML.
// The nested model output is flattened into the response shape; missing
// fields flatten to empty strings.
func ExtractJobMetadata(ctx context.Context, client llm.Client, html string) (*types.JobMetadataResponse, error) {
	content, err := client.Complete(ctx, BuildMetadataMessages(html), llm.CallOptions{
		Temperature: metadataTemperature,
		MaxTokens:   metadataMaxTokens,
	})
	if err != nil {
		return nil, &APICallError{Task: "job metadata", Err: err}
	}

	cleaned := llm.CleanJSONBlock(content)
	if err := schemas.Check(schemas.JobMetadata, cleaned); err != nil {
		log.Printf("[parsing] job metadata shape warning: %v", err)
	}

	var parsed types.ParsedJobMetadata
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("[parsing] unparseable job metadata output: %s", snippet(cleaned))
		return nil, &ParseError{Task: "job metadata", Content: cleaned, Err: err}
	}

	return parsed.Flatten(), nil
}
