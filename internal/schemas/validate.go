// Package schemas provides JSON Schema checks for model output shapes. The
// checks are diagnostic: a mismatch is reported to the caller for logging but
// parsing proceeds with lenient unmarshal-and-default semantics regardless.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by Check.
const (
	JobDescription = "job_description"
	Resume         = "resume"
	JobMetadata    = "job_metadata"
	MatchAnalysis  = "match_analysis"
	TailoredResume = "tailored_resume"
)

var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// ShapeError reports the fields where a payload diverged from the expected
// shape.
type ShapeError struct {
	Name   string
	Issues []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("payload does not match %s shape: %s", e.Name, strings.Join(e.Issues, "; "))
}

// Check validates jsonContent against the named embedded schema. It returns a
// *ShapeError on mismatch, or an error when the schema cannot be loaded or the
// content is not JSON.
func Check(name, jsonContent string) error {
	schema, err := load(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to validate against %s schema: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &ShapeError{Name: name, Issues: issues}
}

func load(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	data, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %q: %w", name, err)
	}

	compiled[name] = schema
	return schema, nil
}
