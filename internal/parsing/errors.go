package parsing

import "fmt"

// APICallError wraps a completion-client failure with the extraction task that
// triggered it.
type APICallError struct {
	Task string
	Err  error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("%s extraction call failed: %v", e.Task, e.Err)
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

// ParseError reports model output that could not be decoded into the expected
// structure even after JSON block cleanup.
type ParseError struct {
	Task    string
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response as JSON: %v", e.Task, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// snippet trims raw model output for log lines.
func snippet(content string) string {
	if len(content) > 120 {
		return content[:120] + "..."
	}
	return content
}
