package prompts

import (
	"strings"
	"testing"
)

func TestGetKnownPrompts(t *testing.T) {
	cases := []struct {
		filename string
		key      string
		contains string
	}{
		{"extraction.json", "jd-system", "job description"},
		{"extraction.json", "jd-user", "{{.JDText}}"},
		{"extraction.json", "resume-user", "{{.ResumeText}}"},
		{"extraction.json", "metadata-user", "{{.HTML}}"},
		{"analysis.json", "match-user", "{{.Resume}}"},
		{"analysis.json", "match-raw-user", "{{.ResumeText}}"},
		{"analysis.json", "tailor-user", "{{.StructuredJD}}"},
	}

	for _, tc := range cases {
		got, err := Get(tc.filename, tc.key)
		if err != nil {
			t.Errorf("Get(%q, %q) returned error: %v", tc.filename, tc.key, err)
			continue
		}
		if !strings.Contains(got, tc.contains) {
			t.Errorf("Get(%q, %q) missing %q", tc.filename, tc.key, tc.contains)
		}
	}
}

func TestGetMissingKey(t *testing.T) {
	if _, err := Get("extraction.json", "nonexistent"); err == nil {
		t.Error("expected error for missing key, got nil")
	}
}

func TestGetMissingFile(t *testing.T) {
	if _, err := Get("nope.json", "jd-system"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestFormat(t *testing.T) {
	template := "Job: {{.JDText}} Resume: {{.Resume}}"
	got := Format(template, map[string]string{
		"JDText": "backend engineer",
		"Resume": "10 years of Go",
	})
	want := "Job: backend engineer Resume: 10 years of Go"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	got := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	if got != "x {{.Unknown}}" {
		t.Errorf("Format() = %q, want %q", got, "x {{.Unknown}}")
	}
}
