package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStructuredJobDescriptionSerializesEmptyLists(t *testing.T) {
	jd := &StructuredJobDescription{Title: "Engineer"}
	jd.Normalize()

	data, err := json.Marshal(jd)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("normalized entity should never serialize null: %s", data)
	}
}

func TestStructuredResumeNormalizeNested(t *testing.T) {
	r := &StructuredResume{
		Experience: []ExperienceEntry{{Company: "Acme"}},
		Projects:   []Project{{Name: "proj"}},
	}
	r.Normalize()

	if r.Experience[0].Bullets == nil || r.Projects[0].Technologies == nil {
		t.Error("nested list fields should be non-nil after Normalize")
	}
	if r.InferredExperience != nil {
		t.Error("InferredExperience should stay nil when absent")
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "inferredExperience") {
		t.Errorf("absent inferredExperience should be omitted: %s", data)
	}
}

func TestDegradedResume(t *testing.T) {
	r := DegradedResume(strings.Repeat("x", 1500), 1000)

	if len(r.Summary) != 1000 {
		t.Errorf("summary length = %d, want 1000", len(r.Summary))
	}
	if r.Name != "" || len(r.Skills) != 0 || len(r.Experience) != 0 {
		t.Errorf("degraded resume should be empty apart from summary: %+v", r)
	}
	if r.Skills == nil {
		t.Error("degraded resume lists should be non-nil")
	}
}

func TestParsedJobMetadataFlatten(t *testing.T) {
	var parsed ParsedJobMetadata
	parsed.Company.Name = "Acme"
	parsed.Company.LinkedinURL = "https://linkedin.com/company/acme"
	parsed.Job.Title = "SRE"
	parsed.Job.ApplyURL = "https://acme.com/apply"

	flat := parsed.Flatten()

	if flat.CompanyName != "Acme" || flat.Title != "SRE" {
		t.Errorf("Flatten() = %+v", flat)
	}
	if flat.CompanyLinkedinURL != "https://linkedin.com/company/acme" {
		t.Errorf("CompanyLinkedinURL = %q", flat.CompanyLinkedinURL)
	}
	if flat.Salary != "" || flat.Remote != "" {
		t.Error("uninstructed fields should stay empty")
	}
	if flat.Benefits == nil || flat.AdditionalInfo == nil {
		t.Error("benefits and additionalInfo should be empty containers, not nil")
	}
}

func TestAnalysisResultOmitsAbsentMetadata(t *testing.T) {
	result := &AnalysisResult{
		MatchedSkills:  []string{},
		MissingSkills:  []string{},
		Suggestions:    []string{},
		SampleBullets:  []string{},
		TailoredResume: EmptyTailoredResume(),
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "jobMetadata") {
		t.Errorf("absent metadata should be omitted: %s", data)
	}
	if !strings.Contains(string(data), `"tailoredResume"`) {
		t.Errorf("tailored resume placeholder should be present: %s", data)
	}
}

func TestEmptyTailoredResume(t *testing.T) {
	tr := EmptyTailoredResume()

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("empty tailored resume should never serialize null: %s", data)
	}
}
