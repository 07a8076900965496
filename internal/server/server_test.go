package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// scriptedClient returns one scripted response per call, in order.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
}

func (c *scriptedClient) Complete(ctx context.Context, messages []llm.Message, opts llm.CallOptions) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", errors.New("scriptedClient: unexpected call")
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func testServer(client llm.Client) *Server {
	cfg := &config.Config{Port: "0", Environment: "production"}
	return New(cfg, analysis.NewAnalyzer(client))
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(&scriptedClient{}), http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if _, ok := body["timestamp"]; !ok {
		t.Error("health body should carry a timestamp")
	}
}

func TestPreprocessJDMissingField(t *testing.T) {
	client := &scriptedClient{}
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/preprocess/jd", `{"jd": ""}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "jd") {
		t.Errorf("error should name the field, got %s", rec.Body.String())
	}
	if client.calls != 0 {
		t.Error("validation failure must not reach the model")
	}
}

func TestPreprocessJDTooShort(t *testing.T) {
	client := &scriptedClient{}
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/preprocess/jd", `{"jd": "short"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if client.calls != 0 {
		t.Error("length failure must not reach the model")
	}
}

func TestPreprocessJDSuccess(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"title": "Backend Engineer", "mustHaveSkills": ["Go"]}`,
	}}
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/preprocess/jd",
		`{"jd": "We are hiring a backend engineer with Go experience."}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var jd types.StructuredJobDescription
	if err := json.Unmarshal(rec.Body.Bytes(), &jd); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if jd.Title != "Backend Engineer" {
		t.Errorf("Title = %q", jd.Title)
	}
	if jd.Technologies == nil {
		t.Error("list fields should serialize as arrays, not null")
	}
}

func TestPreprocessResumeInvalidBody(t *testing.T) {
	rec := doRequest(t, testServer(&scriptedClient{}), http.MethodPost, "/api/preprocess/resume", `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeRequiresResumeSource(t *testing.T) {
	client := &scriptedClient{}
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/analyze",
		`{"jd": "We are hiring a backend engineer."}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "structuredResume") {
		t.Errorf("error should mention the missing resume source, got %s", rec.Body.String())
	}
	if client.calls != 0 {
		t.Error("validation failure must not reach the model")
	}
}

func TestAnalyzeStructuredPath(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"title": "Backend Engineer"}`,
		`{"matchScore": 73, "matchedSkills": ["Go"], "summary": "fit"}`,
		`{"tailoredSummary": "targeted summary"}`,
	}}
	body := `{
		"jd": "We are hiring a backend engineer.",
		"structuredResume": {"name": "Jane Dev", "skills": ["Go"]}
	}`
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/analyze", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if client.calls != 3 {
		t.Errorf("structured path should make 3 model calls, got %d", client.calls)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if result.MatchScore != 73 {
		t.Errorf("MatchScore = %d, want 73", result.MatchScore)
	}
	if result.JobMetadata != nil {
		t.Error("jobMetadata should be absent when no metadata source was supplied")
	}
}

func TestAnalyzeRawPath(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"matchScore": 60, "summary": "ok"}`,
	}}
	body := `{
		"jd": "We are hiring a backend engineer.",
		"resume": "Jane Dev. Go engineer with five years of experience."
	}`
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/analyze", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if client.calls != 1 {
		t.Errorf("raw path should make a single model call, got %d", client.calls)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if result.MatchScore != 60 {
		t.Errorf("MatchScore = %d, want 60", result.MatchScore)
	}
	if result.StructuredJD != nil {
		t.Error("raw path should not return a structured JD")
	}
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	client := &scriptedClient{err: errors.New("upstream exploded")}
	body := `{
		"jd": "We are hiring a backend engineer.",
		"structuredResume": {"name": "Jane Dev"}
	}`
	rec := doRequest(t, testServer(client), http.MethodPost, "/api/analyze", body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "upstream exploded") {
		t.Error("error detail must not leak outside development mode")
	}
}

func TestErrorDetailInDevelopment(t *testing.T) {
	client := &scriptedClient{err: errors.New("upstream exploded")}
	cfg := &config.Config{Port: "0", Environment: "development"}
	s := New(cfg, analysis.NewAnalyzer(client))

	body := `{
		"jd": "We are hiring a backend engineer.",
		"structuredResume": {"name": "Jane Dev"}
	}`
	rec := doRequest(t, s, http.MethodPost, "/api/analyze", body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "upstream exploded") {
		t.Error("development mode should include the error detail")
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := doRequest(t, testServer(&scriptedClient{}), http.MethodOptions, "/api/analyze", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("preflight response should carry CORS headers")
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, testServer(&scriptedClient{}), http.MethodGet, "/health", "")

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("responses should carry a request ID")
	}
}
