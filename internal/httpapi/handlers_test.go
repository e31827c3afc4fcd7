package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine.Init(engine.Config{MaxPromptChars: 15000})
	return NewServer(slog.Default())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "llm_calls")
}

func TestOutputJSON(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/output", `{"post_content":"hello world"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content struct {
			PostContent    string `json:"post_content"`
			CharacterCount int    `json:"character_count"`
		} `json:"content"`
		Format string `json:"format"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "json", resp.Format)
	assert.Equal(t, "hello world", resp.Content.PostContent)
	assert.Equal(t, 11, resp.Content.CharacterCount)
}

func TestOutputText(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/output", `{"post_content":"hello","format":"text"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content string `json:"content"`
		Format  string `json:"format"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "text", resp.Format)
	assert.Equal(t, "hello", resp.Content)
}

func TestOutputUnsupportedFormat(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/output", `{"post_content":"hello","format":"yaml"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "unsupported output format")
}

func TestBadRequestBodies(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{"transcript garbage", "/api/v1/transcript", "{not json", "invalid request body"},
		{"transcript missing url", "/api/v1/transcript", "{}", "youtube_url is required"},
		{"summarize missing transcript", "/api/v1/summarize", "{}", "transcript is required"},
		{"summarize bad tone", "/api/v1/summarize", `{"transcript":"t","tone":"angry"}`, "unknown tone or audience"},
		{"post missing summary", "/api/v1/generate-post", "{}", "summary is required"},
		{"post bad voice", "/api/v1/generate-post", `{"summary":"s","voice":"second_person"}`, "unknown tone, voice or audience"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestTranscriptBadURLIs400(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/transcript", `{"youtube_url":"https://vimeo.com/123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "could not extract video ID")
}

// No LLM key configured: the model error is a component failure, so the
// summarize endpoint answers 400, not 500.
func TestSummarizeMissingKeyIs400(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/summarize", `{"transcript":"some transcript"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "API key not configured")
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/v1/output", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
