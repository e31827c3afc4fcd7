package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/anatolykoptev/go_ytpost/internal/engine/sources"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "go_ytpost — YouTube to LinkedIn post server",
		"health":  "/health",
		"metrics": "/metrics",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, engine.FormatMetrics())
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// respondErr maps an operation failure to a status code. Expected component
// failures (bad URL, malformed duration, provider or model trouble, unknown
// format) are the caller's problem; everything else is ours.
func (s *Server) respondErr(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	if engine.IsComponentError(err) ||
		errors.Is(err, engine.ErrEmptyTranscript) ||
		errors.Is(err, engine.ErrEmptySummary) {
		status = http.StatusBadRequest
	}
	s.logger.Error("operation failed",
		slog.String("op", op),
		slog.Int("status", status),
		slog.Any("error", err))
	writeError(w, status, err.Error())
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	var req engine.TranscriptRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.YouTubeURL == "" {
		writeError(w, http.StatusBadRequest, "youtube_url is required")
		return
	}

	resp, err := sources.ExtractTranscript(r.Context(), req)
	if err != nil {
		s.respondErr(w, "transcript", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req engine.SummaryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Transcript == "" {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return
	}
	if !req.Tone.Valid() || !req.Audience.Valid() {
		writeError(w, http.StatusBadRequest, "unknown tone or audience")
		return
	}

	resp, err := engine.GenerateSummary(r.Context(), req)
	if err != nil {
		s.respondErr(w, "summarize", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGeneratePost(w http.ResponseWriter, r *http.Request) {
	var req engine.PostRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Summary == "" {
		writeError(w, http.StatusBadRequest, "summary is required")
		return
	}
	if !req.Tone.Valid() || !req.Audience.Valid() || !req.Voice.Valid() {
		writeError(w, http.StatusBadRequest, "unknown tone, voice or audience")
		return
	}

	resp, err := engine.GeneratePost(r.Context(), req)
	if err != nil {
		s.respondErr(w, "generate-post", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOutput(w http.ResponseWriter, r *http.Request) {
	var req engine.OutputRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	engine.IncrOutputRequests()

	format := req.Format
	if format == "" {
		format = engine.FormatJSON
	}
	resp, err := engine.FormatPost(req.PostContent, format)
	if err != nil {
		s.respondErr(w, "output", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
