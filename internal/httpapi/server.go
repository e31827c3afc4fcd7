// Package httpapi exposes the four pipeline operations as a small JSON API:
//
//	POST /api/v1/transcript
//	POST /api/v1/summarize
//	POST /api/v1/generate-post
//	POST /api/v1/output
//
// plus /, /health and /metrics.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Server routes API requests. Handlers call the engine directly; all request
// state is local, nothing is shared between requests.
type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
}

func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
	}

	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /metrics", s.handleMetrics)
	s.mux.HandleFunc("POST /api/v1/transcript", s.handleTranscript)
	s.mux.HandleFunc("POST /api/v1/summarize", s.handleSummarize)
	s.mux.HandleFunc("POST /api/v1/generate-post", s.handleGeneratePost)
	s.mux.HandleFunc("POST /api/v1/output", s.handleOutput)

	return s
}

// statusRecorder captures the status code written by a handler for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	requestID := uuid.NewString()

	s.mux.ServeHTTP(rec, r)

	s.logger.Info("request served",
		slog.String("request_id", requestID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", rec.status),
		slog.Duration("elapsed", time.Since(start)))
}
