package engine

import (
	"net/http"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main. There is no
// module-level credential state: request-level key overrides always win
// over these process-wide defaults.
type Config struct {
	LLMAPIKey      string
	LLMAPIBase     string
	LLMModel       string
	LLMMaxTokens   int
	MaxPromptChars int // transcript/summary chars sent to the LLM

	YouTubeAPIKey         string
	YouTubeAPIKeyFallback string

	HTTPClient *http.Client
	LLMClient  *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
