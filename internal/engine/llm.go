package engine

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// llmFor returns the client to use for a call. An empty override means the
// process-wide client; otherwise a client with the same base/model but the
// request's key.
func llmFor(overrideKey string) (*llm.Client, error) {
	if overrideKey == "" {
		if cfg.LLMAPIKey == "" {
			return nil, &ModelError{Err: ErrMissingAPIKey}
		}
		return cfg.LLMClient, nil
	}
	return llm.NewClient(cfg.LLMAPIBase, overrideKey, cfg.LLMModel,
		llm.WithMaxTokens(cfg.LLMMaxTokens),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	), nil
}

// callLLM sends a prompt with a per-call temperature and returns the
// fence-stripped reply text.
func callLLM(ctx context.Context, system, prompt, overrideKey string, temperature float64) (string, error) {
	client, err := llmFor(overrideKey)
	if err != nil {
		return "", err
	}
	IncrLLMCalls()
	resp, err := client.Complete(ctx, system, prompt,
		llm.WithChatTemperature(temperature),
		llm.WithChatMaxTokens(1000),
	)
	if err != nil {
		IncrLLMErrors()
		return "", &ModelError{Err: err}
	}
	return stripFences(resp), nil
}
