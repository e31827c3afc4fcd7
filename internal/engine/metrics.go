package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	MetadataRequests   atomic.Int64
	SummaryRequests    atomic.Int64
	PostRequests       atomic.Int64
	OutputRequests     atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	ProviderErrors     atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"metadata_requests":   metrics.MetadataRequests.Load(),
		"summary_requests":    metrics.SummaryRequests.Load(),
		"post_requests":       metrics.PostRequests.Load(),
		"output_requests":     metrics.OutputRequests.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"provider_errors":     metrics.ProviderErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"transcript_requests", "metadata_requests",
		"summary_requests", "post_requests", "output_requests",
		"llm_calls", "llm_errors", "provider_errors",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrMetadataRequests()   { metrics.MetadataRequests.Add(1) }
func IncrSummaryRequests()    { metrics.SummaryRequests.Add(1) }
func IncrPostRequests()       { metrics.PostRequests.Add(1) }
func IncrOutputRequests()     { metrics.OutputRequests.Add(1) }
func IncrLLMCalls()           { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()          { metrics.LLMErrors.Add(1) }
func IncrProviderErrors()     { metrics.ProviderErrors.Add(1) }
