package engine

import (
	"context"
	"errors"
)

// ErrEmptyTranscript is returned when a summary is requested for an empty
// transcript.
var ErrEmptyTranscript = errors.New("empty transcript provided")

// ErrEmptySummary is returned when a post is requested for an empty summary.
var ErrEmptySummary = errors.New("empty summary provided")

// GenerateSummary asks the LLM for a summary of the transcript and parses
// the SUMMARY:/KEY POINTS: reply into structured form. The reply format is
// a best-effort contract with the model: missing markers degrade into a
// plain summary with no key points.
func GenerateSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	IncrSummaryRequests()
	if req.Transcript == "" {
		return SummaryResponse{}, ErrEmptyTranscript
	}
	req = req.WithDefaults()

	reply, err := callLLM(ctx, summarySystemPrompt, BuildSummaryPrompt(req), req.LLMAPIKey, 0.5)
	if err != nil {
		return SummaryResponse{}, err
	}

	summary, keyPoints := ParseSummaryReply(reply)
	return SummaryResponse{
		Summary:   summary,
		WordCount: WordCount(summary),
		KeyPoints: keyPoints,
	}, nil
}
