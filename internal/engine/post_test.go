package engine

import (
	"context"
	"testing"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		chars int
		want  string
	}{
		{0, "Less than a minute"},
		{500, "Less than a minute"},
		{1324, "Less than a minute"},
		{1325, "About 1 minute"},
		{2000, "About 1 minute"},
		{2650, "About 2 minutes"},
		{5000, "About 3 minutes"},
	}
	for _, tt := range tests {
		if got := EstimateReadTime(tt.chars); got != tt.want {
			t.Errorf("EstimateReadTime(%d) = %q, want %q", tt.chars, got, tt.want)
		}
	}
}

func TestGeneratePostEmptySummary(t *testing.T) {
	Init(Config{})
	if _, err := GeneratePost(context.Background(), PostRequest{}); err != ErrEmptySummary {
		t.Errorf("err = %v, want ErrEmptySummary", err)
	}
}

func TestGenerateSummaryEmptyTranscript(t *testing.T) {
	Init(Config{})
	if _, err := GenerateSummary(context.Background(), SummaryRequest{}); err != ErrEmptyTranscript {
		t.Errorf("err = %v, want ErrEmptyTranscript", err)
	}
}
