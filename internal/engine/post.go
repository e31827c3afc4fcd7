package engine

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Reading speed baseline: 265 characters per minute, so 1325 per 5 minutes.
const readCharsPer5Min = 1325

// GeneratePost asks the LLM for a LinkedIn post based on a video summary,
// then annotates the reply with character count, hashtags and read time.
func GeneratePost(ctx context.Context, req PostRequest) (PostResponse, error) {
	IncrPostRequests()
	if req.Summary == "" {
		return PostResponse{}, ErrEmptySummary
	}
	req = req.WithDefaults()

	content, err := callLLM(ctx, postSystemPrompt, BuildPostPrompt(req), req.LLMAPIKey, 0.7)
	if err != nil {
		return PostResponse{}, err
	}

	// Character counts are code points, not bytes: posts carry emojis and
	// non-ASCII text, and the read-time estimate feeds off the same number.
	chars := utf8.RuneCountInString(content)
	return PostResponse{
		PostContent:       content,
		CharacterCount:    chars,
		EstimatedReadTime: EstimateReadTime(chars),
		HashtagsUsed:      ExtractHashtags(content),
	}, nil
}

// EstimateReadTime renders a human-readable read time for a post of the
// given character count.
func EstimateReadTime(characterCount int) string {
	minutes := characterCount / readCharsPer5Min
	switch {
	case minutes < 1:
		return "Less than a minute"
	case minutes == 1:
		return "About 1 minute"
	default:
		return fmt.Sprintf("About %d minutes", minutes)
	}
}
