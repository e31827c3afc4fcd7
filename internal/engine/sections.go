package engine

import "strings"

// Markers the summary prompt instructs the model to emit. The reply is free
// text, so parsing is best-effort: a missing marker degrades gracefully
// instead of failing the request.
const (
	summaryMarker   = "SUMMARY:"
	keyPointsMarker = "KEY POINTS:"
)

// ParseSummaryReply splits a model reply into the summary text and the key
// point list. With no SUMMARY: marker the whole reply is the summary. With
// no KEY POINTS: marker the key point list is empty.
func ParseSummaryReply(text string) (string, []string) {
	_, after, found := strings.Cut(text, summaryMarker)
	if !found {
		return strings.TrimSpace(text), nil
	}

	summary, pointsText, found := strings.Cut(after, keyPointsMarker)
	if !found {
		return strings.TrimSpace(after), nil
	}

	var points []string
	for _, line := range strings.Split(pointsText, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-"))
		if line == "" {
			continue
		}
		points = append(points, line)
	}
	return strings.TrimSpace(summary), points
}
