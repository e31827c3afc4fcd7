package engine

import (
	"reflect"
	"testing"
)

func TestParseSummaryReply(t *testing.T) {
	reply := `SUMMARY:
The talk covers practical Go patterns for services.

KEY POINTS:
- Accept interfaces, return structs
- Errors are values
- Keep the happy path left-aligned`

	summary, points := ParseSummaryReply(reply)
	if summary != "The talk covers practical Go patterns for services." {
		t.Errorf("summary = %q", summary)
	}
	want := []string{
		"Accept interfaces, return structs",
		"Errors are values",
		"Keep the happy path left-aligned",
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("points = %v, want %v", points, want)
	}
}

func TestParseSummaryReplyNoMarkers(t *testing.T) {
	summary, points := ParseSummaryReply("  just a plain paragraph  ")
	if summary != "just a plain paragraph" {
		t.Errorf("summary = %q", summary)
	}
	if points != nil {
		t.Errorf("points = %v, want nil", points)
	}
}

func TestParseSummaryReplyNoKeyPoints(t *testing.T) {
	summary, points := ParseSummaryReply("SUMMARY: only the summary part")
	if summary != "only the summary part" {
		t.Errorf("summary = %q", summary)
	}
	if points != nil {
		t.Errorf("points = %v, want nil", points)
	}
}

func TestParseSummaryReplyBlankPointLines(t *testing.T) {
	_, points := ParseSummaryReply("SUMMARY: s\nKEY POINTS:\n- one\n\n-   \n- two\n")
	want := []string{"one", "two"}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("points = %v, want %v", points, want)
	}
}

// All leading dashes are stripped, so a doubled bullet like "-- point" still
// yields a clean key point.
func TestParseSummaryReplyRepeatedDashes(t *testing.T) {
	_, points := ParseSummaryReply("SUMMARY: s\nKEY POINTS:\n-- double\n--- triple\n- single")
	want := []string{"double", "triple", "single"}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("points = %v, want %v", points, want)
	}
}
