package engine

import (
	"regexp"
	"strings"
)

// Transcript cleanup. Raw caption text often carries [mm:ss] timestamps,
// "Speaker:" labels and stray symbols that only waste prompt tokens.

var (
	timestampRE    = regexp.MustCompile(`\[\d+:\d+\]`)
	speakerLabelRE = regexp.MustCompile(`(?m)^\s*[\p{L}\p{N}_]+\s*:`)
	whitespaceRE   = regexp.MustCompile(`\s+`)
	specialCharRE  = regexp.MustCompile(`[^\p{L}\p{N}_\s.,?!-]`)
)

// CleanTranscript normalizes raw transcript text: strips [d:d] timestamps,
// per-line leading speaker labels, collapses whitespace runs, drops
// characters outside {letters, digits, _, whitespace, .,?!-} and trims.
// Re-applying to already-cleaned text is a no-op.
func CleanTranscript(text string) string {
	text = timestampRE.ReplaceAllString(text, "")
	text = speakerLabelRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = specialCharRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
