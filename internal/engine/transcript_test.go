package engine

import "testing"

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"timestamps", "[0:01] hello [12:34] world", "hello world"},
		{"speaker labels", "Alice: hi there\nBob: hello", "hi there hello"},
		{"whitespace collapse", "too   many\n\nspaces\there", "too many spaces here"},
		{"special chars", "keep .,?!- drop @#$%&*()", "keep .,?!- drop"},
		{"unicode kept", "привет мир, こんにちは!", "привет мир, こんにちは!"},
		{"mixed", "[0:05] Host: Welcome to the show!  (applause)", "Welcome to the show! applause"},
		{"empty", "", ""},
		{"only junk", "[1:23] @@@", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanTranscript(tt.input)
			if got != tt.want {
				t.Errorf("CleanTranscript(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Cleaning strips every colon and bracket, so the timestamp and speaker
// patterns can never match cleaned output again.
func TestCleanTranscriptIdempotent(t *testing.T) {
	inputs := []string{
		"[0:01] Alice: hello [12:34] world",
		"Speaker1: line one\nSpeaker2: line two",
		"plain text with no markup at all",
		"symbols @#$ and   spaces",
	}
	for _, input := range inputs {
		once := CleanTranscript(input)
		twice := CleanTranscript(once)
		if once != twice {
			t.Errorf("CleanTranscript not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  padded   words  ", 2},
	}
	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
