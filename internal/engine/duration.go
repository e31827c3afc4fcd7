package engine

import "strings"

// ParseISODuration converts an ISO 8601 duration of the form
// PT[<hours>H][<minutes>M][<seconds>S] into total seconds, the shape the
// YouTube Data API uses for contentDetails.duration. Each component is
// optional but must appear in H, M, S order. "PT" alone parses as 0.
func ParseISODuration(s string) (int, error) {
	if !strings.HasPrefix(s, "PT") {
		return 0, &MalformedDurationError{Input: s}
	}

	rest := s[2:]
	total := 0
	units := []struct {
		letter byte
		mult   int
	}{
		{'H', 3600},
		{'M', 60},
		{'S', 1},
	}

	for _, unit := range units {
		idx := strings.IndexByte(rest, unit.letter)
		if idx < 0 {
			continue
		}
		n, ok := parseDigits(rest[:idx])
		if !ok {
			return 0, &MalformedDurationError{Input: s}
		}
		total += n * unit.mult
		rest = rest[idx+1:]
	}

	if rest != "" {
		return 0, &MalformedDurationError{Input: s}
	}
	return total, nil
}

// parseDigits parses a non-empty string of ASCII digits.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
