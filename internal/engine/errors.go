package engine

import (
	"errors"
	"fmt"
)

// InvalidURLError means no recognized YouTube URL shape matched.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("could not extract video ID from URL: %s", e.URL)
}

// MalformedDurationError means an ISO 8601 duration string could not be parsed.
type MalformedDurationError struct {
	Input string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("malformed ISO 8601 duration: %q", e.Input)
}

// ProviderError wraps a failure of the transcript/metadata provider,
// including "transcripts disabled" and "no transcript found".
type ProviderError struct {
	Op  string // "metadata", "transcript"
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ModelError wraps an LLM call failure. A missing credential is reported
// the same way as a downstream failure.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model: %v", e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// UnsupportedFormatError means an unknown output format tag was requested.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %q", e.Format)
}

// ErrMissingAPIKey is wrapped in a ModelError when no LLM key is configured
// and the request carries no override.
var ErrMissingAPIKey = errors.New("LLM API key not configured")

// IsComponentError reports whether err is one of the expected component
// failure kinds. Boundaries map these to HTTP 400; anything else is a 500.
func IsComponentError(err error) bool {
	var invalidURL *InvalidURLError
	var malformed *MalformedDurationError
	var provider *ProviderError
	var model *ModelError
	var format *UnsupportedFormatError
	return errors.As(err, &invalidURL) ||
		errors.As(err, &malformed) ||
		errors.As(err, &provider) ||
		errors.As(err, &model) ||
		errors.As(err, &format)
}
