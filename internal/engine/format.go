package engine

import "unicode/utf8"

// Output format tags.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// FormattedPost is the json-format payload.
type FormattedPost struct {
	PostContent    string `json:"post_content"`
	CharacterCount int    `json:"character_count"`
}

// FormatPost renders post content as one of the named output formats.
// "json" wraps the content in a FormattedPost, "text" passes it through
// unchanged. Anything else is an UnsupportedFormatError.
func FormatPost(content, format string) (OutputResponse, error) {
	switch format {
	case FormatJSON:
		return OutputResponse{
			Content: FormattedPost{
				PostContent:    content,
				CharacterCount: utf8.RuneCountInString(content),
			},
			Format: format,
		}, nil
	case FormatText:
		return OutputResponse{Content: content, Format: format}, nil
	default:
		return OutputResponse{}, &UnsupportedFormatError{Format: format}
	}
}
