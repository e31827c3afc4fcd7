package engine

import "regexp"

var hashtagRE = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ExtractHashtags finds all #token occurrences in left-to-right order.
// Duplicates are preserved: the list reports what the post actually
// contains, and deduplication is a presentation concern.
func ExtractHashtags(text string) []string {
	matches := hashtagRE.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, "#"+m[1])
	}
	return tags
}
