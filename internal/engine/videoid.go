package engine

import (
	"net/url"
	"strings"
)

// ExtractVideoID pulls the video ID out of a YouTube URL.
// Recognized shapes, first match wins:
//
//	https://youtu.be/<id>
//	https://www.youtube.com/watch?v=<id>
//	https://www.youtube.com/embed/<id>
//	https://www.youtube.com/v/<id>
//
// The ID is returned exactly as it appears in the URL, no normalization.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &InvalidURLError{URL: rawURL}
	}

	host := u.Hostname()

	if host == "youtu.be" {
		if id := firstPathSegment(u.Path); id != "" {
			return id, nil
		}
		return "", &InvalidURLError{URL: rawURL}
	}

	if host == "youtube.com" || host == "www.youtube.com" {
		switch {
		case u.Path == "/watch":
			if id := u.Query().Get("v"); id != "" {
				return id, nil
			}
		case strings.HasPrefix(u.Path, "/embed/"):
			if id := firstPathSegment(strings.TrimPrefix(u.Path, "/embed")); id != "" {
				return id, nil
			}
		case strings.HasPrefix(u.Path, "/v/"):
			if id := firstPathSegment(strings.TrimPrefix(u.Path, "/v")); id != "" {
				return id, nil
			}
		}
	}

	return "", &InvalidURLError{URL: rawURL}
}

// firstPathSegment returns the first segment of a URL path, without slashes.
func firstPathSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
