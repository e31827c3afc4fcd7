package sources

import (
	"context"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
)

// ExtractTranscript runs the transcript extraction operation: parse the
// video ID out of the URL, fetch metadata, fetch and clean the transcript.
func ExtractTranscript(ctx context.Context, req engine.TranscriptRequest) (engine.TranscriptResponse, error) {
	engine.IncrTranscriptRequests()

	videoID, err := engine.ExtractVideoID(req.YouTubeURL)
	if err != nil {
		return engine.TranscriptResponse{}, err
	}

	language := req.Language
	if language == "" {
		language = engine.DefaultLanguage
	}

	md, err := FetchMetadata(ctx, videoID, req.YouTubeAPIKey)
	if err != nil {
		return engine.TranscriptResponse{}, err
	}

	tr, err := FetchTranscript(ctx, videoID, language)
	if err != nil {
		return engine.TranscriptResponse{}, &engine.ProviderError{Op: "transcript", Err: err}
	}

	title := md.Title
	if title == "" {
		title = "Unknown Title"
	}

	return engine.TranscriptResponse{
		VideoID:         videoID,
		VideoTitle:      title,
		Transcript:      engine.CleanTranscript(tr.Text),
		Language:        tr.Language,
		DurationSeconds: md.DurationSeconds,
		ChannelName:     md.ChannelName,
		PublishedAt:     md.PublishedAt,
	}, nil
}
