package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound means the Data API knows no video with the given ID.
var ErrVideoNotFound = errors.New("video not found")

// FetchMetadata fetches title, channel, publish date and duration for a
// video via the YouTube Data API v3. The override key wins over the
// configured keys; the configured fallback key is tried on quota errors.
// Without any key a degraded result with just the video ID is returned —
// metadata is nice to have, the transcript is the point.
func FetchMetadata(ctx context.Context, videoID, overrideKey string) (engine.VideoMetadata, error) {
	engine.IncrMetadataRequests()

	keys := metadataKeys(overrideKey)
	if len(keys) == 0 {
		slog.Warn("youtube: no Data API key configured, returning limited metadata",
			slog.String("id", videoID))
		return engine.VideoMetadata{VideoID: videoID}, nil
	}

	var lastErr error
	for _, key := range keys {
		md, err := fetchMetadataWithKey(ctx, videoID, key)
		if err == nil {
			return md, nil
		}
		if errors.Is(err, ErrVideoNotFound) {
			engine.IncrProviderErrors()
			return engine.VideoMetadata{}, &engine.ProviderError{Op: "metadata", Err: err}
		}
		lastErr = err
		slog.Debug("youtube data API key failed, trying fallback", slog.Any("err", err))
	}
	engine.IncrProviderErrors()
	return engine.VideoMetadata{}, &engine.ProviderError{Op: "metadata", Err: lastErr}
}

func metadataKeys(overrideKey string) []string {
	if overrideKey != "" {
		return []string{overrideKey}
	}
	var keys []string
	if engine.Cfg.YouTubeAPIKey != "" {
		keys = append(keys, engine.Cfg.YouTubeAPIKey)
	}
	if engine.Cfg.YouTubeAPIKeyFallback != "" {
		keys = append(keys, engine.Cfg.YouTubeAPIKeyFallback)
	}
	return keys
}

func fetchMetadataWithKey(ctx context.Context, videoID, apiKey string) (engine.VideoMetadata, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return engine.VideoMetadata{}, fmt.Errorf("youtube service: %w", err)
	}

	resp, err := svc.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return engine.VideoMetadata{}, fmt.Errorf("videos.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return engine.VideoMetadata{}, ErrVideoNotFound
	}

	item := resp.Items[0]
	md := engine.VideoMetadata{
		VideoID:     videoID,
		Title:       item.Snippet.Title,
		ChannelName: item.Snippet.ChannelTitle,
		PublishedAt: item.Snippet.PublishedAt,
	}
	seconds, err := engine.ParseISODuration(item.ContentDetails.Duration)
	if err != nil {
		// A bad duration string should not sink the whole lookup.
		slog.Warn("youtube: unparseable duration",
			slog.String("id", videoID), slog.String("duration", item.ContentDetails.Duration))
	} else {
		md.DurationSeconds = seconds
	}
	return md, nil
}
