// Package pipeline chains the four operations — transcript, summary, post,
// output — into a single URL-to-post run for the CLI.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/anatolykoptev/go_ytpost/internal/engine/sources"
)

// Options configures a full pipeline run.
type Options struct {
	URL         string
	Language    string
	Tone        engine.Tone
	Audience    engine.Audience
	Voice       engine.Voice
	SpeakerName string
	Hashtags    []string
	Format      string // output format, default json
}

// Result carries the intermediate and final artifacts of a run.
type Result struct {
	Transcript engine.TranscriptResponse
	Summary    engine.SummaryResponse
	Post       engine.PostResponse
	Output     engine.OutputResponse
}

// Run executes the whole chain. It stops at the first failing stage; the
// partial Result is still returned for inspection.
func Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	tr, err := sources.ExtractTranscript(ctx, engine.TranscriptRequest{
		YouTubeURL: opts.URL,
		Language:   opts.Language,
	})
	if err != nil {
		return res, err
	}
	res.Transcript = tr
	slog.Info("transcript extracted",
		slog.String("video_id", tr.VideoID),
		slog.Int("chars", len(tr.Transcript)),
		slog.String("language", tr.Language))

	sum, err := engine.GenerateSummary(ctx, engine.SummaryRequest{
		Transcript: tr.Transcript,
		VideoTitle: tr.VideoTitle,
		Tone:       opts.Tone,
		Audience:   opts.Audience,
	})
	if err != nil {
		return res, err
	}
	res.Summary = sum
	slog.Info("summary generated",
		slog.Int("words", sum.WordCount),
		slog.Int("key_points", len(sum.KeyPoints)))

	post, err := engine.GeneratePost(ctx, engine.PostRequest{
		Summary:     sum.Summary,
		VideoTitle:  tr.VideoTitle,
		VideoURL:    opts.URL,
		SpeakerName: opts.SpeakerName,
		Hashtags:    opts.Hashtags,
		Tone:        opts.Tone,
		Voice:       opts.Voice,
		Audience:    opts.Audience,
	})
	if err != nil {
		return res, err
	}
	res.Post = post
	slog.Info("post generated",
		slog.Int("chars", post.CharacterCount),
		slog.Int("hashtags", len(post.HashtagsUsed)))

	format := opts.Format
	if format == "" {
		format = engine.FormatJSON
	}
	out, err := engine.FormatPost(post.PostContent, format)
	if err != nil {
		return res, err
	}
	res.Output = out
	return res, nil
}
