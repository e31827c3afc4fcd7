// go_ytpost — YouTube-to-LinkedIn post MCP server.
//
// Chains transcript extraction, LLM summarization and LLM post generation.
// Exposes four MCP tools (extract_transcript, generate_summary,
// generate_post, format_output), a JSON REST API mirroring them, and a CLI
// for one-shot runs.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/anatolykoptev/go_ytpost/internal/engine/sources"
	"github.com/anatolykoptev/go_ytpost/internal/httpapi"
	"github.com/anatolykoptev/go_ytpost/internal/pipeline"
	"github.com/anatolykoptev/go_ytpost/internal/postserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "go_ytpost",
		Short: "Turn a YouTube video into a LinkedIn post",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Missing .env is fine, env vars may come from the shell.
			_ = godotenv.Load()
			initEngine()
		},
	}
	root.AddCommand(serveCmd(), postCmd(), transcriptCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server and the REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			mcpPort := env.Str("MCP_PORT", "8893")
			apiPort := env.Str("API_PORT", "8080")

			slog.Info("starting go_ytpost",
				slog.String("mcp_port", mcpPort),
				slog.String("api_port", apiPort),
			)

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "go_ytpost",
				Version: version,
			}, nil)

			postserver.RegisterTools(server)
			slog.Info("tools registered", slog.Int("count", 4))

			go func() {
				api := &http.Server{
					Addr:         ":" + apiPort,
					Handler:      httpapi.NewServer(slog.Default()),
					ReadTimeout:  30 * time.Second,
					WriteTimeout: 600 * time.Second,
				}
				if err := api.ListenAndServe(); err != nil {
					slog.Error("api server failed", slog.Any("error", err))
				}
			}()

			return mcpserver.Run(server, mcpserver.Config{
				Name:         "go_ytpost",
				Version:      version,
				Port:         mcpPort,
				WriteTimeout: 600 * time.Second,
				Metrics:      engine.FormatMetrics,
			})
		},
	}
}

func postCmd() *cobra.Command {
	var (
		language    string
		tone        string
		audience    string
		voice       string
		speakerName string
		hashtags    []string
		format      string
	)
	cmd := &cobra.Command{
		Use:   "post <youtube-url>",
		Short: "Generate a LinkedIn post from a video in one shot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.Run(cmd.Context(), pipeline.Options{
				URL:         args[0],
				Language:    language,
				Tone:        engine.Tone(tone),
				Audience:    engine.Audience(audience),
				Voice:       engine.Voice(voice),
				SpeakerName: speakerName,
				Hashtags:    hashtags,
				Format:      format,
			})
			if err != nil {
				return err
			}
			if res.Output.Format == engine.FormatText {
				fmt.Println(res.Output.Content)
				return nil
			}
			return printJSON(res.Output)
		},
	}
	cmd.Flags().StringVar(&language, "language", "en", "preferred transcript language")
	cmd.Flags().StringVar(&tone, "tone", "", "post tone (educational, inspirational, professional, conversational, thought_leader)")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience (general, technical, executive, entry_level, industry_specific)")
	cmd.Flags().StringVar(&voice, "voice", "", "narration voice (first_person, third_person)")
	cmd.Flags().StringVar(&speakerName, "speaker", "", "speaker name to credit")
	cmd.Flags().StringSliceVar(&hashtags, "hashtag", nil, "hashtag to include (repeatable)")
	cmd.Flags().StringVar(&format, "format", engine.FormatJSON, "output format (json or text)")
	return cmd
}

func transcriptCmd() *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Extract the transcript and metadata for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sources.ExtractTranscript(cmd.Context(), engine.TranscriptRequest{
				YouTubeURL: args[0],
				Language:   language,
			})
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	cmd.Flags().StringVar(&language, "language", "en", "preferred transcript language")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:      env.Str("LLM_API_KEY", ""),
		LLMAPIBase:     env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:       env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMMaxTokens:   env.Int("LLM_MAX_TOKENS", 4096),
		MaxPromptChars: env.Int("MAX_PROMPT_CHARS", 15000),

		YouTubeAPIKey:         env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIKeyFallback: env.Str("YOUTUBE_API_KEY_FALLBACK", ""),

		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(env.List("LLM_API_KEY_FALLBACKS", "")),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	}

	engine.Init(c)
}
