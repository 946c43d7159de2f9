// Package transcribe wraps the hosted speech-to-text API. The rest of the
// system treats transcription as a prerequisite that has already produced
// word timings; this package is the only place that talks to the vendor.
package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bluefxvideo/captionforge/internal/caption"
)

const apiKeyEnv = "OPENAI_API_KEY"

// Client calls the speech-to-text endpoint with word-level timestamps.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a client from the OPENAI_API_KEY environment variable.
func NewClient() (*Client, error) {
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%s not set", apiKeyEnv)
	}
	return &Client{
		api:   openai.NewClient(key),
		model: openai.Whisper1,
	}, nil
}

// Transcribe uploads the audio file and returns its word timings. The
// service does not report per-word confidence, so every word carries the
// standard default.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (*caption.Transcript, error) {
	slog.Info("transcribing audio", "file", audioPath, "model", c.model)

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}

	words := make([]caption.WordTiming, 0, len(resp.Words))
	for _, w := range resp.Words {
		words = append(words, caption.WordTiming{
			Word:       w.Word,
			Start:      w.Start,
			End:        w.End,
			Confidence: 0.9,
		})
	}

	slog.Debug("transcription complete", "words", len(words), "duration", resp.Duration)
	return &caption.Transcript{Words: words, Duration: resp.Duration}, nil
}
