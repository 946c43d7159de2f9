package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bluefxvideo/captionforge/internal/caption"
	"github.com/bluefxvideo/captionforge/internal/config"
	"github.com/bluefxvideo/captionforge/internal/ffmpeg"
	"github.com/bluefxvideo/captionforge/internal/timeline"
	"github.com/bluefxvideo/captionforge/internal/transcribe"
)

// Options configures the worker.
type Options struct {
	InputPath       string
	OutputPath      string  // track JSON path; default <input>.captions.json
	SRTPath         string  // explicit SRT preview path
	EmitSRT         bool    // write an SRT preview next to the output
	AudioDuration   float64 // overrides probed/reported duration when > 0
	MaxConcurrent   int
	RateLimitPerMin int
	Generation      config.Options
	Client          *transcribe.Client // nil means JSON transcript input only
}

// Result reports one processed input.
type Result struct {
	InputPath  string
	OutputPath string
	Chunks     int
	Metrics    caption.QualityMetrics
}

// Run processes a single input: load or fetch word timings, chunk them,
// and write the caption track (plus an optional SRT preview).
func Run(ctx context.Context, opts Options) (*Result, error) {
	transcript, err := loadTranscript(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(transcript.Words) == 0 {
		return nil, fmt.Errorf("transcript has no words: %s", opts.InputPath)
	}

	audioDuration := resolveAudioDuration(ctx, opts, transcript)

	chunker := caption.NewChunker(opts.Generation)
	chunks, metrics := chunker.Chunk(transcript.Words, audioDuration)

	slog.Info("captions generated",
		"input", filepath.Base(opts.InputPath),
		"chunks", len(chunks),
		"avg_confidence", fmt.Sprintf("%.2f", metrics.AvgConfidence),
		"timing_precision", fmt.Sprintf("%.1f", metrics.TimingPrecision),
		"readability", fmt.Sprintf("%.1f", metrics.ReadabilityScore))

	outputPath := opts.OutputPath
	if outputPath == "" {
		base := strings.TrimSuffix(opts.InputPath, filepath.Ext(opts.InputPath))
		outputPath = base + ".captions.json"
	}

	track := timeline.NewCaptionTrack(chunks, opts.Generation.FrameRate)
	if err := track.WriteJSON(outputPath); err != nil {
		return nil, err
	}
	slog.Info("caption track saved", "path", outputPath)

	srtPath := opts.SRTPath
	if srtPath == "" && opts.EmitSRT {
		srtPath = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".srt"
	}
	if srtPath != "" {
		if err := writeSRT(srtPath, chunks); err != nil {
			return nil, err
		}
		slog.Info("SRT preview saved", "path", srtPath)
	}

	return &Result{
		InputPath:  opts.InputPath,
		OutputPath: outputPath,
		Chunks:     len(chunks),
		Metrics:    metrics,
	}, nil
}

func writeSRT(path string, chunks []caption.CaptionChunk) error {
	content := timeline.FormatSRT(chunks)
	if content == "" {
		return fmt.Errorf("SRT generation produced empty output")
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write SRT file: %w", err)
	}
	return nil
}

// loadTranscript reads word timings from a saved transcript JSON, or
// sends the audio to the transcription API for anything else.
func loadTranscript(ctx context.Context, opts Options) (*caption.Transcript, error) {
	if strings.EqualFold(filepath.Ext(opts.InputPath), ".json") {
		slog.Debug("loading saved transcript", "path", opts.InputPath)
		return caption.LoadTranscript(opts.InputPath)
	}

	if opts.Client == nil {
		return nil, fmt.Errorf("%s is not a transcript JSON and no transcription client is configured", opts.InputPath)
	}
	return opts.Client.Transcribe(ctx, opts.InputPath)
}

// resolveAudioDuration picks the audio-duration ceiling: explicit override
// first, then the duration the transcription service reported, then an
// ffprobe of the input. 0 means unknown and disables the ceiling.
func resolveAudioDuration(ctx context.Context, opts Options, transcript *caption.Transcript) float64 {
	if opts.AudioDuration > 0 {
		return opts.AudioDuration
	}
	if transcript.Duration > 0 {
		return transcript.Duration
	}
	if !strings.EqualFold(filepath.Ext(opts.InputPath), ".json") && ffmpeg.Available() {
		dur, err := ffmpeg.ProbeDuration(ctx, opts.InputPath)
		if err == nil {
			return dur
		}
		slog.Debug("ffprobe failed, proceeding without audio ceiling", "err", err)
	}
	return 0
}
