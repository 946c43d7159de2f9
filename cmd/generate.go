package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bluefxvideo/captionforge/internal/config"
	"github.com/bluefxvideo/captionforge/internal/transcribe"
	"github.com/bluefxvideo/captionforge/internal/worker"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input-file> [more-inputs...]",
	Short: "Generate caption chunks from transcripts or audio",
	Long: `Generate caption chunks from saved transcript JSON files (word timings)
or directly from audio files via the speech-to-text API. Each input
produces a caption track JSON for the video editor and, optionally, an
SRT preview.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

var (
	configPath    string
	output        string
	srtPath       string
	emitSRT       bool
	showStats     bool
	audioDuration float64
	maxConcurrent int
	rateLimit     int

	// Caption tuning flags.
	maxWords    int
	minDuration float64
	maxDuration float64
	frameRate   float64
	maxCPL      int
)

func init() {
	defaults := config.Default()

	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with caption options")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "output track JSON path (default: <input>.captions.json)")
	generateCmd.Flags().StringVar(&srtPath, "srt-output", "", "SRT preview path (implies --srt)")
	generateCmd.Flags().BoolVar(&emitSRT, "srt", false, "also write an SRT preview")
	generateCmd.Flags().BoolVar(&showStats, "stats", false, "print a quality metrics table")
	generateCmd.Flags().Float64Var(&audioDuration, "audio-duration", 0, "audio duration ceiling in seconds (default: probed)")
	generateCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", 3, "max inputs processed concurrently")
	generateCmd.Flags().IntVar(&rateLimit, "rate-limit", 30, "transcription API requests per minute")

	// Caption tuning flags.
	generateCmd.Flags().IntVar(&maxWords, "max-words", defaults.MaxWordsPerChunk, "maximum words per caption chunk")
	generateCmd.Flags().Float64Var(&minDuration, "min-duration", defaults.MinChunkDuration, "minimum chunk duration in seconds")
	generateCmd.Flags().Float64Var(&maxDuration, "max-duration", defaults.MaxChunkDuration, "maximum chunk duration in seconds")
	generateCmd.Flags().Float64Var(&frameRate, "frame-rate", defaults.FrameRate, "video frame rate for timestamp alignment")
	generateCmd.Flags().IntVar(&maxCPL, "max-chars-per-line", defaults.MaxCharsPerLine, "characters per display line limit")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	inputs := make([]string, 0, len(args))
	needsAPI := false
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}
		if !strings.EqualFold(filepath.Ext(abs), ".json") {
			needsAPI = true
		}
		inputs = append(inputs, abs)
	}

	var client *transcribe.Client
	if needsAPI {
		client, err = transcribe.NewClient()
		if err != nil {
			return fmt.Errorf("audio inputs need the transcription API: %w", err)
		}
	}

	results, err := worker.RunBatch(cmd.Context(), inputs, worker.Options{
		OutputPath:      output,
		SRTPath:         srtPath,
		EmitSRT:         emitSRT || srtPath != "",
		AudioDuration:   audioDuration,
		MaxConcurrent:   maxConcurrent,
		RateLimitPerMin: rateLimit,
		Generation:      opts,
		Client:          client,
	})
	if err != nil {
		return err
	}

	if showStats {
		renderStats(cmd.OutOrStdout(), results)
	}
	return nil
}

// resolveOptions layers flag overrides on top of the config file (or the
// defaults when no file is given). Flags the user did not set keep the
// file's values.
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	if cmd.Flags().Changed("max-words") {
		opts.MaxWordsPerChunk = maxWords
	}
	if cmd.Flags().Changed("min-duration") {
		opts.MinChunkDuration = minDuration
	}
	if cmd.Flags().Changed("max-duration") {
		opts.MaxChunkDuration = maxDuration
	}
	if cmd.Flags().Changed("frame-rate") {
		opts.FrameRate = frameRate
	}
	if cmd.Flags().Changed("max-chars-per-line") {
		opts.MaxCharsPerLine = maxCPL
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
