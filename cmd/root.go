package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "captionforge",
	Short: "Generate frame-aligned caption chunks from speech-to-text word timings",
	Long: `CaptionForge turns raw word-level speech recognition timings into timed,
line-wrapped, frame-quantized caption chunks for video rendering, with
derived quality metrics for diagnostics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		// Optional .env for API credentials; absence is fine.
		if err := godotenv.Load(); err == nil {
			slog.Debug("loaded .env")
		}
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
