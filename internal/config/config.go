package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Options holds all caption generation parameters.
type Options struct {
	MaxWordsPerChunk int     `toml:"max_words_per_chunk"`
	MinChunkDuration float64 `toml:"min_chunk_duration"`
	MaxChunkDuration float64 `toml:"max_chunk_duration"`
	FrameRate        float64 `toml:"frame_rate"`
	MaxCharsPerLine  int     `toml:"max_chars_per_line"`
}

// Default returns Options with the standard caption tuning values.
func Default() Options {
	return Options{
		MaxWordsPerChunk: 5,
		MinChunkDuration: 0.833,
		MaxChunkDuration: 3.5,
		FrameRate:        30,
		MaxCharsPerLine:  42,
	}
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	if o.MaxWordsPerChunk < 1 {
		return fmt.Errorf("max_words_per_chunk must be >= 1, got %d", o.MaxWordsPerChunk)
	}
	if o.MinChunkDuration <= 0 {
		return fmt.Errorf("min_chunk_duration must be > 0, got %g", o.MinChunkDuration)
	}
	if o.MaxChunkDuration < o.MinChunkDuration {
		return fmt.Errorf("max_chunk_duration %g must be >= min_chunk_duration %g",
			o.MaxChunkDuration, o.MinChunkDuration)
	}
	if o.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be > 0, got %g", o.FrameRate)
	}
	if o.MaxCharsPerLine < 1 {
		return fmt.Errorf("max_chars_per_line must be >= 1, got %d", o.MaxCharsPerLine)
	}
	return nil
}

// Load reads a TOML config file and merges it over the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return opts, nil
}
