package caption

import (
	"math"

	"github.com/bluefxvideo/captionforge/internal/config"
)

// Heuristic tuning constants for the quality scores. Their purpose is
// comparative diagnostics across runs, not a certified quality bound.
const (
	// timingPrecision: points subtracted per second of total distance
	// between chunk boundaries and the nearest frame boundary.
	misalignPenaltyPerSecond = 100.0

	// timingPrecision: points subtracted per second the final chunk runs
	// past the known audio duration, and the cap on that penalty.
	overshootPenaltyPerSecond = 100.0
	maxOvershootPenalty       = 50.0

	// readabilityScore adjustments per chunk.
	shortChunkPenalty   = 5.0 // fewer than 2 words
	longChunkPenalty    = 3.0 // more than 8 words
	denseChunkPenalty   = 5.0 // more characters than two full lines
	comfortableBonus    = 2.0 // duration in the comfortable reading range
	awkwardTimePenalty  = 3.0 // duration below the minimum or above 6s
	comfortableMinDur   = 1.0
	comfortableMaxDur   = 4.0
	lingeringChunkDur   = 6.0
	longChunkWordCount  = 8
	shortChunkWordCount = 2
)

// ComputeMetrics derives aggregate quality metrics from a finished chunk
// sequence. audioDuration of 0 means unknown. An empty sequence yields
// all-zero metrics.
func ComputeMetrics(chunks []CaptionChunk, opts config.Options, audioDuration float64) QualityMetrics {
	if len(chunks) == 0 {
		return QualityMetrics{}
	}

	frameDur := 1.0 / opts.FrameRate

	confSum := 0.0
	wordTotal := 0
	misalignment := 0.0

	for _, ch := range chunks {
		for _, w := range ch.WordBoundaries {
			confSum += w.Confidence
			wordTotal++
		}
		misalignment += frameOffset(ch.StartTime, frameDur) + frameOffset(ch.EndTime, frameDur)
	}

	precision := 100.0 - misalignment*misalignPenaltyPerSecond
	if audioDuration > 0 {
		if overshoot := chunks[len(chunks)-1].EndTime - audioDuration; overshoot > 0 {
			precision -= math.Min(overshoot*overshootPenaltyPerSecond, maxOvershootPenalty)
		}
	}
	precision = math.Max(precision, 0)

	readability := 100.0
	for _, ch := range chunks {
		if ch.WordCount < shortChunkWordCount {
			readability -= shortChunkPenalty
		}
		if ch.WordCount > longChunkWordCount {
			readability -= longChunkPenalty
		}
		if ch.CharCount > 2*opts.MaxCharsPerLine {
			readability -= denseChunkPenalty
		}
		if ch.Duration >= comfortableMinDur && ch.Duration <= comfortableMaxDur {
			readability += comfortableBonus
		}
		if ch.Duration < opts.MinChunkDuration || ch.Duration > lingeringChunkDur {
			readability -= awkwardTimePenalty
		}
	}
	readability = math.Min(math.Max(readability, 0), 100)

	avg := 0.0
	if wordTotal > 0 {
		avg = confSum / float64(wordTotal)
	}

	return QualityMetrics{
		AvgConfidence:    avg,
		TimingPrecision:  precision,
		ReadabilityScore: readability,
	}
}

// frameOffset returns the distance from t to the nearest frame boundary.
func frameOffset(t, frameDur float64) float64 {
	nearest := math.Round(t/frameDur) * frameDur
	return math.Abs(t - nearest)
}
