package caption

import (
	"testing"
)

func TestComputeMetrics_Empty(t *testing.T) {
	metrics := ComputeMetrics(nil, defaultOptions(), 0)
	if metrics != (QualityMetrics{}) {
		t.Errorf("expected zero metrics, got %+v", metrics)
	}
}

func TestComputeMetrics_AvgConfidenceWordWeighted(t *testing.T) {
	chunks := []CaptionChunk{
		{
			StartTime: 0, EndTime: 1, Duration: 1, WordCount: 1,
			WordBoundaries: []WordTiming{
				{Word: "a", Start: 0, End: 1, Confidence: 1.0},
			},
		},
		{
			StartTime: 1, EndTime: 3, Duration: 2, WordCount: 3,
			WordBoundaries: []WordTiming{
				{Word: "b", Start: 1, End: 1.5, Confidence: 0.5},
				{Word: "c", Start: 1.5, End: 2, Confidence: 0.5},
				{Word: "d", Start: 2, End: 3, Confidence: 0.5},
			},
		},
	}

	metrics := ComputeMetrics(chunks, defaultOptions(), 0)
	// Word-weighted: (1.0 + 3*0.5) / 4, not the mean of chunk means.
	if !almostEqual(metrics.AvgConfidence, 0.625) {
		t.Errorf("avgConfidence = %g, want 0.625", metrics.AvgConfidence)
	}
}

func TestComputeMetrics_PerfectAlignmentScoresFull(t *testing.T) {
	chunks := []CaptionChunk{
		{
			StartTime: 0, EndTime: 2, Duration: 2, WordCount: 4, CharCount: 20,
			WordBoundaries: []WordTiming{{Word: "a", Start: 0, End: 2, Confidence: 0.9}},
		},
	}
	metrics := ComputeMetrics(chunks, defaultOptions(), 10)
	if !almostEqual(metrics.TimingPrecision, 100) {
		t.Errorf("timingPrecision = %g, want 100", metrics.TimingPrecision)
	}
}

func TestComputeMetrics_MisalignmentPenalty(t *testing.T) {
	// StartTime 0.01 sits 0.01s off the nearest 30fps frame boundary.
	chunks := []CaptionChunk{
		{
			StartTime: 0.01, EndTime: 1, Duration: 0.99, WordCount: 2, CharCount: 10,
			WordBoundaries: []WordTiming{{Word: "a", Start: 0.01, End: 1, Confidence: 0.9}},
		},
	}
	metrics := ComputeMetrics(chunks, defaultOptions(), 0)
	want := 100.0 - 0.01*misalignPenaltyPerSecond
	if !almostEqual(metrics.TimingPrecision, want) {
		t.Errorf("timingPrecision = %g, want %g", metrics.TimingPrecision, want)
	}
}

func TestComputeMetrics_OvershootPenaltyCapped(t *testing.T) {
	// The last chunk runs a full second past the audio: penalty hits the
	// 50-point cap.
	chunks := []CaptionChunk{
		{
			StartTime: 4, EndTime: 6, Duration: 2, WordCount: 3, CharCount: 15,
			WordBoundaries: []WordTiming{{Word: "a", Start: 4, End: 6, Confidence: 0.9}},
		},
	}
	metrics := ComputeMetrics(chunks, defaultOptions(), 5)
	if !almostEqual(metrics.TimingPrecision, 50) {
		t.Errorf("timingPrecision = %g, want 50", metrics.TimingPrecision)
	}
}

func TestComputeMetrics_Readability(t *testing.T) {
	opts := defaultOptions()

	tests := []struct {
		name  string
		chunk CaptionChunk
		want  float64
	}{
		{
			name:  "comfortable chunk earns the bonus",
			chunk: CaptionChunk{Duration: 2.0, WordCount: 4, CharCount: 20},
			want:  102, // clamped below
		},
		{
			name:  "single word penalized",
			chunk: CaptionChunk{Duration: 2.0, WordCount: 1, CharCount: 4},
			want:  97, // 100 - 5 + 2
		},
		{
			name:  "too many words penalized",
			chunk: CaptionChunk{Duration: 2.0, WordCount: 9, CharCount: 40},
			want:  99, // 100 - 3 + 2
		},
		{
			name:  "dense text penalized",
			chunk: CaptionChunk{Duration: 2.0, WordCount: 5, CharCount: 100},
			want:  97, // 100 - 5 + 2
		},
		{
			name:  "too short penalized",
			chunk: CaptionChunk{Duration: 0.5, WordCount: 3, CharCount: 15},
			want:  97, // 100 - 3
		},
		{
			name:  "lingering chunk penalized",
			chunk: CaptionChunk{Duration: 7.0, WordCount: 5, CharCount: 30},
			want:  97, // 100 - 3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.chunk.WordBoundaries = []WordTiming{{Word: "x", Confidence: 0.9}}
			metrics := ComputeMetrics([]CaptionChunk{tt.chunk}, opts, 0)
			want := tt.want
			if want > 100 {
				want = 100
			}
			if !almostEqual(metrics.ReadabilityScore, want) {
				t.Errorf("readabilityScore = %g, want %g", metrics.ReadabilityScore, want)
			}
		})
	}
}
