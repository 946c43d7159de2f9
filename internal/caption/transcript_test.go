package caption

import (
	"strings"
	"testing"
)

func TestDecodeTranscript(t *testing.T) {
	payload := `{
		"duration": 12.5,
		"words": [
			{"word": "Hello", "start": 0.0, "end": 0.4, "confidence": 0.42},
			{"word": "there", "start": 0.4, "end": 0.8}
		]
	}`

	transcript, err := DecodeTranscript(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript.Duration != 12.5 {
		t.Errorf("duration = %g, want 12.5", transcript.Duration)
	}
	if len(transcript.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(transcript.Words))
	}
	if !almostEqual(transcript.Words[0].Confidence, 0.42) {
		t.Errorf("explicit confidence = %g, want 0.42", transcript.Words[0].Confidence)
	}
	// A word with no confidence field gets the default, not zero.
	if !almostEqual(transcript.Words[1].Confidence, 0.9) {
		t.Errorf("missing confidence = %g, want 0.9", transcript.Words[1].Confidence)
	}
}

func TestDecodeTranscript_Invalid(t *testing.T) {
	if _, err := DecodeTranscript(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestDecodeTranscript_ExplicitZeroConfidenceKept(t *testing.T) {
	payload := `{"words": [{"word": "um", "start": 0, "end": 0.2, "confidence": 0}]}`
	transcript, err := DecodeTranscript(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript.Words[0].Confidence != 0 {
		t.Errorf("explicit zero confidence = %g, want 0", transcript.Words[0].Confidence)
	}
}
