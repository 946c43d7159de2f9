package caption

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// rawWord mirrors the transcription service's word entry. Confidence is a
// pointer so an absent field can be told apart from an explicit zero.
type rawWord struct {
	Word       string   `json:"word"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence"`
}

// rawTranscript is the top-level transcription response shape.
type rawTranscript struct {
	Words    []rawWord `json:"words"`
	Duration float64   `json:"duration"`
}

// DecodeTranscript parses an upstream transcription response into a
// Transcript, defaulting missing word confidence values. Timings are
// taken as-is; the service reports absolute seconds.
func DecodeTranscript(r io.Reader) (*Transcript, error) {
	var raw rawTranscript
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}

	words := make([]WordTiming, 0, len(raw.Words))
	for _, w := range raw.Words {
		conf := defaultConfidence
		if w.Confidence != nil {
			conf = *w.Confidence
		}
		words = append(words, WordTiming{
			Word:       w.Word,
			Start:      w.Start,
			End:        w.End,
			Confidence: conf,
		})
	}

	return &Transcript{Words: words, Duration: raw.Duration}, nil
}

// LoadTranscript reads a saved transcription JSON file.
func LoadTranscript(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return DecodeTranscript(f)
}
