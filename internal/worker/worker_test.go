package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bluefxvideo/captionforge/internal/config"
	"github.com/bluefxvideo/captionforge/internal/timeline"
)

func writeTranscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleTranscript = `{
	"duration": 2.0,
	"words": [
		{"word": "Welcome", "start": 0.0, "end": 0.4, "confidence": 0.95},
		{"word": "to", "start": 0.4, "end": 0.6, "confidence": 0.98},
		{"word": "the", "start": 0.6, "end": 0.8, "confidence": 0.97},
		{"word": "show.", "start": 0.8, "end": 1.2, "confidence": 0.96}
	]
}`

func TestRun_TranscriptJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, "clip.json", sampleTranscript)

	res, err := Run(context.Background(), Options{
		InputPath:  input,
		EmitSRT:    true,
		Generation: config.Default(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Chunks == 0 {
		t.Fatal("expected at least one chunk")
	}

	wantOut := filepath.Join(dir, "clip.captions.json")
	if res.OutputPath != wantOut {
		t.Errorf("output path = %q, want %q", res.OutputPath, wantOut)
	}

	data, err := os.ReadFile(wantOut)
	if err != nil {
		t.Fatalf("track JSON not written: %v", err)
	}
	var track timeline.CaptionTrack
	if err := json.Unmarshal(data, &track); err != nil {
		t.Fatalf("track JSON invalid: %v", err)
	}
	if !track.FromCaptions || len(track.Chunks) != res.Chunks {
		t.Errorf("unexpected track contents: %+v", track)
	}

	srt, err := os.ReadFile(filepath.Join(dir, "clip.captions.srt"))
	if err != nil {
		t.Fatalf("SRT preview not written: %v", err)
	}
	if !strings.Contains(string(srt), "-->") {
		t.Errorf("SRT output missing timing arrow:\n%s", srt)
	}
}

func TestRun_EmptyTranscript(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, "empty.json", `{"words": []}`)

	if _, err := Run(context.Background(), Options{
		InputPath:  input,
		Generation: config.Default(),
	}); err == nil {
		t.Error("expected error for transcript with no words")
	}
}

func TestRun_AudioWithoutClient(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp3")
	if err := os.WriteFile(input, []byte("not really audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(context.Background(), Options{
		InputPath:  input,
		Generation: config.Default(),
	}); err == nil {
		t.Error("expected error for audio input without a transcription client")
	}
}

func TestRunBatch_MultipleTranscripts(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeTranscript(t, dir, "a.json", sampleTranscript),
		writeTranscript(t, dir, "b.json", sampleTranscript),
		writeTranscript(t, dir, "c.json", sampleTranscript),
	}

	results, err := RunBatch(context.Background(), inputs, Options{
		MaxConcurrent: 2,
		Generation:    config.Default(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Results come back sorted by input path.
	for i := 1; i < len(results); i++ {
		if results[i-1].InputPath > results[i].InputPath {
			t.Errorf("results not sorted: %q before %q", results[i-1].InputPath, results[i].InputPath)
		}
	}
	for _, r := range results {
		if _, err := os.Stat(r.OutputPath); err != nil {
			t.Errorf("missing output for %s: %v", r.InputPath, err)
		}
	}
}
