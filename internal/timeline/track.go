// Package timeline models the text-track shapes the video editor and
// renderer consume: caption chunks stored as a timed track item, plus
// frame-based lookup of the active chunk and word for highlight rendering.
package timeline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/bluefxvideo/captionforge/internal/caption"
)

// Style holds the caption rendering colors. These are downstream UI
// configuration; the chunker never computes them.
type Style struct {
	HighlightColor  string `json:"highlightColor"`
	ActiveWordColor string `json:"activeWordColor"`
	DefaultColor    string `json:"defaultColor"`
}

// DefaultStyle returns the stock caption styling.
func DefaultStyle() Style {
	return Style{
		HighlightColor:  "#FFD700",
		ActiveWordColor: "#FFFFFF",
		DefaultColor:    "#CCCCCC",
	}
}

// CaptionTrack is a text track on the video timeline whose items were
// derived from speech recognition rather than typed freehand.
type CaptionTrack struct {
	ID           string                 `json:"id"`
	Chunks       []caption.CaptionChunk `json:"chunks"`
	FromCaptions bool                   `json:"fromCaptions"`
	FrameRate    float64                `json:"frameRate"`
	Style        Style                  `json:"style"`
}

// NewCaptionTrack wraps a chunk sequence in a track item with a fresh
// identifier and default styling.
func NewCaptionTrack(chunks []caption.CaptionChunk, frameRate float64) CaptionTrack {
	return CaptionTrack{
		ID:           uuid.NewString(),
		Chunks:       chunks,
		FromCaptions: true,
		FrameRate:    frameRate,
		Style:        DefaultStyle(),
	}
}

// ActiveChunk returns the index of the chunk active at the given frame
// number, or -1 when no chunk covers that frame. Chunk boundaries are
// frame-aligned, so the comparison is exact after rounding.
func (t CaptionTrack) ActiveChunk(frame int) int {
	for i, ch := range t.Chunks {
		if frame >= t.frameOf(ch.StartTime) && frame < t.frameOf(ch.EndTime) {
			return i
		}
	}
	return -1
}

// ActiveWord returns the index within the chunk's word boundaries of the
// word active at the given frame, or -1 when none is.
func (t CaptionTrack) ActiveWord(chunkIndex, frame int) int {
	if chunkIndex < 0 || chunkIndex >= len(t.Chunks) {
		return -1
	}
	for i, w := range t.Chunks[chunkIndex].WordBoundaries {
		if frame >= t.frameOf(w.Start) && frame < t.frameOf(w.End) {
			return i
		}
	}
	return -1
}

func (t CaptionTrack) frameOf(seconds float64) int {
	return int(math.Round(seconds * t.FrameRate))
}

// WriteJSON saves the track in the editor's JSON shape.
func (t CaptionTrack) WriteJSON(path string) error {
	data, err := json.MarshalIndent(t, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal track: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write track: %w", err)
	}
	return nil
}
