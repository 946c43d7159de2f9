package caption

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/bluefxvideo/captionforge/internal/config"
)

const (
	// pauseThreshold is the gap before the next word, in seconds, that
	// counts as a natural speech pause.
	pauseThreshold = 0.3

	// minWordsForBreak guards pause and punctuation breaks so a stray
	// early cue cannot close a one- or two-word chunk.
	minWordsForBreak = 3

	// defaultConfidence substitutes for words the recognizer returned
	// without a confidence value.
	defaultConfidence = 0.9
)

// Chunker groups word timings into frame-aligned caption chunks.
type Chunker struct {
	opts config.Options
}

// NewChunker creates a chunker with the given options. Options must have
// been validated by the caller.
func NewChunker(opts config.Options) *Chunker {
	return &Chunker{opts: opts}
}

// Chunk runs a single forward pass over words, grouping them into display
// chunks and computing aggregate quality metrics. Words must be sorted by
// start time ascending; the chunker does not re-sort. audioDuration is the
// known length of the audio in seconds and acts as a hard ceiling on chunk
// end times; pass 0 when unknown.
//
// Empty input yields no chunks and zero metrics, never an error.
func (c *Chunker) Chunk(words []WordTiming, audioDuration float64) ([]CaptionChunk, QualityMetrics) {
	if len(words) == 0 {
		return nil, QualityMetrics{}
	}

	frameDur := 1.0 / c.opts.FrameRate

	var chunks []CaptionChunk
	var buf []WordTiming

	for i, w := range words {
		buf = append(buf, w)

		if !c.shouldClose(buf, words, i) {
			continue
		}

		chunks = append(chunks, c.buildChunk(buf, len(chunks), audioDuration, frameDur))
		buf = nil
	}

	return chunks, ComputeMetrics(chunks, c.opts, audioDuration)
}

// shouldClose decides whether the pending buffer closes after the word at
// index i. Any one condition closes the chunk; the last word always does.
func (c *Chunker) shouldClose(buf []WordTiming, words []WordTiming, i int) bool {
	if i == len(words)-1 {
		return true
	}
	if len(buf) >= c.opts.MaxWordsPerChunk {
		return true
	}

	cur := buf[len(buf)-1]

	if len(buf) >= minWordsForBreak {
		// Natural pause before the next word (look-ahead, not look-back).
		if words[i+1].Start-cur.End > pauseThreshold {
			return true
		}
		if endsWithTerminalPunctuation(cur.Word) {
			return true
		}
	}

	if cur.End-buf[0].Start >= c.opts.MaxChunkDuration {
		return true
	}
	return false
}

func (c *Chunker) buildChunk(buf []WordTiming, index int, audioDuration, frameDur float64) CaptionChunk {
	start := buf[0].Start
	end := buf[len(buf)-1].End

	// Extend short chunks to the minimum duration, unless the extension
	// would run past the end of the audio. Audio-boundary correctness
	// wins over the minimum-duration target.
	if end-start < c.opts.MinChunkDuration {
		extended := start + c.opts.MinChunkDuration
		if audioDuration <= 0 || extended <= audioDuration {
			end = extended
		}
	}
	if audioDuration > 0 && end > audioDuration {
		end = audioDuration
	}

	alignedStart := alignToFrame(start, frameDur)
	alignedEnd := alignToFrame(end, frameDur)

	texts := make([]string, len(buf))
	boundaries := make([]WordTiming, len(buf))
	confSum := 0.0
	for i, w := range buf {
		texts[i] = w.Word

		conf := w.Confidence
		if conf <= 0 {
			conf = defaultConfidence
		}
		confSum += conf

		boundaries[i] = WordTiming{
			Word:       w.Word,
			Start:      alignToFrame(w.Start, frameDur),
			End:        alignToFrame(w.End, frameDur),
			Confidence: conf,
		}
	}
	text := strings.Join(texts, " ")

	return CaptionChunk{
		ID:             fmt.Sprintf("caption-%d", index),
		Text:           text,
		StartTime:      alignedStart,
		EndTime:        alignedEnd,
		Duration:       alignedEnd - alignedStart,
		WordCount:      len(buf),
		CharCount:      utf8.RuneCountInString(text),
		Lines:          wrapLines(text, c.opts.MaxCharsPerLine),
		Confidence:     confSum / float64(len(buf)),
		WordBoundaries: boundaries,
	}
}

// alignToFrame snaps a timestamp to the nearest multiple of the frame
// duration so it corresponds to an exact renderable frame. The renderer
// evaluates chunk and word activity by integer frame number; an unaligned
// boundary would flicker for a frame or never activate a word.
func alignToFrame(t, frameDur float64) float64 {
	return math.Round(t/frameDur) * frameDur
}

// endsWithTerminalPunctuation reports whether the word's text ends a
// sentence (., !, ?).
func endsWithTerminalPunctuation(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	return r == '.' || r == '!' || r == '?'
}
