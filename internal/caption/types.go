package caption

// WordTiming is a single recognized word with absolute timings in seconds,
// as produced by the speech-to-text service.
type WordTiming struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// CaptionChunk is one display unit of captioning: a contiguous group of
// words shown together on screen, with frame-aligned timings.
type CaptionChunk struct {
	ID             string       `json:"id"`
	Text           string       `json:"text"`
	StartTime      float64      `json:"startTime"`
	EndTime        float64      `json:"endTime"`
	Duration       float64      `json:"duration"`
	WordCount      int          `json:"wordCount"`
	CharCount      int          `json:"charCount"`
	Lines          []string     `json:"lines"`
	Confidence     float64      `json:"confidence"`
	WordBoundaries []WordTiming `json:"wordBoundaries"`
}

// QualityMetrics is an aggregate diagnostic over a full chunk sequence.
// It is surfaced to the caller for display and never feeds back into
// chunk generation.
type QualityMetrics struct {
	AvgConfidence    float64 `json:"avgConfidence"`
	TimingPrecision  float64 `json:"timingPrecision"`
	ReadabilityScore float64 `json:"readabilityScore"`
}

// Transcript is the upstream transcription result the chunker consumes:
// a flat word list with absolute timings plus the overall audio duration
// when the service reports one (0 means unknown).
type Transcript struct {
	Words    []WordTiming `json:"words"`
	Duration float64      `json:"duration,omitempty"`
}
