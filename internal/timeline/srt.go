package timeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/bluefxvideo/captionforge/internal/caption"
)

// FormatSRT renders a chunk sequence as SRT subtitle content, using each
// chunk's wrapped display lines as the subtitle text.
func FormatSRT(chunks []caption.CaptionChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, ch := range chunks {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n",
			i+1,
			formatSRTTime(ch.StartTime),
			formatSRTTime(ch.EndTime),
			strings.Join(ch.Lines, "\n"))
		if i < len(chunks)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// formatSRTTime converts seconds to SRT time format HH:MM:SS,mmm.
func formatSRTTime(seconds float64) string {
	totalSec := math.Abs(seconds)
	hours := int(totalSec / 3600)
	remainder := math.Mod(totalSec, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Round(math.Mod(secs, 1) * 1000))
	if millis >= 1000 {
		millis = 999
	}
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secs), millis)
}
