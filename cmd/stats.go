package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bluefxvideo/captionforge/internal/worker"
)

// renderStats prints a quality metrics table for the processed inputs.
func renderStats(w io.Writer, results []worker.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Input", "Chunks", "Avg Confidence", "Timing Precision", "Readability"})

	for _, r := range results {
		t.AppendRow(table.Row{
			filepath.Base(r.InputPath),
			r.Chunks,
			fmt.Sprintf("%.2f", r.Metrics.AvgConfidence),
			fmt.Sprintf("%.1f", r.Metrics.TimingPrecision),
			fmt.Sprintf("%.1f", r.Metrics.ReadabilityScore),
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
