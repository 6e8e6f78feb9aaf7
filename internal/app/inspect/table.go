package inspect

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes the bucket summaries as one table. Each bucket
// renders its sample rows followed by a "… and N more" row when the
// bucket holds more entries than were sampled.
func RenderTable(w io.Writer, sums []BucketSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Length", "Words", "Sample", "Definition"})

	for _, sum := range sums {
		if len(sum.Samples) == 0 {
			t.AppendRow(table.Row{sum.Length, sum.Count, "", ""})
			t.AppendSeparator()
			continue
		}
		for i, s := range sum.Samples {
			if i == 0 {
				t.AppendRow(table.Row{sum.Length, sum.Count, s.Word, s.Definition})
			} else {
				t.AppendRow(table.Row{"", "", s.Word, s.Definition})
			}
		}
		if sum.More > 0 {
			t.AppendRow(table.Row{"", "", fmt.Sprintf("… and %d more", sum.More), ""})
		}
		t.AppendSeparator()
	}

	t.Render()
}
