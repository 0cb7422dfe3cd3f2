package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteReport renders results as an aligned table. The accelerated columns
// appear only when at least one result carries accelerated timings.
func WriteReport(w io.Writer, results []Result) error {
	compared := false
	for _, r := range results {
		if r.Accelerated > 0 {
			compared = true
			break
		}
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	if compared {
		fmt.Fprintln(tw, "op\tsize\tgeneric\tnative\tspeedup")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%dx%d\t%s\t%s\t%.2fx\n",
				r.Op, r.Size, r.Size, fmtDuration(r.Generic), fmtDuration(r.Accelerated), r.Speedup)
		}
	} else {
		fmt.Fprintln(tw, "op\tsize\tgeneric")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%dx%d\t%s\n", r.Op, r.Size, r.Size, fmtDuration(r.Generic))
		}
	}
	return tw.Flush()
}

func fmtDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
