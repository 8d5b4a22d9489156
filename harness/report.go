package harness

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const defaultThreshold = 0.05

type ReportOptions struct {
	// Items is the number of rows each run processes. Zero hides throughput.
	Items int

	// Baselines maps labels to a previous best duration to compare against.
	Baselines map[string]time.Duration

	// Threshold is the relative change below which a delta is not
	// highlighted. Zero means 5%.
	Threshold float64

	// Color forces highlighting on or off regardless of the terminal.
	Color bool
}

// Print writes results as a table. The baseline delta is the last column so
// color escapes do not disturb alignment.
func Print(w io.Writer, results []Result, opt ReportOptions) error {
	threshold := opt.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	worse := color.New(color.FgRed)
	better := color.New(color.FgGreen)
	if opt.Color {
		worse.EnableColor()
		better.EnableColor()
	} else {
		worse.DisableColor()
		better.DisableColor()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tRUNS\tBEST\tMEDIAN\tMEAN\tP90\tALLOC/RUN\tTHROUGHPUT\tVS BASELINE")
	for _, r := range results {
		throughput := "-"
		if opt.Items > 0 {
			throughput = humanize.Comma(int64(r.Throughput(opt.Items))) + "/s"
		}

		delta := "-"
		if base, ok := opt.Baselines[r.Label]; ok && base > 0 {
			change := float64(r.Best-base) / float64(base)
			delta = fmt.Sprintf("%+.1f%% (%v)", change*100, base)
			switch {
			case change > threshold:
				delta = worse.Sprint(delta)
			case change < -threshold:
				delta = better.Sprint(delta)
			}
		}

		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\t%v\t%s\t%s\t%s\n",
			r.Label, r.Runs(), r.Best, r.Median, r.Mean, r.P90,
			humanize.IBytes(r.AllocBytes), throughput, delta)
	}
	return tw.Flush()
}
