package harness

import (
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
)

type Result struct {
	Label     string
	Durations []time.Duration // in run order

	Best   time.Duration
	Median time.Duration
	Mean   time.Duration
	P90    time.Duration
	Worst  time.Duration

	AllocBytes uint64 // per run
}

func (r Result) Runs() int {
	return len(r.Durations)
}

// Throughput returns items per second at the best run.
func (r Result) Throughput(items int) float64 {
	if r.Best <= 0 {
		return 0
	}
	return float64(items) / r.Best.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%s: best %v, median %v, mean %v over %d runs, %s/run",
		r.Label, r.Best, r.Median, r.Mean, r.Runs(), humanize.IBytes(r.AllocBytes))
}

func summarize(label string, durations []time.Duration) Result {
	r := Result{
		Label:     label,
		Durations: durations,
	}
	n := len(durations)
	if n == 0 {
		return r
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	r.Best = sorted[0]
	r.Worst = sorted[n-1]
	r.Mean = total / time.Duration(n)
	if n%2 == 1 {
		r.Median = sorted[n/2]
	} else {
		r.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	r.P90 = quantile(sorted, 0.9)
	return r
}

// quantile expects sorted input.
func quantile(sorted []time.Duration, p float64) time.Duration {
	i := int(float64(len(sorted)) * p)
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}
