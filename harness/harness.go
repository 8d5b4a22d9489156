// Package harness times benchmark bodies and reports the results.
package harness

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

type Options struct {
	Logger *slog.Logger

	// Warmup runs happen before the measured ones and are not recorded.
	Warmup int

	// GC forces a collection before every run so that garbage left by one
	// run is not paid for by the next.
	GC bool
}

// Harness implements hes.Timer. It is safe for concurrent use.
type Harness struct {
	log    *slog.Logger
	warmup int
	gc     bool

	mu      sync.Mutex
	results []Result
}

func New(opt Options) *Harness {
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Harness{
		log:    log,
		warmup: opt.Warmup,
		gc:     opt.GC,
	}
}

// Time runs body warmup+runs times, recording the duration and allocated
// bytes of each measured run under label.
func (h *Harness) Time(label string, runs int, body func()) {
	if runs < 1 {
		runs = 1
	}
	for i := 0; i < h.warmup; i++ {
		body()
	}
	h.log.Debug("harness: start", "label", label, "runs", runs, "warmup", h.warmup)

	durations := make([]time.Duration, 0, runs)
	var allocated uint64
	var mem runtime.MemStats
	for i := 0; i < runs; i++ {
		if h.gc {
			runtime.GC()
		}
		runtime.ReadMemStats(&mem)
		before := mem.TotalAlloc

		start := time.Now()
		body()
		d := time.Since(start)

		runtime.ReadMemStats(&mem)
		allocated += mem.TotalAlloc - before
		durations = append(durations, d)
		h.log.Debug("harness: run", "label", label, "run", i+1, "elapsed", d)
	}

	r := summarize(label, durations)
	r.AllocBytes = allocated / uint64(runs)
	h.log.Info("harness: done", "label", label, "runs", runs, "best", r.Best, "median", r.Median)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.results = append(h.results, r)
}

// Results returns the recorded results in completion order.
func (h *Harness) Results() []Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Result(nil), h.results...)
}

// Result returns the most recent result recorded under label.
func (h *Harness) Result(label string) (Result, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.results) - 1; i >= 0; i-- {
		if h.results[i].Label == label {
			return h.results[i], true
		}
	}
	return Result{}, false
}

func (h *Harness) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.results = nil
}
