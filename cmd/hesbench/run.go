package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	hes "github.com/tothambrus11/heterogeneous-entity-stores"
	"github.com/tothambrus11/heterogeneous-entity-stores/harness"
	"github.com/tothambrus11/heterogeneous-entity-stores/history"
)

type runOptions struct {
	steps    int
	seed     uint64
	runs     int
	warmup   int
	cases    []string
	history  string
	parallel int
	gc       bool
	strict   bool
	noColor  bool
}

func newRunCmd(g *globalOptions) *cobra.Command {
	opt := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite and verify its checksums",
		Example: `  hesbench run
  hesbench run --case "polymorphic insertion" --runs 20
  hesbench run --steps 1000000 --history hesbench.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd.OutOrStdout(), g, opt)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opt.steps, "steps", "n", hes.DefaultWorkload.Steps, "records inserted per workload")
	f.Uint64Var(&opt.seed, "seed", hes.DefaultWorkload.Seed, "initial driver seed")
	f.IntVarP(&opt.runs, "runs", "r", 10, "timed runs per case")
	f.IntVar(&opt.warmup, "warmup", 1, "untimed runs per case before measuring")
	f.StringSliceVarP(&opt.cases, "case", "c", nil, "cases to run, in order (default all)")
	f.StringVar(&opt.history, "history", "", "archive results in this Bolt file and compare against the best earlier run")
	f.IntVarP(&opt.parallel, "parallel", "p", 1, "cases to run at once; each gets its own store")
	f.BoolVar(&opt.gc, "gc", true, "collect garbage before every timed run")
	f.BoolVar(&opt.strict, "strict", true, "fail when a checksum differs from the reference value")
	f.BoolVar(&opt.noColor, "no-color", false, "disable colored deltas")
	return cmd
}

func runSuite(out io.Writer, g *globalOptions, opt *runOptions) error {
	w := hes.Workload{Steps: opt.steps, Seed: opt.seed}
	if err := w.Validate(); err != nil {
		return err
	}
	if opt.runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", opt.runs)
	}
	suite, err := hes.DefaultSuite().Select(opt.cases...)
	if err != nil {
		return err
	}

	var archive *history.Archive
	baselines := make(map[string]time.Duration)
	if opt.history != "" {
		archive, err = history.Open(opt.history, history.Options{Logger: g.logger})
		if err != nil {
			return err
		}
		defer archive.Close()
		for _, name := range suite.Names() {
			rec, err := archive.Best(name, w.Steps, w.Seed)
			if errors.Is(err, history.ErrNotFound) {
				continue
			} else if err != nil {
				return err
			}
			baselines[name] = rec.Best
		}
	}

	fmt.Fprintf(out, "workload: %s steps, seed %d, %d runs per case\n\n", humanize.Comma(int64(w.Steps)), w.Seed, opt.runs)

	h := harness.New(harness.Options{
		Logger: g.logger,
		Warmup: opt.warmup,
		GC:     opt.gc,
	})
	outcomes, err := runCases(h, suite, w, opt.runs, opt.parallel)
	if err != nil {
		return err
	}

	results := make([]harness.Result, 0, len(outcomes))
	for _, o := range outcomes {
		r, _ := h.Result(o.Case)
		results = append(results, r)
	}
	err = harness.Print(out, results, harness.ReportOptions{
		Items:     w.Steps,
		Baselines: baselines,
		Color:     !opt.noColor && !color.NoColor,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	var failed []string
	for _, o := range outcomes {
		fmt.Fprintln(out, o)
		if !o.OK() {
			failed = append(failed, o.Case)
		}
	}

	if archive != nil {
		now := time.Now()
		for i, o := range outcomes {
			r := results[i]
			err := archive.Append(&history.Record{
				Label:      o.Case,
				Time:       now,
				GoVersion:  runtime.Version(),
				Steps:      w.Steps,
				Seed:       w.Seed,
				Runs:       r.Runs(),
				Best:       r.Best,
				Median:     r.Median,
				Mean:       r.Mean,
				AllocBytes: r.AllocBytes,
				Checksum:   o.Checksum,
			})
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "\narchived %d results in %s\n", len(outcomes), archive.Path())
	}

	if len(failed) > 0 && opt.strict {
		return fmt.Errorf("checksum mismatch in %d case(s): %q", len(failed), failed)
	}
	return nil
}

// runCases runs up to parallel cases at once and returns their outcomes in
// suite order.
func runCases(h *harness.Harness, suite *hes.Suite, w hes.Workload, runs, parallel int) ([]hes.Outcome, error) {
	if parallel <= 1 {
		return suite.Run(h, w, runs)
	}

	cases := suite.Cases()
	outcomes := make([]hes.Outcome, len(cases))
	var eg errgroup.Group
	eg.SetLimit(parallel)
	for i, c := range cases {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s: %v", c.Name, r)
				}
			}()
			outcomes[i] = hes.RunCase(h, c, w, runs)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
