package hes

import (
	"errors"
	"fmt"
	"strings"
)

// Timer runs body runs times and records how long each run took.
type Timer interface {
	Time(label string, runs int, body func())
}

type TimerFunc func(label string, runs int, body func())

func (f TimerFunc) Time(label string, runs int, body func()) {
	f(label, runs, body)
}

// Case is one benchmark of a Suite. Setup does the untimed preparation for a
// workload and returns the timed body, which returns the run's checksum.
type Case struct {
	Name     string
	Expected int64 // checksum for DefaultWorkload
	Setup    func(w Workload) func() int64
}

type Outcome struct {
	Case     string
	Checksum int64
	Expected int64
	Known    bool // Expected applies to the workload that was run
}

func (o Outcome) OK() bool {
	return !o.Known || o.Checksum == o.Expected
}

func (o Outcome) String() string {
	switch {
	case !o.Known:
		return fmt.Sprintf("%s: checksum %d", o.Case, o.Checksum)
	case o.OK():
		return fmt.Sprintf("%s: checksum %d ok", o.Case, o.Checksum)
	default:
		return fmt.Sprintf("%s: checksum %d, wanted %d", o.Case, o.Checksum, o.Expected)
	}
}

type Suite struct {
	cases []Case
}

const (
	PolymorphicDispatchCase  = "polymorphic method dispatch"
	PolymorphicInsertionCase = "polymorphic insertion"
	MonomorphicInsertionCase = "monomorphic insertion"
	MonomorphicDispatchCase  = "monomorphic method dispatch"
)

func DefaultSuite() *Suite {
	return NewSuite(
		Case{
			Name:     PolymorphicDispatchCase,
			Expected: 10848579072288939,
			Setup: func(w Workload) func() int64 {
				return func() int64 {
					return MixedDispatch(w).Sum
				}
			},
		},
		Case{
			Name:     PolymorphicInsertionCase,
			Expected: 1667447891,
			Setup: func(w Workload) func() int64 {
				rows := PrepareInsertion(w)
				return func() int64 {
					return InsertReversed(rows).Sum
				}
			},
		},
		Case{
			Name:     MonomorphicInsertionCase,
			Expected: 1667447891,
			Setup: func(w Workload) func() int64 {
				src := Populate(w)
				return func() int64 {
					return MonomorphicInsertion(src).Sum
				}
			},
		},
		Case{
			Name:     MonomorphicDispatchCase,
			Expected: 11076576431672725,
			Setup: func(w Workload) func() int64 {
				p := Populate(w)
				return func() int64 {
					return MonomorphicScan(p)
				}
			},
		},
	)
}

func NewSuite(cases ...Case) *Suite {
	return &Suite{cases: cases}
}

func (s *Suite) Cases() []Case {
	return append([]Case(nil), s.cases...)
}

func (s *Suite) Names() []string {
	names := make([]string, len(s.cases))
	for i, c := range s.cases {
		names[i] = c.Name
	}
	return names
}

func (s *Suite) Case(name string) (Case, bool) {
	for _, c := range s.cases {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Case{}, false
}

// Select returns a Suite with the named cases, in the given order. No names
// selects every case.
func (s *Suite) Select(names ...string) (*Suite, error) {
	if len(names) == 0 {
		return s, nil
	}
	var cases []Case
	var errs []error
	for _, name := range names {
		c, ok := s.Case(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown case %q", name))
			continue
		}
		cases = append(cases, c)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w (known cases: %s)", err, strings.Join(s.Names(), ", "))
	}
	return NewSuite(cases...), nil
}

func (w Workload) Validate() error {
	if w.Steps < 0 {
		return fmt.Errorf("invalid workload: steps = %d, wanted >= 0", w.Steps)
	}
	return nil
}

// RunCase times c on w. Every run builds its own Program.
func RunCase(t Timer, c Case, w Workload, runs int) Outcome {
	body := c.Setup(w)
	var sum int64
	t.Time(c.Name, runs, func() {
		sum = body()
	})
	return Outcome{
		Case:     c.Name,
		Checksum: sum,
		Expected: c.Expected,
		Known:    w == DefaultWorkload,
	}
}

func (s *Suite) Run(t Timer, w Workload, runs int) ([]Outcome, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if runs < 1 {
		return nil, fmt.Errorf("invalid run count %d", runs)
	}
	outcomes := make([]Outcome, 0, len(s.cases))
	for _, c := range s.cases {
		outcomes = append(outcomes, RunCase(t, c, w, runs))
	}
	return outcomes, nil
}
