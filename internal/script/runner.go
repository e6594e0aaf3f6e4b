package script

import (
	"context"
	"fmt"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
)

// Record is the state of the list after one step.
type Record struct {
	Step     int      `json:"step"`
	Op       string   `json:"op"`
	Result   string   `json:"result,omitempty"`
	Count    int      `json:"count"`
	Capacity int      `json:"capacity"`
	Items    []string `json:"items"`
}

type Trace struct {
	Name    string   `json:"name"`
	Records []Record `json:"records"`
}

func (t *Trace) Counts() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = float64(r.Count)
	}
	return out
}

func (t *Trace) Capacities() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = float64(r.Capacity)
	}
	return out
}

// Last returns the final record, or nil for an empty trace.
func (t *Trace) Last() *Record {
	if len(t.Records) == 0 {
		return nil
	}
	return &t.Records[len(t.Records)-1]
}

type Observer interface {
	OnStep(list *dynarray.List[string], rec Record)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(list *dynarray.List[string], rec Record)

func (f ObserverFunc) OnStep(list *dynarray.List[string], rec Record) { f(list, rec) }

type Runner struct {
	observers []Observer
}

func New() *Runner {
	return &Runner{observers: make([]Observer, 0)}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run applies every step of cfg to a fresh list. On failure the partial
// trace is returned together with a *StepError.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	list, err := dynarray.NewWithCapacity[string](cfg.Capacity)
	if err != nil {
		return nil, err
	}

	trace := &Trace{
		Name:    cfg.Name,
		Records: make([]Record, 0, len(cfg.Steps)),
	}

	for i, step := range cfg.Steps {
		select {
		case <-ctx.Done():
			return trace, ctx.Err()
		default:
		}

		rec, err := r.apply(list, i, step)
		if err != nil {
			return trace, err
		}
		trace.Records = append(trace.Records, rec)

		for _, obs := range r.observers {
			obs.OnStep(list, rec)
		}
	}

	return trace, nil
}

func (r *Runner) apply(list *dynarray.List[string], i int, step config.StepConfig) (Record, error) {
	fn, ok := ops[step.Op]
	if !ok {
		return Record{}, &StepError{Step: i, Op: step.Op, Wrapped: fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)}
	}

	result, err := fn(list, step)
	if err != nil {
		return Record{}, &StepError{Step: i, Op: step.Op, Wrapped: err}
	}

	return Record{
		Step:     i,
		Op:       step.Op,
		Result:   result,
		Count:    list.Count(),
		Capacity: list.Capacity(),
		Items:    list.Slice(),
	}, nil
}

// Growth appends n items to a list created with capacity and returns the
// capacity observed after each append.
func Growth(capacity, n int) ([]float64, error) {
	list, err := dynarray.NewWithCapacity[int](capacity)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		list.Add(i)
		out[i] = float64(list.Capacity())
	}
	return out, nil
}
