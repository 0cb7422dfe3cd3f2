// Package bench is the demonstration harness around the matrix core: it
// times each arithmetic operation on the generic and accelerated kernel
// sets, measures allocation cost, and renders a comparison report. Nothing
// here affects arithmetic correctness.
package bench

import (
	"runtime"
	"time"

	"github.com/matlite-ml/matlite/internal/matrix"
)

// Result is one timed operation at one size.
type Result struct {
	Op          string
	Size        int // matrices are Size×Size
	Generic     time.Duration
	Accelerated time.Duration // zero when no accelerated backend was supplied
	Speedup     float64       // Generic / Accelerated, 0 when not comparable
}

// Config sizes the benchmark run.
type Config struct {
	Sizes      []int // square matrix sizes to sweep
	Iterations int   // timed iterations per op per size
}

// DefaultConfig returns the size grid used by the CLI.
func DefaultConfig() Config {
	return Config{Sizes: []int{16, 64, 256}, Iterations: 20}
}

// Runner drives the comparison. The accelerated kernel set is optional;
// when absent only the generic column is produced.
type Runner struct {
	generic     matrix.Kernels
	accelerated matrix.Kernels
	cfg         Config
}

// New creates a Runner. accelerated may be nil.
func New(generic, accelerated matrix.Kernels, cfg Config) *Runner {
	return &Runner{generic: generic, accelerated: accelerated, cfg: cfg}
}

// op is one benchmarkable operation expressed against a kernel set.
type op struct {
	name string
	run  func(k matrix.Kernels, a, b *matrix.Dense) error
}

var ops = []op{
	{"+", func(k matrix.Kernels, a, b *matrix.Dense) error { _, err := k.Add(a, b); return err }},
	{"-", func(k matrix.Kernels, a, b *matrix.Dense) error { _, err := k.Sub(a, b); return err }},
	{"*", func(k matrix.Kernels, a, b *matrix.Dense) error { _, err := k.Mul(a, b); return err }},
	{"@", func(k matrix.Kernels, a, b *matrix.Dense) error { _, err := k.MatMul(a, b); return err }},
	{"**", func(k matrix.Kernels, a, _ *matrix.Dense) error { _, err := k.Pow(a, 2); return err }},
}

// Run sweeps every operation over the configured size grid.
func (r *Runner) Run() ([]Result, error) {
	var results []Result
	for _, n := range r.cfg.Sizes {
		a, err := matrix.Rand(n, n, r.generic)
		if err != nil {
			return nil, err
		}
		b, err := matrix.Rand(n, n, r.generic)
		if err != nil {
			return nil, err
		}

		for _, o := range ops {
			res := Result{Op: o.name, Size: n}
			if res.Generic, err = r.time(r.generic, o, a.Raw(), b.Raw()); err != nil {
				return nil, err
			}
			if r.accelerated != nil {
				if res.Accelerated, err = r.time(r.accelerated, o, a.Raw(), b.Raw()); err != nil {
					return nil, err
				}
				if res.Accelerated > 0 {
					res.Speedup = float64(res.Generic) / float64(res.Accelerated)
				}
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) time(k matrix.Kernels, o op, a, b *matrix.Dense) (time.Duration, error) {
	// One warmup iteration, then the timed loop.
	if err := o.run(k, a, b); err != nil {
		return 0, err
	}
	start := time.Now()
	for i := 0; i < r.cfg.Iterations; i++ {
		if err := o.run(k, a, b); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(r.cfg.Iterations), nil
}

// MeasureAlloc reports the heap bytes allocated while fn runs.
func MeasureAlloc(fn func()) uint64 {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}
