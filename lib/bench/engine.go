package bench

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/serbench/lib/common"
	"github.com/ValentinKolb/serbench/lib/format"
)

// DefaultCalibrationThreshold is the minimum duration one timed sample
// must reach during batch calibration
const DefaultCalibrationThreshold = 200 * time.Millisecond

// RunnerConfig holds the measurement policy of a Runner. The zero value
// selects runtime-backed defaults.
type RunnerConfig struct {
	// CalibrationThreshold overrides DefaultCalibrationThreshold
	CalibrationThreshold time.Duration
	// Tracer measures per-invocation memory. Use NewNoopTracer to skip
	// memory profiling entirely.
	Tracer IMemTracer
	// GC drives the process-wide collector state during timing
	GC IGCToggle
	// Formats resolves the spec's format name to a codec
	Formats *format.Registry
}

// Runner executes benchmarks described by a BenchmarkSpec
type Runner struct {
	threshold time.Duration
	tracer    IMemTracer
	gc        IGCToggle
	formats   *format.Registry
}

// NewRunner creates a Runner, filling unset config fields with
// runtime-backed defaults
func NewRunner(conf RunnerConfig) *Runner {
	r := &Runner{
		threshold: conf.CalibrationThreshold,
		tracer:    conf.Tracer,
		gc:        conf.GC,
		formats:   conf.Formats,
	}
	if r.threshold <= 0 {
		r.threshold = DefaultCalibrationThreshold
	}
	if r.tracer == nil {
		r.tracer = NewRuntimeTracer()
	}
	if r.gc == nil {
		r.gc = NewRuntimeGCToggle()
	}
	if r.formats == nil {
		r.formats = format.Default()
	}
	return r
}

// Run executes the benchmark described by spec: it selects the test
// function, profiles the memory of one invocation, then times repeated
// batched invocations.
//
// Errors from the selector (unsupported combination, unreadable input)
// surface before any measurement. Errors raised by the codec during a
// measured invocation abort the run unmodified; measuring a failing
// operation would not mean anything.
func (r *Runner) Run(spec *common.BenchmarkSpec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	codec, err := r.formats.Get(spec.Format)
	if err != nil {
		return nil, err
	}

	fn, err := NewTestFunc(spec, codec, r.formats.IsBinary)
	if err != nil {
		return nil, err
	}

	return r.Measure(spec, fn)
}

// Measure runs the two measurement regimes on an already selected test
// function: one traced invocation for peak memory, then the warmed-up,
// calibrated timing loop.
func (r *Runner) Measure(spec *common.BenchmarkSpec, fn TestFunc) (*Result, error) {
	if spec.Iterations < 1 {
		return nil, fmt.Errorf("iterations must be at least 1, got %d", spec.Iterations)
	}

	// memory profiling, one isolated invocation
	var peak *uint64
	if r.tracer.Available() {
		p, err := r.tracer.TraceAlloc(fn)
		if err != nil {
			return nil, err
		}
		peak = &p
	}

	// the configured GC policy holds for the whole timing phase and is
	// restored afterwards, so consecutive runs cannot observe each
	// other's setting
	restore := r.gc.SetDisabled(spec.DisableGC)
	defer restore()

	// warm up, elapsed time discarded
	if spec.Warmups > 0 {
		if _, err := timeBatch(fn, spec.Warmups); err != nil {
			return nil, err
		}
	}

	batchSize, err := r.calibrate(fn)
	if err != nil {
		return nil, err
	}

	timings := make([]time.Duration, 0, spec.Iterations)
	for i := 0; i < spec.Iterations; i++ {
		elapsed, err := timeBatch(fn, batchSize)
		if err != nil {
			return nil, err
		}
		timings = append(timings, elapsed)
	}

	return &Result{
		Timings:    timings,
		BatchSize:  batchSize,
		PeakMemory: peak,
	}, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// calibrate grows the batch size through 1, 2, 5, 10, 20, 50, ... until
// one timed batch clears the calibration threshold
func (r *Runner) calibrate(fn TestFunc) (int, error) {
	for decade := 1; ; decade *= 10 {
		for _, mult := range [3]int{1, 2, 5} {
			n := decade * mult
			elapsed, err := timeBatch(fn, n)
			if err != nil {
				return 0, err
			}
			if elapsed >= r.threshold {
				return n, nil
			}
		}
	}
}

// timeBatch measures the monotonic elapsed time of n consecutive
// invocations of fn
func timeBatch(fn TestFunc, n int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := fn(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}
