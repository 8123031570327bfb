package bench

import (
	"errors"
	"time"
)

// TestFunc performs exactly one unit of benchmark work (one load or dump
// operation). Invocations must be independent: no state may accumulate
// across calls, so every call costs the same.
type TestFunc func() error

// ErrUnsupportedCombination is returned by NewTestFunc when no test
// function is defined for the requested (io type, command, api) triple
var ErrUnsupportedCombination = errors.New("benchmark combination not supported")

// Result holds the measurements of a single benchmark run.
// It is constructed once by the runner and immutable afterwards.
type Result struct {
	// Timings contains one elapsed-time sample per timed repetition.
	// Each sample covers BatchSize consecutive test function invocations.
	Timings []time.Duration

	// BatchSize is the number of invocations folded into each sample,
	// calibrated so a single sample is long enough to measure reliably
	BatchSize int

	// PeakMemory is the number of bytes allocated during exactly one
	// isolated invocation. It is nil when no memory tracing facility
	// is available.
	PeakMemory *uint64
}

// IMemTracer measures the memory allocated by a single test function
// invocation
type IMemTracer interface {
	// Available reports whether the tracing facility exists in this
	// runtime. When false, TraceAlloc is never called and the result
	// carries no memory figure.
	Available() bool
	// TraceAlloc runs fn exactly once and returns the bytes allocated
	// during the call. Tracing state must be released even when fn
	// fails; the failure is then propagated.
	TraceAlloc(fn TestFunc) (uint64, error)
}

// IGCToggle controls the process-wide garbage collector state. It is
// injected rather than accessed globally so runs and tests stay isolated.
type IGCToggle interface {
	// SetDisabled switches the collector off (true) or explicitly on
	// (false) and returns a function restoring the previous state
	SetDisabled(disabled bool) (restore func())
}
