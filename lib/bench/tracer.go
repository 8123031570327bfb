package bench

import (
	"runtime"
	"runtime/debug"
)

// --------------------------------------------------------------------------
// Runtime-backed implementations
// --------------------------------------------------------------------------

// NewRuntimeTracer creates a memory tracer backed by the Go runtime's
// allocation counters
func NewRuntimeTracer() IMemTracer {
	return runtimeTracer{}
}

type runtimeTracer struct{}

func (runtimeTracer) Available() bool { return true }

// TraceAlloc measures the bytes allocated across one invocation of fn.
// The collector is switched off for the duration so reclamation cannot
// run between the two counter reads, and switched back on afterwards
// even when fn fails.
func (runtimeTracer) TraceAlloc(fn TestFunc) (uint64, error) {
	prev := debug.SetGCPercent(-1)
	defer debug.SetGCPercent(prev)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	if err := fn(); err != nil {
		return 0, err
	}

	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc, nil
}

// NewNoopTracer creates a tracer that reports the tracing facility as
// unavailable. Used on runtimes without allocation counters and in tests.
func NewNoopTracer() IMemTracer {
	return noopTracer{}
}

type noopTracer struct{}

func (noopTracer) Available() bool { return false }

func (noopTracer) TraceAlloc(TestFunc) (uint64, error) { return 0, nil }

// NewRuntimeGCToggle creates a toggle driving the runtime garbage
// collector via the GC percent knob
func NewRuntimeGCToggle() IGCToggle {
	return runtimeGCToggle{}
}

type runtimeGCToggle struct{}

func (runtimeGCToggle) SetDisabled(disabled bool) func() {
	var prev int
	if disabled {
		prev = debug.SetGCPercent(-1)
	} else {
		prev = debug.SetGCPercent(100)
	}
	return func() { debug.SetGCPercent(prev) }
}
