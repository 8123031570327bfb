package bench

import (
	"errors"
	"runtime/debug"
	"testing"
)

// sink keeps allocations made by traced functions reachable
var sink any

func TestRuntimeTracerMeasuresAllocation(t *testing.T) {
	tracer := NewRuntimeTracer()

	if !tracer.Available() {
		t.Fatalf("Runtime tracer reports unavailable")
	}

	const size = 1 << 20
	peak, err := tracer.TraceAlloc(func() error {
		sink = make([]byte, size)
		return nil
	})
	if err != nil {
		t.Fatalf("TraceAlloc failed: %v", err)
	}

	if peak < size {
		t.Errorf("Expected at least %d allocated bytes, got %d", size, peak)
	}
}

func TestRuntimeTracerRestoresGCOnFailure(t *testing.T) {
	// pin a recognizable GC percent so restoration is observable
	prev := debug.SetGCPercent(150)
	defer debug.SetGCPercent(prev)

	tracer := NewRuntimeTracer()
	failure := errors.New("traced invocation failed")

	_, err := tracer.TraceAlloc(func() error { return failure })
	if !errors.Is(err, failure) {
		t.Errorf("Expected the invocation error to propagate, got %v", err)
	}

	if current := debug.SetGCPercent(150); current != 150 {
		t.Errorf("Expected GC percent restored to 150, got %d", current)
	}
}

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	if tracer.Available() {
		t.Errorf("Noop tracer reports available")
	}
}

func TestRuntimeGCToggle(t *testing.T) {
	prev := debug.SetGCPercent(150)
	defer debug.SetGCPercent(prev)

	toggle := NewRuntimeGCToggle()

	// disabling switches the collector off
	restore := toggle.SetDisabled(true)
	if current := debug.SetGCPercent(-1); current != -1 {
		t.Errorf("Expected GC percent -1 while disabled, got %d", current)
	}
	restore()
	if current := debug.SetGCPercent(150); current != 150 {
		t.Errorf("Expected GC percent restored to 150, got %d", current)
	}

	// enabling sets the default percent explicitly
	restore = toggle.SetDisabled(false)
	if current := debug.SetGCPercent(100); current != 100 {
		t.Errorf("Expected GC percent 100 while enabled, got %d", current)
	}
	restore()
	if current := debug.SetGCPercent(150); current != 150 {
		t.Errorf("Expected GC percent restored to 150, got %d", current)
	}
}
