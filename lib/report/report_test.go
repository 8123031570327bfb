package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/serbench/lib/bench"
	"github.com/ValentinKolb/serbench/lib/common"
)

func testSummary(peak *uint64) *Summary {
	spec := &common.BenchmarkSpec{
		IOType:     common.IOBuffer,
		Command:    common.CmdWrite,
		API:        common.APILoadDump,
		Format:     "json",
		Warmups:    2,
		Iterations: 2,
	}
	result := &bench.Result{
		Timings:    []time.Duration{2 * time.Millisecond, 4 * time.Millisecond},
		BatchSize:  1000,
		PeakMemory: peak,
	}
	return NewSummary(spec, result, false)
}

func TestNewStats(t *testing.T) {
	stats := NewStats([]float64{1, 2, 3, 4, 5})

	if stats.Min != 1 {
		t.Errorf("Expected min 1, got %f", stats.Min)
	}
	if stats.Max != 5 {
		t.Errorf("Expected max 5, got %f", stats.Max)
	}
	if stats.Mean != 3 {
		t.Errorf("Expected mean 3, got %f", stats.Mean)
	}
	if expected := math.Sqrt(2); math.Abs(stats.StdDeviation-expected) > 1e-9 {
		t.Errorf("Expected stddev %f, got %f", expected, stats.StdDeviation)
	}
	if stats.P50 != 3 {
		t.Errorf("Expected p50 3, got %f", stats.P50)
	}
	if stats.P95 != 5 {
		t.Errorf("Expected p95 5, got %f", stats.P95)
	}
}

func TestNewStatsEmpty(t *testing.T) {
	if stats := NewStats(nil); stats != (Stats{}) {
		t.Errorf("Expected zero stats for empty input, got %+v", stats)
	}
}

func TestSummaryPerOp(t *testing.T) {
	s := testSummary(nil)

	perOp := s.PerOpNanos()
	if len(perOp) != 2 {
		t.Fatalf("Expected 2 per-op values, got %d", len(perOp))
	}
	// 2ms / 1000 ops and 4ms / 1000 ops
	if perOp[0] != 2000 || perOp[1] != 4000 {
		t.Errorf("Expected per-op values [2000 4000], got %v", perOp)
	}

	if s.NsPerOp() != 2000 {
		t.Errorf("Expected 2000 ns/op, got %f", s.NsPerOp())
	}
	if math.Abs(s.OpsPerSec()-500000) > 1e-6 {
		t.Errorf("Expected 500000 ops/sec, got %f", s.OpsPerSec())
	}
}

func TestSummaryWriteText(t *testing.T) {
	peak := uint64(2048)
	s := testSummary(&peak)

	var sb strings.Builder
	s.WriteText(&sb)
	out := sb.String()

	for _, want := range []string{"json/buffer/write", "ns/op", "ops/sec", "2048 B/op"} {
		if !strings.Contains(out, want) {
			t.Errorf("Report output missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryWriteTextNoMemory(t *testing.T) {
	s := testSummary(nil)

	var sb strings.Builder
	s.WriteText(&sb)

	if !strings.Contains(sb.String(), "allocated  : n/a") {
		t.Errorf("Expected n/a memory line:\n%s", sb.String())
	}
}
