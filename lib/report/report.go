package report

import (
	"fmt"
	"io"
	"time"

	"github.com/ValentinKolb/serbench/lib/bench"
	"github.com/ValentinKolb/serbench/lib/common"
)

// Summary combines a benchmark spec with its measured result and the
// statistics derived from it
type Summary struct {
	Spec   *common.BenchmarkSpec
	Result *bench.Result
	// Binary is the classification of the measured format
	Binary bool
	// Stats over the per-operation times in nanoseconds
	Stats Stats
}

// NewSummary derives the reporting view of a finished benchmark run
func NewSummary(spec *common.BenchmarkSpec, result *bench.Result, binary bool) *Summary {
	s := &Summary{
		Spec:   spec,
		Result: result,
		Binary: binary,
	}
	s.Stats = NewStats(s.PerOpNanos())
	return s
}

// PerOpNanos converts the batched timing samples into per-operation
// nanosecond values, one per timed repetition
func (s *Summary) PerOpNanos() []float64 {
	perOp := make([]float64, 0, len(s.Result.Timings))
	for _, sample := range s.Result.Timings {
		perOp = append(perOp, float64(sample.Nanoseconds())/float64(s.Result.BatchSize))
	}
	return perOp
}

// NsPerOp returns the best (lowest) per-operation time in nanoseconds.
// The fastest sample carries the least scheduling noise.
func (s *Summary) NsPerOp() float64 {
	return s.Stats.Min
}

// OpsPerSec returns the operation throughput at the best sample
func (s *Summary) OpsPerSec() float64 {
	nsPerOp := s.NsPerOp()
	if nsPerOp <= 0 {
		nsPerOp = 1 // prevent division by zero
	}
	return 1.0 / (nsPerOp / 1e9)
}

// WriteText renders the human-readable benchmark report
func (s *Summary) WriteText(w io.Writer) {
	name := fmt.Sprintf("%s/%s/%s", s.Spec.Format, s.Spec.IOType, s.Spec.Command)

	fmt.Fprintf(w, "%-28s%.0fns/op (%s/op)\t%.0f ops/sec\n",
		name, s.NsPerOp(), time.Duration(s.NsPerOp()), s.OpsPerSec())

	fmt.Fprintf(w, "  samples    : %d x %d ops\n", len(s.Result.Timings), s.Result.BatchSize)
	fmt.Fprintf(w, "  mean       : %s/op (stddev %s)\n",
		time.Duration(s.Stats.Mean), time.Duration(s.Stats.StdDeviation))
	fmt.Fprintf(w, "  min/max    : %s/op - %s/op\n",
		time.Duration(s.Stats.Min), time.Duration(s.Stats.Max))
	fmt.Fprintf(w, "  p50/p95/p99: %s / %s / %s\n",
		time.Duration(s.Stats.P50), time.Duration(s.Stats.P95), time.Duration(s.Stats.P99))

	if s.Result.PeakMemory != nil {
		fmt.Fprintf(w, "  allocated  : %d B/op\n", *s.Result.PeakMemory)
	} else {
		fmt.Fprintf(w, "  allocated  : n/a\n")
	}
}
