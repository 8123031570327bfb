package report

import (
	"fmt"
	"io"
	"os"

	"github.com/VictoriaMetrics/metrics"
)

// WritePrometheus writes the summary in Prometheus exposition format so CI
// pipelines can ingest benchmark results as scrape files
func WritePrometheus(w io.Writer, s *Summary) {
	labels := fmt.Sprintf(`format=%q,io=%q,command=%q`,
		s.Spec.Format, s.Spec.IOType, s.Spec.Command)

	set := metrics.NewSet()

	hist := set.GetOrCreateHistogram(`serbench_op_duration_seconds{` + labels + `}`)
	for _, ns := range s.PerOpNanos() {
		hist.Update(ns / 1e9)
	}

	set.GetOrCreateGauge(`serbench_batch_size{`+labels+`}`, func() float64 {
		return float64(s.Result.BatchSize)
	})
	set.GetOrCreateGauge(`serbench_ops_per_sec{`+labels+`}`, func() float64 {
		return s.OpsPerSec()
	})
	if s.Result.PeakMemory != nil {
		peak := float64(*s.Result.PeakMemory)
		set.GetOrCreateGauge(`serbench_alloc_bytes_per_op{`+labels+`}`, func() float64 {
			return peak
		})
	}

	set.WritePrometheus(w)
}

// WritePrometheusFile writes the Prometheus exposition of the summary to
// the given path
func WritePrometheusFile(path string, s *Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %v", err)
	}
	defer file.Close()

	WritePrometheus(file, s)
	return nil
}
