package report

import (
	"math"

	"github.com/rcrowley/go-metrics"
)

// Stats summarizes a series of per-operation timing samples
type Stats struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	StdDeviation float64 `json:"std_deviation"`
	P50          float64 `json:"p50"`
	P95          float64 `json:"p95"`
	P99          float64 `json:"p99"`
}

// NewStats computes min, max, mean, standard deviation and percentiles
// from an array of float64 values
func NewStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	// initialize min and max with the first value
	min := values[0]
	max := values[0]

	// calculate sum for mean
	var sum float64
	for _, v := range values {
		sum += v

		// update min and max while iterating
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// calculate mean
	mean := sum / float64(len(values))

	// calculate sum of squared differences from mean
	var sumSquaredDiffs float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiffs += diff * diff
	}

	// calculate standard deviation (population formula)
	stdDev := math.Sqrt(sumSquaredDiffs / float64(len(values)))

	// percentiles via a full-size uniform sample histogram
	hist := metrics.NewHistogram(metrics.NewUniformSample(len(values)))
	for _, v := range values {
		hist.Update(int64(v))
	}
	ps := hist.Percentiles([]float64{0.5, 0.95, 0.99})

	return Stats{
		Min:          min,
		Max:          max,
		Mean:         mean,
		StdDeviation: stdDev,
		P50:          ps[0],
		P95:          ps[1],
		P99:          ps[2],
	}
}
