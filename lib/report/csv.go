package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the summary to a CSV file, one row per benchmark run,
// with the full configuration alongside the measurements so result files
// from different runs can be concatenated and compared
func WriteCSV(csvPath string, s *Summary) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Format", "Binary", "IOType", "Command", "API",
		"Warmups", "Iterations", "BatchSize", "GCDisabled",
		"NsPerOp", "OpsPerSec", "MeanNs", "StdDevNs",
		"MinNs", "MaxNs", "P50Ns", "P95Ns", "P99Ns",
		"PeakMemoryBytes",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	peakMemory := ""
	if s.Result.PeakMemory != nil {
		peakMemory = strconv.FormatUint(*s.Result.PeakMemory, 10)
	}

	row := []string{
		s.Spec.Format,
		strconv.FormatBool(s.Binary),
		string(s.Spec.IOType),
		string(s.Spec.Command),
		string(s.Spec.API),
		strconv.Itoa(s.Spec.Warmups),
		strconv.Itoa(s.Spec.Iterations),
		strconv.Itoa(s.Result.BatchSize),
		strconv.FormatBool(s.Spec.DisableGC),
		fmt.Sprintf("%.0f", s.NsPerOp()),
		fmt.Sprintf("%.0f", s.OpsPerSec()),
		fmt.Sprintf("%.0f", s.Stats.Mean),
		fmt.Sprintf("%.0f", s.Stats.StdDeviation),
		fmt.Sprintf("%.0f", s.Stats.Min),
		fmt.Sprintf("%.0f", s.Stats.Max),
		fmt.Sprintf("%.0f", s.Stats.P50),
		fmt.Sprintf("%.0f", s.Stats.P95),
		fmt.Sprintf("%.0f", s.Stats.P99),
		peakMemory,
	}

	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write CSV row: %v", err)
	}

	return nil
}
