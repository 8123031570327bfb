package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWritePrometheus(t *testing.T) {
	peak := uint64(512)
	s := testSummary(&peak)

	var buf bytes.Buffer
	WritePrometheus(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"serbench_op_duration_seconds_sum",
		"serbench_batch_size",
		"serbench_ops_per_sec",
		"serbench_alloc_bytes_per_op",
		`format="json"`,
		`io="buffer"`,
		`command="write"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Prometheus output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePrometheusNoMemory(t *testing.T) {
	s := testSummary(nil)

	var buf bytes.Buffer
	WritePrometheus(&buf, s)

	if strings.Contains(buf.String(), "serbench_alloc_bytes_per_op") {
		t.Errorf("Expected no allocation metric without a memory figure:\n%s", buf.String())
	}
}

func TestWritePrometheusFile(t *testing.T) {
	s := testSummary(nil)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	if err := WritePrometheusFile(path, s); err != nil {
		t.Fatalf("WritePrometheusFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read metrics file: %v", err)
	}
	if !strings.Contains(string(data), "serbench_batch_size") {
		t.Errorf("Metrics file missing batch size gauge:\n%s", data)
	}
}
