package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Benchmark parameter enums
// --------------------------------------------------------------------------

// IOType selects the medium a benchmark operates on
type IOType string

const (
	// IOBuffer benchmarks against an in-memory buffer
	IOBuffer IOType = "buffer"
	// IOFile benchmarks against the filesystem, paying open/close cost
	// on every invocation
	IOFile IOType = "file"
)

// Command selects the direction of the benchmarked operation
type Command string

const (
	CmdRead  Command = "read"
	CmdWrite Command = "write"
)

// API selects the serialization API under test
type API string

const (
	// APILoadDump benchmarks plain one-shot load/dump operations
	APILoadDump API = "load_dump"
)

// --------------------------------------------------------------------------
// Benchmark configuration struct
// --------------------------------------------------------------------------

// BenchmarkSpec holds all parameters for a single benchmark run.
// It is consumed read-only by the benchmark engine.
type BenchmarkSpec struct {
	// What to measure
	IOType  IOType
	Command Command
	API     API

	// Input file for read benchmarks (pre-read for buffer mode,
	// re-opened per invocation for file mode)
	InputFile string

	// In-memory document serialized by write benchmarks
	DataObject any

	// Name of the serialization format under test
	Format string

	// Measurement parameters
	Warmups    int
	Iterations int

	// DisableGC keeps the garbage collector off for the whole timing phase
	DisableGC bool
}

// Validate checks the parameters that must hold before any measurement.
// Combination validity (IOType/Command/API) is owned by the test-function
// selector, which reports unsupported combinations itself.
func (s *BenchmarkSpec) Validate() error {
	if s.Format == "" {
		return fmt.Errorf("no format configured")
	}
	if s.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", s.Iterations)
	}
	if s.Command == CmdRead && s.InputFile == "" {
		return fmt.Errorf("read benchmarks require an input file")
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (s *BenchmarkSpec) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Benchmark")
	addField("IO Type", string(s.IOType))
	addField("Command", string(s.Command))
	addField("API", string(s.API))
	addField("Format", s.Format)
	if s.InputFile != "" {
		addField("Input File", s.InputFile)
	}

	addSection("Measurement")
	addField("Warmups", strconv.Itoa(s.Warmups))
	addField("Iterations", strconv.Itoa(s.Iterations))
	addField("GC Disabled", strconv.FormatBool(s.DisableGC))

	return sb.String()
}
