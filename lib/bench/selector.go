package bench

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/serbench/lib/common"
	"github.com/ValentinKolb/serbench/lib/format"
)

// NewTestFunc maps the (io type, command, api) triple of the spec to a
// concrete test function closed over the configured codec and data.
//
// Read-from-file setups pay their file validation cost here, outside the
// timed path; write-to-file test functions pay the full open/write/close
// cost on every invocation by design. isBinary is the format
// classification predicate, used for the temporary files written by
// file-write benchmarks.
func NewTestFunc(spec *common.BenchmarkSpec, codec format.ICodec, isBinary func(string) bool) (TestFunc, error) {
	switch {
	case spec.IOType == common.IOBuffer && spec.Command == common.CmdRead && spec.API == common.APILoadDump:
		// read the input once up front so only deserialization is timed
		buffer, err := os.ReadFile(spec.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return func() error {
			_, err := codec.DecodeBuffer(buffer)
			return err
		}, nil

	case spec.IOType == common.IOBuffer && spec.Command == common.CmdWrite && spec.API == common.APILoadDump:
		dataObj := spec.DataObject
		return func() error {
			_, err := codec.EncodeBuffer(dataObj)
			return err
		}, nil

	case spec.IOType == common.IOFile && spec.Command == common.CmdRead && spec.API == common.APILoadDump:
		// fail fast on an unreadable file, but keep open/decode/close
		// inside the measured function
		dataFile := spec.InputFile
		if _, err := os.Stat(dataFile); err != nil {
			return nil, fmt.Errorf("failed to stat input file: %w", err)
		}
		return func() error {
			f, err := os.Open(dataFile)
			if err != nil {
				return err
			}
			_, err = codec.DecodeStream(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		}, nil

	case spec.IOType == common.IOFile && spec.Command == common.CmdWrite && spec.API == common.APILoadDump:
		dataObj := spec.DataObject
		pattern := "serbench-*.txt"
		if isBinary(spec.Format) {
			pattern = "serbench-*.bin"
		}
		return func() error {
			f, err := os.CreateTemp("", pattern)
			if err != nil {
				return fmt.Errorf("failed to create temp file: %w", err)
			}
			// the temp file must disappear even when encoding fails,
			// this runs thousands of times per benchmark
			defer func() {
				f.Close()
				os.Remove(f.Name())
			}()
			return codec.EncodeStream(f, dataObj)
		}, nil

	default:
		return nil, fmt.Errorf("%w: (%s, %s, %s)",
			ErrUnsupportedCombination, spec.IOType, spec.Command, spec.API)
	}
}
