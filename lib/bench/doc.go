// Package bench implements the benchmark execution engine: it selects the
// test operation for a benchmark configuration and measures its runtime
// latency and per-invocation memory allocation.
//
// The package is built from two components, composed by Runner.Run:
//
//   - Test-operation selection (NewTestFunc): maps the spec's
//     (io type, command, api) triple to a zero-argument TestFunc that
//     performs exactly one serialize or deserialize operation against the
//     configured medium. Buffer-read setups pre-read the input file so the
//     timed path contains only deserialization; file benchmarks keep the
//     open/close cost inside the timed path because that is what real
//     usage pays.
//
//   - Measurement (Runner.Measure): one traced invocation for peak memory
//     allocation, then a warm-up, automatic batch-size calibration
//     (batch sizes grow 1, 2, 5, 10, 20, 50, ... until one batch exceeds
//     the calibration threshold) and a fixed number of timed repetitions,
//     each covering one full batch.
//
// The engine performs no recovery and no logging. A failure of the
// measured operation aborts the run and propagates to the caller: the
// harness must not mask failures that are part of what is being measured.
//
// Execution is single-threaded and synchronous. The process-wide GC state
// is managed through an injected IGCToggle and restored when a run
// returns, so runs and tests stay deterministic.
package bench
