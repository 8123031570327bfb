// Package report renders finished benchmark runs for consumption: a
// human-readable text summary, a CSV row for spreadsheet comparison, and
// a Prometheus exposition file for CI ingestion.
//
// The package derives all figures from the raw engine result (batched
// timing samples, batch size, per-invocation allocation). Per-operation
// statistics include min/max/mean/stddev and p50/p95/p99 percentiles.
// The headline ns/op figure is the fastest sample, which carries the
// least scheduling noise.
package report
