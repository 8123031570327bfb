// Package common holds the shared configuration types and logging setup
// used across the serbench packages.
//
// The central type is BenchmarkSpec, the read-only parameter record a
// benchmark run is constructed from: what to measure (io type, command,
// api, format), the data to measure it on (input file or in-memory
// document), and how to measure it (warmups, iterations, GC policy).
package common
