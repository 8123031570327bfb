// Package format provides the serialization capabilities benchmarked by
// serbench. It defines a common codec interface, multiple implementations
// with different performance characteristics, and a registry that maps
// format names to codec factories.
//
// The package focuses on:
//   - Providing a consistent interface for different serialization formats
//   - Supporting both in-memory (buffer) and streaming (file) operation,
//     since the two are benchmarked separately
//   - Classifying formats as binary or text encoded
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//     It exposes the four operations the benchmark engine exercises:
//     EncodeBuffer, DecodeBuffer, EncodeStream and DecodeStream.
//
//   - packedCodecImpl: The native packed binary format, a custom
//     tag-length-value encoding of the document model optimized for speed
//     and space efficiency.
//
//   - jsonCodecImpl: JSON encoding. The only text format; useful as a
//     baseline and for human-readable input files.
//
//   - cborCodecImpl: CBOR (RFC 8949) encoding, configured to decode back
//     into the document model (string-keyed maps, signed integers).
//
//   - gobCodecImpl: Go's built-in gob encoding. Carries type information
//     per stream, so buffer benchmarks include that overhead on every call.
//
//   - Registry: Thread-safe name to codec mapping with binary/text
//     classification. A default registry holds all built-in formats;
//     isolated registries can be created for tests or embedding.
//
// Document model:
//
//	Codecs operate on generic documents composed of nil, bool, int64,
//	uint64, float64, string, []byte, []any and map[string]any. Codecs may
//	narrow the model on decode (JSON has no bytes or integer types).
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use.
//	The registry is safe for concurrent registration and lookup.
package format
