package format

import "io"

// ICodec is the interface for all serialization format implementations.
// A codec operates on the generic document model: nil, bool, int64, uint64,
// float64, string, []byte, []any and map[string]any.
type ICodec interface {
	// EncodeBuffer serializes a document into a byte array
	// It returns the serialized byte array and an error if any
	EncodeBuffer(v any) ([]byte, error)
	// DecodeBuffer deserializes a byte array into a document
	// It returns the document and an error if any
	DecodeBuffer(b []byte) (any, error)
	// EncodeStream serializes a document directly to a writer
	EncodeStream(w io.Writer, v any) error
	// DecodeStream deserializes a document directly from a reader
	DecodeStream(r io.Reader) (any, error)
}
