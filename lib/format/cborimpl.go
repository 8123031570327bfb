package format

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// NewCBORCodec creates a new codec using CBOR (RFC 8949) encoding
func NewCBORCodec() ICodec {
	// decode maps as map[string]any and integers as int64 so round-tripped
	// documents keep the shape of the generic document model
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return &cborCodecImpl{dec: dec}
}

// cborCodecImpl implements the ICodec interface using cbor encoding
type cborCodecImpl struct {
	dec cbor.DecMode
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.ICodec)
// --------------------------------------------------------------------------

func (c cborCodecImpl) EncodeBuffer(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (c cborCodecImpl) DecodeBuffer(b []byte) (any, error) {
	var v any
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c cborCodecImpl) EncodeStream(w io.Writer, v any) error {
	return cbor.NewEncoder(w).Encode(v)
}

func (c cborCodecImpl) DecodeStream(r io.Reader) (any, error) {
	var v any
	if err := c.dec.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
