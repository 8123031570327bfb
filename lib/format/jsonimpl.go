package format

import (
	"encoding/json"
	"io"
)

// NewJSONCodec creates a new codec using json encoding
func NewJSONCodec() ICodec {
	return &jsonCodecImpl{}
}

// jsonCodecImpl implements the ICodec interface using json encoding
type jsonCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.ICodec)
// --------------------------------------------------------------------------

func (j jsonCodecImpl) EncodeBuffer(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (j jsonCodecImpl) DecodeBuffer(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (j jsonCodecImpl) EncodeStream(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (j jsonCodecImpl) DecodeStream(r io.Reader) (any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
