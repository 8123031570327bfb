package format

import (
	"bytes"
	"encoding/gob"
	"io"
)

func init() {
	// gob needs every concrete type that can appear behind an interface
	// value registered up front
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register([]byte{})
	gob.Register("")
	gob.Register(false)
	gob.Register(int64(0))
	gob.Register(uint64(0))
	gob.Register(float64(0))
}

// NewGOBCodec creates a new codec using Go's binary gob format
func NewGOBCodec() ICodec {
	return &gobCodecImpl{}
}

// gobCodecImpl implements the ICodec interface using gob encoding
type gobCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.ICodec)
// --------------------------------------------------------------------------

func (g gobCodecImpl) EncodeBuffer(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.EncodeStream(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g gobCodecImpl) DecodeBuffer(b []byte) (any, error) {
	return g.DecodeStream(bytes.NewBuffer(b))
}

func (g gobCodecImpl) EncodeStream(w io.Writer, v any) error {
	return gob.NewEncoder(w).Encode(&v)
}

func (g gobCodecImpl) DecodeStream(r io.Reader) (any, error) {
	var v any
	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
