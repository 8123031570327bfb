package format

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// NewPackedCodec creates a new codec using the native packed binary format.
// The format is a compact tag-length-value encoding of the document model,
// optimized for speed and space efficiency.
func NewPackedCodec() ICodec {
	return &packedCodecImpl{}
}

// packedCodecImpl implements ICodec using the native packed binary format
type packedCodecImpl struct {
}

// Type tags identifying the encoded value
const (
	tagNil byte = iota
	tagFalse
	tagTrue
	tagInt    // 8 bytes, big endian two's complement
	tagUint   // 8 bytes, big endian
	tagFloat  // 8 bytes, IEEE 754 bits
	tagString // 4 byte length + raw bytes
	tagBytes  // 4 byte length + raw bytes
	tagArray  // 4 byte count + encoded elements
	tagMap    // 4 byte count + (length-prefixed key, encoded value) pairs
)

// --------------------------------------------------------------------------
// Interface Methods (docu see format.ICodec)
// --------------------------------------------------------------------------

func (p packedCodecImpl) EncodeBuffer(v any) ([]byte, error) {
	return p.encodeValue(nil, v)
}

func (p packedCodecImpl) DecodeBuffer(b []byte) (any, error) {
	v, pos, err := p.decodeValue(b, 0)
	if err != nil {
		return nil, err
	}
	if pos != len(b) {
		return nil, fmt.Errorf("trailing garbage after document (%d bytes)", len(b)-pos)
	}
	return v, nil
}

func (p packedCodecImpl) EncodeStream(w io.Writer, v any) error {
	data, err := p.EncodeBuffer(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (p packedCodecImpl) DecodeStream(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.DecodeBuffer(data)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// encodeValue appends the encoding of v to dst and returns the extended slice
func (p packedCodecImpl) encodeValue(dst []byte, v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return append(dst, tagNil), nil

	case bool:
		if val {
			return append(dst, tagTrue), nil
		}
		return append(dst, tagFalse), nil

	case int:
		return p.appendUint64(append(dst, tagInt), uint64(int64(val))), nil

	case int64:
		return p.appendUint64(append(dst, tagInt), uint64(val)), nil

	case uint64:
		return p.appendUint64(append(dst, tagUint), val), nil

	case float64:
		return p.appendUint64(append(dst, tagFloat), math.Float64bits(val)), nil

	case string:
		dst = p.appendUint32(append(dst, tagString), uint32(len(val)))
		return append(dst, val...), nil

	case []byte:
		dst = p.appendUint32(append(dst, tagBytes), uint32(len(val)))
		return append(dst, val...), nil

	case []any:
		dst = p.appendUint32(append(dst, tagArray), uint32(len(val)))
		var err error
		for _, elem := range val {
			if dst, err = p.encodeValue(dst, elem); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case map[string]any:
		dst = p.appendUint32(append(dst, tagMap), uint32(len(val)))
		var err error
		for k, elem := range val {
			dst = p.appendUint32(dst, uint32(len(k)))
			dst = append(dst, k...)
			if dst, err = p.encodeValue(dst, elem); err != nil {
				return nil, err
			}
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("unsupported document type %T", v)
	}
}

// decodeValue decodes one value starting at pos and returns the value and the
// position of the first byte after it
func (p packedCodecImpl) decodeValue(data []byte, pos int) (any, int, error) {
	if pos >= len(data) {
		return nil, 0, fmt.Errorf("data too short for value tag")
	}

	tag := data[pos]
	pos++

	switch tag {
	case tagNil:
		return nil, pos, nil

	case tagFalse:
		return false, pos, nil

	case tagTrue:
		return true, pos, nil

	case tagInt:
		if pos+8 > len(data) {
			return nil, 0, fmt.Errorf("data too short for int value")
		}
		return int64(binary.BigEndian.Uint64(data[pos : pos+8])), pos + 8, nil

	case tagUint:
		if pos+8 > len(data) {
			return nil, 0, fmt.Errorf("data too short for uint value")
		}
		return binary.BigEndian.Uint64(data[pos : pos+8]), pos + 8, nil

	case tagFloat:
		if pos+8 > len(data) {
			return nil, 0, fmt.Errorf("data too short for float value")
		}
		return math.Float64frombits(binary.BigEndian.Uint64(data[pos : pos+8])), pos + 8, nil

	case tagString:
		n, next, err := p.decodeLength(data, pos, "string")
		if err != nil {
			return nil, 0, err
		}
		return string(data[next : next+n]), next + n, nil

	case tagBytes:
		n, next, err := p.decodeLength(data, pos, "bytes")
		if err != nil {
			return nil, 0, err
		}
		out := make([]byte, n)
		copy(out, data[next:next+n])
		return out, next + n, nil

	case tagArray:
		if pos+4 > len(data) {
			return nil, 0, fmt.Errorf("data too short for array count")
		}
		count := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		pos += 4

		arr := make([]any, 0, count)
		for i := 0; i < count; i++ {
			elem, next, err := p.decodeValue(data, pos)
			if err != nil {
				return nil, 0, err
			}
			arr = append(arr, elem)
			pos = next
		}
		return arr, pos, nil

	case tagMap:
		if pos+4 > len(data) {
			return nil, 0, fmt.Errorf("data too short for map count")
		}
		count := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		pos += 4

		m := make(map[string]any, count)
		for i := 0; i < count; i++ {
			n, next, err := p.decodeLength(data, pos, "map key")
			if err != nil {
				return nil, 0, err
			}
			key := string(data[next : next+n])
			pos = next + n

			elem, after, err := p.decodeValue(data, pos)
			if err != nil {
				return nil, 0, err
			}
			m[key] = elem
			pos = after
		}
		return m, pos, nil

	default:
		return nil, 0, fmt.Errorf("unknown value tag 0x%02x", tag)
	}
}

// decodeLength reads a 4 byte length prefix and verifies the payload fits
func (p packedCodecImpl) decodeLength(data []byte, pos int, what string) (n, next int, err error) {
	if pos+4 > len(data) {
		return 0, 0, fmt.Errorf("data too short for %s length", what)
	}
	n = int(binary.BigEndian.Uint32(data[pos : pos+4]))
	next = pos + 4
	if next+n > len(data) {
		return 0, 0, fmt.Errorf("data too short for %s data", what)
	}
	return n, next, nil
}

func (p packedCodecImpl) appendUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func (p packedCodecImpl) appendUint64(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}
