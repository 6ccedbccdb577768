package gdsave

import (
	"fmt"
	"strings"

	"github.com/danderson/gdsave/fragments"
)

// maxDepth bounds the nesting of containers during both decode and
// encode. Genuine save data nests a handful of levels; a buffer that
// needs more than this is corrupt or hostile, and a value tree that
// needs more than this is cyclic.
const maxDepth = 512

// Unmarshal decodes a binary save document and returns its value
// tree.
//
// The result is built from nil, bool, int64, float64, string, []any
// and [*Dict]. Variant types outside the decodable set (see
// [Type.Decodable]) are not an error: each occurrence decodes to a
// placeholder string naming the unrecognized type, and decoding
// continues. Such placeholders cannot be re-encoded to their original
// bytes.
//
// The document's declared total size must be at least 4 (it counts
// its own header), or Unmarshal returns [ErrInvalidHeader]. A
// declared size that disagrees with the actual buffer length is not
// rejected, matching the engine's own lenient reader.
func Unmarshal(bs []byte) (any, error) {
	st := &fragments.Decoder{In: bs}
	size, err := st.Uint32()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if size < 4 {
		return nil, fmt.Errorf("declared size %d: %w", size, ErrInvalidHeader)
	}
	v, err := readValue(st, 0)
	if err != nil {
		return nil, fmt.Errorf("at offset %d: %w", st.Offset(), err)
	}
	return v, nil
}

func readValue(st *fragments.Decoder, depth int) (any, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}
	tag, err := st.Uint32()
	if err != nil {
		return nil, fmt.Errorf("reading type tag: %w", err)
	}
	base, flags := splitTag(tag)

	switch base {
	case TypeNil:
		return nil, nil

	case TypeBool:
		u, err := st.Uint32()
		if err != nil {
			return nil, fmt.Errorf("reading bool: %w", err)
		}
		return u == 1, nil

	case TypeInt:
		if flags&flagWide == 0 {
			i, err := st.Int32()
			if err != nil {
				return nil, fmt.Errorf("reading int32: %w", err)
			}
			return int64(i), nil
		}
		i, err := st.Int64()
		if err != nil {
			return nil, fmt.Errorf("reading int64: %w", err)
		}
		return i, nil

	case TypeReal:
		if flags&flagWide == 0 {
			f, err := st.Float32()
			if err != nil {
				return nil, fmt.Errorf("reading float32: %w", err)
			}
			return float64(f), nil
		}
		f, err := st.Float64()
		if err != nil {
			return nil, fmt.Errorf("reading float64: %w", err)
		}
		return f, nil

	case TypeString:
		s, err := st.String()
		if err != nil {
			return nil, fmt.Errorf("reading string: %w", err)
		}
		// Real save files contain the occasional stray non-UTF-8
		// byte; drop rather than fail.
		return strings.ToValidUTF8(s, ""), nil

	case TypeVector2:
		x, err := st.Float32()
		if err != nil {
			return nil, fmt.Errorf("reading Vector2 x: %w", err)
		}
		y, err := st.Float32()
		if err != nil {
			return nil, fmt.Errorf("reading Vector2 y: %w", err)
		}
		ret := NewDict()
		ret.Set("x", float64(x))
		ret.Set("y", float64(y))
		return ret, nil

	case TypeDictionary:
		n, err := st.Uint32()
		if err != nil {
			return nil, fmt.Errorf("reading dictionary size: %w", err)
		}
		ret := NewDict()
		for range n {
			kv, err := readValue(st, depth+1)
			if err != nil {
				return nil, fmt.Errorf("reading dictionary key: %w", err)
			}
			var key string
			switch k := kv.(type) {
			case string:
				key = k
			case int64:
				key = fmt.Sprintf("0x%08X", uint32(k))
			default:
				return nil, fmt.Errorf("key of type %T: %w", kv, ErrInvalidKey)
			}
			v, err := readValue(st, depth+1)
			if err != nil {
				return nil, fmt.Errorf("reading dictionary value for %q: %w", key, err)
			}
			ret.Set(key, v)
		}
		return ret, nil

	case TypeArray:
		n, err := st.Uint32()
		if err != nil {
			return nil, fmt.Errorf("reading array size: %w", err)
		}
		ret := []any{}
		for i := range n {
			v, err := readValue(st, depth+1)
			if err != nil {
				return nil, fmt.Errorf("reading array element %d: %w", i, err)
			}
			ret = append(ret, v)
		}
		return ret, nil

	default:
		// Geometric and resource types are out of the decodable set.
		// Substitute a placeholder and keep going; the payload is not
		// consumed, so anything that follows in the enclosing
		// container decodes from wherever this record's payload
		// starts.
		return fmt.Sprintf("<unsupported variant type %d (%s)>", uint16(base), base), nil
	}
}
