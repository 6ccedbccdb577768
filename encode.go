package gdsave

import (
	"math"
	"strconv"

	"github.com/danderson/gdsave/fragments"
)

// Marshal encodes a value tree into a binary save document.
//
// The input must be built from nil, bool, int, int32, int64, float32,
// float64, string, []any and [*Dict]; any other type returns a
// [TypeError]. Callers holding looser trees (say, freshly parsed
// JSON) must convert first, see [FromJSON].
//
// Integers that fit in 32 bits use the narrow wire form, wider ones
// the 64-bit form. Reals always use the 64-bit form; the engine
// accepts both. A Dict with exactly the keys "x" and "y" is written
// as a Vector2 record with 32-bit fields, which is how the engine
// serializes 2D coordinates — a plain two-entry dictionary that
// happens to use those keys is narrowed the same way.
func Marshal(v any) ([]byte, error) {
	inner := &fragments.Encoder{}
	if err := writeValue(inner, v, 0); err != nil {
		return nil, err
	}
	out := &fragments.Encoder{Out: make([]byte, 0, len(inner.Out)+4)}
	out.Uint32(uint32(len(inner.Out) + 4))
	out.Write(inner.Out)
	return out.Out, nil
}

func writeValue(st *fragments.Encoder, v any, depth int) error {
	if depth > maxDepth {
		return typeErr(v, "%w (cyclic value?)", ErrTooDeep)
	}
	switch v := v.(type) {
	case nil:
		st.Uint32(joinTag(TypeNil, 0))

	case bool:
		st.Uint32(joinTag(TypeBool, 0))
		if v {
			st.Uint32(1)
		} else {
			st.Uint32(0)
		}

	case int:
		return writeInt(st, int64(v))
	case int32:
		return writeInt(st, int64(v))
	case int64:
		return writeInt(st, v)

	case float32:
		st.Uint32(joinTag(TypeReal, flagWide))
		st.Float64(float64(v))
	case float64:
		st.Uint32(joinTag(TypeReal, flagWide))
		st.Float64(v)

	case string:
		st.Uint32(joinTag(TypeString, 0))
		st.String(v)

	case *Dict:
		return writeDict(st, v, depth)

	case []any:
		st.Uint32(joinTag(TypeArray, 0))
		st.Uint32(uint32(len(v)))
		for _, elem := range v {
			if err := writeValue(st, elem, depth+1); err != nil {
				return err
			}
		}

	default:
		return typeErr(v, "unsupported value shape")
	}
	return nil
}

func writeInt(st *fragments.Encoder, i int64) error {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		st.Uint32(joinTag(TypeInt, 0))
		st.Int32(int32(i))
	} else {
		st.Uint32(joinTag(TypeInt, flagWide))
		st.Int64(i)
	}
	return nil
}

func writeDict(st *fragments.Encoder, d *Dict, depth int) error {
	if x, y, ok := vector2Fields(d); ok {
		st.Uint32(joinTag(TypeVector2, 0))
		st.Float32(x)
		st.Float32(y)
		return nil
	}
	st.Uint32(joinTag(TypeDictionary, 0))
	st.Uint32(uint32(d.Len()))
	for k, v := range d.All() {
		if i, ok := hexKey(k); ok {
			if err := writeInt(st, i); err != nil {
				return err
			}
		} else {
			st.Uint32(joinTag(TypeString, 0))
			st.String(k)
		}
		if err := writeValue(st, v, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// vector2Fields reports whether d is the in-memory shape of a decoded
// Vector2: exactly the keys "x" and "y", both numeric.
func vector2Fields(d *Dict) (x, y float32, ok bool) {
	if d.Len() != 2 {
		return 0, 0, false
	}
	xv, okx := d.Get("x")
	yv, oky := d.Get("y")
	if !okx || !oky {
		return 0, 0, false
	}
	x, okx = asFloat32(xv)
	y, oky = asFloat32(yv)
	return x, y, okx && oky
}

func asFloat32(v any) (float32, bool) {
	switch v := v.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	}
	return 0, false
}

// hexKey parses a dictionary key of the wire integer-key shape: "0x"
// followed by exactly 8 hex digits. Anything else, including shorter
// or longer hex strings, stays a string key.
func hexKey(k string) (int64, bool) {
	if len(k) != 10 || k[0] != '0' || k[1] != 'x' {
		return 0, false
	}
	u, err := strconv.ParseUint(k[2:], 16, 32)
	if err != nil {
		return 0, false
	}
	return int64(u), true
}
