package fragments_test

import (
	"bytes"
	"testing"

	"github.com/danderson/gdsave/fragments"
)

func TestEncoder(t *testing.T) {
	tests := []struct {
		name string
		in   func(*fragments.Encoder)
		want []byte
	}{
		{
			"raw bytes",
			func(e *fragments.Encoder) {
				e.Write([]byte{1, 2, 3})
			},
			[]byte{0x01, 0x02, 0x03},
		},

		{
			"uint32",
			func(e *fragments.Encoder) {
				e.Uint32(42)
			},
			[]byte{0x2a, 0x00, 0x00, 0x00},
		},

		{
			"int32 negative",
			func(e *fragments.Encoder) {
				e.Int32(-1)
			},
			[]byte{0xff, 0xff, 0xff, 0xff},
		},

		{
			"int64",
			func(e *fragments.Encoder) {
				e.Int64(1 << 31)
			},
			[]byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00},
		},

		{
			"floats",
			func(e *fragments.Encoder) {
				e.Float32(1.5)
				e.Float64(-2.5)
			},
			[]byte{
				0x00, 0x00, 0xc0, 0x3f,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0xc0,
			},
		},

		{
			"string with padding",
			func(e *fragments.Encoder) {
				e.String("foo")
			},
			[]byte{
				0x03, 0x00, 0x00, 0x00, // length
				0x66, 0x6f, 0x6f, // val
				0x00, // pad
			},
		},

		{
			"string at boundary gets no padding",
			func(e *fragments.Encoder) {
				e.String("food")
			},
			[]byte{
				0x04, 0x00, 0x00, 0x00,
				0x66, 0x6f, 0x6f, 0x64,
			},
		},

		{
			"empty string",
			func(e *fragments.Encoder) {
				e.String("")
			},
			[]byte{0x00, 0x00, 0x00, 0x00},
		},

		{
			"pad",
			func(e *fragments.Encoder) {
				e.Write([]byte{1})
				e.Pad(4)
				e.Uint32(42)
			},
			[]byte{
				0x01,
				0x00, 0x00, 0x00, // pad
				0x2a, 0x00, 0x00, 0x00,
			},
		},

		{
			"pad when aligned is a no-op",
			func(e *fragments.Encoder) {
				e.Uint32(1)
				e.Pad(4)
				e.Uint32(2)
			},
			[]byte{
				0x01, 0x00, 0x00, 0x00,
				0x02, 0x00, 0x00, 0x00,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e fragments.Encoder
			tc.in(&e)
			if !bytes.Equal(e.Out, tc.want) {
				t.Fatalf("wrong encoding:\n  got: % x\n want: % x", e.Out, tc.want)
			}
		})
	}
}

// Every string payload, including its length prefix and padding, must
// occupy a multiple of 4 bytes.
func TestStringPadding(t *testing.T) {
	lengths := map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: 3}
	for n, pad := range lengths {
		var e fragments.Encoder
		e.String(string(bytes.Repeat([]byte{'a'}, n)))
		if want := 4 + n + pad; len(e.Out) != want {
			t.Errorf("String of %d bytes encoded to %d bytes, want %d", n, len(e.Out), want)
		}
		if len(e.Out)%4 != 0 {
			t.Errorf("String of %d bytes encoded to %d bytes, not 4-aligned", n, len(e.Out))
		}
	}
}
