package fragments

import (
	"encoding/binary"
	"math"
)

// An Encoder provides utilities to write the Godot variant wire
// format to a byte slice.
//
// Methods append exactly the width of the value written, except for
// [Encoder.Pad] which inserts zero bytes as needed to satisfy the
// format's 4-byte alignment rule. Writes cannot fail.
type Encoder struct {
	// Out is the encoded output.
	Out []byte
}

// Pad inserts zero bytes as needed to make the output a multiple of
// align bytes. If the output is already correctly aligned, no padding
// is inserted.
func (e *Encoder) Pad(align int) {
	extra := len(e.Out) % align
	if extra == 0 {
		return
	}
	var pad [8]byte
	e.Out = append(e.Out, pad[:align-extra]...)
}

// Write writes bs as-is to the output. It is the caller's
// responsibility to ensure correct padding.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// Uint32 writes a uint32.
func (e *Encoder) Uint32(u32 uint32) {
	e.Out = binary.LittleEndian.AppendUint32(e.Out, u32)
}

// Int32 writes an int32.
func (e *Encoder) Int32(i32 int32) {
	e.Uint32(uint32(i32))
}

// Int64 writes an int64.
func (e *Encoder) Int64(i64 int64) {
	e.Out = binary.LittleEndian.AppendUint64(e.Out, uint64(i64))
}

// Float32 writes a float32.
func (e *Encoder) Float32(f32 float32) {
	e.Uint32(math.Float32bits(f32))
}

// Float64 writes a float64.
func (e *Encoder) Float64(f64 float64) {
	e.Out = binary.LittleEndian.AppendUint64(e.Out, math.Float64bits(f64))
}

// String writes s as a length-prefixed string followed by zero bytes
// up to the next 4-byte boundary.
func (e *Encoder) String(s string) {
	e.Uint32(uint32(len(s)))
	e.Out = append(e.Out, s...)
	e.Pad(4)
}
