package fragments

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrShortRead is the error returned when a read would consume more
// bytes than remain in the input. A failed read never advances the
// cursor.
var ErrShortRead = errors.New("read past end of buffer")

// A Decoder provides utilities to read the Godot variant wire format
// from a byte slice.
//
// Methods advance the read cursor by exactly the width of the value
// read, except for [Decoder.Pad] which consumes padding as needed to
// satisfy the format's 4-byte alignment rule.
type Decoder struct {
	// In is the input buffer. The Decoder never mutates it.
	In []byte

	// offset is the number of bytes consumed off the front of In so
	// far.
	offset int
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.offset }

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int { return len(d.In) - d.offset }

// Read reads n bytes, with no framing or padding. The returned slice
// aliases the input buffer.
func (d *Decoder) Read(n int) ([]byte, error) {
	if n < 0 || n > d.Remaining() {
		return nil, ErrShortRead
	}
	bs := d.In[d.offset : d.offset+n]
	d.offset += n
	return bs, nil
}

// Pad consumes padding bytes as needed to make the next read happen
// at a multiple of align bytes. If the decoder is already correctly
// aligned, no bytes are consumed. The content of padding bytes is
// ignored.
func (d *Decoder) Pad(align int) error {
	extra := d.offset % align
	if extra == 0 {
		return nil
	}
	_, err := d.Read(align - extra)
	return err
}

// Uint32 reads a uint32.
func (d *Decoder) Uint32() (uint32, error) {
	bs, err := d.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

// Int32 reads an int32.
func (d *Decoder) Int32() (int32, error) {
	u, err := d.Uint32()
	return int32(u), err
}

// Int64 reads an int64.
func (d *Decoder) Int64() (int64, error) {
	bs, err := d.Read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(bs)), nil
}

// Float32 reads a float32.
func (d *Decoder) Float32() (float32, error) {
	u, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// Float64 reads a float64.
func (d *Decoder) Float64() (float64, error) {
	bs, err := d.Read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(bs)), nil
}

// String reads a length-prefixed string and its trailing alignment
// padding. The bytes are returned verbatim; it is the caller's
// responsibility to deal with non-UTF-8 content.
func (d *Decoder) String() (string, error) {
	ln, err := d.Uint32()
	if err != nil {
		return "", err
	}
	bs, err := d.Read(int(ln))
	if err != nil {
		return "", err
	}
	if err := d.Pad(4); err != nil {
		return "", err
	}
	return string(bs), nil
}
