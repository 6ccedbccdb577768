// Package fragments provides low-level encoding and decoding helpers
// to construct and parse Godot's binary variant serialization.
//
// The provided encoder and decoder are very low level, and do not
// encode any variant semantics. It is the caller's responsibility to
// produce valid variant records using these tools.
//
// All multi-byte values are little-endian; the format has no byte
// order flag. Alignment is always to 4 bytes, and because every
// record except raw string payloads is a multiple of 4 bytes long,
// alignment relative to the start of the buffer coincides with
// alignment relative to the current record.
package fragments
