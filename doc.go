// Package gdsave encodes and decodes the length-prefixed binary
// variant format that Godot games use for save files.
//
// A save document is a u32 total size (counting itself) followed by a
// single recursively tagged value. Every value starts with a u32 tag
// word: the low 16 bits name one of the engine's variant types, bit 0
// of the high 16 bits selects the wide form of numeric types (int64
// over int32, float64 over float32). All integers and floats are
// little-endian, and string payloads are zero-padded to 4-byte
// boundaries.
//
// [Unmarshal] turns a document into a tree of plain Go values: nil,
// bool, int64, float64, string, []any and [*Dict]. [Marshal] is the
// inverse. The decodable type set covers what save files actually
// contain — Nil, Bool, Int, Real, String, Vector2, Dictionary and
// Array. The engine's geometric and resource variants (Rect2 through
// Object, and the pooled arrays) decode to placeholder strings and
// cannot be re-encoded; this is a documented limitation, not an
// oversight.
//
// Two narrowings are inherent to the plain-value model and are
// applied consistently in both directions: integer dictionary keys
// are carried as "0x"-prefixed 8-digit hex strings, and a dictionary
// with exactly the keys "x" and "y" holding numbers is written back
// as a Vector2. See [Marshal] for details.
package gdsave
