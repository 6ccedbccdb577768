package gdsave

import (
	"iter"
	"reflect"
)

// A Dict is a string-keyed mapping that remembers insertion order.
//
// The wire format has no canonical ordering for dictionary entries
// beyond "whatever order was written", so a decoded dictionary must
// remember that order for the value to survive a decode/re-encode
// cycle byte for byte. Go's built-in map cannot do that, so decoded
// dictionaries are Dicts and [Marshal] expects Dicts.
//
// Dictionary keys on the wire may be strings or integers. Integer
// keys are projected onto strings of the form "0x" followed by 8
// uppercase hex digits of the key's 32-bit truncation, and keys of
// exactly that shape are projected back to integers on encode.
type Dict struct {
	keys []string
	vals map[string]any
}

// NewDict returns a new empty Dict.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]any)}
}

// Set sets the value for key. A new key is appended to the iteration
// order; setting an existing key updates the value in place without
// changing its position.
func (d *Dict) Set(key string, val any) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Get returns the value for key, and whether the key is present.
func (d *Dict) Get(key string) (any, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order. The returned slice is a
// copy.
func (d *Dict) Keys() []string {
	ks := make([]string, len(d.keys))
	copy(ks, d.keys)
	return ks
}

// All iterates over entries in insertion order.
func (d *Dict) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range d.keys {
			if !yield(k, d.vals[k]) {
				return
			}
		}
	}
}

// Equal reports whether two Dicts hold equal values under equal keys
// in the same insertion order. It is used by go-cmp when comparing
// decoded value trees.
func (d *Dict) Equal(o *Dict) bool {
	if d == nil || o == nil {
		return d == o
	}
	return reflect.DeepEqual(d.keys, o.keys) && reflect.DeepEqual(d.vals, o.vals)
}
