package gdsave

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FromJSON decodes a JSON document into the value shape accepted by
// [Marshal]: objects become [*Dict] values preserving the document's
// key order, arrays become []any, and numbers become int64 when they
// are integral and fit, float64 otherwise. That split is what decides
// between the narrow and wide integer wire forms, so a save edited as
// JSON keeps its integer fields integers.
func FromJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := readJSON(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return v, nil
}

// ToJSON writes v as indented JSON. Dictionaries render their entries
// in insertion order.
//
// Note that a float64 with an integral value renders as a bare
// integer literal, and will come back from [FromJSON] as an int64.
// The binary round trip is exact; the JSON round trip narrows
// integral reals.
func ToJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func readJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			ret := NewDict()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", kt)
				}
				v, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				ret.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return ret, nil
		case '[':
			ret := []any{}
			for dec.More() {
				v, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				ret = append(ret, v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return ret, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", tok)
	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return i, nil
		}
		f, err := tok.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", tok, err)
		}
		return f, nil
	case string, bool, nil:
		return tok, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// MarshalJSON renders the Dict as a JSON object with entries in
// insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.vals[k])
		if err != nil {
			return nil, fmt.Errorf("marshaling value for %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the Dict's contents with the entries of a
// JSON object, in document order. Nested objects become Dicts.
func (d *Dict) UnmarshalJSON(bs []byte) error {
	dec := json.NewDecoder(bytes.NewReader(bs))
	dec.UseNumber()
	v, err := readJSON(dec)
	if err != nil {
		return err
	}
	nd, ok := v.(*Dict)
	if !ok {
		return fmt.Errorf("cannot unmarshal %T into Dict", v)
	}
	*d = *nd
	return nil
}
