package gdsave_test

import (
	"github.com/danderson/gdsave"
	"github.com/danderson/gdsave/fragments"
)

// dict builds a Dict from alternating key/value arguments.
func dict(pairs ...any) *gdsave.Dict {
	if len(pairs)%2 != 0 {
		panic("dict needs an even number of arguments")
	}
	d := gdsave.NewDict()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1])
	}
	return d
}

// doc frames a hand-built value body as a complete save document.
func doc(body func(e *fragments.Encoder)) []byte {
	var inner fragments.Encoder
	body(&inner)
	var out fragments.Encoder
	out.Uint32(uint32(len(inner.Out) + 4))
	out.Write(inner.Out)
	return out.Out
}
