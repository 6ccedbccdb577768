package gdsave_test

import (
	"testing"

	"github.com/danderson/gdsave"
	"github.com/google/go-cmp/cmp"
)

func TestDict(t *testing.T) {
	d := gdsave.NewDict()
	if got := d.Len(); got != 0 {
		t.Fatalf("empty Dict has Len %d, want 0", got)
	}
	if _, ok := d.Get("missing"); ok {
		t.Fatal("Get on empty Dict reported a value")
	}

	d.Set("b", int64(1))
	d.Set("a", int64(2))
	d.Set("c", int64(3))
	if got, want := d.Keys(), []string{"b", "a", "c"}; !cmp.Equal(got, want) {
		t.Fatalf("Keys() got %v, want %v", got, want)
	}

	// Overwriting keeps the key's original position.
	d.Set("a", int64(42))
	if got, want := d.Keys(), []string{"b", "a", "c"}; !cmp.Equal(got, want) {
		t.Fatalf("Keys() after overwrite got %v, want %v", got, want)
	}
	if v, ok := d.Get("a"); !ok || v != int64(42) {
		t.Fatalf("Get(a) got %v, %v, want 42, true", v, ok)
	}
	if got := d.Len(); got != 3 {
		t.Fatalf("Len() got %d, want 3", got)
	}

	var gotKeys []string
	var gotVals []any
	for k, v := range d.All() {
		gotKeys = append(gotKeys, k)
		gotVals = append(gotVals, v)
	}
	if want := []string{"b", "a", "c"}; !cmp.Equal(gotKeys, want) {
		t.Fatalf("All() keys got %v, want %v", gotKeys, want)
	}
	if want := []any{int64(1), int64(42), int64(3)}; !cmp.Equal(gotVals, want) {
		t.Fatalf("All() values got %v, want %v", gotVals, want)
	}

	// Mutating the returned key slice must not affect the Dict.
	ks := d.Keys()
	ks[0] = "mutated"
	if got := d.Keys()[0]; got != "b" {
		t.Fatalf("Keys() result aliases Dict state, got first key %q", got)
	}
}

func TestDictEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *gdsave.Dict
		want bool
	}{
		{"both empty", gdsave.NewDict(), gdsave.NewDict(), true},
		{"same entries", dict("a", int64(1)), dict("a", int64(1)), true},
		{"different values", dict("a", int64(1)), dict("a", int64(2)), false},
		{"different order", dict("a", int64(1), "b", int64(2)), dict("b", int64(2), "a", int64(1)), false},
		{"nested equal", dict("d", dict("x", 1.0)), dict("d", dict("x", 1.0)), true},
		{"nested unequal", dict("d", dict("x", 1.0)), dict("d", dict("x", 2.0)), false},
		{"nil and empty", nil, gdsave.NewDict(), false},
		{"both nil", nil, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("Equal got %v, want %v", got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Fatalf("Equal (reversed) got %v, want %v", got, tc.want)
			}
		})
	}
}
