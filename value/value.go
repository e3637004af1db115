// Package value defines the dynamic value tree the codec encodes and
// decodes: a closed sum type rendered as a Go interface with one
// concrete type per MessagePack variant, rather than a single
// duck-typed numeric type discriminated by floor-equality.
package value

import "fmt"

// Value is the dynamic value sum type. Every concrete type in this
// package implements it; the interface itself carries no behavior
// beyond marking membership in the sum type, the same role format's
// Marker type plays for wire bytes.
type Value interface {
	isValue()
}

// Nil is the MessagePack nil value.
type Nil struct{}

// Bool is a MessagePack boolean.
type Bool bool

// Int is a MessagePack integer, held as a native int64 end to end.
// Encode demotes a value to the smallest wire format it fits in;
// decode widens 64-bit markers back to Int via the same high/low word
// reconstruction a bit-for-bit reader uses, so every Int round-trips
// exactly. A uint64 wire value above math.MaxInt64 does not fit an Int
// and decodes as a negative Int.
type Int int64

// Float is a MessagePack float64. Must be finite — NaN and Inf have no
// wire representation in this format.
type Float float64

// Str is a MessagePack UTF-8 string, measured and compared by its raw
// UTF-8 byte sequence.
type Str string

// Bin is an opaque MessagePack byte sequence, distinct from Str: it
// carries arbitrary bytes with no UTF-8 validity requirement.
type Bin []byte

// Array is an ordered sequence of values.
type Array []Value

// Map is an ordered sequence of (string key, value) pairs. Insertion
// order is preserved on encode; Go's map type can't express that, so
// Map is a slice of pairs rather than a native map.
type Map []Pair

// Pair is one (key, value) entry of a Map.
type Pair struct {
	Key string
	Val Value
}

// Ext is a MessagePack extension value: a signed 8-bit type tag plus an
// opaque payload, modeled as a first-class variant rather than a
// duck-typed struct the encoder has to sniff.
type Ext struct {
	Type int8
	Data []byte
}

func (Nil) isValue()   {}
func (Bool) isValue()  {}
func (Int) isValue()   {}
func (Float) isValue() {}
func (Str) isValue()   {}
func (Bin) isValue()   {}
func (Array) isValue() {}
func (Map) isValue()   {}
func (Ext) isValue()   {}

// Get returns the value associated with key and whether it was found.
// Linear scan: Map preserves insertion order rather than indexing by
// key, since wire order is an encoding artifact, not a lookup
// structure.
func (m Map) Get(key string) (Value, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Val, true
		}
	}

	return nil, false
}

// TypeName returns a human-readable name for v's variant.
func TypeName(v Value) string {
	switch v.(type) {
	case Nil:
		return "nil"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	case Bin:
		return "bin"
	case Array:
		return "array"
	case Map:
		return "map"
	case Ext:
		return "ext"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Equal reports whether a and b are structurally equal, comparing
// strings by UTF-8 byte sequence and treating Map as an unordered set
// of pairs: decode(encode(v)) is only guaranteed equal to v up to map
// key order, not identical in iteration order.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Bin:
		bv, ok := b.(Bin)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}

		return true
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}

		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av) != len(bv) {
			return false
		}
		for _, p := range av {
			other, found := bv.Get(p.Key)
			if !found || !Equal(p.Val, other) {
				return false
			}
		}

		return true
	case Ext:
		bv, ok := b.(Ext)
		if !ok || av.Type != bv.Type || len(av.Data) != len(bv.Data) {
			return false
		}
		for i := range av.Data {
			if av.Data[i] != bv.Data[i] {
				return false
			}
		}

		return true
	default:
		return false
	}
}
