// value.go - The typed value sum type carried by schema entries.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

// ValueKind tags which alternative a [Value] currently holds.
type ValueKind int

const (
	// ValueNull is the zero value: no value has been assigned yet.
	ValueNull ValueKind = iota
	ValueInt
	ValueUint
	ValueFlt
	ValueStr
	ValueBool
	ValueArray
	// ValueOpaque carries an arbitrary payload. It is intentionally
	// non-cloneable unless the entry supplies a clone function.
	ValueOpaque
)

// Value is a sum type over {Int, Uint, Flt, Str, Bool, Array, Opaque,
// Null}. Values are owned by the entry that holds them; [Entry.SetValue]
// transfers ownership.
type Value struct {
	kind ValueKind

	i   int64
	u   uint64
	f   float64
	s   string
	b   bool
	arr []string

	opaque      any
	cloneOpaque func(any) any
}

// NullValue returns the zero [Value].
func NullValue() Value { return Value{kind: ValueNull} }

// NewIntValue wraps an int64.
func NewIntValue(v int64) Value { return Value{kind: ValueInt, i: v} }

// NewUintValue wraps a uint64.
func NewUintValue(v uint64) Value { return Value{kind: ValueUint, u: v} }

// NewFltValue wraps a float64.
func NewFltValue(v float64) Value { return Value{kind: ValueFlt, f: v} }

// NewStrValue wraps a string.
func NewStrValue(v string) Value { return Value{kind: ValueStr, s: v} }

// NewBoolValue wraps a bool.
func NewBoolValue(v bool) Value { return Value{kind: ValueBool, b: v} }

// NewArrayValue wraps an ordered sequence of strings. The slice is
// copied so callers may freely mutate what they passed in.
func NewArrayValue(v []string) Value {
	cp := make([]string, len(v))
	copy(cp, v)
	return Value{kind: ValueArray, arr: cp}
}

// NewOpaqueValue wraps an arbitrary payload. clone may be nil, in
// which case [Value.Clone] downgrades the result to [ValueNull]
// instead of attempting a clone, per the Opaque non-clone contract.
func NewOpaqueValue(v any, clone func(any) any) Value {
	return Value{kind: ValueOpaque, opaque: v, cloneOpaque: clone}
}

// Kind reports which alternative is held.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the wrapped int64 and whether the value holds one.
func (v Value) Int() (int64, bool) { return v.i, v.kind == ValueInt }

// Uint returns the wrapped uint64 and whether the value holds one.
func (v Value) Uint() (uint64, bool) { return v.u, v.kind == ValueUint }

// Flt returns the wrapped float64 and whether the value holds one.
func (v Value) Flt() (float64, bool) { return v.f, v.kind == ValueFlt }

// Str returns the wrapped string and whether the value holds one.
func (v Value) Str() (string, bool) { return v.s, v.kind == ValueStr }

// Bool returns the wrapped bool and whether the value holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == ValueBool }

// Array returns the wrapped sequence and whether the value holds one.
func (v Value) Array() ([]string, bool) { return v.arr, v.kind == ValueArray }

// Opaque returns the wrapped payload and whether the value holds one.
func (v Value) Opaque() (any, bool) { return v.opaque, v.kind == ValueOpaque }

// AppendArray returns a new [ValueArray] Value with s appended to the
// current contents. If v does not already hold an array, the result
// starts from an empty one. Array values are append-on-set: they are
// never replaced wholesale by the dispatcher.
func (v Value) AppendArray(s string) Value {
	next := make([]string, 0, len(v.arr)+1)
	next = append(next, v.arr...)
	next = append(next, s)
	return Value{kind: ValueArray, arr: next}
}

// Clone duplicates v. [ValueOpaque] refuses to clone unless a clone
// helper was supplied at construction time; without one, Clone
// downgrades the result to [ValueNull] rather than aliasing the
// payload.
func (v Value) Clone() Value {
	switch v.kind {
	case ValueArray:
		return NewArrayValue(v.arr)
	case ValueOpaque:
		if v.cloneOpaque == nil {
			return NullValue()
		}
		return Value{kind: ValueOpaque, opaque: v.cloneOpaque(v.opaque), cloneOpaque: v.cloneOpaque}
	default:
		return v
	}
}
