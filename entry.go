// entry.go - The polymorphic schema entry.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import (
	"strconv"
)

// EntryType is the tag of the [Entry] sum type. The reference
// implementation leans on a trait hierarchy with one implementor per
// type; a closed tagged variant is the natural Go shape since the
// core has no requirement for open-world extensibility.
type EntryType int

const (
	TypeBool EntryType = iota
	TypeInt
	TypeUint
	TypeFlt
	TypeStr
	TypeArray
	TypePos
	TypeCmd
	TypeMain
)

var entryTypeNames = map[EntryType]string{
	TypeBool:  "bool",
	TypeInt:   "int",
	TypeUint:  "uint",
	TypeFlt:   "flt",
	TypeStr:   "str",
	TypeArray: "array",
	TypePos:   "pos",
	TypeCmd:   "cmd",
	TypeMain:  "main",
}

// String returns the declaration-syntax spelling of the type.
func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEntryType resolves a declaration-syntax type name.
func ParseEntryType(name string) (EntryType, bool) {
	for t, n := range entryTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// isOption reports whether t is one of the option variants (as
// opposed to Pos/Cmd/Main).
func (t EntryType) isOption() bool {
	switch t {
	case TypeBool, TypeInt, TypeUint, TypeFlt, TypeStr, TypeArray:
		return true
	default:
		return false
	}
}

// Alias is one (prefix, name) pair an option entry additionally
// answers to, besides its own prefix/name.
type Alias struct {
	Prefix string
	Name   string
}

// Entry is the tagged variant over {Bool, Int, Uint, Flt, Str, Array,
// Pos, Cmd, Main} described in spec §3. All fields are accessed
// through the capability methods below rather than directly, so the
// dispatcher and parser strategies never need a type switch.
type Entry struct {
	id     Identifier
	typ    EntryType
	name   string
	prefix string

	optional  bool
	aliases   []Alias
	indexPred IndexPredicate

	value        Value
	defaultValue Value

	callbackKind CallbackKind
	needInvoke   bool

	// deactivateStyle is meaningful only for TypeBool: when true, the
	// entry's initial value is true and matching it in a parse flips
	// it false.
	deactivateStyle bool

	hint string
	help string
}

// NewEntry builds an [Entry] of the given type. prefix must be
// non-empty for option variants and empty for positional variants,
// matching the invariant in spec §3.
func NewEntry(id Identifier, typ EntryType, name, prefix string) *Entry {
	e := &Entry{
		id:        id,
		typ:       typ,
		name:      name,
		prefix:    prefix,
		optional:  true,
		indexPred: NullIndexPredicate(),
	}
	switch typ {
	case TypeCmd:
		e.optional = false
		e.indexPred = ForwardIndex(1)
	case TypeMain:
		e.optional = true
	}
	e.defaultValue = NullValue()
	e.value = NullValue()
	return e
}

// ID returns the entry's identifier.
func (e *Entry) ID() Identifier { return e.id }

// Type returns the entry's variant tag.
func (e *Entry) Type() EntryType { return e.typ }

// Name returns the entry's declared name (without prefix).
func (e *Entry) Name() string { return e.name }

// Prefix returns the entry's declared prefix, empty for positional
// variants.
func (e *Entry) Prefix() string { return e.prefix }

// Optional reports whether the entry may be left unset.
func (e *Entry) Optional() bool { return e.optional }

// SetOptional sets whether the entry may be left unset.
func (e *Entry) SetOptional(v bool) { e.optional = v }

// Aliases returns the entry's alias set.
func (e *Entry) Aliases() []Alias { return e.aliases }

// AddAlias appends an alias.
func (e *Entry) AddAlias(prefix, name string) {
	e.aliases = append(e.aliases, Alias{Prefix: prefix, Name: name})
}

// RemoveAlias removes the first alias equal to (prefix, name), if any.
func (e *Entry) RemoveAlias(prefix, name string) {
	for i, a := range e.aliases {
		if a.Prefix == prefix && a.Name == name {
			e.aliases = append(e.aliases[:i], e.aliases[i+1:]...)
			return
		}
	}
}

// ClearAliases drops every alias.
func (e *Entry) ClearAliases() { e.aliases = nil }

// IndexPredicate returns the entry's positional match predicate.
// Meaningful only for Pos/Cmd; option variants always report the
// null predicate.
func (e *Entry) IndexPredicate() IndexPredicate { return e.indexPred }

// SetIndexPredicate sets the positional match predicate.
func (e *Entry) SetIndexPredicate(p IndexPredicate) { e.indexPred = p }

// CallbackKind returns which callback arity, if any, this entry expects.
func (e *Entry) CallbackKind() CallbackKind { return e.callbackKind }

// SetCallbackKind sets the callback arity. Flipping it to a non-None
// kind marks the entry pending-invocation once it matches.
func (e *Entry) SetCallbackKind(k CallbackKind) { e.callbackKind = k }

// NeedInvoke reports whether the entry matched and is awaiting its
// callback.
func (e *Entry) NeedInvoke() bool { return e.needInvoke }

// SetNeedInvoke marks (or clears) the pending-invocation flag.
func (e *Entry) SetNeedInvoke(v bool) { e.needInvoke = v }

// DeactivateStyle reports whether this Bool entry supports the "/"
// modifier. Always false for non-Bool entries.
func (e *Entry) DeactivateStyle() bool { return e.typ == TypeBool && e.deactivateStyle }

// SetDeactivateStyle enables the "/" modifier on a Bool entry and
// flips its initial/default value to true, matching spec §3. It is an
// error to call this on a non-Bool entry.
func (e *Entry) SetDeactivateStyle(v bool) error {
	if e.typ != TypeBool {
		return newError(ErrUtilsNotSupportDeactivateStyle, e.typ.String())
	}
	e.deactivateStyle = v
	if v {
		e.defaultValue = NewBoolValue(true)
		e.value = NewBoolValue(true)
	}
	return nil
}

// Hint/Help are free-form metadata consumed by the external help-text
// generator; the engine itself never reads them.
func (e *Entry) Hint() string     { return e.hint }
func (e *Entry) SetHint(s string) { e.hint = s }
func (e *Entry) Help() string     { return e.help }
func (e *Entry) SetHelp(s string) { e.help = s }

// Value returns the entry's current value.
func (e *Entry) Value() Value { return e.value }

// DefaultValue returns the entry's default value.
func (e *Entry) DefaultValue() Value { return e.defaultValue }

// SetDefaultValue sets the entry's default (and, if no value has been
// assigned yet, its current value).
func (e *Entry) SetDefaultValue(v Value) {
	e.defaultValue = v
	if e.value.Kind() == ValueNull {
		e.value = v
	}
}

// SetValue assigns v as the entry's current value. Array entries are
// append-on-set: v is appended to, never replacing, the existing
// array.
func (e *Entry) SetValue(v Value) {
	if e.typ == TypeArray && v.Kind() == ValueStr {
		s, _ := v.Str()
		e.value = e.value.AppendArray(s)
		return
	}
	e.value = v
}

// ResetValue restores the entry's current value to its default,
// cloning through [Value.Clone] so Opaque defaults without a clone
// helper downgrade to Null rather than alias.
func (e *Entry) ResetValue() {
	e.value = e.defaultValue.Clone()
	e.needInvoke = false
}

// HasValue reports whether the entry carries a value worth reporting
// at check time. Bool entries report true iff the current value
// differs from the default (so a deactivate-style Bool that was never
// touched reports false even though its default is already true);
// every other variant reports true iff the stored value's kind
// matches what the type expects.
func (e *Entry) HasValue() bool {
	switch e.typ {
	case TypeBool:
		cur, _ := e.value.Bool()
		def, _ := e.defaultValue.Bool()
		return e.value.Kind() != e.defaultValue.Kind() || cur != def
	case TypeInt:
		return e.value.Kind() == ValueInt
	case TypeUint:
		return e.value.Kind() == ValueUint
	case TypeFlt:
		return e.value.Kind() == ValueFlt
	case TypeStr:
		return e.value.Kind() == ValueStr
	case TypeArray:
		arr, ok := e.value.Array()
		return ok && len(arr) > 0
	default:
		return e.value.Kind() != ValueNull
	}
}

// IsStyle reports whether this entry can be matched by a [Context] of
// the given style.
func (e *Entry) IsStyle(s Style) bool {
	switch e.typ {
	case TypeBool:
		return s == StyleBoolean || s == StyleMultiple
	case TypeInt, TypeUint, TypeFlt, TypeStr, TypeArray:
		return s == StyleArgument
	case TypePos:
		return s == StylePos
	case TypeCmd:
		return s == StyleCmd
	case TypeMain:
		return s == StyleMain
	default:
		return false
	}
}

// MatchName reports whether name equals the entry's own name (not its
// aliases; see MatchAlias).
func (e *Entry) MatchName(name string) bool { return e.name == name }

// MatchPrefix reports whether prefix equals the entry's own prefix.
func (e *Entry) MatchPrefix(prefix string) bool { return e.prefix == prefix }

// MatchAlias reports whether (prefix, name) equals one of the entry's
// aliases.
func (e *Entry) MatchAlias(prefix, name string) bool {
	for _, a := range e.aliases {
		if a.Prefix == prefix && a.Name == name {
			return true
		}
	}
	return false
}

// MatchNonOptName reports whether token, the NOA string a [Context]
// of non-option style is testing, satisfies this entry's name
// requirement. Cmd only accepts a token equal to its own declared
// name (subcommand dispatch by name); Pos and Main accept any token,
// since their role is positional rather than nominal.
func (e *Entry) MatchNonOptName(token string) bool {
	switch e.typ {
	case TypeCmd:
		return e.name == token
	case TypePos, TypeMain:
		return true
	default:
		return false
	}
}

// MatchIndex reports whether this Pos/Cmd entry matches at the given
// 1-based (total, current) position. Non-positional entries always
// report false; Main always reports true regardless of position
// (Main's context generation only ever emits it once, for the whole
// NOA list, so position does not apply to it).
func (e *Entry) MatchIndex(total, current int64) bool {
	switch e.typ {
	case TypeCmd, TypePos:
		return e.indexPred.Match(total, current)
	case TypeMain:
		return true
	default:
		return false
	}
}

// ParseValue coerces s into the [Value] this entry's type expects. A
// Bool entry ignores s entirely (Boolean/Multiple-style contexts never
// carry a matched value): a deactivate-style Bool always coerces to
// false, matching every other matched entry's "/name" flip; any other
// Bool always coerces to true.
func (e *Entry) ParseValue(s string) (Value, error) {
	switch e.typ {
	case TypeBool:
		return NewBoolValue(!e.deactivateStyle), nil
	case TypeInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, newError(ErrInvalidOptionValue, s, err.Error())
		}
		return NewIntValue(n), nil
	case TypeUint:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Value{}, newError(ErrInvalidOptionValue, s, err.Error())
		}
		return NewUintValue(n), nil
	case TypeFlt:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, newError(ErrInvalidOptionValue, s, err.Error())
		}
		return NewFltValue(f), nil
	case TypeStr, TypeArray:
		return NewStrValue(s), nil
	case TypePos, TypeCmd, TypeMain:
		// Deliberately NewStrValue(s), not Bool(true): see DESIGN.md's
		// "Pos/Cmd/Main store the matched NOA text, not Bool(true)"
		// entry for why this departs from the original.
		return NewStrValue(s), nil
	default:
		return Value{}, newError(ErrInvalidOptionType, e.typ.String())
	}
}

// Check reports whether the entry satisfies the force-required rule
// for option variants (§4.6): ¬optional ∧ ¬has_value is an error.
// Positional grouping rules live in checks.go, since they span more
// than one entry.
func (e *Entry) Check() error {
	if e.typ.isOption() && !e.optional && !e.HasValue() {
		return newError(ErrOptionForceRequired, e.prefix+e.name)
	}
	return nil
}
