// callback.go - User callback registry, keyed by entry identifier.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

// CallbackKind identifies which of the three callback arities an
// entry expects. Flipping an entry's kind away from CallbackNone marks
// it pending-invocation once matched.
type CallbackKind int

const (
	// CallbackNone means the entry has no user callback.
	CallbackNone CallbackKind = iota
	// CallbackValue calls back with the entry itself, after its value
	// has been assigned. Valid for option-variant entries.
	CallbackValue
	// CallbackIndex calls back with the registry and the NOA string at
	// the entry's computed 1-based index. Valid for Pos entries.
	CallbackIndex
	// CallbackMain calls back with the registry and the entire NOA
	// list. Valid for Cmd/Main entries.
	CallbackMain
)

// ValueCallback is invoked for an entry with [CallbackValue] kind.
type ValueCallback func(entry *Entry) (bool, error)

// IndexCallback is invoked for a Pos entry with [CallbackIndex] kind.
// arg is the NOA string at the entry's matched index.
type IndexCallback func(reg *Registry, arg string) (bool, error)

// MainCallback is invoked for a Cmd/Main entry with [CallbackMain]
// kind. args is the full non-option argument list.
type MainCallback func(reg *Registry, args []string) (bool, error)

// callbackSlot is the tagged union of function objects backing one
// entry's callback: a single struct with at most one populated field,
// rather than three parallel maps. Calling a Call* method whose arity
// does not match the registered slot calls nothing and raises no
// error: CallIndex/CallMain report fired=false, and CallValue returns
// (false, nil), which looks the same as a callback that returned false.
type callbackSlot struct {
	kind  CallbackKind
	value ValueCallback
	index IndexCallback
	main  MainCallback
}

// CallbackRegistry maps entry [Identifier] to its registered callback.
// It lives for the lifetime of the [Parser]/[Registry] it belongs to.
type CallbackRegistry struct {
	slots map[Identifier]callbackSlot
}

// NewCallbackRegistry returns an empty [CallbackRegistry].
func NewCallbackRegistry() *CallbackRegistry {
	return &CallbackRegistry{slots: make(map[Identifier]callbackSlot)}
}

// SetValue registers a [ValueCallback] for id.
func (c *CallbackRegistry) SetValue(id Identifier, cb ValueCallback) {
	c.slots[id] = callbackSlot{kind: CallbackValue, value: cb}
}

// SetIndex registers an [IndexCallback] for id.
func (c *CallbackRegistry) SetIndex(id Identifier, cb IndexCallback) {
	c.slots[id] = callbackSlot{kind: CallbackIndex, index: cb}
}

// SetMain registers a [MainCallback] for id.
func (c *CallbackRegistry) SetMain(id Identifier, cb MainCallback) {
	c.slots[id] = callbackSlot{kind: CallbackMain, main: cb}
}

// Remove drops any callback registered for id.
func (c *CallbackRegistry) Remove(id Identifier) {
	delete(c.slots, id)
}

// CallValue invokes the Value callback registered for entry's id, if
// any. Unlike Index/Main, the Value callback's verdict is not written
// back into the entry: the entry's value was already assigned by the
// matching [Context] before this runs.
func (c *CallbackRegistry) CallValue(entry *Entry) (bool, error) {
	slot, ok := c.slots[entry.ID()]
	if !ok || slot.kind != CallbackValue || slot.value == nil {
		return false, nil
	}
	return slot.value(entry)
}

// CallIndex invokes the Index callback registered for id, if any. The
// returned boolean is the raw callback verdict; the caller is
// responsible for storing it into the entry's value per §4.4.
func (c *CallbackRegistry) CallIndex(id Identifier, reg *Registry, arg string) (bool, bool, error) {
	slot, ok := c.slots[id]
	if !ok || slot.kind != CallbackIndex || slot.index == nil {
		return false, false, nil
	}
	verdict, err := slot.index(reg, arg)
	return verdict, true, err
}

// CallMain invokes the Main callback registered for id, if any.
func (c *CallbackRegistry) CallMain(id Identifier, reg *Registry, args []string) (bool, bool, error) {
	slot, ok := c.slots[id]
	if !ok || slot.kind != CallbackMain || slot.main == nil {
		return false, false, nil
	}
	verdict, err := slot.main(reg, args)
	return verdict, true, err
}
