// context.go - Candidate interpretations of one tokenized argument.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

// ValueKeeper holds the side map of coerced values the delayed
// strategy stashes during option dispatch, to be drained after the
// positional phase (spec §4.5 "Delayed").
type ValueKeeper struct {
	order  []Identifier
	values map[Identifier]Value
}

// NewValueKeeper returns an empty keeper.
func NewValueKeeper() *ValueKeeper {
	return &ValueKeeper{values: make(map[Identifier]Value)}
}

// Set stashes v for id, recording insertion order the first time id
// is seen.
func (k *ValueKeeper) Set(id Identifier, v Value) {
	if _, ok := k.values[id]; !ok {
		k.order = append(k.order, id)
	}
	k.values[id] = v
}

// Drain returns the stashed (id, value) pairs in the order the ids
// were first stashed, that is, the order their tokens matched.
func (k *ValueKeeper) Drain() []struct {
	ID    Identifier
	Value Value
} {
	out := make([]struct {
		ID    Identifier
		Value Value
	}, 0, len(k.order))
	for _, id := range k.order {
		out = append(out, struct {
			ID    Identifier
			Value Value
		}{ID: id, Value: k.values[id]})
	}
	return out
}

// Context is one candidate interpretation of a tokenized argument: a
// tentative (prefix, name, next-token, style, consume-next-flag). The
// dispatcher tests every not-yet-matched Context in a [Proc] against
// every subscribed [Entry] in turn.
type Context interface {
	// MatchOpt reports whether e is a valid target for this context:
	// style-test AND identity-test (name+prefix or alias for options,
	// index and name for non-options) must both hold.
	MatchOpt(e *Entry) bool
	// Process applies this context to e: coerces and assigns the
	// value and marks e pending-invocation, except for a delay
	// context, which only puts the coerced value into keeper.
	// Returns true on success.
	Process(e *Entry, keeper *ValueKeeper) (bool, error)
	// NeedArgument reports whether a successful match consumes the
	// stream's next raw token.
	NeedArgument() bool
	// IsMatched reports whether this context has already matched an
	// entry.
	IsMatched() bool
	// Style returns the style this context was generated under.
	Style() Style
}

// OptContext is the [Context] for an option-style candidate: it
// matches by (style ∧ ((name∧prefix) ∨ alias)) and, on match, assigns
// the coerced value immediately and sets pending-invocation.
type OptContext struct {
	prefix       string
	name         string
	nextArgument *string
	style        Style
	skipNextArg  bool
	matched      bool
}

var _ Context = (*OptContext)(nil)

// NewOptContext builds an OptContext. nextArgument is the value this
// context would assign if it matches (may be nil for Boolean/Multiple
// styles).
func NewOptContext(prefix, name string, nextArgument *string, style Style, skipNextArg bool) *OptContext {
	return &OptContext{prefix: prefix, name: name, nextArgument: nextArgument, style: style, skipNextArg: skipNextArg}
}

// MatchOpt implements [Context].
func (c *OptContext) MatchOpt(e *Entry) bool {
	return e.IsStyle(c.style) &&
		((e.MatchName(c.name) && e.MatchPrefix(c.prefix)) || e.MatchAlias(c.prefix, c.name))
}

// Process implements [Context].
func (c *OptContext) Process(e *Entry, _ *ValueKeeper) (bool, error) {
	c.matched = true
	raw := ""
	if e.IsStyle(StyleArgument) && c.nextArgument == nil {
		return false, newError(ErrArgumentRequired, c.prefix+c.name)
	}
	if c.nextArgument != nil {
		raw = *c.nextArgument
	}
	v, err := e.ParseValue(raw)
	if err != nil {
		return false, err
	}
	e.SetValue(v)
	e.SetNeedInvoke(true)
	return true, nil
}

// NeedArgument implements [Context].
func (c *OptContext) NeedArgument() bool { return c.skipNextArg }

// IsMatched implements [Context].
func (c *OptContext) IsMatched() bool { return c.matched }

// Style implements [Context].
func (c *OptContext) Style() Style { return c.style }

// DelayContext is the delayed-strategy counterpart of [OptContext]: it
// tests identity exactly the same way, but on match it stashes the
// coerced value into the shared [ValueKeeper] instead of assigning it
// to the entry, and leaves the entry's Value callback un-fired until
// the Parser drains the keeper after the positional phase.
type DelayContext struct {
	prefix       string
	name         string
	nextArgument *string
	style        Style
	skipNextArg  bool
	matched      bool
}

var _ Context = (*DelayContext)(nil)

// NewDelayContext builds a DelayContext.
func NewDelayContext(prefix, name string, nextArgument *string, style Style, skipNextArg bool) *DelayContext {
	return &DelayContext{prefix: prefix, name: name, nextArgument: nextArgument, style: style, skipNextArg: skipNextArg}
}

// MatchOpt implements [Context].
func (c *DelayContext) MatchOpt(e *Entry) bool {
	return e.IsStyle(c.style) &&
		((e.MatchName(c.name) && e.MatchPrefix(c.prefix)) || e.MatchAlias(c.prefix, c.name))
}

// Process implements [Context]. It still coerces the value eagerly (a
// malformed value must fail during option dispatch, not silently
// later), but only stashes it in keeper; e's stored value and its
// Value callback are both untouched until the Parser drains keeper.
// Unlike OptContext, this deliberately leaves e's pending-invocation
// flag alone: the dispatcher would otherwise fire the Value callback
// immediately, defeating the whole point of deferring it.
func (c *DelayContext) Process(e *Entry, keeper *ValueKeeper) (bool, error) {
	c.matched = true
	if e.IsStyle(StyleArgument) && c.nextArgument == nil {
		return false, newError(ErrArgumentRequired, c.prefix+c.name)
	}
	raw := ""
	if c.nextArgument != nil {
		raw = *c.nextArgument
	}
	v, err := e.ParseValue(raw)
	if err != nil {
		return false, err
	}
	keeper.Set(e.ID(), v)
	return true, nil
}

// NeedArgument implements [Context].
func (c *DelayContext) NeedArgument() bool { return c.skipNextArg }

// IsMatched implements [Context].
func (c *DelayContext) IsMatched() bool { return c.matched }

// Style implements [Context].
func (c *DelayContext) Style() Style { return c.style }

// NonOptContext is the [Context] for a positional candidate: it
// matches by (style ∧ index_predicate(total,current) ∧ name-match)
// and, on match,
// assigns the NOA string as the entry's value and sets
// pending-invocation. Non-option contexts always assign immediately,
// in both parser strategies: only option dispatch is ever delayed.
type NonOptContext struct {
	value   string
	style   Style
	total   int64
	current int64
	matched bool
}

var _ Context = (*NonOptContext)(nil)

// NewNonOptContext builds a NonOptContext for the NOA string value at
// 1-based position current out of total.
func NewNonOptContext(value string, style Style, total, current int64) *NonOptContext {
	return &NonOptContext{value: value, style: style, total: total, current: current}
}

// MatchOpt implements [Context]. Per spec §3, a non-option context
// matches by (style ∧ index_predicate(total,current) ∧ name-match):
// the name test is [Entry.MatchNonOptName], which only constrains Cmd
// (the NOA token must equal its declared name); Pos and Main accept
// any token.
func (c *NonOptContext) MatchOpt(e *Entry) bool {
	return e.IsStyle(c.style) && e.MatchIndex(c.total, c.current) && e.MatchNonOptName(c.value)
}

// Process implements [Context].
func (c *NonOptContext) Process(e *Entry, _ *ValueKeeper) (bool, error) {
	c.matched = true
	v, err := e.ParseValue(c.value)
	if err != nil {
		return false, err
	}
	e.SetValue(v)
	e.SetNeedInvoke(true)
	return true, nil
}

// NeedArgument implements [Context]. Non-option contexts never consume
// the next raw token; the entire stream is already tokenized by the
// time the positional phase runs.
func (c *NonOptContext) NeedArgument() bool { return false }

// IsMatched implements [Context].
func (c *NonOptContext) IsMatched() bool { return c.matched }

// Style implements [Context].
func (c *NonOptContext) Style() Style { return c.style }

// Current returns the 1-based position this context was generated at.
func (c *NonOptContext) Current() int64 { return c.current }
