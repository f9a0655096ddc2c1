// proc.go - Proc: the dispatch bundle for one token or NOA position.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

// Proc bundles every Context generated for one token (or one NOA
// position) and drives matching against subscribed entries, one at a
// time, in the order [dispatch] presents them.
type Proc struct {
	id           Identifier
	contexts     []Context
	needArgument bool
}

// NewProc mints a Proc wrapping ctxs under id.
func NewProc(id Identifier, ctxs ...Context) *Proc {
	return &Proc{id: id, contexts: ctxs}
}

// ID returns the Proc's identifier.
func (p *Proc) ID() Identifier { return p.id }

// IsMatched reports whether every Context in the Proc has matched an
// entry. A Proc with zero Contexts is vacuously matched.
func (p *Proc) IsMatched() bool {
	for _, c := range p.contexts {
		if !c.IsMatched() {
			return false
		}
	}
	return true
}

// NeedArgument reports whether the match that completed this Proc
// consumed the stream's next raw token.
func (p *Proc) NeedArgument() bool { return p.needArgument }

// process tries every not-yet-matched Context against e, applying and
// marking matched the ones whose identity+style test succeeds.
// Returns whether at least one Context matched e during this call,
// and that Context (so the caller can recover the exact position a
// NonOptContext matched at, per the original's matched_index).
func (p *Proc) process(e *Entry, keeper *ValueKeeper) (bool, Context, error) {
	if p.IsMatched() {
		return true, nil, nil
	}
	matched := false
	var matchedCtx Context
	p.needArgument = false
	for _, c := range p.contexts {
		if c.IsMatched() || !c.MatchOpt(e) {
			continue
		}
		ok, err := c.Process(e, keeper)
		if err != nil {
			return false, nil, err
		}
		if ok {
			p.needArgument = p.needArgument || c.NeedArgument()
			matched = true
			matchedCtx = c
		}
	}
	return matched, matchedCtx, nil
}

// dispatch publishes proc against every entry in subs, in order,
// invoking cb's registered callback as soon as an entry's
// pending-invocation flag is set. It stops early once proc.IsMatched.
// Returns whether the Proc ended up fully matched.
func dispatch(proc *Proc, subs []*Entry, cb *CallbackRegistry, reg *Registry, keeper *ValueKeeper) (bool, error) {
	for _, e := range subs {
		res, matchedCtx, err := proc.process(e, keeper)
		if err != nil {
			return false, err
		}
		if res && e.NeedInvoke() {
			e.SetNeedInvoke(false)
			if _, err := invokeCallback(e, cb, reg, matchedCtx); err != nil {
				return false, err
			}
		}
		if proc.IsMatched() {
			break
		}
	}
	return proc.IsMatched(), nil
}

// invokeCallback fires whichever callback kind e declares, storing an
// Index/Main verdict back into e's value as a bool per spec §4.4.
// Value callbacks never write back: the entry's value was already
// assigned by the Context that matched it. ctx is the Context that
// just matched e, if any; for CallbackIndex it is used to recover the
// exact 1-based NOA position the entry matched at (the original's
// matched_index, ctx.rs:226), since re-deriving the slot from the
// entry's own index predicate silently drops any Anywhere/List/Except
// Pos entry (their predicate names no single fixed position).
func invokeCallback(e *Entry, cb *CallbackRegistry, reg *Registry, ctx Context) (bool, error) {
	switch e.CallbackKind() {
	case CallbackValue:
		return cb.CallValue(e)
	case CallbackIndex:
		idx, ok := matchedIndex(ctx, e, reg)
		if !ok {
			return false, nil
		}
		verdict, fired, err := cb.CallIndex(e.ID(), reg, reg.noa[idx-1])
		if err != nil {
			return false, err
		}
		if fired {
			e.SetValue(NewBoolValue(verdict))
		}
		return fired, nil
	case CallbackMain:
		verdict, fired, err := cb.CallMain(e.ID(), reg, reg.noa)
		if err != nil {
			return false, err
		}
		if fired {
			e.SetValue(NewBoolValue(verdict))
		}
		return fired, nil
	default:
		return false, nil
	}
}

// matchedIndex resolves the 1-based NOA slot a CallbackIndex entry
// should be invoked against: the position ctx actually matched at,
// when ctx is the [NonOptContext] that just matched e, falling back
// to the entry's own index predicate (only ever resolvable for
// Forward/Backward) when no such context is available.
func matchedIndex(ctx Context, e *Entry, reg *Registry) (int64, bool) {
	if nc, ok := ctx.(*NonOptContext); ok {
		idx := nc.Current()
		return idx, idx >= 1 && idx <= int64(len(reg.noa))
	}
	idx, ok := e.IndexPredicate().CalcIndex(int64(len(reg.noa)))
	return idx, ok
}
