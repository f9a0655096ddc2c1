// registry.go - Registry (Set): owns schema entries, prefixes, and
// the id/callback registries they depend on.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import (
	"strings"

	"go.uber.org/zap"
)

// Registry owns every schema [Entry] for one parse, in insertion
// order, plus the recognized prefixes, the id generator, and the
// callback registry. It is the "Set" of spec §2/§4.4.
type Registry struct {
	entries   []*Entry
	byID      map[Identifier]*Entry
	prefixes  []string
	idGen     IDGenerator
	callbacks *CallbackRegistry
	noa       []string
	logger    *zap.Logger
}

// NewRegistry builds an empty Registry. idGen defaults to
// [NewSequentialIDGen] if nil; logger defaults to [zap.NewNop] if nil,
// matching the teacher's convention of an always-safe-to-call logger
// field rather than nil checks scattered through the hot path.
func NewRegistry(idGen IDGenerator, logger *zap.Logger) *Registry {
	if idGen == nil {
		idGen = NewSequentialIDGen()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		byID:      make(map[Identifier]*Entry),
		idGen:     idGen,
		callbacks: NewCallbackRegistry(),
		logger:    logger,
	}
}

// SetPrefix replaces the recognized prefix set, sorted longest-first.
func (r *Registry) SetPrefix(prefixes []string) {
	r.prefixes = sortedPrefixes(prefixes)
	r.logger.Debug("set prefix", zap.Strings("prefixes", r.prefixes))
}

// GetPrefix returns the recognized prefixes, longest-first.
func (r *Registry) GetPrefix() []string { return r.prefixes }

// AppendPrefix adds one prefix to the recognized set.
func (r *Registry) AppendPrefix(p string) {
	r.SetPrefix(append(append([]string(nil), r.prefixes...), p))
}

// Callbacks returns the registry's [CallbackRegistry].
func (r *Registry) Callbacks() *CallbackRegistry { return r.callbacks }

// NOA returns the non-option argument list accumulated by the last parse.
func (r *Registry) NOA() []string { return r.noa }

// Logger returns the registry's structured logger.
func (r *Registry) Logger() *zap.Logger { return r.logger }

// AddOpt parses spec and returns a [Commit] the caller can further
// configure (aliases, hint, help, ...) before finalizing with
// [Commit.Commit].
func (r *Registry) AddOpt(spec string) (*Commit, error) {
	ci, err := ParseCreateInfo(spec, r.prefixes)
	if err != nil {
		return nil, err
	}
	return &Commit{reg: r, ci: ci}, nil
}

// AddOptCI creates and registers an [Entry] directly from ci, skipping
// declaration-string parsing.
func (r *Registry) AddOptCI(ci *CreateInfo) (Identifier, error) {
	typ, ok := ParseEntryType(ci.TypeName)
	if !ok {
		return 0, newError(ErrInvalidOptionType, ci.TypeName)
	}
	id := r.idGen.NextID()
	e := NewEntry(id, typ, ci.Name, ci.Prefix)
	e.SetOptional(ci.Optional)
	if ci.Index.Kind != IndexNull {
		e.SetIndexPredicate(ci.Index)
	}
	if ci.Deactivate {
		if err := e.SetDeactivateStyle(true); err != nil {
			return 0, err
		}
	}
	for _, a := range ci.Aliases {
		e.AddAlias(a.Prefix, a.Name)
	}
	if ci.DefaultValue.Kind() != ValueNull {
		e.SetDefaultValue(ci.DefaultValue)
	}
	if ci.CallbackKind != CallbackNone {
		e.SetCallbackKind(ci.CallbackKind)
	}
	e.SetHint(ci.Hint)
	e.SetHelp(ci.Help)
	r.addEntry(e)
	r.logger.Debug("added option", zap.Uint64("id", uint64(id)), zap.String("name", ci.Name), zap.String("type", ci.TypeName))
	return id, nil
}

// AddOptRaw registers a fully-built [Entry], reassigning its id to the
// next one minted by the registry's generator.
func (r *Registry) AddOptRaw(e *Entry) Identifier {
	id := r.idGen.NextID()
	e.id = id
	r.addEntry(e)
	return id
}

func (r *Registry) addEntry(e *Entry) {
	r.entries = append(r.entries, e)
	r.byID[e.ID()] = e
}

// GetOpt looks up an entry by identifier.
func (r *Registry) GetOpt(id Identifier) (*Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns every registered entry in insertion order.
func (r *Registry) Entries() []*Entry { return r.entries }

// Filter parses spec as a partial-match declaration string and
// returns a [Filter] builder over this registry.
func (r *Registry) Filter(spec string) (*Filter, error) {
	fi, err := ParseFilterInfo(spec, r.prefixes)
	if err != nil {
		return nil, err
	}
	return &Filter{reg: r, fi: fi}, nil
}

// Find returns the first entry matching fi, in insertion order.
func (r *Registry) Find(fi *FilterInfo) (*Entry, bool) {
	for _, e := range r.entries {
		if fi.MatchOpt(e) {
			return e, true
		}
	}
	return nil, false
}

// FindAll returns every entry matching fi, in insertion order.
func (r *Registry) FindAll(fi *FilterInfo) []*Entry {
	var out []*Entry
	for _, e := range r.entries {
		if fi.MatchOpt(e) {
			out = append(out, e)
		}
	}
	return out
}

// CheckOptions applies the §4.6 force-required rule to option variants.
func (r *Registry) CheckOptions() error { return checkOptions(r.entries) }

// CheckNonOptions applies the §4.6 positional grouping rule.
func (r *Registry) CheckNonOptions() error { return checkNonOptions(r.entries) }

// Reset restores every entry to its default value and clears the NOA
// list accumulated by the last parse. The id generator and registered
// callbacks are left untouched, matching DefaultSet::reset.
func (r *Registry) Reset() {
	for _, e := range r.entries {
		e.ResetValue()
	}
	r.noa = nil
	r.logger.Debug("registry reset")
}

// Commit builds one [Entry] from a parsed declaration string, letting
// the caller attach aliases/hint/help/callback metadata before
// finalizing the entry with [Commit.Commit].
type Commit struct {
	reg *Registry
	ci  *CreateInfo
}

// SetOptional overrides the declaration string's default optionality.
func (c *Commit) SetOptional(v bool) *Commit { c.ci.Optional = v; return c }

// SetDeactivateStyle overrides the declaration string's deactivate flag.
func (c *Commit) SetDeactivateStyle(v bool) *Commit { c.ci.Deactivate = v; return c }

// SetIndex overrides the declaration string's index predicate.
func (c *Commit) SetIndex(p IndexPredicate) *Commit { c.ci.Index = p; return c }

// AddAlias appends an alias the eventual entry will also answer to.
func (c *Commit) AddAlias(prefix, name string) *Commit {
	c.ci.Aliases = append(c.ci.Aliases, Alias{Prefix: prefix, Name: name})
	return c
}

// RemoveAlias drops the first pending alias equal to (prefix, name).
func (c *Commit) RemoveAlias(prefix, name string) *Commit {
	for i, a := range c.ci.Aliases {
		if a.Prefix == prefix && a.Name == name {
			c.ci.Aliases = append(c.ci.Aliases[:i], c.ci.Aliases[i+1:]...)
			break
		}
	}
	return c
}

// ClearAlias drops every pending alias.
func (c *Commit) ClearAlias() *Commit { c.ci.Aliases = nil; return c }

// SetDefaultValue sets the entry's default (and initial) value.
func (c *Commit) SetDefaultValue(v Value) *Commit { c.ci.DefaultValue = v; return c }

// SetCallbackKind declares which callback arity the entry expects.
func (c *Commit) SetCallbackKind(k CallbackKind) *Commit { c.ci.CallbackKind = k; return c }

// SetHint attaches free-form hint metadata to the eventual entry.
func (c *Commit) SetHint(s string) *Commit { c.ci.Hint = s; return c }

// SetHelp attaches free-form help text to the eventual entry.
func (c *Commit) SetHelp(s string) *Commit { c.ci.Help = s; return c }

// Commit finalizes the pending [CreateInfo] into a registered [Entry].
func (c *Commit) Commit() (Identifier, error) { return c.reg.AddOptCI(c.ci) }

// FilterInfo is the partial-match counterpart of [CreateInfo]: every
// field is optional, and [FilterInfo.MatchOpt] treats an unset field
// as "matches anything".
type FilterInfo struct {
	TypeName      string
	HasType       bool
	Name          string
	HasName       bool
	Prefix        string
	HasPrefix     bool
	Optional      bool
	HasOptional   bool
	Deactivate    bool
	HasDeactivate bool
	Index         IndexPredicate
	HasIndex      bool
}

// ParseFilterInfo parses a declaration-shaped string the same way
// [ParseCreateInfo] does, except every piece is optional: a bare
// "help" matches by name only, "=str" matches by type only, and so on.
func ParseFilterInfo(s string, prefixes []string) (*FilterInfo, error) {
	fi := &FilterInfo{Index: NullIndexPredicate()}
	rest := s
	for _, p := range sortedPrefixes(prefixes) {
		if p != "" && strings.HasPrefix(rest, p) {
			fi.Prefix, fi.HasPrefix = p, true
			rest = rest[len(p):]
			break
		}
	}

	name, rest := splitUntil(rest, "=!/@")
	if name != "" {
		fi.Name, fi.HasName = name, true
	}

	if strings.HasPrefix(rest, "=") {
		typeName, r2 := splitUntil(rest[1:], "!/@")
		if typeName == "" {
			return nil, newError(ErrNullOptionType)
		}
		fi.TypeName, fi.HasType = typeName, true
		rest = r2
	}

	for len(rest) > 0 && (rest[0] == '!' || rest[0] == '/') {
		if rest[0] == '!' {
			fi.Optional, fi.HasOptional = false, true
		} else {
			fi.Deactivate, fi.HasDeactivate = true, true
		}
		rest = rest[1:]
	}

	if strings.HasPrefix(rest, "@") {
		idx, err := parseIndexExpr(rest[1:])
		if err != nil {
			return nil, err
		}
		fi.Index, fi.HasIndex = idx, true
		rest = ""
	}

	if len(rest) > 0 {
		return nil, newError(ErrInvalidOptionStr, s)
	}
	return fi, nil
}

// MatchOpt reports whether e satisfies every field fi has set.
func (fi *FilterInfo) MatchOpt(e *Entry) bool {
	if fi.HasType && fi.TypeName != e.Type().String() {
		return false
	}
	if fi.HasPrefix {
		ok := e.MatchPrefix(fi.Prefix)
		for _, a := range e.Aliases() {
			ok = ok || a.Prefix == fi.Prefix
		}
		if !ok {
			return false
		}
	}
	if fi.HasName {
		ok := e.MatchName(fi.Name)
		for _, a := range e.Aliases() {
			ok = ok || a.Name == fi.Name
		}
		if !ok {
			return false
		}
	}
	if fi.HasOptional && fi.Optional != e.Optional() {
		return false
	}
	if fi.HasDeactivate && fi.Deactivate != e.DeactivateStyle() {
		return false
	}
	if fi.HasIndex && !indexPredicateEqual(fi.Index, e.IndexPredicate()) {
		return false
	}
	return true
}

// indexPredicateEqual compares two IndexPredicate values field by
// field: their Set slice makes them non-comparable with ==.
func indexPredicateEqual(a, b IndexPredicate) bool {
	if a.Kind != b.Kind || a.N != b.N || len(a.Set) != len(b.Set) {
		return false
	}
	for i := range a.Set {
		if a.Set[i] != b.Set[i] {
			return false
		}
	}
	return true
}

// Filter is a read/write query over a [Registry]'s entries, built
// from a partial declaration string. Unlike the reference
// implementation, a single type covers both read-only and mutating
// use: [Entry] is already accessed through a pointer, so there is no
// borrow distinction for Go to encode.
type Filter struct {
	reg *Registry
	fi  *FilterInfo
}

// SetOptional narrows the filter to entries with the given optionality.
func (f *Filter) SetOptional(v bool) *Filter { f.fi.Optional, f.fi.HasOptional = v, true; return f }

// SetDeactivateStyle narrows the filter to entries with the given
// deactivate-style flag.
func (f *Filter) SetDeactivateStyle(v bool) *Filter {
	f.fi.Deactivate, f.fi.HasDeactivate = v, true
	return f
}

// SetTypeName narrows the filter to entries of the given declared type.
func (f *Filter) SetTypeName(name string) *Filter { f.fi.TypeName, f.fi.HasType = name, true; return f }

// SetName narrows the filter to entries with the given name (or alias).
func (f *Filter) SetName(name string) *Filter { f.fi.Name, f.fi.HasName = name, true; return f }

// SetPrefix narrows the filter to entries with the given prefix (or alias).
func (f *Filter) SetPrefix(prefix string) *Filter { f.fi.Prefix, f.fi.HasPrefix = prefix, true; return f }

// SetIndex narrows the filter to entries with exactly this index predicate.
func (f *Filter) SetIndex(p IndexPredicate) *Filter { f.fi.Index, f.fi.HasIndex = p, true; return f }

// Find returns the first matching entry.
func (f *Filter) Find() (*Entry, bool) { return f.reg.Find(f.fi) }

// FindAll returns every matching entry.
func (f *Filter) FindAll() []*Entry { return f.reg.FindAll(f.fi) }
