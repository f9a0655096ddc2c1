// style.go - Candidate styles and positional index predicates.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

// Style identifies which family of [Context] a schema entry can be
// matched by. Bool entries accept Boolean and Multiple; the other
// option types (Int, Uint, Flt, Str, Array) accept only Argument; the
// non-option types each accept exactly one of Pos, Cmd, Main.
type Style int

const (
	StyleBoolean Style = iota
	StyleArgument
	StyleMultiple
	StylePos
	StyleCmd
	StyleMain
)

func (s Style) String() string {
	switch s {
	case StyleBoolean:
		return "Boolean"
	case StyleArgument:
		return "Argument"
	case StyleMultiple:
		return "Multiple"
	case StylePos:
		return "Pos"
	case StyleCmd:
		return "Cmd"
	case StyleMain:
		return "Main"
	default:
		return "Unknown"
	}
}

// IndexPredicateKind tags the alternative an [IndexPredicate] holds.
type IndexPredicateKind int

const (
	IndexNull IndexPredicateKind = iota
	IndexForward
	IndexBackward
	IndexAnywhere
	IndexList
	IndexExcept
)

// IndexPredicate decides whether a non-option entry may match at a
// given (total, current) 1-based position. It is meaningful only for
// Pos/Cmd entries; option entries and Main always use [IndexPredicate]'s
// zero value, which never matches (Main is special-cased by style
// instead; see [Entry.MatchIndex]).
type IndexPredicate struct {
	Kind IndexPredicateKind
	// N is the offset for Forward/Backward.
	N int64
	// Set is the absolute (1-based) position list for List/Except.
	Set []int64
}

// NullIndexPredicate never matches.
func NullIndexPredicate() IndexPredicate { return IndexPredicate{Kind: IndexNull} }

// ForwardIndex matches only when current == n (n counted from the
// front of the NOA list, 1-based).
func ForwardIndex(n int64) IndexPredicate { return IndexPredicate{Kind: IndexForward, N: n} }

// BackwardIndex matches only when current == total-n+1 (n counted from
// the back of the NOA list, 1-based).
func BackwardIndex(n int64) IndexPredicate { return IndexPredicate{Kind: IndexBackward, N: n} }

// AnywhereIndex matches any position.
func AnywhereIndex() IndexPredicate { return IndexPredicate{Kind: IndexAnywhere} }

// ListIndex matches any of the given absolute positions.
func ListIndex(positions []int64) IndexPredicate {
	return IndexPredicate{Kind: IndexList, Set: append([]int64(nil), positions...)}
}

// ExceptIndex matches any position not in the given set.
func ExceptIndex(positions []int64) IndexPredicate {
	return IndexPredicate{Kind: IndexExcept, Set: append([]int64(nil), positions...)}
}

// Match reports whether current (1-based) satisfies the predicate
// given total non-option arguments.
func (p IndexPredicate) Match(total, current int64) bool {
	switch p.Kind {
	case IndexForward:
		return current == p.N && p.N <= total
	case IndexBackward:
		real := total - p.N + 1
		return real > 0 && current == real
	case IndexAnywhere:
		return true
	case IndexList:
		for _, n := range p.Set {
			if n == current {
				return true
			}
		}
		return false
	case IndexExcept:
		for _, n := range p.Set {
			if n == current {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CalcIndex computes the absolute 1-based position this predicate
// names given total non-option arguments, folding Backward into an
// absolute offset. It returns ok=false when the predicate names no
// single fixed position (Anywhere, List, Except, Null).
func (p IndexPredicate) CalcIndex(total int64) (idx int64, ok bool) {
	switch p.Kind {
	case IndexForward:
		if p.N <= total {
			return p.N, true
		}
	case IndexBackward:
		real := total - p.N + 1
		if real > 0 {
			return real, true
		}
	}
	return 0, false
}
