// specparser.go - Parses declaration strings into a CreateInfo.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import (
	"sort"
	"strconv"
	"strings"
)

// CreateInfo is the normalized result of parsing a schema declaration
// string (§4.2). [Registry.AddOpt] turns one of these into a live
// [Entry].
type CreateInfo struct {
	TypeName     string
	Name         string
	Prefix       string
	Index        IndexPredicate
	Deactivate   bool
	Optional     bool
	Aliases      []Alias
	DefaultValue Value
	CallbackKind CallbackKind
	Hint         string
	Help         string
}

// sortedPrefixes returns a copy of prefixes, longest first, with ties
// broken alphabetically for determinism, and empty entries dropped
// (an empty prefix would trivially "match" everything).
func sortedPrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p != "" {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) == len(out[j]) {
			return out[i] < out[j]
		}
		return len(out[i]) > len(out[j])
	})
	return out
}

// ParseCreateInfo parses a declaration string of shape
// "[prefix]name[=type][!][/][@index]" against the given recognized
// prefixes, traversing PreCheck -> Prefix -> Name -> (Equal -> Type)
// -> (Optional|Deactivate) -> Index -> End as described in spec §4.2.
//
// Index forms:
//
//	@N        (N > 0)             -> Forward(N)
//	@0, @-0                        -> Anywhere
//	@-N       (N > 0)              -> Backward(N)
//	@[a,b,..] or @+[a,b,..]         -> List
//	@-[a,b,..]                      -> Except
func ParseCreateInfo(s string, prefixes []string) (*CreateInfo, error) {
	rest := s
	prefix := ""
	for _, p := range sortedPrefixes(prefixes) {
		if strings.HasPrefix(rest, p) {
			prefix = p
			rest = rest[len(p):]
			break
		}
	}

	name, rest := splitUntil(rest, "=!/@")
	if name == "" {
		return nil, newError(ErrNullOptionName)
	}

	typeName := ""
	if strings.HasPrefix(rest, "=") {
		typeName, rest = splitUntil(rest[1:], "!/@")
		if typeName == "" {
			return nil, newError(ErrNullOptionType)
		}
		for _, r := range typeName {
			if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
				return nil, newError(ErrInvalidOptionStr, s)
			}
		}
	}

	optional := true
	deactivate := false
	for len(rest) > 0 && (rest[0] == '!' || rest[0] == '/') {
		if rest[0] == '!' {
			optional = false
		} else {
			deactivate = true
		}
		rest = rest[1:]
	}

	index := NullIndexPredicate()
	if strings.HasPrefix(rest, "@") {
		idx, err := parseIndexExpr(rest[1:])
		if err != nil {
			return nil, err
		}
		index = idx
		rest = ""
	}

	if len(rest) > 0 {
		return nil, newError(ErrInvalidOptionStr, s)
	}
	if typeName == "" {
		return nil, newError(ErrNullOptionType)
	}

	return &CreateInfo{
		TypeName:     typeName,
		Name:         name,
		Prefix:       prefix,
		Index:        index,
		Deactivate:   deactivate,
		Optional:     optional,
		DefaultValue: NullValue(),
	}, nil
}

// splitUntil splits s at the first byte in cutset, returning the head
// and the remainder starting at the cut byte (or the whole string and
// "" if cutset never appears).
func splitUntil(s string, cutset string) (head, rest string) {
	i := strings.IndexAny(s, cutset)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func parseIndexExpr(s string) (IndexPredicate, error) {
	switch {
	case strings.HasPrefix(s, "+[") && strings.HasSuffix(s, "]"):
		nums, err := parseIntList(s[2 : len(s)-1])
		if err != nil {
			return IndexPredicate{}, err
		}
		return ListIndex(nums), nil
	case strings.HasPrefix(s, "-[") && strings.HasSuffix(s, "]"):
		nums, err := parseIntList(s[2 : len(s)-1])
		if err != nil {
			return IndexPredicate{}, err
		}
		return ExceptIndex(nums), nil
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		nums, err := parseIntList(s[1 : len(s)-1])
		if err != nil {
			return IndexPredicate{}, err
		}
		return ListIndex(nums), nil
	default:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return IndexPredicate{}, newError(ErrInvalidOptionStr, s)
		}
		switch {
		case n > 0:
			return ForwardIndex(n), nil
		case n < 0:
			return BackwardIndex(-n), nil
		default:
			return AnywhereIndex(), nil
		}
	}
}

func parseIntList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	nums := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, newError(ErrInvalidOptionStr, s)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
