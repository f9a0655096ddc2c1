// token.go - Tokenizer and argument-stream state.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from the flagscanner Scanner: same longest-first prefix
// matching, generalized from "scan the whole slice into one []Token"
// to "tokenize one argument at a time with one-ahead lookahead",
// which is what the candidate generator in candidates.go needs.

package getopt

import "strings"

// Argument is the tokenized shape of one raw command-line argument:
// prefix, name, and an optional value, populated iff the raw token
// contained an unescaped "=". A nil Value means the token had none.
type Argument struct {
	Prefix string
	Name   string
	Value  *string
}

// HasValue reports whether the token carried an embedded "=value".
func (a Argument) HasValue() bool { return a.Value != nil }

// String reconstructs the original raw token. For any Argument
// produced by Tokenize, Prefix+Name+("="+Value if present) always
// equals the token it came from.
func (a Argument) String() string {
	if a.Value != nil {
		return a.Prefix + a.Name + "=" + *a.Value
	}
	return a.Prefix + a.Name
}

// Tokenize splits a raw argument into prefix/name/value parts. prefixes
// is matched longest-first so that, given {"-", "--"}, a token
// starting with "--" always reports prefix "--" rather than "-".
//
// raw == nil reports [ErrInvalidNextArgument] (there is no token to
// read). A raw token that matches no configured prefix, or whose
// matched prefix leaves an empty name behind — either nothing at all
// or an immediate "=" — reports [ErrInvalidOptionStr]; name is
// required and non-empty per spec §4.1.
func Tokenize(raw *string, prefixes []string) (*Argument, error) {
	if raw == nil {
		return nil, newError(ErrInvalidNextArgument)
	}
	s := *raw
	for _, p := range sortedPrefixes(prefixes) {
		if !strings.HasPrefix(s, p) {
			continue
		}
		left := s[len(p):]
		name, value := left, (*string)(nil)
		if idx := strings.IndexByte(left, '='); idx >= 0 {
			name = left[:idx]
			v := left[idx+1:]
			value = &v
		}
		if name == "" {
			return nil, newError(ErrInvalidOptionStr, s)
		}
		return &Argument{Prefix: p, Name: name, Value: value}, nil
	}
	return nil, newError(ErrInvalidOptionStr, s)
}

// ArgStream walks a slice of raw arguments with one-ahead lookahead,
// tracking (total, current index, current token, next token) as
// described in spec §3 "Argument-stream state".
type ArgStream struct {
	args    []string
	index   int
	current *string
	next    *string
}

// NewArgStream wraps args for iteration. args is not copied.
func NewArgStream(args []string) *ArgStream {
	return &ArgStream{args: args}
}

// Total returns the number of raw arguments in the stream.
func (s *ArgStream) Total() int { return len(s.args) }

// Index returns the current 0-based index into the stream.
func (s *ArgStream) Index() int { return s.index }

// ReachEnd reports whether every argument has been consumed.
func (s *ArgStream) ReachEnd() bool { return s.index >= len(s.args) }

// Fill loads Current/Next from the argument at the current index.
func (s *ArgStream) Fill() {
	if s.index < len(s.args) {
		v := s.args[s.index]
		s.current = &v
	} else {
		s.current = nil
	}
	if s.index+1 < len(s.args) {
		v := s.args[s.index+1]
		s.next = &v
	} else {
		s.next = nil
	}
}

// Current returns the last-filled current token, or nil at the end.
func (s *ArgStream) Current() *string { return s.current }

// Next returns the last-filled lookahead token, or nil if there is
// none.
func (s *ArgStream) Next() *string { return s.next }

// Skip advances the stream by one position.
func (s *ArgStream) Skip() { s.index++ }

// SkipN advances the stream by n positions.
func (s *ArgStream) SkipN(n int) { s.index += n }

// Reset rewinds the stream to its initial state.
func (s *ArgStream) Reset() {
	s.index = 0
	s.current = nil
	s.next = nil
}
