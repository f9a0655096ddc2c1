// candidates.go - Candidate Generator: enumerates Context
// interpretations of one tokenized argument (spec §4.3).
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

// genStyle tags one of the five option generation styles. optGenOrder
// fixes the order they are tried in for a single token: the parser
// tries optGenOrder[0]'s Contexts first and only moves on to the next
// genStyle if the previous one's Proc failed to match every one of
// its Contexts against a subscribed entry.
type genStyle int

const (
	genEqualWithValue genStyle = iota
	genArgument
	genEmbeddedValue
	genMultipleOption
	genBoolean
)

// optGenOrder is the fixed try-order from spec §4.3.
var optGenOrder = [...]genStyle{
	genEqualWithValue,
	genArgument,
	genEmbeddedValue,
	genMultipleOption,
	genBoolean,
}

// genOptContexts builds the Contexts genStyle would generate for arg,
// given next (the stream's lookahead token, used by genArgument).
// delay selects [DelayContext] over [OptContext]; the identity and
// style tests are identical between the two, only Process differs.
// A nil/empty return means this style is not present for arg.
func genOptContexts(g genStyle, arg *Argument, next *string, delay bool) []Context {
	build := func(prefix, name string, value *string, style Style, skipNext bool) Context {
		if delay {
			return NewDelayContext(prefix, name, value, style, skipNext)
		}
		return NewOptContext(prefix, name, value, style, skipNext)
	}

	switch g {
	case genEqualWithValue:
		if arg.Value == nil {
			return nil
		}
		return []Context{build(arg.Prefix, arg.Name, arg.Value, StyleArgument, false)}

	case genArgument:
		if arg.Value != nil {
			return nil
		}
		return []Context{build(arg.Prefix, arg.Name, next, StyleArgument, true)}

	case genEmbeddedValue:
		if arg.Value != nil || len(arg.Name) < 2 {
			return nil
		}
		head, tail := arg.Name[:1], arg.Name[1:]
		return []Context{build(arg.Prefix, head, &tail, StyleArgument, false)}

	case genMultipleOption:
		if arg.Value != nil || len(arg.Name) <= 1 {
			return nil
		}
		out := make([]Context, 0, len(arg.Name))
		for _, r := range arg.Name {
			name := string(r)
			out = append(out, build(arg.Prefix, name, nil, StyleMultiple, false))
		}
		return out

	case genBoolean:
		if arg.Value != nil {
			return nil
		}
		return []Context{build(arg.Prefix, arg.Name, nil, StyleBoolean, false)}

	default:
		return nil
	}
}

// genCmdContext builds the single Cmd candidate for the first NOA
// entry.
func genCmdContext(value string, total int64) Context {
	return NewNonOptContext(value, StyleCmd, total, 1)
}

// genPosContext builds the Pos candidate for the NOA entry at the
// given 1-based position.
func genPosContext(value string, total, current int64) Context {
	return NewNonOptContext(value, StylePos, total, current)
}

// genMainContext builds the single Main candidate, which matches
// unconditionally regardless of position.
func genMainContext() Context {
	return NewNonOptContext("", StyleMain, 0, 0)
}
