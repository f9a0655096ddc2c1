// checks.go - Force-required checks run after each parse phase (§4.6).
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "strings"

// satisfied reports whether e would pass the force-required rule on
// its own: either it may be left unset, or it already carries a
// value.
func satisfied(e *Entry) bool {
	return e.Optional() || e.HasValue()
}

// checkOptions applies the force-required rule to every option
// variant entry (Bool/Int/Uint/Flt/Str/Array).
func checkOptions(entries []*Entry) error {
	for _, e := range entries {
		if e.Type().isOption() && !satisfied(e) {
			return newError(ErrOptionForceRequired, e.Prefix()+e.Name())
		}
	}
	return nil
}

// sentinelTotal stands in for the real NOA length when grouping
// Pos/Cmd entries by their declared slot: Forward(n) always resolves
// to n and Backward(n) resolves to sentinelTotal-n+1, so declared
// slots bucket together regardless of how many arguments the caller
// actually passed. This mirrors i64::MAX in the reference
// implementation's parser_default_nonopt_check.
const sentinelTotal = int64(1) << 48

// checkNonOptions applies the positional grouping rule (§4.6): Pos and
// Cmd entries are bucketed by computed absolute index, and each group
// must contain at least one satisfied member. Group 1 gets the Cmd
// carve-out described in §4.6. Entries whose index predicate names no
// fixed slot (Anywhere/List/Except/Null) do not participate in
// grouping and are never force-required by this pass.
func checkNonOptions(entries []*Entry) error {
	groups := make(map[int64][]*Entry)
	var order []int64
	for _, e := range entries {
		if e.Type() != TypePos && e.Type() != TypeCmd {
			continue
		}
		idx, ok := e.IndexPredicate().CalcIndex(sentinelTotal)
		if !ok {
			continue
		}
		if _, seen := groups[idx]; !seen {
			order = append(order, idx)
		}
		groups[idx] = append(groups[idx], e)
	}

	for _, idx := range order {
		members := groups[idx]
		var names []string
		valid := false

		if idx == 1 {
			cmdCount := 0
			cmdValid := false
			posValid := false
			forceValid := false
			for _, e := range members {
				ok := satisfied(e)
				switch e.Type() {
				case TypeCmd:
					cmdCount++
					cmdValid = cmdValid || ok
				case TypePos:
					posValid = posValid || ok
					if ok {
						forceValid = forceValid || e.HasValue()
					}
				}
				names = append(names, "`"+e.Prefix()+e.Name()+"`")
			}
			if cmdCount > 0 {
				if len(members) > cmdCount {
					valid = cmdValid || forceValid
				} else {
					valid = cmdValid
				}
			} else {
				valid = posValid
			}
		} else {
			for _, e := range members {
				valid = valid || satisfied(e)
				names = append(names, "`"+e.Prefix()+e.Name()+"`")
			}
		}

		if !valid {
			return newError(ErrNonOptionForceRequired, strings.Join(names, " or "))
		}
	}
	return nil
}
