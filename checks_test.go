// checks_test.go - Tests for force-required check rules.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "testing"

func TestCheckOptionsForceRequired(t *testing.T) {
	e := NewEntry(1, TypeStr, "name", "--")
	e.SetOptional(false)

	if err := checkOptions([]*Entry{e}); err == nil {
		t.Fatalf("checkOptions() error = nil, want ErrOptionForceRequired")
	}

	e.SetValue(NewStrValue("x"))
	if err := checkOptions([]*Entry{e}); err != nil {
		t.Errorf("checkOptions() after assignment error = %v, want nil", err)
	}
}

func TestCheckOptionsSkipsNonOptionTypes(t *testing.T) {
	e := NewEntry(1, TypePos, "file", "")
	e.SetOptional(false)
	if err := checkOptions([]*Entry{e}); err != nil {
		t.Errorf("checkOptions() on Pos entry error = %v, want nil", err)
	}
}

func TestCheckNonOptionsCmdCarveOut(t *testing.T) {
	cmd := NewEntry(1, TypeCmd, "add", "")
	pos := NewEntry(2, TypePos, "path", "")
	pos.SetIndexPredicate(ForwardIndex(1))

	// Neither matched: group 1 has a Cmd plus another member, no value anywhere.
	if err := checkNonOptions([]*Entry{cmd, pos}); err == nil {
		t.Fatalf("checkNonOptions() error = nil, want ErrNonOptionForceRequired")
	}

	// Cmd itself matched: satisfies the group even though Pos is untouched.
	cmd.SetValue(NewStrValue("add"))
	if err := checkNonOptions([]*Entry{cmd, pos}); err != nil {
		t.Errorf("checkNonOptions() with matched Cmd error = %v, want nil", err)
	}
}

func TestCheckNonOptionsPureCmdGroupRequiresCmdMatch(t *testing.T) {
	cmd := NewEntry(1, TypeCmd, "add", "")
	if err := checkNonOptions([]*Entry{cmd}); err == nil {
		t.Fatalf("checkNonOptions() error = nil, want ErrNonOptionForceRequired")
	}
	cmd.SetValue(NewStrValue("add"))
	if err := checkNonOptions([]*Entry{cmd}); err != nil {
		t.Errorf("checkNonOptions() with matched Cmd error = %v, want nil", err)
	}
}

func TestCheckNonOptionsGroupSatisfiedByAnyMember(t *testing.T) {
	a := NewEntry(1, TypePos, "a", "")
	a.SetIndexPredicate(ForwardIndex(2))
	a.SetOptional(false)
	b := NewEntry(2, TypePos, "b", "")
	b.SetIndexPredicate(ForwardIndex(2))
	b.SetOptional(true)

	// Neither has a value, but b is optional, so the group of {a, b} passes.
	if err := checkNonOptions([]*Entry{a, b}); err != nil {
		t.Errorf("checkNonOptions() error = %v, want nil (b is optional)", err)
	}
}

func TestCheckNonOptionsGroupFailsWhenBothRequired(t *testing.T) {
	a := NewEntry(1, TypePos, "a", "")
	a.SetIndexPredicate(ForwardIndex(2))
	a.SetOptional(false)
	b := NewEntry(2, TypePos, "b", "")
	b.SetIndexPredicate(ForwardIndex(2))
	b.SetOptional(false)

	if err := checkNonOptions([]*Entry{a, b}); err == nil {
		t.Fatalf("checkNonOptions() error = nil, want ErrNonOptionForceRequired")
	}
}

func TestCheckNonOptionsIgnoresFreeFloatingPredicates(t *testing.T) {
	e := NewEntry(1, TypePos, "rest", "")
	e.SetIndexPredicate(AnywhereIndex())
	e.SetOptional(false)

	if err := checkNonOptions([]*Entry{e}); err != nil {
		t.Errorf("checkNonOptions() on Anywhere predicate error = %v, want nil", err)
	}
}
