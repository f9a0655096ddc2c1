// context_test.go - Tests for Context implementations.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "testing"

func TestOptContextMatchAndProcess(t *testing.T) {
	e := NewEntry(1, TypeInt, "count", "--")
	ctx := NewOptContext("--", "count", strp("5"), StyleArgument, true)

	if !ctx.MatchOpt(e) {
		t.Fatalf("MatchOpt() = false, want true")
	}

	ok, err := ctx.Process(e, nil)
	if err != nil || !ok {
		t.Fatalf("Process() = (%v, %v), want (true, nil)", ok, err)
	}
	if !ctx.IsMatched() {
		t.Errorf("IsMatched() = false after a successful Process()")
	}
	got, _ := e.Value().Int()
	if got != 5 {
		t.Errorf("entry value = %d, want 5", got)
	}
	if !e.NeedInvoke() {
		t.Errorf("NeedInvoke() = false, want true")
	}
}

func TestOptContextMissingNextArgumentIsHardError(t *testing.T) {
	e := NewEntry(1, TypeInt, "count", "--")
	ctx := NewOptContext("--", "count", nil, StyleArgument, true)

	_, err := ctx.Process(e, nil)
	if err == nil {
		t.Fatalf("Process() error = nil, want ErrArgumentRequired")
	}
	if kindErr := err.(*Error); kindErr.Kind != ErrArgumentRequired {
		t.Errorf("error kind = %v, want ErrArgumentRequired", kindErr.Kind)
	}
}

func TestOptContextCoercionFailureIsHardError(t *testing.T) {
	e := NewEntry(1, TypeInt, "count", "--")
	ctx := NewOptContext("--", "count", strp("notanint"), StyleArgument, true)

	_, err := ctx.Process(e, nil)
	if err == nil {
		t.Fatalf("Process() error = nil, want ErrInvalidOptionValue")
	}
	if kindErr := err.(*Error); kindErr.Kind != ErrInvalidOptionValue {
		t.Errorf("error kind = %v, want ErrInvalidOptionValue", kindErr.Kind)
	}
}

func TestDelayContextStashesValueInsteadOfAssigning(t *testing.T) {
	e := NewEntry(1, TypeInt, "count", "--")
	ctx := NewDelayContext("--", "count", strp("5"), StyleArgument, true)
	keeper := NewValueKeeper()

	ok, err := ctx.Process(e, keeper)
	if err != nil || !ok {
		t.Fatalf("Process() = (%v, %v), want (true, nil)", ok, err)
	}
	if e.Value().Kind() != ValueNull {
		t.Errorf("entry value = %v, want untouched (ValueNull)", e.Value().Kind())
	}

	drained := keeper.Drain()
	if len(drained) != 1 {
		t.Fatalf("Drain() returned %d pairs, want 1", len(drained))
	}
	got, _ := drained[0].Value.Int()
	if drained[0].ID != e.ID() || got != 5 {
		t.Errorf("drained pair = %+v, want id=%d value=5", drained[0], e.ID())
	}
}

func TestNonOptContextMatchAndProcess(t *testing.T) {
	e := NewEntry(1, TypePos, "file", "")
	e.SetIndexPredicate(ForwardIndex(1))

	ctx := NewNonOptContext("a.txt", StylePos, 2, 1)
	if !ctx.MatchOpt(e) {
		t.Fatalf("MatchOpt() = false, want true")
	}

	ok, err := ctx.Process(e, nil)
	if err != nil || !ok {
		t.Fatalf("Process() = (%v, %v), want (true, nil)", ok, err)
	}
	got, _ := e.Value().Str()
	if got != "a.txt" {
		t.Errorf("entry value = %q, want %q", got, "a.txt")
	}
}

func TestValueKeeperDrainOrder(t *testing.T) {
	k := NewValueKeeper()
	k.Set(Identifier(2), NewIntValue(2))
	k.Set(Identifier(1), NewIntValue(1))
	k.Set(Identifier(2), NewIntValue(22)) // overwrite, same insertion slot

	drained := k.Drain()
	if len(drained) != 2 {
		t.Fatalf("Drain() returned %d pairs, want 2", len(drained))
	}
	if drained[0].ID != Identifier(2) || drained[1].ID != Identifier(1) {
		t.Errorf("Drain() order = %v, want [2, 1] (first-seen order)", drained)
	}
	got, _ := drained[0].Value.Int()
	if got != 22 {
		t.Errorf("Drain()[0] value = %d, want 22 (last Set wins)", got)
	}
}
