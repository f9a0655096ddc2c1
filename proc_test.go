// proc_test.go - Tests for Proc and the publish/subscribe dispatcher.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "testing"

func TestProcIsMatchedVacuouslyTrueWithNoContexts(t *testing.T) {
	p := NewProc(0)
	if !p.IsMatched() {
		t.Errorf("IsMatched() on empty Proc = false, want true")
	}
}

func TestProcProcessStopsAtFirstMatchingEntry(t *testing.T) {
	verbose := NewEntry(1, TypeBool, "verbose", "--")
	other := NewEntry(2, TypeBool, "other", "--")
	// later would also match, but dispatch stops once the Proc completes.
	later := NewEntry(3, TypeBool, "verbose", "--")

	ctx := NewOptContext("--", "verbose", nil, StyleBoolean, false)
	proc := NewProc(0, ctx)

	reg := NewRegistry(nil, nil)
	matched, err := dispatch(proc, []*Entry{other, verbose, later}, reg.Callbacks(), reg, nil)
	if err != nil {
		t.Fatalf("dispatch() error: %v", err)
	}
	if !matched {
		t.Fatalf("dispatch() matched = false, want true")
	}
	if other.HasValue() {
		t.Errorf("unrelated entry was touched by dispatch()")
	}
	if later.HasValue() {
		t.Errorf("entry after the first match was touched by dispatch()")
	}
	cur, _ := verbose.Value().Bool()
	if !cur {
		t.Errorf("verbose entry value = %v, want true", cur)
	}
}

func TestProcBundleCompletesOnlyWhenEveryContextMatches(t *testing.T) {
	a := NewEntry(1, TypeBool, "a", "-")
	b := NewEntry(2, TypeBool, "b", "-")
	// c is never declared, so the third bundled-boolean context never matches.
	ctxA := NewOptContext("-", "a", nil, StyleMultiple, false)
	ctxB := NewOptContext("-", "b", nil, StyleMultiple, false)
	ctxC := NewOptContext("-", "c", nil, StyleMultiple, false)
	proc := NewProc(0, ctxA, ctxB, ctxC)

	reg := NewRegistry(nil, nil)
	matched, err := dispatch(proc, []*Entry{a, b}, reg.Callbacks(), reg, nil)
	if err != nil {
		t.Fatalf("dispatch() error: %v", err)
	}
	if matched {
		t.Errorf("dispatch() matched = true, want false (c never resolved)")
	}
	if proc.IsMatched() {
		t.Errorf("proc.IsMatched() = true, want false")
	}
}

func TestDispatchInvokesValueCallback(t *testing.T) {
	e := NewEntry(1, TypeBool, "v", "-")
	e.SetCallbackKind(CallbackValue)

	reg := NewRegistry(nil, nil)
	reg.AddOptRaw(e)

	called := false
	reg.Callbacks().SetValue(e.ID(), func(entry *Entry) (bool, error) {
		called = true
		cur, _ := entry.Value().Bool()
		if !cur {
			t.Errorf("callback saw value = %v, want true", cur)
		}
		return true, nil
	})

	ctx := NewOptContext("-", "v", nil, StyleBoolean, false)
	proc := NewProc(0, ctx)
	if _, err := dispatch(proc, []*Entry{e}, reg.Callbacks(), reg, nil); err != nil {
		t.Fatalf("dispatch() error: %v", err)
	}
	if !called {
		t.Errorf("Value callback was never invoked")
	}
}

func TestInvokeCallbackIndexStoresVerdict(t *testing.T) {
	e := NewEntry(1, TypePos, "file", "")
	e.SetIndexPredicate(ForwardIndex(1))
	e.SetCallbackKind(CallbackIndex)

	reg := NewRegistry(nil, nil)
	reg.AddOptRaw(e)
	reg.noa = []string{"a.txt"}

	reg.Callbacks().SetIndex(e.ID(), func(r *Registry, arg string) (bool, error) {
		return arg == "a.txt", nil
	})

	// ctx=nil exercises the fallback path: no NonOptContext is
	// available, so invokeCallback re-derives the slot from e's own
	// (Forward) index predicate.
	fired, err := invokeCallback(e, reg.Callbacks(), reg, nil)
	if err != nil {
		t.Fatalf("invokeCallback() error: %v", err)
	}
	if !fired {
		t.Fatalf("invokeCallback() fired = false, want true")
	}
	got, ok := e.Value().Bool()
	if !ok || !got {
		t.Errorf("entry value after Index callback = (%v, %v), want (true, true)", got, ok)
	}
}

// A Pos entry whose index predicate cannot resolve to a single fixed
// slot (Anywhere/List/Except) still fires its Index callback when
// invokeCallback is given the NonOptContext that actually matched it,
// rather than silently dropping it via the CalcIndex fallback.
func TestInvokeCallbackIndexUsesMatchedContextForUnfixedPredicate(t *testing.T) {
	e := NewEntry(1, TypePos, "file", "")
	e.SetIndexPredicate(AnywhereIndex())
	e.SetCallbackKind(CallbackIndex)

	reg := NewRegistry(nil, nil)
	reg.AddOptRaw(e)
	reg.noa = []string{"a.txt", "b.txt"}

	var sawArg string
	reg.Callbacks().SetIndex(e.ID(), func(r *Registry, arg string) (bool, error) {
		sawArg = arg
		return true, nil
	})

	ctx := NewNonOptContext("b.txt", StylePos, 2, 2)
	if ok := ctx.MatchOpt(e); !ok {
		t.Fatalf("MatchOpt() = false, want true")
	}
	if _, err := ctx.Process(e, nil); err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	fired, err := invokeCallback(e, reg.Callbacks(), reg, ctx)
	if err != nil {
		t.Fatalf("invokeCallback() error: %v", err)
	}
	if !fired {
		t.Fatalf("invokeCallback() fired = false, want true")
	}
	if sawArg != "b.txt" {
		t.Errorf("Index callback saw arg = %q, want %q", sawArg, "b.txt")
	}
}
