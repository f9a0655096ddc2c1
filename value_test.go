// value_test.go - Tests for the Value sum type.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "testing"

func TestValueAccessors(t *testing.T) {
	if v := NewIntValue(42); v.Kind() != ValueInt {
		t.Errorf("NewIntValue Kind() = %v, want ValueInt", v.Kind())
	} else if n, ok := v.Int(); !ok || n != 42 {
		t.Errorf("Int() = (%d, %v), want (42, true)", n, ok)
	}

	if v := NewStrValue("hi"); v.Kind() != ValueStr {
		t.Errorf("NewStrValue Kind() = %v, want ValueStr", v.Kind())
	}

	if _, ok := NewBoolValue(true).Int(); ok {
		t.Errorf("Int() on a Bool value reported ok = true")
	}
}

func TestValueAppendArray(t *testing.T) {
	v := NullValue()
	v = v.AppendArray("a")
	v = v.AppendArray("b")

	arr, ok := v.Array()
	if !ok {
		t.Fatalf("Array() ok = false")
	}
	want := []string{"a", "b"}
	if len(arr) != len(want) {
		t.Fatalf("Array() = %v, want %v", arr, want)
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Errorf("Array()[%d] = %q, want %q", i, arr[i], want[i])
		}
	}
}

func TestValueClone(t *testing.T) {
	orig := NewArrayValue([]string{"x", "y"})
	clone := orig.Clone()
	clone = clone.AppendArray("z")

	origArr, _ := orig.Array()
	cloneArr, _ := clone.Array()
	if len(origArr) != 2 {
		t.Errorf("original array mutated by clone append, len = %d", len(origArr))
	}
	if len(cloneArr) != 3 {
		t.Errorf("clone array len = %d, want 3", len(cloneArr))
	}
}

func TestValueCloneOpaqueWithoutHelperDowngradesToNull(t *testing.T) {
	v := NewOpaqueValue(struct{ X int }{X: 1}, nil)
	if got := v.Clone().Kind(); got != ValueNull {
		t.Errorf("Clone() of helper-less Opaque = %v, want ValueNull", got)
	}
}

func TestValueCloneOpaqueWithHelper(t *testing.T) {
	v := NewOpaqueValue([]int{1, 2, 3}, func(a any) any {
		s := a.([]int)
		cp := make([]int, len(s))
		copy(cp, s)
		return cp
	})
	clone := v.Clone()
	if clone.Kind() != ValueOpaque {
		t.Fatalf("Clone() Kind() = %v, want ValueOpaque", clone.Kind())
	}
	orig, _ := v.Opaque()
	got, _ := clone.Opaque()
	origSlice, gotSlice := orig.([]int), got.([]int)
	origSlice[0] = 99
	if gotSlice[0] == 99 {
		t.Errorf("Clone() aliased the opaque payload")
	}
}
