// token_test.go - Tests for the tokenizer and argument stream.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "testing"

func strp(s string) *string { return &s }

func TestTokenize(t *testing.T) {
	prefixes := []string{"-", "--"}

	tests := []struct {
		name    string
		raw     *string
		wantErr ErrorKind
		want    Argument
	}{
		{
			name: "long option with value",
			raw:  strp("--name=value"),
			want: Argument{Prefix: "--", Name: "name", Value: strp("value")},
		},
		{
			name: "short option without value",
			raw:  strp("-v"),
			want: Argument{Prefix: "-", Name: "v"},
		},
		{
			name: "longest prefix wins",
			raw:  strp("--verbose"),
			want: Argument{Prefix: "--", Name: "verbose"},
		},
		{
			name: "embedded value with empty string",
			raw:  strp("-k="),
			want: Argument{Prefix: "-", Name: "k", Value: strp("")},
		},
		{
			name:    "nil raw reports InvalidNextArgument",
			raw:     nil,
			wantErr: ErrInvalidNextArgument,
		},
		{
			name:    "no matching prefix",
			raw:     strp("file.txt"),
			wantErr: ErrInvalidOptionStr,
		},
		{
			name:    "prefix with nothing left",
			raw:     strp("-"),
			wantErr: ErrInvalidOptionStr,
		},
		{
			name:    "empty name before equals",
			raw:     strp("--=v"),
			wantErr: ErrInvalidOptionStr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.raw, prefixes)
			if tt.wantErr != 0 || err != nil {
				var kindErr *Error
				if err == nil {
					t.Fatalf("Tokenize() error = nil, want kind %v", tt.wantErr)
				}
				kindErr, ok := err.(*Error)
				if !ok {
					t.Fatalf("Tokenize() error type = %T, want *Error", err)
				}
				if kindErr.Kind != tt.wantErr {
					t.Errorf("Tokenize() error kind = %v, want %v", kindErr.Kind, tt.wantErr)
				}
				return
			}
			if got.Prefix != tt.want.Prefix || got.Name != tt.want.Name {
				t.Errorf("Tokenize() = %+v, want %+v", got, tt.want)
			}
			gotHasValue, wantHasValue := got.Value != nil, tt.want.Value != nil
			if gotHasValue != wantHasValue {
				t.Fatalf("Tokenize() value presence = %v, want %v", gotHasValue, wantHasValue)
			}
			if wantHasValue && *got.Value != *tt.want.Value {
				t.Errorf("Tokenize() value = %q, want %q", *got.Value, *tt.want.Value)
			}
		})
	}
}

func TestArgumentString(t *testing.T) {
	a := Argument{Prefix: "--", Name: "name", Value: strp("value")}
	if got, want := a.String(), "--name=value"; got != want {
		t.Errorf("Argument.String() = %q, want %q", got, want)
	}
	b := Argument{Prefix: "-", Name: "v"}
	if got, want := b.String(), "-v"; got != want {
		t.Errorf("Argument.String() = %q, want %q", got, want)
	}
}

func TestArgStream(t *testing.T) {
	s := NewArgStream([]string{"a", "b", "c"})
	if s.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", s.Total())
	}

	s.Fill()
	if got := *s.Current(); got != "a" {
		t.Errorf("Current() = %q, want %q", got, "a")
	}
	if got := *s.Next(); got != "b" {
		t.Errorf("Next() = %q, want %q", got, "b")
	}

	s.Skip()
	s.Fill()
	if got := *s.Current(); got != "b" {
		t.Errorf("Current() = %q, want %q", got, "b")
	}

	s.SkipN(2)
	s.Fill()
	if !s.ReachEnd() {
		t.Fatalf("ReachEnd() = false, want true")
	}
	if s.Current() != nil {
		t.Errorf("Current() = %v, want nil at end", s.Current())
	}

	s.Reset()
	if s.Index() != 0 {
		t.Errorf("Index() after Reset = %d, want 0", s.Index())
	}
}
