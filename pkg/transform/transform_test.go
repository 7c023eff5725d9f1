package transform

import (
	"errors"
	"testing"
)

func TestInt_ParsesAndRejects(t *testing.T) {
	parse := Int()

	cases := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "positive", input: "42", want: 42},
		{name: "negative", input: "-7", want: -7},
		{name: "zero", input: "0", want: 0},
		{name: "letters", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "float", input: "1.5", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parse(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected parse error for %q", tc.input)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				if parseErr.Input != tc.input || parseErr.Target != "int" {
					t.Fatalf("unexpected error detail: %+v", parseErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestFloat_RoundTrip(t *testing.T) {
	parse := Float()

	for _, v := range []float64{0, 1.5, -3.25, 1000000.001} {
		got, err := parse(FormatFloat(v))
		if err != nil {
			t.Fatalf("round-trip parse failed for %v: %v", v, err)
		}
		if got != v {
			t.Fatalf("expected %v, got %v", v, got)
		}
	}
}

func TestBool_ParsesStrconvForms(t *testing.T) {
	parse := Bool()

	got, err := parse("true")
	if err != nil || !got {
		t.Fatalf("expected true, got %v err=%v", got, err)
	}
	if _, err := parse("yes"); err == nil {
		t.Fatal("expected parse error for non-strconv form")
	}
}

func TestString_IsIdentity(t *testing.T) {
	parse := String()
	got, err := parse("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("expected identity, got %q", got)
	}
}

func TestParseError_UnwrapsCause(t *testing.T) {
	_, err := Int()("nope")
	if err == nil {
		t.Fatal("expected error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Unwrap() == nil {
		t.Fatalf("expected wrapped strconv error, got %v", err)
	}
}
