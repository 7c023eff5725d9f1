package validation

import "testing"

func TestRange(t *testing.T) {
	v := Range(0, 10, "out of range")

	cases := []struct {
		name  string
		value int
		ok    bool
	}{
		{name: "lower bound", value: 0, ok: true},
		{name: "upper bound", value: 10, ok: true},
		{name: "inside", value: 5, ok: true},
		{name: "below", value: -1, ok: false},
		{name: "above", value: 11, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(tc.value)
			if res.OK != tc.ok {
				t.Fatalf("Validate(%d): expected ok=%v, got %v", tc.value, tc.ok, res.OK)
			}
			if !res.OK && res.Message != "out of range" {
				t.Fatalf("expected failure message, got %q", res.Message)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	min := Min(3.0, "too small")
	max := Max(9.0, "too large")

	if res := min.Validate(2.5); res.OK {
		t.Fatal("expected 2.5 < 3.0 to fail")
	}
	if res := min.Validate(3.0); !res.OK {
		t.Fatal("expected bound to be inclusive")
	}
	if res := max.Validate(9.1); res.OK {
		t.Fatal("expected 9.1 > 9.0 to fail")
	}
}

func TestLengthValidatorsCountRunes(t *testing.T) {
	min := MinLength(3, "too short")
	max := MaxLength(4, "too long")

	if res := min.Validate("héé"); !res.OK {
		t.Fatalf("expected 3-rune string to pass, got %q", res.Message)
	}
	if res := max.Validate("ööööö"); res.OK {
		t.Fatal("expected 5-rune string to fail max length 4")
	}
}

func TestPattern(t *testing.T) {
	v, err := Pattern(`^[a-z]+$`, "lowercase only")
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if res := v.Validate("abc"); !res.OK {
		t.Fatalf("expected match, got %q", res.Message)
	}
	if res := v.Validate("Abc"); res.OK {
		t.Fatal("expected mismatch to fail")
	}

	if _, err := Pattern(`[`, "broken"); err == nil {
		t.Fatal("expected compile error for malformed expression")
	}
}

func TestOneOf(t *testing.T) {
	v := OneOf([]string{"red", "green"}, "unknown colour")

	if res := v.Validate("red"); !res.OK {
		t.Fatalf("expected allowed value to pass, got %q", res.Message)
	}
	if res := v.Validate("blue"); res.OK {
		t.Fatal("expected disallowed value to fail")
	}
}

func TestCustom(t *testing.T) {
	even := Custom(func(v int) bool { return v%2 == 0 }, "must be even")

	if res := even.Validate(4); !res.OK {
		t.Fatal("expected 4 to pass")
	}
	if res := even.Validate(3); res.OK || res.Message != "must be even" {
		t.Fatalf("expected failure with message, got %+v", res)
	}
}

func TestNotBlank(t *testing.T) {
	v := NotBlank("required")

	if res := v.Validate(""); res.OK {
		t.Fatal("expected empty string to fail")
	}
	if res := v.Validate(" "); !res.OK {
		t.Fatal("expected whitespace to pass; blankness is about emptiness, not trimming")
	}
}
