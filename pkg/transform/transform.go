// Package transform defines the parsing strategy that turns raw user input
// into a field's typed value, plus the formatters used to render a typed
// value back into canonical text.
package transform

import (
	"fmt"
	"strconv"
)

// Func parses a raw input string into a value of type V. Malformed input is
// reported as a *ParseError; the field engine captures it as state rather
// than propagating it.
type Func[V any] func(raw string) (V, error)

// ParseError describes input that could not be converted to the target type.
type ParseError struct {
	Input  string
	Target string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("transform: cannot parse %q as %s", e.Input, e.Target)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// String returns the identity transformer for string fields.
func String() Func[string] {
	return func(raw string) (string, error) {
		return raw, nil
	}
}

// Int returns a base-10 integer transformer.
func Int() Func[int] {
	return func(raw string) (int, error) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, &ParseError{Input: raw, Target: "int", Err: err}
		}
		return n, nil
	}
}

// Float returns a float64 transformer.
func Float() Func[float64] {
	return func(raw string) (float64, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &ParseError{Input: raw, Target: "float64", Err: err}
		}
		return f, nil
	}
}

// Bool returns a boolean transformer accepting the strconv.ParseBool forms.
func Bool() Func[bool] {
	return func(raw string) (bool, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return false, &ParseError{Input: raw, Target: "bool", Err: err}
		}
		return b, nil
	}
}

// Sprint returns the fallback formatter backed by fmt.Sprint. Typed fields
// install a type-specific formatter so that formatting is the inverse of
// parsing on canonical text.
func Sprint[V any]() func(V) string {
	return func(v V) string {
		return fmt.Sprint(v)
	}
}

// FormatInt renders an int in base 10.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatFloat renders a float64 with the shortest representation that
// round-trips through Float.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatBool renders a bool as "true" or "false".
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}
