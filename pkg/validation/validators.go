// Package validation defines the typed validation rules a field runs against
// its transformed value. Validators are independent of parsing: they see the
// typed value, never the raw input. Messages may be literal text or i18n
// keys; resolution is the field engine's concern.
package validation

import (
	"cmp"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Result reports a single validator's outcome.
type Result struct {
	OK      bool
	Message string
}

// Valid returns a passing result.
func Valid() Result {
	return Result{OK: true}
}

// Invalid returns a failing result carrying msg.
func Invalid(msg string) Result {
	return Result{Message: msg}
}

// Validator checks a typed value and reports a Result. Implementations must
// be pure: same value, same outcome.
type Validator[V any] interface {
	Validate(value V) Result
}

// Func adapts a plain function to the Validator interface.
type Func[V any] func(value V) Result

func (f Func[V]) Validate(value V) Result {
	return f(value)
}

// Custom builds a validator from a predicate and a failure message.
func Custom[V any](predicate func(V) bool, msg string) Validator[V] {
	return Func[V](func(value V) Result {
		if predicate(value) {
			return Valid()
		}
		return Invalid(msg)
	})
}

// Range accepts values between min and max inclusive.
func Range[T cmp.Ordered](min, max T, msg string) Validator[T] {
	return Func[T](func(value T) Result {
		if value < min || value > max {
			return Invalid(msg)
		}
		return Valid()
	})
}

// Min accepts values greater than or equal to bound.
func Min[T cmp.Ordered](bound T, msg string) Validator[T] {
	return Func[T](func(value T) Result {
		if value < bound {
			return Invalid(msg)
		}
		return Valid()
	})
}

// Max accepts values less than or equal to bound.
func Max[T cmp.Ordered](bound T, msg string) Validator[T] {
	return Func[T](func(value T) Result {
		if value > bound {
			return Invalid(msg)
		}
		return Valid()
	})
}

// MinLength accepts strings of at least n runes.
func MinLength(n int, msg string) Validator[string] {
	return Func[string](func(value string) Result {
		if utf8.RuneCountInString(value) < n {
			return Invalid(msg)
		}
		return Valid()
	})
}

// MaxLength accepts strings of at most n runes.
func MaxLength(n int, msg string) Validator[string] {
	return Func[string](func(value string) Result {
		if utf8.RuneCountInString(value) > n {
			return Invalid(msg)
		}
		return Valid()
	})
}

// Pattern accepts strings matching the given regular expression. The
// expression is compiled once; a malformed expression is a constructor
// error, not a per-value failure.
func Pattern(expr, msg string) (Validator[string], error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("validation: compile pattern %q: %w", expr, err)
	}
	return Func[string](func(value string) Result {
		if !re.MatchString(value) {
			return Invalid(msg)
		}
		return Valid()
	}), nil
}

// MustPattern is Pattern but panics on a malformed expression. Intended for
// package-level validator variables with constant expressions.
func MustPattern(expr, msg string) Validator[string] {
	v, err := Pattern(expr, msg)
	if err != nil {
		panic(err)
	}
	return v
}

// OneOf accepts values contained in allowed.
func OneOf[T comparable](allowed []T, msg string) Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Func[T](func(value T) Result {
		if _, ok := set[value]; !ok {
			return Invalid(msg)
		}
		return Valid()
	})
}

// NotBlank rejects empty strings.
func NotBlank(msg string) Validator[string] {
	return Func[string](func(value string) Result {
		if value == "" {
			return Invalid(msg)
		}
		return Valid()
	})
}
