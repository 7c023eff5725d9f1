package field

import "github.com/goliatone/go-formfield/pkg/transform"

// Default format-error messages for the typed constructors. They double as
// translation keys when a translator is configured; override them with
// WithFormatError / WithFormatErrorKey.
const (
	defaultIntFormatError   = "value is not a valid integer"
	defaultFloatFormatError = "value is not a valid number"
	defaultBoolFormatError  = "value is not a valid boolean"
)

// defaultRequiredError backs required fields whose configured message is
// empty or whose message key does not resolve.
const defaultRequiredError = "this field is required"

// NewString constructs a string field. The transformer is the identity, so
// string fields never produce a format error.
func NewString(initial string, opts ...Option[string]) *Field[string] {
	return New(initial, transform.String(), opts...)
}

// NewInt constructs an integer field with a base-10 transformer and
// formatter.
func NewInt(initial int, opts ...Option[int]) *Field[int] {
	defaults := []Option[int]{
		WithFormatter[int](transform.FormatInt),
		WithFormatError[int](defaultIntFormatError),
	}
	return New(initial, transform.Int(), append(defaults, opts...)...)
}

// NewFloat constructs a float64 field whose formatter emits the shortest
// text that round-trips through the transformer.
func NewFloat(initial float64, opts ...Option[float64]) *Field[float64] {
	defaults := []Option[float64]{
		WithFormatter[float64](transform.FormatFloat),
		WithFormatError[float64](defaultFloatFormatError),
	}
	return New(initial, transform.Float(), append(defaults, opts...)...)
}

// NewBool constructs a boolean field accepting the strconv.ParseBool forms.
func NewBool(initial bool, opts ...Option[bool]) *Field[bool] {
	defaults := []Option[bool]{
		WithFormatter[bool](transform.FormatBool),
		WithFormatError[bool](defaultBoolFormatError),
	}
	return New(initial, transform.Bool(), append(defaults, opts...)...)
}
