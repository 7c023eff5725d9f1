package field

import (
	"github.com/goliatone/go-formfield/pkg/i18n"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Option configures a Field at construction time.
type Option[V any] func(*Field[V])

// WithFormatter overrides the formatter used to render typed values back
// into text. Formatting should be the inverse of the transformer on
// canonical input so that Reset restores a value that re-validates.
func WithFormatter[V any](format func(V) string) Option[V] {
	return func(f *Field[V]) {
		if format != nil {
			f.format = format
		}
	}
}

// WithValidators seeds the validator sequence. Order determines the order
// in which error messages are collected.
func WithValidators[V any](validators ...validation.Validator[V]) Option[V] {
	return func(f *Field[V]) {
		f.validators = validators
	}
}

// WithRequired marks the field as required with a literal error message.
func WithRequired[V any](message string) Option[V] {
	return func(f *Field[V]) {
		f.required = true
		f.requiredError = message
	}
}

// WithRequiredKey marks the field as required with a translatable error
// message key.
func WithRequiredKey[V any](key string) Option[V] {
	return func(f *Field[V]) {
		f.required = true
		f.requiredErrorKey = key
	}
}

// WithFormatError sets the literal message shown when the transformer
// rejects the input.
func WithFormatError[V any](message string) Option[V] {
	return func(f *Field[V]) {
		f.formatError = message
	}
}

// WithFormatErrorKey sets the translatable message key shown when the
// transformer rejects the input.
func WithFormatErrorKey[V any](key string) Option[V] {
	return func(f *Field[V]) {
		f.formatErrorKey = key
	}
}

// WithTranslator enables i18n: message keys configured on the field and
// validator messages are resolved through t.
func WithTranslator[V any](t i18n.Translator) Option[V] {
	return func(f *Field[V]) {
		f.translator = t
	}
}
