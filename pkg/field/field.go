package field

import (
	"github.com/goliatone/go-formfield/pkg/binding"
	"github.com/goliatone/go-formfield/pkg/i18n"
	"github.com/goliatone/go-formfield/pkg/transform"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Field holds a single editable value of type V.
//
// The field tracks its value in three ways:
//
//   - The user input is a 1-to-1 representation of what the user entered.
//   - The value is the last input that passed the type transformation and
//     every registered validator; it never reflects currently invalid input.
//   - The persisted value is the value last committed via Persist (or the
//     seed passed at construction). Committing is the caller's decision;
//     typing alone never advances it.
type Field[V any] struct {
	userInput string
	value     V
	persisted *binding.Value[V]

	transformer transform.Func[V]
	format      func(V) string
	validators  []validation.Validator[V]

	required         bool
	requiredError    string
	requiredErrorKey string
	formatError      string
	formatErrorKey   string

	translator i18n.Translator

	valid  bool
	errors []string

	listeners  map[int]func()
	nextListen int

	bound *Binding
}

// New constructs a field seeded with initial. The user input starts out as
// the formatted initial value, so a fresh field reports Changed() == false.
// The transformer must not be nil; passing nil is a programming error.
func New[V any](initial V, tr transform.Func[V], opts ...Option[V]) *Field[V] {
	if tr == nil {
		panic("field: transformer must not be nil")
	}

	f := &Field[V]{
		transformer: tr,
		format:      transform.Sprint[V](),
		persisted:   binding.NewValue(initial),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.userInput = f.format(initial)
	f.runValidation()
	return f
}

// UserInput returns the exact string currently entered.
func (f *Field[V]) UserInput() string {
	return f.userInput
}

// Value returns the last successfully validated value.
func (f *Field[V]) Value() V {
	return f.value
}

// Persisted returns the committed value.
func (f *Field[V]) Persisted() V {
	return f.persisted.Get()
}

// Valid reports whether the current user input passes the full pipeline.
func (f *Field[V]) Valid() bool {
	return f.valid
}

// Changed reports whether the user input differs textually from the
// formatted persisted value. It is recomputed on every call, never cached.
func (f *Field[V]) Changed() bool {
	return f.userInput != f.format(f.persisted.Get())
}

// Required reports whether empty input fails validation.
func (f *Field[V]) Required() bool {
	return f.required
}

// Errors returns the error messages from the last validation pass, in
// collection order. The returned slice is a copy.
func (f *Field[V]) Errors() []string {
	if len(f.errors) == 0 {
		return nil
	}
	out := make([]string, len(f.errors))
	copy(out, f.errors)
	return out
}

// AddListener registers fn to be notified after every completed state
// transition. Listeners never observe a half-updated field: required check,
// transform, validator sweep, and value commit all settle before delivery.
// The returned unsubscribe function may be called more than once.
func (f *Field[V]) AddListener(fn func()) func() {
	if f.listeners == nil {
		f.listeners = make(map[int]func())
	}
	id := f.nextListen
	f.nextListen++
	f.listeners[id] = fn

	return func() {
		delete(f.listeners, id)
	}
}

// SetUserInput stores text as the raw input and re-validates. Parse and
// validation failures are captured as field state, never returned. Setting
// the text the input already holds is a no-op.
func (f *Field[V]) SetUserInput(text string) {
	if f.userInput == text {
		return
	}
	f.userInput = text
	f.runValidation()
	f.notify()
}

// SetValidators replaces the whole validator sequence and immediately
// re-validates the current input against the new rule set.
func (f *Field[V]) SetValidators(validators ...validation.Validator[V]) {
	f.validators = validators
	f.runValidation()
	f.notify()
}

// SetTransformer replaces the transformer and re-validates. The transformer
// must not be nil.
func (f *Field[V]) SetTransformer(tr transform.Func[V]) {
	if tr == nil {
		panic("field: transformer must not be nil")
	}
	f.transformer = tr
	f.runValidation()
	f.notify()
}

// SetTransformerMessage replaces the transformer together with the format
// error message. When a translator is configured the message is stored as a
// translation key, otherwise as literal text.
func (f *Field[V]) SetTransformerMessage(tr transform.Func[V], message string) {
	if tr == nil {
		panic("field: transformer must not be nil")
	}
	f.transformer = tr
	if f.translator != nil {
		f.formatErrorKey = message
	} else {
		f.formatError = message
	}
	f.runValidation()
	f.notify()
}

// Persist copies the validated value into the persisted slot. It is a no-op
// while the field is invalid (invalid input is never committed) and when
// the validated value already matches the persisted one. When the field is
// bound, the new persisted value propagates to the external slot.
func (f *Field[V]) Persist() {
	if !f.valid {
		return
	}
	if f.persisted.Set(f.value) {
		f.notify()
	}
}

// Reset replaces the user input with the formatted persisted value,
// discarding the user's edits. It is a no-op while the field is unchanged.
func (f *Field[V]) Reset() {
	if !f.Changed() {
		return
	}
	f.SetUserInput(f.format(f.persisted.Get()))
}

// Translate swaps the translation lookup and re-validates so currently
// displayed messages reflect the new language immediately.
func (f *Field[V]) Translate(t i18n.Translator) {
	f.translator = t
	f.runValidation()
	f.notify()
}

// Validate re-runs the validation pipeline against the current input and
// reports the outcome. State moves through the fixed order: required check,
// transform, validator sweep, value commit.
func (f *Field[V]) Validate() bool {
	ok := f.runValidation()
	f.notify()
	return ok
}

func (f *Field[V]) runValidation() bool {
	if f.required && f.userInput == "" {
		// A required failure always carries a message, even when the
		// configured one is empty or its key fails to resolve.
		message := f.resolve(f.requiredErrorKey, f.requiredError)
		if message == "" {
			message = defaultRequiredError
		}
		f.errors = []string{message}
		f.valid = false
		return false
	}

	transformed, err := f.transformer(f.userInput)
	if err != nil {
		// An unset format message clears the list rather than preserving a
		// stale message from an earlier pass.
		f.setErrors(f.resolve(f.formatErrorKey, f.formatError))
		f.valid = false
		return false
	}

	// Every validator runs; failures are collected in registration order.
	var messages []string
	for _, v := range f.validators {
		if res := v.Validate(transformed); !res.OK {
			messages = append(messages, f.resolveMessage(res.Message))
		}
	}
	if len(messages) > 0 {
		f.errors = messages
		f.valid = false
		return false
	}

	f.errors = nil
	f.valid = true
	f.value = transformed
	return true
}

func (f *Field[V]) setErrors(message string) {
	if message == "" {
		f.errors = nil
		return
	}
	f.errors = []string{message}
}

// resolve picks between a translation key and literal text: the key wins
// when a translator is configured and the lookup succeeds.
func (f *Field[V]) resolve(key, literal string) string {
	if f.translator != nil && key != "" {
		if msg, err := f.translator.Translate(key); err == nil && msg != "" {
			return msg
		}
	}
	return literal
}

// resolveMessage treats a validator message as a translation key when a
// translator is configured, falling back to the literal text.
func (f *Field[V]) resolveMessage(message string) string {
	if f.translator == nil || message == "" {
		return message
	}
	if msg, err := f.translator.Translate(message); err == nil && msg != "" {
		return msg
	}
	return message
}

func (f *Field[V]) notify() {
	fns := make([]func(), 0, len(f.listeners))
	for id := 0; id < f.nextListen; id++ {
		if fn, ok := f.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	for _, fn := range fns {
		fn()
	}
}
