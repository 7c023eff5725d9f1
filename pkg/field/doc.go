// Package field implements the reactive data field at the heart of the form
// model. A Field tracks three time-shifted representations of one logical
// value: the raw user input string, the last value that passed parsing and
// validation, and the value most recently persisted. Mutations run the
// validation pipeline synchronously (required check, transform, validator
// sweep) and listeners observe only fully settled state.
//
// Fields are NOT safe for concurrent use. A field is owned by a single
// goroutine, typically the one driving the UI or form layer; all callbacks
// fire inline on that goroutine before the mutating call returns.
package field
