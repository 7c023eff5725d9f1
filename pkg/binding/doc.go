// Package binding provides the observable value cell that field state is
// built on. A Value holds a single datum, notifies registered listeners
// synchronously on change, and can be linked bidirectionally to another
// Value so that writes to either side converge.
//
// Values are NOT safe for concurrent use. A Value is intended to be owned
// and mutated by a single goroutine, typically the one driving the form
// model; notification happens inline before Set returns.
package binding
