package field

import (
	"errors"

	"github.com/goliatone/go-formfield/pkg/binding"
)

// ErrAlreadyBound is returned by Bind when the field still holds an open
// binding. Release the previous binding before establishing a new one.
var ErrAlreadyBound = errors.New("field: already bound")

// Binding is the owned handle for an external binding established with
// Bind. Closing it releases the bidirectional link and the input listener;
// Close is idempotent.
type Binding struct {
	closed  bool
	release func()
}

// Close releases the binding. Subsequent calls are no-ops, as is calling
// Close on a nil handle.
func (b *Binding) Close() {
	if b == nil || b.closed {
		return
	}
	b.closed = true
	b.release()
}

// Bind links the field's persisted value bidirectionally with an externally
// owned slot: writes to either side converge. At bind time the field adopts
// the slot's current value as its persisted value. External changes to the
// slot additionally overwrite the user input with the formatted new value,
// so the visible input tracks external mutation.
//
// A field holds at most one binding; Bind reports ErrAlreadyBound until the
// previous handle is closed.
func (f *Field[V]) Bind(slot *binding.Value[V]) (*Binding, error) {
	if slot == nil {
		return nil, errors.New("field: bind target must not be nil")
	}
	if f.bound != nil {
		return nil, ErrAlreadyBound
	}

	link := binding.Attach(f.persisted, slot)
	unsub := slot.AddListener(func(next V) {
		f.SetUserInput(f.format(next))
	})

	b := &Binding{}
	b.release = func() {
		unsub()
		link.Close()
		if f.bound == b {
			f.bound = nil
		}
	}
	f.bound = b

	f.notify()
	return b, nil
}

// Unbind releases the field's active binding, if any.
func (f *Field[V]) Unbind() {
	f.bound.Close()
}
