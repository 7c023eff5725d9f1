package binding

import "reflect"

// Value is an observable cell holding a single value of type T. Listeners
// registered with AddListener are invoked synchronously whenever Set stores
// a value that differs from the current one.
type Value[T any] struct {
	current    T
	equals     func(a, b T) bool
	listeners  map[int]func(T)
	nextListen int
}

// ValueOption configures a Value at construction time.
type ValueOption[T any] func(*Value[T])

// WithEquals overrides the equality check used to suppress no-op
// notifications. The default is reflect.DeepEqual.
func WithEquals[T any](fn func(a, b T) bool) ValueOption[T] {
	return func(v *Value[T]) {
		if fn != nil {
			v.equals = fn
		}
	}
}

// NewValue constructs a Value seeded with initial.
func NewValue[T any](initial T, opts ...ValueOption[T]) *Value[T] {
	v := &Value[T]{
		current: initial,
		equals:  func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set stores next and notifies listeners, reporting whether the value was
// stored. Storing a value equal to the current one is a no-op: nothing is
// stored, nobody is notified, and Set reports false.
func (v *Value[T]) Set(next T) bool {
	if v.equals(v.current, next) {
		return false
	}
	v.current = next
	v.notify(next)
	return true
}

// AddListener registers fn to be called with the new value after every
// effective Set. It returns an unsubscribe function; calling it more than
// once is harmless.
func (v *Value[T]) AddListener(fn func(T)) func() {
	if v.listeners == nil {
		v.listeners = make(map[int]func(T))
	}
	id := v.nextListen
	v.nextListen++
	v.listeners[id] = fn

	return func() {
		delete(v.listeners, id)
	}
}

func (v *Value[T]) notify(next T) {
	// Snapshot so a listener that unsubscribes (or subscribes) during
	// delivery does not disturb iteration.
	fns := make([]func(T), 0, len(v.listeners))
	for id := 0; id < v.nextListen; id++ {
		if fn, ok := v.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	for _, fn := range fns {
		fn(next)
	}
}
