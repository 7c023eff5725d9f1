package binding

// Link is the handle for a bidirectional attachment between two Values.
// Closing it detaches both directions; Close is idempotent.
type Link struct {
	closed  bool
	detachA func()
	detachB func()
}

// Attach links a and b bidirectionally: writes to either cell propagate to
// the other before the triggering Set returns. At attach time a adopts b's
// current value, matching the convention that the externally owned side is
// the source of truth when a link is established.
func Attach[T any](a, b *Value[T]) *Link {
	a.Set(b.Get())

	// The syncing guard stops propagation from re-entering the link while a
	// forwarded Set is in flight.
	syncing := false
	forward := func(target *Value[T]) func(T) {
		return func(next T) {
			if syncing {
				return
			}
			syncing = true
			target.Set(next)
			syncing = false
		}
	}

	return &Link{
		detachA: a.AddListener(forward(b)),
		detachB: b.AddListener(forward(a)),
	}
}

// Close detaches the link. Subsequent calls are no-ops.
func (l *Link) Close() {
	if l == nil || l.closed {
		return
	}
	l.closed = true
	l.detachA()
	l.detachB()
}
