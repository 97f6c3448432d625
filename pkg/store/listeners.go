package store

import "slices"

type subscription struct {
	fn Listener
}

// listenerRegistry is a copy-on-write listener list. current is the snapshot
// handed to the running notification; next receives mutations. Both share the
// same backing array until a mutation happens while shared is set.
type listenerRegistry struct {
	current []*subscription
	next    []*subscription
	shared  bool
}

func (r *listenerRegistry) ensureCanMutateNext() {
	if r.shared {
		r.next = slices.Clone(r.next)
		r.shared = false
	}
}

func (r *listenerRegistry) add(fn Listener) *subscription {
	sub := &subscription{fn: fn}
	r.ensureCanMutateNext()
	r.next = append(r.next, sub)
	return sub
}

func (r *listenerRegistry) remove(sub *subscription) {
	r.ensureCanMutateNext()
	if i := slices.Index(r.next, sub); i >= 0 {
		r.next = slices.Delete(r.next, i, i+1)
	}
}

// snapshot commits pending mutations and returns the list to notify.
func (r *listenerRegistry) snapshot() []*subscription {
	r.current = r.next
	r.shared = true
	return r.current
}

func (r *listenerRegistry) len() int {
	return len(r.next)
}
