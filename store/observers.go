package store

import "slices"

// observers is the ordered list of handlers attached to a single node.
type observers[T any] struct {
	handlers []Handler[T]
}

// add appends a handler. Nil handlers are ignored.
func (o *observers[T]) add(h Handler[T]) {
	if h == nil {
		return
	}
	o.handlers = append(o.handlers, h)
}

// clone returns an independent copy; later additions to either list
// are not seen by the other.
func (o observers[T]) clone() observers[T] {
	return observers[T]{handlers: slices.Clone(o.handlers)}
}

// notify invokes every handler registered at call time, in order.
func (o observers[T]) notify(e Event[T]) {
	handlers := o.handlers
	for _, h := range handlers {
		h(e)
	}
}

// count returns the number of registered handlers.
func (o observers[T]) count() int {
	return len(o.handlers)
}
