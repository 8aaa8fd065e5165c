package store

import (
	"reflect"
	"testing"
)

func TestObservers_Add(t *testing.T) {
	var o observers[string]
	o.add(func(Event[string]) {})
	o.add(nil)
	o.add(func(Event[string]) {})

	if o.count() != 2 {
		t.Errorf("expected 2 handlers, got %d", o.count())
	}
}

func TestObservers_NotifyInOrder(t *testing.T) {
	var o observers[string]
	var calls []string
	for _, name := range []string{"a", "b", "c"} {
		name := name // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		o.add(func(e Event[string]) { calls = append(calls, name+":"+e.Name) })
	}

	o.notify(Event[string]{Kind: NodeUpdated, Name: "n"})

	if !reflect.DeepEqual(calls, []string{"a:n", "b:n", "c:n"}) {
		t.Errorf("expected [a:n b:n c:n], got %v", calls)
	}
}

func TestObservers_NotifyEmpty(t *testing.T) {
	var o observers[int]
	o.notify(Event[int]{Kind: NodeAdded}) // must not panic
	if o.count() != 0 {
		t.Errorf("expected 0 handlers, got %d", o.count())
	}
}

func TestObservers_CloneIsIndependent(t *testing.T) {
	var parent observers[string]
	parent.add(func(Event[string]) {})

	child := parent.clone()
	parent.add(func(Event[string]) {})
	child.add(func(Event[string]) {})
	child.add(func(Event[string]) {})

	if parent.count() != 2 {
		t.Errorf("expected parent to have 2 handlers, got %d", parent.count())
	}
	if child.count() != 3 {
		t.Errorf("expected child to have 3 handlers, got %d", child.count())
	}
}

func TestObservers_CloneEmpty(t *testing.T) {
	var o observers[string]
	c := o.clone()
	if c.count() != 0 {
		t.Errorf("expected 0 handlers, got %d", c.count())
	}
}

func TestObservers_AddDuringNotify(t *testing.T) {
	var o observers[string]
	calls := 0
	o.add(func(Event[string]) {
		calls++
		o.add(func(Event[string]) { calls++ })
	})

	o.notify(Event[string]{})
	if calls != 1 {
		t.Errorf("expected handlers added during notify to be skipped, got %d calls", calls)
	}
	if o.count() != 2 {
		t.Errorf("expected 2 handlers, got %d", o.count())
	}
}
