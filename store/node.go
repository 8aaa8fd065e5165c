package store

import (
	"slices"

	"github.com/google/uuid"

	"github.com/jacentio/canopy/internal/segment"
)

// sentinel is the arena index of the non-addressable node above the roots.
const sentinel = 0

// noParent marks the sentinel and released slots.
const noParent = -1

// node is a single arena slot.
type node[T any] struct {
	id        uuid.UUID
	name      string
	value     T
	parent    int
	children  []int
	index     map[string]int
	observers observers[T]
	live      bool
}

// tree is an arena of nodes linked by index. Slot 0 is the sentinel.
// Parent links are plain indices and never imply ownership; released
// slots go on a free list and are reused by later additions.
type tree[T any] struct {
	slots []node[T]
	free  []int
}

func newTree[T any](capacity int) *tree[T] {
	t := &tree[T]{slots: make([]node[T], 1, capacity)}
	t.slots[sentinel] = node[T]{
		id:     uuid.New(),
		parent: noParent,
		index:  make(map[string]int),
		live:   true,
	}
	return t
}

// alloc returns a free slot index, growing the arena if needed.
func (t *tree[T]) alloc() int {
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		return i
	}
	t.slots = append(t.slots, node[T]{})
	return len(t.slots) - 1
}

// addChild creates a child of parent and fires NodeAdded on it.
// The caller must have checked that name is absent.
// The child starts with a copy of the parent's handlers.
func (t *tree[T]) addChild(parent int, name string, value T) int {
	i := t.alloc()
	p := &t.slots[parent]
	t.slots[i] = node[T]{
		id:        uuid.New(),
		name:      name,
		value:     value,
		parent:    parent,
		index:     make(map[string]int),
		observers: p.observers.clone(),
		live:      true,
	}
	p.children = append(p.children, i)
	p.index[name] = i
	t.fire(i, t.event(i, NodeAdded))
	return i
}

// updateValue replaces the value of i and fires NodeUpdated.
func (t *tree[T]) updateValue(i int, value T) {
	t.slots[i].value = value
	t.fire(i, t.event(i, NodeUpdated))
}

// remove deletes i and all its descendants in breadth-first order.
// Each node is detached, notified with NodeRemoved, then released.
// Returns the number of nodes removed.
func (t *tree[T]) remove(i int) int {
	order := t.collect(i)

	// Paths are computed up front; they cannot be rebuilt once detached.
	pending := make([]Event[T], len(order))
	for k, j := range order {
		pending[k] = t.event(j, NodeRemoved)
	}

	for k, j := range order {
		t.detach(j)
		t.fire(j, pending[k])
		t.release(j)
	}
	return len(order)
}

// detach unlinks i from a live parent.
func (t *tree[T]) detach(i int) {
	p := t.slots[i].parent
	if p == noParent || !t.slots[p].live {
		return
	}
	parent := &t.slots[p]
	if k := slices.Index(parent.children, i); k >= 0 {
		parent.children = slices.Delete(parent.children, k, k+1)
	}
	delete(parent.index, t.slots[i].name)
}

// release clears every field of i and returns it to the free list.
func (t *tree[T]) release(i int) {
	t.slots[i] = node[T]{parent: noParent}
	t.free = append(t.free, i)
}

// holds reports whether slot i is live and still holds the node with the given id.
func (t *tree[T]) holds(i int, id uuid.UUID) bool {
	return t.slots[i].live && t.slots[i].id == id
}

// child looks up a direct child by name.
func (t *tree[T]) child(i int, name string) (int, bool) {
	c, ok := t.slots[i].index[name]
	return c, ok
}

// observe appends h to the handlers of i.
func (t *tree[T]) observe(i int, h Handler[T]) {
	t.slots[i].observers.add(h)
}

// fire delivers e to the handlers of i.
func (t *tree[T]) fire(i int, e Event[T]) {
	t.slots[i].observers.notify(e)
}

// event builds an event describing the current state of i.
func (t *tree[T]) event(i int, kind EventKind) Event[T] {
	n := &t.slots[i]
	return Event[T]{
		Kind:   kind,
		Name:   n.name,
		Value:  n.value,
		Path:   t.path(i),
		NodeID: n.id,
	}
}

// path returns the canonical path of i by walking parent links to the sentinel.
func (t *tree[T]) path(i int) string {
	var names []string
	for j := i; j != sentinel && j != noParent; j = t.slots[j].parent {
		names = append(names, t.slots[j].name)
	}
	slices.Reverse(names)
	return segment.Join(names)
}

// size returns the number of live nodes, excluding the sentinel.
func (t *tree[T]) size() int {
	return len(t.slots) - len(t.free) - 1
}
