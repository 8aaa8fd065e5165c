package store

import "github.com/google/uuid"

// NodeView is a read-only snapshot of a node.
// Views are copies; they do not change when the tree does.
type NodeView[T any] struct {
	// ID is the identity assigned at creation.
	ID uuid.UUID

	// Name is the node name (unique among its siblings).
	Name string

	// Path is the canonical path (e.g., "/root/child1").
	Path string

	// Value is the node value when the view was taken.
	Value T

	// Children is the number of direct children.
	Children int

	// Listeners is the number of handlers attached directly to the node.
	Listeners int
}

// Level groups the nodes found at one depth of a level-order walk.
type Level[T any] struct {
	// Number is the depth relative to the starting node(s) (0 = start).
	Number int

	// Nodes are the nodes at this depth, in breadth-first order.
	Nodes []NodeView[T]
}

// Names returns the node names of the level, in order.
func (l Level[T]) Names() []string {
	names := make([]string, len(l.Nodes))
	for i, n := range l.Nodes {
		names[i] = n.Name
	}
	return names
}

// view builds a snapshot of i.
func (t *tree[T]) view(i int) NodeView[T] {
	n := &t.slots[i]
	return NodeView[T]{
		ID:        n.id,
		Name:      n.name,
		Path:      t.path(i),
		Value:     n.value,
		Children:  len(n.children),
		Listeners: n.observers.count(),
	}
}

// views builds snapshots of the given indices, in order.
func (t *tree[T]) views(indices []int) []NodeView[T] {
	result := make([]NodeView[T], len(indices))
	for k, i := range indices {
		result[k] = t.view(i)
	}
	return result
}
