package store

import "github.com/google/uuid"

// EventKind identifies the mutation that fired an Event.
type EventKind string

const (
	// NodeAdded is fired on a newly created node.
	NodeAdded EventKind = "Node Added"

	// NodeUpdated is fired on a node whose value was replaced.
	NodeUpdated EventKind = "Node Updated"

	// NodeRemoved is fired on every node of a deleted subtree.
	NodeRemoved EventKind = "Node Removed"
)

// Event describes a single change to a node.
type Event[T any] struct {
	// Kind is the mutation type.
	Kind EventKind

	// Name is the node name.
	Name string

	// Value is the node value after the mutation (before it, for removals).
	Value T

	// Path is the canonical path of the node when the event fired.
	Path string

	// NodeID is the identity assigned to the node at creation.
	NodeID uuid.UUID
}

// Handler receives events from the nodes it is registered on.
// Handlers run synchronously on the goroutine that caused the change.
type Handler[T any] func(Event[T])
