package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a path does not resolve to a node.
var ErrNotFound = errors.New("canopy: node not found")

// PathError records the operation and path that failed to resolve.
type PathError struct {
	// Op is the operation that failed (e.g., "get", "delete").
	Op string

	// Path is the path as passed by the caller.
	Path string

	// Segment is the first segment with no matching child.
	// Empty when the path has no segments at all.
	Segment string
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("canopy: %s %q: path does not address a node", e.Op, e.Path)
	}
	return fmt.Sprintf("canopy: %s %q: segment %q not found", e.Op, e.Path, e.Segment)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *PathError) Unwrap() error {
	return ErrNotFound
}
