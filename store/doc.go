// Package store provides an in-memory, path-addressed hierarchical namespace.
//
// Canopy is designed for applications that need a small tree of named values
// addressed by slash-delimited paths, with cascading deletes and synchronous
// change notifications.
//
// # Key Features
//
//   - Create materializes missing intermediate nodes
//   - Sibling names are unique within a parent
//   - Cascading deletes remove a node and all of its descendants
//   - Per-node listeners with one-time inheritance on child creation
//   - Level-order diagnostic dumps
//
// # Paths
//
// Paths are split on "/" and empty segments are ignored, so "/root/child1",
// "root/child1" and "//root/child1/" all address the same node. Segment
// content is not validated.
//
// # Listeners
//
// A [Handler] registered with [Store.AddListener] receives every [Event]
// fired by that node, synchronously and in registration order. When a child
// is created it copies its parent's handlers at that instant:
//
//	s := store.New[string](store.DefaultConfig())
//	s.Create("/root", "nothing")
//	s.AddListener("/root", func(e store.Event[string]) {
//	    fmt.Println(e.Kind, e.Name, e.Value)
//	})
//	s.Create("/root/child1", "childdata 1") // handler sees "Node Added"
//
// Handlers registered after a child exists are not attached to that child.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Every operation, including the
// handlers it triggers, runs to completion on the calling goroutine.
//
// # Errors
//
// Operations that resolve an existing path return a [*PathError] wrapping
// [ErrNotFound] when any segment is missing:
//
//	if _, err := s.Get("/root/missing"); errors.Is(err, store.ErrNotFound) {
//	    // handle missing node
//	}
package store
