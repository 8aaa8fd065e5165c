package store

import (
	"log/slog"
	"slices"

	"github.com/jacentio/canopy/internal/segment"
)

// Store is an in-memory hierarchical namespace of values of type T.
// A Store is not safe for concurrent use.
type Store[T any] struct {
	tree   *tree[T]
	config Config
	logger *slog.Logger
}

// New creates a new, empty Store.
func New[T any](config Config) *Store[T] {
	config.validate()
	return &Store[T]{
		tree:   newTree[T](config.InitialCapacity),
		config: config,
		logger: config.Logger,
	}
}

// Config returns the effective configuration.
func (s *Store[T]) Config() Config {
	return s.config
}

// Create creates the node at path, materializing any missing intermediate
// nodes. Every node created by the call, intermediates included, starts
// with value. Existing nodes along the path are left unchanged, so calling
// Create again with the same path is a no-op.
//
// Handlers run while the path is being built. If one of them removes a node
// the walk still needs, Create stops there and the rest of the path is not
// created.
func (s *Store[T]) Create(path string, value T) {
	cur, curID := sentinel, s.tree.slots[sentinel].id
	created := 0
	for _, name := range segment.Split(path) {
		next, ok := s.tree.child(cur, name)
		if !ok {
			s.tree.addChild(cur, name, value)
			created++
			if s.tree.holds(cur, curID) {
				next, ok = s.tree.child(cur, name)
			}
			if !ok {
				s.logger.Debug("create interrupted",
					"path", segment.Clean(path),
					"segment", name,
					"created", created,
				)
				return
			}
		}
		cur, curID = next, s.tree.slots[next].id
	}
	if created > 0 {
		s.logger.Debug("node created",
			"path", segment.Clean(path),
			"created", created,
		)
	}
}

// Update replaces the value of the node at path.
func (s *Store[T]) Update(path string, value T) error {
	i, err := s.resolve("update", path)
	if err != nil {
		return err
	}
	s.tree.updateValue(i, value)
	s.logger.Debug("node updated", "path", segment.Clean(path))
	return nil
}

// Delete removes the node at path together with all its descendants.
// Every removed node fires NodeRemoved, parents before children.
func (s *Store[T]) Delete(path string) error {
	i, err := s.resolve("delete", path)
	if err != nil {
		return err
	}
	count := s.tree.remove(i)
	s.logger.Debug("subtree deleted",
		"path", segment.Clean(path),
		"count", count,
	)
	return nil
}

// Get returns the value of the node at path.
func (s *Store[T]) Get(path string) (T, error) {
	i, err := s.resolve("get", path)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.tree.slots[i].value, nil
}

// Node returns a snapshot of the node at path.
func (s *Store[T]) Node(path string) (NodeView[T], error) {
	i, err := s.resolve("node", path)
	if err != nil {
		return NodeView[T]{}, err
	}
	return s.tree.view(i), nil
}

// Exists reports whether path resolves to a node.
func (s *Store[T]) Exists(path string) bool {
	_, err := s.resolve("exists", path)
	return err == nil
}

// Children returns the direct children of the node at path, in insertion order.
func (s *Store[T]) Children(path string) ([]NodeView[T], error) {
	i, err := s.resolve("children", path)
	if err != nil {
		return nil, err
	}
	return s.tree.views(s.tree.slots[i].children), nil
}

// AddListener registers h on the node at path.
// Children created afterwards inherit h; existing descendants do not.
// A nil handler is ignored.
func (s *Store[T]) AddListener(path string, h Handler[T]) error {
	i, err := s.resolve("listen", path)
	if err != nil {
		return err
	}
	s.tree.observe(i, h)
	return nil
}

// Dump returns every addressable node grouped by depth.
// Level 0 holds the roots in creation order.
func (s *Store[T]) Dump() []Level[T] {
	roots := slices.Clone(s.tree.slots[sentinel].children)
	return s.tree.levels(roots)
}

// DumpFrom returns the subtree at path grouped by depth; level 0 is the node itself.
func (s *Store[T]) DumpFrom(path string) ([]Level[T], error) {
	i, err := s.resolve("dump", path)
	if err != nil {
		return nil, err
	}
	return s.tree.levels([]int{i}), nil
}

// Len returns the number of addressable nodes.
func (s *Store[T]) Len() int {
	return s.tree.size()
}

// resolve walks path from the sentinel and returns the terminal node.
// It fails at the first missing segment. A path with no segments
// resolves to the sentinel, which is not addressable.
func (s *Store[T]) resolve(op, path string) (int, error) {
	segments := segment.Split(path)
	if len(segments) == 0 {
		return 0, &PathError{Op: op, Path: path}
	}
	cur := sentinel
	for _, name := range segments {
		next, ok := s.tree.child(cur, name)
		if !ok {
			return 0, &PathError{Op: op, Path: path, Segment: name}
		}
		cur = next
	}
	return cur, nil
}
