package store

// collect returns i and all its descendants in breadth-first order:
// i first, then each level in child insertion order.
func (t *tree[T]) collect(i int) []int {
	order := []int{i}
	for head := 0; head < len(order); head++ {
		order = append(order, t.slots[order[head]].children...)
	}
	return order
}

// levels walks breadth-first from roots and groups nodes by depth.
// roots form level 0.
func (t *tree[T]) levels(roots []int) []Level[T] {
	var result []Level[T]
	current := roots
	for depth := 0; len(current) > 0; depth++ {
		level := Level[T]{Number: depth, Nodes: make([]NodeView[T], 0, len(current))}
		var next []int
		for _, i := range current {
			level.Nodes = append(level.Nodes, t.view(i))
			next = append(next, t.slots[i].children...)
		}
		result = append(result, level)
		current = next
	}
	return result
}
