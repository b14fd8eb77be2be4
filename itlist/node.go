package itlist

// A doubly-linked list node. Boundaries, cursor placeholders and detached
// nodes have a nil list.
type node[E comparable] struct {
	value      E
	prev, next *node[E]
	list       *List[E]
}

// clear detaches n from its neighbors and drops its value.
func (n *node[E]) clear() {
	var zero E
	n.value = zero
	n.prev, n.next, n.list = nil, nil, nil
}

// placeholderFor returns a node that stands where n stood: it links to n's
// neighbors but is not linked from them.
func placeholderFor[E comparable](n *node[E]) *node[E] {
	return &node[E]{prev: n.prev, next: n.next}
}
