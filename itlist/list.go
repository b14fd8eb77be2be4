// Package itlist implements a doubly-linked list that doubles as its own
// bidirectional cursor.
//
// A *List can be handed out as "the list" and, unchanged, be used to walk
// forward or backward through its elements. The element under the cursor can
// be removed mid-traversal, including from inside a range loop over All, and
// the traversal carries on with the element that followed it.
//
// A List is not safe for concurrent use.
package itlist

import (
	"fmt"
	"iter"
)

// List is a doubly-linked list of comparable values with an embedded cursor.
// The zero value is an empty list ready to use.
type List[E comparable] struct {
	size       int
	head, tail *node[E]

	// Entry points for the cursor. They never hold a value and are not
	// linked from the chain: headBoundary.next is the head and
	// tailBoundary.prev is the tail.
	headBoundary, tailBoundary node[E]

	// The embedded cursor. It denotes a boundary, a node of the list, or a
	// placeholder left behind when the node it was on got removed.
	current *node[E]

	// Bumped on every structural change; see ListIterator.
	mods int
}

// New returns an empty list.
func New[E comparable]() *List[E] {
	l := new(List[E])
	l.current = &l.headBoundary
	return l
}

// From returns a list holding the given values in order.
func From[E comparable](values ...E) *List[E] {
	l := New[E]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Append adds v to the end of the list.
func (l *List[E]) Append(v E) {
	l.insertBefore(v, nil)
}

// InsertAt inserts v so that it ends up at the given index. Valid indices
// run from 0 to Len() inclusive; Len() appends.
func (l *List[E]) InsertAt(index int, v E) error {
	if err := l.checkPositionIndex(index); err != nil {
		return err
	}
	var at *node[E]
	if index < l.size {
		at = l.nodeAt(index)
	}
	l.insertBefore(v, at)
	return nil
}

// Get returns the element at the given index.
func (l *List[E]) Get(index int) (E, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return l.nodeAt(index).value, nil
}

// Set replaces the element at the given index and returns the one it
// replaced.
func (l *List[E]) Set(index int, v E) (E, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero E
		return zero, err
	}
	n := l.nodeAt(index)
	old := n.value
	n.value = v
	return old, nil
}

// RemoveAt removes the element at the given index and returns it.
func (l *List[E]) RemoveAt(index int) (E, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero E
		return zero, err
	}
	n := l.nodeAt(index)
	v := n.value
	l.removeNode(n)
	return v, nil
}

// Clear removes every element and moves the cursor to the head boundary.
func (l *List[E]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.clear()
		n = next
	}
	l.head, l.tail = nil, nil
	l.headBoundary.next, l.tailBoundary.prev = nil, nil
	l.current = &l.headBoundary
	l.size = 0
	l.mods++
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[E]) IndexOf(v E) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *List[E]) LastIndexOf(v E) int {
	i := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if n.value == v {
			return i
		}
		i--
	}
	return -1
}

// Contains reports whether the list holds an element equal to v.
func (l *List[E]) Contains(v E) bool {
	return l.IndexOf(v) != -1
}

// SubList returns a new list holding a copy of the elements in [from, to).
// The result is not a view: later changes to either list do not show up in
// the other.
func (l *List[E]) SubList(from, to int) (*List[E], error) {
	if from < 0 || to > l.size || from > to {
		return nil, fmt.Errorf("%w (size: %d, from: %d, to: %d)", ErrIndexOutOfRange, l.size, from, to)
	}
	sub := New[E]()
	if from == to {
		return sub, nil
	}
	n := l.nodeAt(from)
	for i := from; i < to; i++ {
		sub.Append(n.value)
		n = n.next
	}
	return sub, nil
}

// ToArray returns the elements of the list in order, in a new slice.
func (l *List[E]) ToArray() []E {
	return l.ToArrayInto(make([]E, l.size))
}

// ToArrayInto copies the elements of the list into dst when dst is large
// enough and into a new slice otherwise. When dst is longer than the list the
// element right after the last copied one is zeroed.
func (l *List[E]) ToArrayInto(dst []E) []E {
	if len(dst) < l.size {
		dst = make([]E, l.size)
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		dst[i] = n.value
		i++
	}
	if len(dst) > l.size {
		var zero E
		dst[l.size] = zero
	}
	return dst
}

// Values returns an iterator over index/element pairs, head to tail. It does
// not move the embedded cursor. The list must not be structurally modified
// while Values is being ranged over; use All for that.
func (l *List[E]) Values() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

func (l *List[E]) String() string {
	return fmt.Sprint(l.ToArray())
}

// insertBefore splices a new node holding v in front of at, or after the
// tail when at is nil.
func (l *List[E]) insertBefore(v E, at *node[E]) *node[E] {
	n := &node[E]{value: v, list: l}
	switch {
	case l.size == 0:
		l.head, l.tail = n, n
	case at == nil:
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	case at == l.head:
		n.next = l.head
		l.head.prev = n
		l.head = n
	default:
		prev := at.prev
		n.prev, n.next = prev, at
		prev.next, at.prev = n, n
	}
	l.headBoundary.next, l.tailBoundary.prev = l.head, l.tail
	l.size++
	l.mods++
	return n
}

// removeNode unlinks n, which must belong to l. When the cursor sits on n it
// is moved to a placeholder linked to n's former neighbors, so that Next and
// Previous carry on as if n had never been there.
func (l *List[E]) removeNode(n *node[E]) {
	if n == l.head && n == l.tail {
		l.Clear()
		return
	}

	if n == l.current {
		l.current = placeholderFor(n)
	} else if l.isPlaceholder(l.current) {
		if l.current.next == n {
			l.current.next = n.next
		}
		if l.current.prev == n {
			l.current.prev = n.prev
		}
	}

	switch n {
	case l.head:
		l.head = n.next
		l.head.prev = nil
	case l.tail:
		l.tail = n.prev
		l.tail.next = nil
	default:
		n.prev.next, n.next.prev = n.next, n.prev
	}
	l.headBoundary.next, l.tailBoundary.prev = l.head, l.tail
	n.clear()
	l.size--
	l.mods++
}

// nodeAt returns the node at a valid index, walking from whichever end is
// closer.
func (l *List[E]) nodeAt(index int) *node[E] {
	if index < l.size-1-index {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// checkElementIndex accepts 0 <= index < size.
func (l *List[E]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return &IndexError{Size: l.size, Index: index}
	}
	return nil
}

// checkPositionIndex accepts 0 <= index <= size.
func (l *List[E]) checkPositionIndex(index int) error {
	if index < 0 || index > l.size {
		return &IndexError{Size: l.size, Index: index}
	}
	return nil
}
