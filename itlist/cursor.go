package itlist

import "iter"

// ResetToHead moves the cursor before the first element, so that Next
// returns the head.
func (l *List[E]) ResetToHead() {
	l.current = &l.headBoundary
}

// ResetToTail moves the cursor after the last element, so that Previous
// returns the tail.
func (l *List[E]) ResetToTail() {
	l.current = &l.tailBoundary
}

// MoveToIndex moves the cursor onto the element at the given index.
func (l *List[E]) MoveToIndex(index int) error {
	if err := l.checkElementIndex(index); err != nil {
		return err
	}
	l.current = l.nodeAt(index)
	return nil
}

// HasNext reports whether Next would return an element.
func (l *List[E]) HasNext() bool {
	return l.cursor().next != nil
}

// HasPrevious reports whether Previous would return an element.
func (l *List[E]) HasPrevious() bool {
	return l.cursor().prev != nil
}

// Next moves the cursor one element forward and returns that element.
func (l *List[E]) Next() (E, error) {
	c := l.cursor()
	if c.next == nil {
		var zero E
		return zero, ErrNoSuchElement
	}
	l.current = c.next
	return l.current.value, nil
}

// Previous moves the cursor one element backward and returns that element.
func (l *List[E]) Previous() (E, error) {
	c := l.cursor()
	if c.prev == nil {
		var zero E
		return zero, ErrNoSuchElement
	}
	l.current = c.prev
	return l.current.value, nil
}

// Remove removes the element under the cursor. The cursor keeps its place:
// a following Next returns the element after the removed one and a following
// Previous the one before it. Remove fails with ErrIllegalState when the
// cursor is on a boundary or its element has already been removed.
func (l *List[E]) Remove() error {
	c := l.cursor()
	if c.list != l {
		return ErrIllegalState
	}
	l.removeNode(c)
	return nil
}

// All returns an iterator that resets the cursor to the head boundary and
// walks it forward. Calling Remove from the loop body removes the element
// just yielded; the loop carries on with the next one.
//
//	for v := range l.All() {
//		if v == 2 {
//			l.Remove()
//		}
//	}
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		l.ResetToHead()
		for l.HasNext() {
			v, _ := l.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Backward is like All, but resets the cursor to the tail boundary and walks
// it backward.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		l.ResetToTail()
		for l.HasPrevious() {
			v, _ := l.Previous()
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[E]) cursor() *node[E] {
	if l.current == nil {
		l.current = &l.headBoundary
	}
	return l.current
}

func (l *List[E]) isPlaceholder(n *node[E]) bool {
	return n != nil && n.list == nil && n != &l.headBoundary && n != &l.tailBoundary
}
