package itlist

import "slices"

// Collection is a source of values for the bulk operations of a List.
// *List and Slice implement it.
type Collection[E comparable] interface {
	ToArray() []E
	Contains(v E) bool
}

// Slice adapts a plain slice to Collection.
type Slice[E comparable] []E

// Of returns the given values as a Collection.
func Of[E comparable](values ...E) Slice[E] {
	return Slice[E](values)
}

// ToArray returns a copy of s.
func (s Slice[E]) ToArray() []E {
	return slices.Clone(s)
}

// Contains reports whether s holds v.
func (s Slice[E]) Contains(v E) bool {
	return slices.Contains(s, v)
}

// AddAll appends every value of c, in order.
func (l *List[E]) AddAll(c Collection[E]) error {
	if isNil(c) {
		return ErrNilCollection
	}
	for _, v := range c.ToArray() {
		l.insertBefore(v, nil)
	}
	return nil
}

// InsertAllAt inserts every value of c, in order, so that the first one ends
// up at the given index.
func (l *List[E]) InsertAllAt(index int, c Collection[E]) error {
	if isNil(c) {
		return ErrNilCollection
	}
	if err := l.checkPositionIndex(index); err != nil {
		return err
	}
	values := c.ToArray()
	var at *node[E]
	if index < l.size {
		at = l.nodeAt(index)
	}
	for _, v := range values {
		l.insertBefore(v, at)
	}
	return nil
}

// ContainsAll reports whether every value of c is in the list.
func (l *List[E]) ContainsAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, ErrNilCollection
	}
	for _, v := range c.ToArray() {
		if !l.Contains(v) {
			return false, nil
		}
	}
	return true, nil
}

// RemoveValue removes the first element equal to v and reports whether there
// was one.
func (l *List[E]) RemoveValue(v E) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.removeNode(n)
			return true
		}
	}
	return false
}

// RemoveAllInstances removes every element equal to v and reports whether
// there was any.
func (l *List[E]) RemoveAllInstances(v E) bool {
	return l.removeIf(func(e E) bool { return e == v })
}

// RemoveAll removes every element that c contains and reports whether the
// list changed.
func (l *List[E]) RemoveAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, ErrNilCollection
	}
	return l.removeIf(c.Contains), nil
}

// RetainAll removes every element that c does not contain and reports
// whether the list changed.
func (l *List[E]) RetainAll(c Collection[E]) (bool, error) {
	if isNil(c) {
		return false, ErrNilCollection
	}
	return l.removeIf(func(e E) bool { return !c.Contains(e) }), nil
}

func (l *List[E]) removeIf(pred func(E) bool) bool {
	removed := false
	for n := l.head; n != nil; {
		next := n.next
		if pred(n.value) {
			l.removeNode(n)
			removed = true
		}
		n = next
	}
	return removed
}

func isNil[E comparable](c Collection[E]) bool {
	if c == nil {
		return true
	}
	if l, ok := c.(*List[E]); ok && l == nil {
		return true
	}
	return false
}
