package itlist

// ListIterator is a cursor over a List that is independent of the list's
// embedded cursor. It sits between two elements: NextIndex is the index of
// the element Next would return.
//
// Set and Remove act on the element returned by the last call to Next or
// Previous. Once the list is structurally modified by anything other than the
// iterator (the embedded cursor included), every further call fails with
// ErrStaleIterator.
type ListIterator[E comparable] struct {
	list *List[E]

	nextIndex int
	// The node Next would return; nil when nextIndex == list.size.
	next         *node[E]
	lastReturned *node[E]

	expectedMods int
}

// ListIterator returns an iterator positioned so that its first Next returns
// the element at the given index. Valid indices run from 0 to Len()
// inclusive.
func (l *List[E]) ListIterator(index int) (*ListIterator[E], error) {
	if err := l.checkPositionIndex(index); err != nil {
		return nil, err
	}
	it := &ListIterator[E]{
		list:         l,
		nextIndex:    index,
		expectedMods: l.mods,
	}
	if index < l.size {
		it.next = l.nodeAt(index)
	}
	return it, nil
}

// HasNext reports whether Next would return an element.
func (it *ListIterator[E]) HasNext() bool {
	return it.nextIndex < it.list.size
}

// HasPrevious reports whether Previous would return an element.
func (it *ListIterator[E]) HasPrevious() bool {
	return it.nextIndex > 0
}

// NextIndex returns the index of the element Next would return, or Len() at
// the end of the list.
func (it *ListIterator[E]) NextIndex() int {
	return it.nextIndex
}

// PreviousIndex returns the index of the element Previous would return, or
// -1 at the start of the list.
func (it *ListIterator[E]) PreviousIndex() int {
	return it.nextIndex - 1
}

// Next returns the next element and moves the iterator past it.
func (it *ListIterator[E]) Next() (E, error) {
	var zero E
	if err := it.checkMods(); err != nil {
		return zero, err
	}
	if !it.HasNext() {
		return zero, ErrNoSuchElement
	}
	it.lastReturned = it.next
	it.next = it.next.next
	it.nextIndex++
	return it.lastReturned.value, nil
}

// Previous returns the previous element and moves the iterator before it.
func (it *ListIterator[E]) Previous() (E, error) {
	var zero E
	if err := it.checkMods(); err != nil {
		return zero, err
	}
	if !it.HasPrevious() {
		return zero, ErrNoSuchElement
	}
	if it.next == nil {
		it.next = it.list.tail
	} else {
		it.next = it.next.prev
	}
	it.lastReturned = it.next
	it.nextIndex--
	return it.lastReturned.value, nil
}

// Set replaces the element last returned by Next or Previous.
func (it *ListIterator[E]) Set(v E) error {
	if err := it.checkMods(); err != nil {
		return err
	}
	if it.lastReturned == nil {
		return ErrIllegalState
	}
	it.lastReturned.value = v
	return nil
}

// Remove removes the element last returned by Next or Previous. It cannot be
// called twice without a Next or Previous in between.
func (it *ListIterator[E]) Remove() error {
	if err := it.checkMods(); err != nil {
		return err
	}
	if it.lastReturned == nil {
		return ErrIllegalState
	}
	lastNext := it.lastReturned.next
	it.list.removeNode(it.lastReturned)
	if it.next == it.lastReturned {
		it.next = lastNext
	} else {
		it.nextIndex--
	}
	it.lastReturned = nil
	it.expectedMods = it.list.mods
	return nil
}

// Add inserts v right before the element Next would return, or at the end of
// the list. A following Next is unaffected; a following Previous returns v.
func (it *ListIterator[E]) Add(v E) error {
	if err := it.checkMods(); err != nil {
		return err
	}
	it.lastReturned = nil
	it.list.insertBefore(v, it.next)
	it.nextIndex++
	it.expectedMods = it.list.mods
	return nil
}

func (it *ListIterator[E]) checkMods() error {
	if it.list.mods != it.expectedMods {
		return ErrStaleIterator
	}
	return nil
}
