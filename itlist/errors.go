package itlist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every error returned for an index argument
// outside the valid bound of an operation.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNoSuchElement is the error returned when a cursor is asked to step past
// either end of the list.
var ErrNoSuchElement = errors.New("no such element")

// ErrIllegalState is the error returned when a cursor is asked to modify the
// element it is positioned over, but it is not positioned over one.
var ErrIllegalState = errors.New("cursor is not positioned over an element")

// ErrNilCollection is the error returned when a bulk operation is given no
// collection.
var ErrNilCollection = errors.New("collection is nil")

// ErrStaleIterator is the error returned by a ListIterator after the list has
// been structurally modified by something other than the iterator itself.
var ErrStaleIterator = errors.New("list was modified outside of the iterator")

// IndexError reports an out-of-range index together with the size of the
// list at the time of the call.
type IndexError struct {
	Size  int
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range (size: %d, index: %d)", e.Size, e.Index)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold for any *IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
