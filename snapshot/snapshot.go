// Package snapshot encodes the elements of a list as a protobuf message of
// the form
//
//	message Snapshot {
//	  repeated bytes elements = 1;
//	}
//
// so that a list can be written out and loaded back in the same order.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"
	"github.com/kchristidis/itlist/itlist"
)

const elementsField = 1

// The tag of the elements field: field number and wire type.
const elementsKey = uint64(elementsField<<3 | proto.WireBytes)

// ErrTruncated is the error returned when the input ends in the middle of an
// element.
var ErrTruncated = errors.New("snapshot is truncated")

// ErrMalformed is the error returned when the input carries anything other
// than the elements field.
var ErrMalformed = errors.New("snapshot is malformed")

// Marshal encodes the elements of l, head to tail, using enc for each one.
// It does not move the list's cursor.
func Marshal[E comparable](l *itlist.List[E], enc func(E) ([]byte, error)) ([]byte, error) {
	buf := proto.NewBuffer(nil)
	for i, v := range l.Values() {
		b, err := enc(v)
		if err != nil {
			return nil, fmt.Errorf("cannot encode element %d: %w", i, err)
		}
		if err := buf.EncodeVarint(elementsKey); err != nil {
			return nil, err
		}
		if err := buf.EncodeRawBytes(b); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a snapshot produced by Marshal into a new list, using dec
// for each element. dec must not retain the slice it is given.
func Unmarshal[E comparable](b []byte, dec func([]byte) (E, error)) (*itlist.List[E], error) {
	l := itlist.New[E]()
	for i := 0; len(b) > 0; i++ {
		key, n := proto.DecodeVarint(b)
		if n == 0 {
			return nil, ErrTruncated
		}
		if key != elementsKey {
			return nil, fmt.Errorf("%w: unexpected key %d for element %d", ErrMalformed, key, i)
		}
		b = b[n:]

		size, n := proto.DecodeVarint(b)
		if n == 0 || uint64(len(b)-n) < size {
			return nil, ErrTruncated
		}
		b = b[n:]

		v, err := dec(b[:size])
		if err != nil {
			return nil, fmt.Errorf("cannot decode element %d: %w", i, err)
		}
		l.Append(v)
		b = b[size:]
	}
	return l, nil
}

// EncodeString is an element encoder for string lists.
func EncodeString(s string) ([]byte, error) {
	return []byte(s), nil
}

// DecodeString is an element decoder for string lists.
func DecodeString(b []byte) (string, error) {
	return string(b), nil
}
