package collections

import (
	"fmt"
	"reflect"
)

// This file contains package-level generic helpers that work against the
// contracts rather than a concrete type, so they behave the same on plain
// storage and on decorators.

// AddAll adds items to c in order and stops at the first failure. The error
// names the position of the rejected item; earlier items stay added.
//
//	err := collections.AddAll(guard.AsNonNullable(c), a, b, nil)
//	// err wraps ErrNilArgument, a and b were added
func AddAll[T comparable](c Collection[T], items ...T) error {
	for i, item := range items {
		if err := c.Add(item); err != nil {
			return fmt.Errorf("add item %d: %w", i, err)
		}
	}
	return nil
}

// ContainsAll reports whether every item is present in c.
func ContainsAll[T comparable](c Collection[T], items ...T) (bool, error) {
	for _, item := range items {
		ok, err := c.Contains(item)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// IsNil reports whether v is a nil pointer, interface, map, slice, channel or
// func. Values of other kinds are never nil.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsNillable reports whether values of type T can be nil.
func IsNillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// copyInto implements CopyTo for every storage type.
func copyInto[T any](src, dst []T, index int) error {
	if dst == nil {
		return fmt.Errorf("%w: copy target", ErrNilArgument)
	}
	if index < 0 || index > len(dst) {
		return fmt.Errorf("%w: %d (target length %d)", ErrIndexOutOfRange, index, len(dst))
	}
	if len(dst)-index < len(src) {
		return fmt.Errorf("%w: target has room for %d of %d elements", ErrInvalidArgument, len(dst)-index, len(src))
	}
	copy(dst[index:], src)
	return nil
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, count)
	}
	return nil
}
