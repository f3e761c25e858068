package collections

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hasbyte1/go-guarded-collections/arr"
)

var _ List[int] = (*SliceList[int])(nil)

// SliceList is a [List] stored in a Go slice.
//
// A SliceList created with [Wrap] is a view over the caller's slice variable:
// every mutation is written back through the pointer, and changes the caller
// makes to the variable are visible on the next call. A SliceList created
// with [NewList] owns its storage.
//
// SliceList performs no locking.
type SliceList[T comparable] struct {
	items *[]T
	mu    sync.Mutex
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewList creates a list that owns a copy of items.
func NewList[T comparable](items ...T) *SliceList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &SliceList[T]{items: &dst}
}

// Wrap creates a list view over *items. A nil pointer yields an empty list
// with its own storage.
func Wrap[T comparable](items *[]T) *SliceList[T] {
	if items == nil {
		items = new([]T)
	}
	return &SliceList[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements.
func (l *SliceList[T]) Count() int { return len(*l.items) }

// IsReadOnly always reports false.
func (l *SliceList[T]) IsReadOnly() bool { return false }

// IsFixedSize always reports false.
func (l *SliceList[T]) IsFixedSize() bool { return false }

// IsSynchronized always reports false.
func (l *SliceList[T]) IsSynchronized() bool { return false }

// SyncRoot returns the list's lock. The list never takes it.
func (l *SliceList[T]) SyncRoot() sync.Locker { return &l.mu }

// All returns a copy of the elements.
func (l *SliceList[T]) All() []T {
	out := make([]T, len(*l.items))
	copy(out, *l.items)
	return out
}

// Each calls fn(item, index) for every element.
func (l *SliceList[T]) Each(fn func(T, int)) {
	for i, item := range *l.items {
		fn(item, i)
	}
}

// CopyTo copies the elements into dst starting at index.
func (l *SliceList[T]) CopyTo(dst []T, index int) error {
	return copyInto(*l.items, dst, index)
}

// Contains reports whether item is present.
func (l *SliceList[T]) Contains(item T) (bool, error) {
	return arr.ContainsValue(*l.items, item), nil
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (l *SliceList[T]) IndexOf(item T) (int, error) {
	return arr.IndexOf(*l.items, item), nil
}

// Get returns the element at index.
func (l *SliceList[T]) Get(index int) (T, error) {
	if err := checkIndex(index, len(*l.items)); err != nil {
		var zero T
		return zero, err
	}
	return (*l.items)[index], nil
}

// ToJSON serialises the elements to a JSON array.
func (l *SliceList[T]) ToJSON() ([]byte, error) {
	return json.Marshal(*l.items)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *SliceList[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", *l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Add appends item.
func (l *SliceList[T]) Add(item T) error {
	*l.items = append(*l.items, item)
	return nil
}

// Set replaces the element at index.
func (l *SliceList[T]) Set(index int, item T) error {
	if err := checkIndex(index, len(*l.items)); err != nil {
		return err
	}
	(*l.items)[index] = item
	return nil
}

// Insert places item at index. index may equal Count() to append.
func (l *SliceList[T]) Insert(index int, item T) error {
	if index < 0 || index > len(*l.items) {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(*l.items))
	}
	out, _ := arr.Insert(*l.items, index, item)
	*l.items = out
	return nil
}

// Remove removes the first occurrence of item.
func (l *SliceList[T]) Remove(item T) (bool, error) {
	out, ok := arr.RemoveValue(*l.items, item)
	*l.items = out
	return ok, nil
}

// RemoveAt removes the element at index.
func (l *SliceList[T]) RemoveAt(index int) error {
	if err := checkIndex(index, len(*l.items)); err != nil {
		return err
	}
	out, _ := arr.RemoveAt(*l.items, index)
	*l.items = out
	return nil
}

// Clear removes every element, keeping the capacity of the slice.
func (l *SliceList[T]) Clear() error {
	clear(*l.items)
	*l.items = (*l.items)[:0]
	return nil
}
