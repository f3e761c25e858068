package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional edits
// ─────────────────────────────────────────────────────────────────────────────

// Insert returns items with value inserted at index, shifting later elements
// right. index may equal len(items) to append. The returned slice may share
// the backing array of items.
func Insert[T any](items []T, index int, value T) ([]T, error) {
	if index < 0 || index > len(items) {
		return items, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(items))
	}
	var zero T
	items = append(items, zero)
	copy(items[index+1:], items[index:])
	items[index] = value
	return items, nil
}

// RemoveAt returns items with the element at index removed, shifting later
// elements left. The returned slice shares the backing array of items; the
// vacated tail slot is zeroed so it does not retain a reference.
func RemoveAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return items, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(items))
	}
	copy(items[index:], items[index+1:])
	var zero T
	items[len(items)-1] = zero
	return items[:len(items)-1], nil
}

// RemoveValue removes the first occurrence of value and reports whether one
// was found. Like [RemoveAt] it edits in place.
func RemoveValue[T comparable](items []T, value T) ([]T, bool) {
	i := IndexOf(items, value)
	if i < 0 {
		return items, false
	}
	out, _ := RemoveAt(items, i)
	return out, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// DuplicateIndexes returns, in ascending order, the positions of every
// element that repeats an earlier element. Removing those positions from the
// back leaves exactly [Unique](items).
func DuplicateIndexes[T comparable](items []T) []int {
	seen := make(map[T]struct{}, len(items))
	var out []int
	for i, item := range items {
		if _, ok := seen[item]; ok {
			out = append(out, i)
			continue
		}
		seen[item] = struct{}{}
	}
	return out
}

// HasDuplicates reports whether any value occurs more than once.
func HasDuplicates[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return true
		}
		seen[item] = struct{}{}
	}
	return false
}

// ToSet builds a membership map from items.
func ToSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
