package guard

import (
	"fmt"

	"github.com/hasbyte1/go-guarded-collections/collections"
)

// This file holds the As* factories. Each one takes an existing collection,
// checks or repairs its current contents, and returns a decorator that is
// itself a valid argument to another factory:
//
//	l, err := guard.AsNonNullableList(collections.Wrap(&tags))
//	u, err := guard.AsUniqueList[*Tag](l)

// inheritFlags keeps the inner collection's read-only and fixed-size flags.
// Decorators never report themselves synchronized.
func inheritFlags(info collections.Info) collections.Flags {
	return collections.Flags{ReadOnly: info.IsReadOnly(), FixedSize: info.IsFixedSize()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constraints
// ─────────────────────────────────────────────────────────────────────────────

// AsConstrained wraps l so that every element added from now on satisfies
// pred. Elements already in l must satisfy it too, otherwise the call fails
// with ErrInvalidOperation and no decorator is returned.
func AsConstrained[T comparable](l collections.List[T], pred func(T) bool) (*ConstrainedList[T], error) {
	if pred == nil {
		return nil, nilSource("predicate")
	}
	return AsChecked(l, Predicate(pred))
}

// AsChecked is [AsConstrained] with a [Check], for rules that explain why
// an element was refused (ozzo-validation rules, validator tags, registered
// constraints).
func AsChecked[T comparable](l collections.List[T], check Check[T]) (*ConstrainedList[T], error) {
	c, err := NewCheckedList(l, check)
	if err != nil {
		return nil, err
	}
	for i, item := range l.All() {
		if err := check(item); err != nil {
			return nil, violation(RuleConstraint, fmt.Sprintf("wrap (element %d)", i), item, ErrInvalidOperation, err)
		}
	}
	return c, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Immutability
// ─────────────────────────────────────────────────────────────────────────────

// AsImmutable returns a read-only view of l.
func AsImmutable[T comparable](l collections.List[T]) (*ImmutableList[T], error) {
	return NewImmutableList(l)
}

// ─────────────────────────────────────────────────────────────────────────────
// Size
// ─────────────────────────────────────────────────────────────────────────────

// AsMinSized wraps c with a minimum size. c must already hold at least min
// elements.
func AsMinSized[T comparable](c collections.Collection[T], min int) (*SizedCollection[T], error) {
	b, err := newBounds(min, 0, true, false)
	if err != nil {
		return nil, err
	}
	return newSizedCollection(c, b)
}

// AsMaxSized wraps c with a maximum size. c must not already hold more than
// max elements; a max of zero or less refuses every Add.
func AsMaxSized[T comparable](c collections.Collection[T], max int) (*SizedCollection[T], error) {
	b, err := newBounds(0, max, false, true)
	if err != nil {
		return nil, err
	}
	return newSizedCollection(c, b)
}

// AsSized wraps c with both bounds. min > max fails with ErrInvalidArgument;
// content outside [min, max] fails with ErrInvalidOperation.
func AsSized[T comparable](c collections.Collection[T], min, max int) (*SizedCollection[T], error) {
	return NewSizedCollection(c, min, max)
}

// AsSizedDictionary is [AsSized] for dictionaries.
func AsSizedDictionary[K, V comparable](d collections.Dictionary[K, V], min, max int) (*SizedDictionary[K, V], error) {
	return NewSizedDictionary(d, min, max)
}

// AsMaxSizedDictionary wraps d with a maximum number of entries.
func AsMaxSizedDictionary[K, V comparable](d collections.Dictionary[K, V], max int) (*SizedDictionary[K, V], error) {
	b, err := newBounds(0, max, false, true)
	if err != nil {
		return nil, err
	}
	return newSizedDictionary(d, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Nil rejection
// ─────────────────────────────────────────────────────────────────────────────

// AsNonNullable wraps c so that nil elements are refused.
func AsNonNullable[T comparable](c collections.Collection[T]) (*NonNullableCollection[T], error) {
	return NewNonNullableCollection(c)
}

// AsNonNullableList wraps l so that nil elements are refused.
func AsNonNullableList[T comparable](l collections.List[T]) (*NonNullableList[T], error) {
	return NewNonNullableList(l)
}

// AsNonNullableDictionary wraps d so that nil keys and values are refused.
func AsNonNullableDictionary[K, V comparable](d collections.Dictionary[K, V]) (*NonNullableDictionary[K, V], error) {
	return NewNonNullableDictionary(d)
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// AsUnique wraps c so that duplicates are refused, first removing any
// duplicates c already holds.
func AsUnique[T comparable](c collections.Collection[T]) (*UniqueCollection[T], error) {
	return NewUniqueCollection(c)
}

// AsUniqueList is [AsUnique] for lists; duplicates are removed in place.
func AsUniqueList[T comparable](l collections.List[T]) (*UniqueList[T], error) {
	return NewUniqueList(l)
}

// AsUniqueDictionary wraps d so that no two keys hold the same value.
func AsUniqueDictionary[K, V comparable](d collections.Dictionary[K, V]) (*UniqueDictionary[K, V], error) {
	return NewUniqueDictionary(d)
}
