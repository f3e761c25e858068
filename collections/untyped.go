package collections

import (
	"fmt"
	"reflect"
	"sync"
)

// AnyCollection is the any-typed form of [Collection].
type AnyCollection interface {
	Count() int
	IsReadOnly() bool
	IsSynchronized() bool
	SyncRoot() sync.Locker
	Items() []any
	CopyTo(dst []any, index int) error
	Add(item any) error
	Remove(item any) (bool, error)
	Contains(item any) (bool, error)
	Clear() error
}

// AnyList is the any-typed form of [List].
type AnyList interface {
	AnyCollection
	IsFixedSize() bool
	Get(index int) (any, error)
	Set(index int, item any) error
	IndexOf(item any) (int, error)
	Insert(index int, item any) error
	RemoveAt(index int) error
}

// AnyDictionary is the any-typed form of [Dictionary]. Items and CopyTo
// deal in Entry[K, V] values.
type AnyDictionary interface {
	AnyCollection
	IsFixedSize() bool
	Keys() []any
	Values() []any
	Get(key any) (any, error)
	Set(key, value any) error
	AddEntry(key, value any) error
	RemoveKey(key any) (bool, error)
	ContainsKey(key any) (bool, error)
}

var (
	_ AnyCollection = (*UntypedCollection[int])(nil)
	_ AnyList       = (*UntypedListAdapter[int])(nil)
	_ AnyDictionary = (*UntypedDictionaryAdapter[string, int])(nil)
)

// castTo converts v to T. An untyped nil becomes the zero value when T can
// hold nil.
func castTo[T any](v any) (T, error) {
	var zero T
	if v == nil {
		if IsNillable[T]() {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: nil is not assignable to %s", ErrInvalidArgument, reflect.TypeFor[T]())
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not assignable to %s", ErrInvalidArgument, v, reflect.TypeFor[T]())
	}
	return t, nil
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// UntypedCollection
// ─────────────────────────────────────────────────────────────────────────────

// UntypedCollection adapts a [Collection] to [AnyCollection].
type UntypedCollection[T comparable] struct {
	c Collection[T]
}

// Untyped returns the any-typed view of c.
func Untyped[T comparable](c Collection[T]) *UntypedCollection[T] {
	return &UntypedCollection[T]{c: c}
}

// Typed returns the wrapped collection.
func (u *UntypedCollection[T]) Typed() Collection[T] { return u.c }

// Flags and size come from the typed collection.
func (u *UntypedCollection[T]) Count() int { return u.c.Count() }
func (u *UntypedCollection[T]) IsReadOnly() bool { return u.c.IsReadOnly() }
func (u *UntypedCollection[T]) IsSynchronized() bool { return u.c.IsSynchronized() }
func (u *UntypedCollection[T]) SyncRoot() sync.Locker { return u.c.SyncRoot() }
func (u *UntypedCollection[T]) Items() []any { return toAny(u.c.All()) }

// CopyTo copies the elements into dst as any values.
func (u *UntypedCollection[T]) CopyTo(dst []any, index int) error {
	return copyInto(u.Items(), dst, index)
}

// Add converts item to T and adds it.
func (u *UntypedCollection[T]) Add(item any) error {
	t, err := castTo[T](item)
	if err != nil {
		return err
	}
	return u.c.Add(t)
}

// Remove converts item to T and removes it.
func (u *UntypedCollection[T]) Remove(item any) (bool, error) {
	t, err := castTo[T](item)
	if err != nil {
		return false, err
	}
	return u.c.Remove(t)
}

// Contains converts item to T and looks it up.
func (u *UntypedCollection[T]) Contains(item any) (bool, error) {
	t, err := castTo[T](item)
	if err != nil {
		return false, err
	}
	return u.c.Contains(t)
}

// Clear empties the typed collection.
func (u *UntypedCollection[T]) Clear() error { return u.c.Clear() }

// ─────────────────────────────────────────────────────────────────────────────
// UntypedListAdapter
// ─────────────────────────────────────────────────────────────────────────────

// UntypedListAdapter adapts a [List] to [AnyList].
type UntypedListAdapter[T comparable] struct {
	*UntypedCollection[T]
	l List[T]
}

// UntypedList returns the any-typed view of l.
func UntypedList[T comparable](l List[T]) *UntypedListAdapter[T] {
	return &UntypedListAdapter[T]{UntypedCollection: Untyped[T](l), l: l}
}

// IsFixedSize reports the typed list's flag.
func (u *UntypedListAdapter[T]) IsFixedSize() bool { return u.l.IsFixedSize() }

// Get returns the element at index as any.
func (u *UntypedListAdapter[T]) Get(index int) (any, error) {
	v, err := u.l.Get(index)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set converts item to T and stores it at index.
func (u *UntypedListAdapter[T]) Set(index int, item any) error {
	t, err := castTo[T](item)
	if err != nil {
		return err
	}
	return u.l.Set(index, t)
}

// IndexOf converts item to T and finds it.
func (u *UntypedListAdapter[T]) IndexOf(item any) (int, error) {
	t, err := castTo[T](item)
	if err != nil {
		return -1, err
	}
	return u.l.IndexOf(t)
}

// Insert converts item to T and places it at index.
func (u *UntypedListAdapter[T]) Insert(index int, item any) error {
	t, err := castTo[T](item)
	if err != nil {
		return err
	}
	return u.l.Insert(index, t)
}

// RemoveAt needs no conversion.
func (u *UntypedListAdapter[T]) RemoveAt(index int) error { return u.l.RemoveAt(index) }

// ─────────────────────────────────────────────────────────────────────────────
// UntypedDictionaryAdapter
// ─────────────────────────────────────────────────────────────────────────────

// UntypedDictionaryAdapter adapts a [Dictionary] to [AnyDictionary]. As an
// [AnyCollection] its elements are Entry[K, V] values.
type UntypedDictionaryAdapter[K, V comparable] struct {
	d Dictionary[K, V]
}

// UntypedDictionary returns the any-typed view of d.
func UntypedDictionary[K, V comparable](d Dictionary[K, V]) *UntypedDictionaryAdapter[K, V] {
	return &UntypedDictionaryAdapter[K, V]{d: d}
}

// Typed returns the wrapped dictionary.
func (u *UntypedDictionaryAdapter[K, V]) Typed() Dictionary[K, V] { return u.d }

// Reads box the typed results.
func (u *UntypedDictionaryAdapter[K, V]) Count() int { return u.d.Count() }
func (u *UntypedDictionaryAdapter[K, V]) IsReadOnly() bool { return u.d.IsReadOnly() }
func (u *UntypedDictionaryAdapter[K, V]) IsFixedSize() bool { return u.d.IsFixedSize() }
func (u *UntypedDictionaryAdapter[K, V]) IsSynchronized() bool { return u.d.IsSynchronized() }
func (u *UntypedDictionaryAdapter[K, V]) SyncRoot() sync.Locker { return u.d.SyncRoot() }
func (u *UntypedDictionaryAdapter[K, V]) Items() []any { return toAny(u.d.Entries()) }
func (u *UntypedDictionaryAdapter[K, V]) Keys() []any { return toAny(u.d.Keys()) }
func (u *UntypedDictionaryAdapter[K, V]) Values() []any { return toAny(u.d.Values()) }

// CopyTo copies the entries into dst as Entry[K, V] values.
func (u *UntypedDictionaryAdapter[K, V]) CopyTo(dst []any, index int) error {
	return copyInto(u.Items(), dst, index)
}

// Add accepts an Entry[K, V].
func (u *UntypedDictionaryAdapter[K, V]) Add(item any) error {
	e, err := castTo[Entry[K, V]](item)
	if err != nil {
		return err
	}
	return u.d.Add(e.Key, e.Value)
}

// Remove accepts an Entry[K, V] and removes its key only when the stored
// value matches.
func (u *UntypedDictionaryAdapter[K, V]) Remove(item any) (bool, error) {
	e, err := castTo[Entry[K, V]](item)
	if err != nil {
		return false, err
	}
	ok, err := u.d.Contains(e)
	if err != nil || !ok {
		return false, err
	}
	return u.d.Remove(e.Key)
}

// Contains accepts an Entry[K, V].
func (u *UntypedDictionaryAdapter[K, V]) Contains(item any) (bool, error) {
	e, err := castTo[Entry[K, V]](item)
	if err != nil {
		return false, err
	}
	return u.d.Contains(e)
}

// Clear empties the typed dictionary.
func (u *UntypedDictionaryAdapter[K, V]) Clear() error { return u.d.Clear() }

// Get converts key to K and returns its value as any.
func (u *UntypedDictionaryAdapter[K, V]) Get(key any) (any, error) {
	k, err := castTo[K](key)
	if err != nil {
		return nil, err
	}
	v, err := u.d.Get(k)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set converts key and value and stores them.
func (u *UntypedDictionaryAdapter[K, V]) Set(key, value any) error {
	k, v, err := castEntry[K, V](key, value)
	if err != nil {
		return err
	}
	return u.d.Set(k, v)
}

// AddEntry converts key and value and adds them under a new key.
func (u *UntypedDictionaryAdapter[K, V]) AddEntry(key, value any) error {
	k, v, err := castEntry[K, V](key, value)
	if err != nil {
		return err
	}
	return u.d.Add(k, v)
}

// RemoveKey converts key to K and removes it.
func (u *UntypedDictionaryAdapter[K, V]) RemoveKey(key any) (bool, error) {
	k, err := castTo[K](key)
	if err != nil {
		return false, err
	}
	return u.d.Remove(k)
}

// ContainsKey converts key to K and looks it up.
func (u *UntypedDictionaryAdapter[K, V]) ContainsKey(key any) (bool, error) {
	k, err := castTo[K](key)
	if err != nil {
		return false, err
	}
	return u.d.ContainsKey(k)
}

func castEntry[K, V any](key, value any) (K, V, error) {
	var v V
	k, err := castTo[K](key)
	if err != nil {
		return k, v, err
	}
	v, err = castTo[V](value)
	return k, v, err
}
