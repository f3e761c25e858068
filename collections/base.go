package collections

import "sync"

var (
	_ Collection[int]         = (*CollectionBase[int])(nil)
	_ List[int]               = (*ListBase[int])(nil)
	_ Dictionary[string, int] = (*DictionaryBase[string, int])(nil)
)

// ─────────────────────────────────────────────────────────────────────────────
// CollectionBase
// ─────────────────────────────────────────────────────────────────────────────

// CollectionBase forwards the [Collection] contract to an inner collection
// and reports its own [Flags].
//
// The inner collection is borrowed, not copied: changes made to it by other
// holders are visible through the base, and are not checked by any
// decorator built on it.
type CollectionBase[T comparable] struct {
	inner Collection[T]
	flags Flags
	mu    sync.Mutex
}

// NewCollectionBase creates a base over inner.
func NewCollectionBase[T comparable](inner Collection[T], flags Flags) *CollectionBase[T] {
	return &CollectionBase[T]{inner: inner, flags: flags}
}

// Inner returns the wrapped collection.
func (b *CollectionBase[T]) Inner() Collection[T] { return b.inner }

// Flags returns the flags the base reports.
func (b *CollectionBase[T]) Flags() Flags { return b.flags }

// Count comes from the inner collection; the flags are the base's own.
func (b *CollectionBase[T]) Count() int { return b.inner.Count() }
func (b *CollectionBase[T]) IsReadOnly() bool { return b.flags.ReadOnly }
func (b *CollectionBase[T]) IsFixedSize() bool { return b.flags.FixedSize }
func (b *CollectionBase[T]) IsSynchronized() bool { return b.flags.Synchronized }
func (b *CollectionBase[T]) SyncRoot() sync.Locker { return &b.mu }

// Reads pass straight through.
func (b *CollectionBase[T]) All() []T { return b.inner.All() }
func (b *CollectionBase[T]) Each(fn func(T, int)) { b.inner.Each(fn) }

// CopyTo copies the inner elements into dst starting at index.
func (b *CollectionBase[T]) CopyTo(dst []T, index int) error {
	return b.inner.CopyTo(dst, index)
}

// Add forwards to the inner collection.
func (b *CollectionBase[T]) Add(item T) error { return b.inner.Add(item) }

// Remove forwards to the inner collection.
func (b *CollectionBase[T]) Remove(item T) (bool, error) { return b.inner.Remove(item) }

// Clear forwards to the inner collection.
func (b *CollectionBase[T]) Clear() error { return b.inner.Clear() }

// Contains forwards to the inner collection.
func (b *CollectionBase[T]) Contains(item T) (bool, error) { return b.inner.Contains(item) }

// ─────────────────────────────────────────────────────────────────────────────
// ListBase
// ─────────────────────────────────────────────────────────────────────────────

// ListBase extends [CollectionBase] with the positional part of [List].
type ListBase[T comparable] struct {
	*CollectionBase[T]
	list List[T]
}

// NewListBase creates a base over inner.
func NewListBase[T comparable](inner List[T], flags Flags) *ListBase[T] {
	return &ListBase[T]{CollectionBase: NewCollectionBase[T](inner, flags), list: inner}
}

// Inner returns the wrapped list.
func (b *ListBase[T]) Inner() List[T] { return b.list }

// Get forwards to the inner list.
func (b *ListBase[T]) Get(index int) (T, error) { return b.list.Get(index) }

// Set forwards to the inner list.
func (b *ListBase[T]) Set(index int, item T) error { return b.list.Set(index, item) }

// IndexOf forwards to the inner list.
func (b *ListBase[T]) IndexOf(item T) (int, error) { return b.list.IndexOf(item) }

// Insert forwards to the inner list.
func (b *ListBase[T]) Insert(index int, item T) error { return b.list.Insert(index, item) }

// RemoveAt forwards to the inner list.
func (b *ListBase[T]) RemoveAt(index int) error { return b.list.RemoveAt(index) }

// ─────────────────────────────────────────────────────────────────────────────
// DictionaryBase
// ─────────────────────────────────────────────────────────────────────────────

// DictionaryBase forwards the [Dictionary] contract to an inner dictionary
// and reports its own [Flags].
type DictionaryBase[K, V comparable] struct {
	inner Dictionary[K, V]
	flags Flags
	mu    sync.Mutex
}

// NewDictionaryBase creates a base over inner.
func NewDictionaryBase[K, V comparable](inner Dictionary[K, V], flags Flags) *DictionaryBase[K, V] {
	return &DictionaryBase[K, V]{inner: inner, flags: flags}
}

// Inner returns the wrapped dictionary.
func (b *DictionaryBase[K, V]) Inner() Dictionary[K, V] { return b.inner }

// Flags returns the flags the base reports.
func (b *DictionaryBase[K, V]) Flags() Flags { return b.flags }

// Count comes from the inner dictionary; the flags are the base's own.
func (b *DictionaryBase[K, V]) Count() int { return b.inner.Count() }
func (b *DictionaryBase[K, V]) IsReadOnly() bool { return b.flags.ReadOnly }
func (b *DictionaryBase[K, V]) IsFixedSize() bool { return b.flags.FixedSize }
func (b *DictionaryBase[K, V]) IsSynchronized() bool { return b.flags.Synchronized }
func (b *DictionaryBase[K, V]) SyncRoot() sync.Locker { return &b.mu }

// Enumeration follows the inner dictionary's order.
func (b *DictionaryBase[K, V]) Keys() []K { return b.inner.Keys() }
func (b *DictionaryBase[K, V]) Values() []V { return b.inner.Values() }
func (b *DictionaryBase[K, V]) Entries() []Entry[K, V] { return b.inner.Entries() }
func (b *DictionaryBase[K, V]) Each(fn func(K, V)) { b.inner.Each(fn) }

// CopyTo copies the inner entries into dst starting at index.
func (b *DictionaryBase[K, V]) CopyTo(dst []Entry[K, V], index int) error {
	return b.inner.CopyTo(dst, index)
}

// Get forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) Get(key K) (V, error) { return b.inner.Get(key) }

// TryGetValue forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) TryGetValue(key K) (V, bool, error) {
	return b.inner.TryGetValue(key)
}

// Set forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) Set(key K, value V) error { return b.inner.Set(key, value) }

// Add forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) Add(key K, value V) error { return b.inner.Add(key, value) }

// Remove forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) Remove(key K) (bool, error) { return b.inner.Remove(key) }

// ContainsKey forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) ContainsKey(key K) (bool, error) { return b.inner.ContainsKey(key) }

// Contains forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	return b.inner.Contains(entry)
}

// Clear forwards to the inner dictionary.
func (b *DictionaryBase[K, V]) Clear() error { return b.inner.Clear() }
