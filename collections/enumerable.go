package collections

import "sync"

// Info is the descriptive part shared by every contract.
type Info interface {
	// Count returns the number of elements (or entries).
	Count() int

	// IsReadOnly reports whether mutating methods are refused.
	IsReadOnly() bool

	// IsFixedSize reports whether the number of elements can change.
	IsFixedSize() bool

	// IsSynchronized reports whether access is serialised internally.
	IsSynchronized() bool

	// SyncRoot returns a lock callers may use to serialise access. The
	// collection itself never takes it.
	SyncRoot() sync.Locker
}

// Collection is a mutable group of elements.
//
// Accept Collection in your own functions so that callers can pass a plain
// [SliceList] or any decorator from package guard interchangeably.
type Collection[T comparable] interface {
	Info

	// All returns a snapshot of every element in enumeration order.
	All() []T

	// Each calls fn(item, index) for every element in enumeration order.
	Each(fn func(T, int))

	// CopyTo copies every element into dst starting at index.
	CopyTo(dst []T, index int) error

	// Add appends item.
	Add(item T) error

	// Remove removes the first occurrence of item and reports whether one
	// was found.
	Remove(item T) (bool, error)

	// Clear removes every element.
	Clear() error

	// Contains reports whether item is present.
	Contains(item T) (bool, error)
}

// List is a Collection with positional access.
type List[T comparable] interface {
	Collection[T]

	// Get returns the element at index.
	Get(index int) (T, error)

	// Set replaces the element at index.
	Set(index int, item T) error

	// IndexOf returns the position of the first occurrence of item, or -1.
	IndexOf(item T) (int, error)

	// Insert places item at index, shifting later elements. index may equal
	// Count() to append.
	Insert(index int, item T) error

	// RemoveAt removes the element at index.
	RemoveAt(index int) error
}

// Dictionary is a mutable map from unique keys to values.
type Dictionary[K, V comparable] interface {
	Info

	// Keys returns a snapshot of the keys in enumeration order. Two calls
	// with no mutation in between return the same order.
	Keys() []K

	// Values returns a snapshot of the values in the same order as Keys.
	Values() []V

	// Entries returns a snapshot of key/value pairs in enumeration order.
	Entries() []Entry[K, V]

	// Each calls fn(key, value) for every entry.
	Each(fn func(K, V))

	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key K) (V, error)

	// Set stores value under key, adding or replacing.
	Set(key K, value V) error

	// TryGetValue returns the value under key and whether it was present.
	TryGetValue(key K) (V, bool, error)

	// Add stores value under a key that must not be present yet.
	Add(key K, value V) error

	// Remove deletes key and reports whether it was present.
	Remove(key K) (bool, error)

	// ContainsKey reports whether key is present.
	ContainsKey(key K) (bool, error)

	// Contains reports whether entry.Key is present with entry.Value.
	Contains(entry Entry[K, V]) (bool, error)

	// CopyTo copies every entry into dst starting at index.
	CopyTo(dst []Entry[K, V], index int) error

	// Clear removes every entry.
	Clear() error
}

// Flags are the descriptive flags a base reports in place of those of the
// collection it wraps.
type Flags struct {
	ReadOnly     bool
	FixedSize    bool
	Synchronized bool
}
