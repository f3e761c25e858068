package collections

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-guarded-collections/arr"
)

var (
	_ Dictionary[string, int] = (*OrderedDict[string, int])(nil)
	_ Dictionary[string, int] = (*MapDict[string, int])(nil)
)

// ─────────────────────────────────────────────────────────────────────────────
// OrderedDict
// ─────────────────────────────────────────────────────────────────────────────

// OrderedDict is a [Dictionary] that enumerates entries in insertion order.
// Replacing the value of an existing key keeps its position.
type OrderedDict[K, V comparable] struct {
	values map[K]V
	keys   []K
	mu     sync.Mutex
}

// NewOrderedDict creates a dictionary holding entries in the given order.
// A later entry with a repeated key replaces the earlier value in place.
func NewOrderedDict[K, V comparable](entries ...Entry[K, V]) *OrderedDict[K, V] {
	d := &OrderedDict[K, V]{values: make(map[K]V, len(entries))}
	for _, e := range entries {
		_ = d.Set(e.Key, e.Value)
	}
	return d
}

// An OrderedDict is neither read-only nor synchronized.
func (d *OrderedDict[K, V]) Count() int { return len(d.keys) }
func (d *OrderedDict[K, V]) IsReadOnly() bool { return false }
func (d *OrderedDict[K, V]) IsFixedSize() bool { return false }
func (d *OrderedDict[K, V]) IsSynchronized() bool { return false }
func (d *OrderedDict[K, V]) SyncRoot() sync.Locker {
	return &d.mu
}

// Keys returns the keys in insertion order.
func (d *OrderedDict[K, V]) Keys() []K {
	out := make([]K, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns the values in insertion order of their keys.
func (d *OrderedDict[K, V]) Values() []V {
	out := make([]V, len(d.keys))
	for i, k := range d.keys {
		out[i] = d.values[k]
	}
	return out
}

// Entries returns the entries in insertion order.
func (d *OrderedDict[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(d.keys))
	for i, k := range d.keys {
		out[i] = Entry[K, V]{Key: k, Value: d.values[k]}
	}
	return out
}

// Each calls fn(key, value) in insertion order.
func (d *OrderedDict[K, V]) Each(fn func(K, V)) {
	for _, k := range d.keys {
		fn(k, d.values[k])
	}
}

// Get returns the value under key.
func (d *OrderedDict[K, V]) Get(key K) (V, error) {
	v, ok := d.values[key]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// TryGetValue returns the value under key and whether it was present.
func (d *OrderedDict[K, V]) TryGetValue(key K) (V, bool, error) {
	v, ok := d.values[key]
	return v, ok, nil
}

// Set adds or replaces the value under key.
func (d *OrderedDict[K, V]) Set(key K, value V) error {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return nil
}

// Add stores value under a new key.
func (d *OrderedDict[K, V]) Add(key K, value V) error {
	if _, ok := d.values[key]; ok {
		return fmt.Errorf("%w: key %v already present", ErrInvalidArgument, key)
	}
	return d.Set(key, value)
}

// Remove deletes key.
func (d *OrderedDict[K, V]) Remove(key K) (bool, error) {
	if _, ok := d.values[key]; !ok {
		return false, nil
	}
	delete(d.values, key)
	d.keys, _ = arr.RemoveValue(d.keys, key)
	return true, nil
}

// ContainsKey reports whether key is present.
func (d *OrderedDict[K, V]) ContainsKey(key K) (bool, error) {
	_, ok := d.values[key]
	return ok, nil
}

// Contains reports whether entry.Key maps to entry.Value.
func (d *OrderedDict[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	v, ok := d.values[entry.Key]
	return ok && v == entry.Value, nil
}

// CopyTo copies the entries into dst starting at index.
func (d *OrderedDict[K, V]) CopyTo(dst []Entry[K, V], index int) error {
	return copyInto(d.Entries(), dst, index)
}

// Clear removes every entry.
func (d *OrderedDict[K, V]) Clear() error {
	clear(d.values)
	clear(d.keys)
	d.keys = d.keys[:0]
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// MapDict
// ─────────────────────────────────────────────────────────────────────────────

// MapDict is a [Dictionary] view over a caller-owned Go map. Writes through
// the MapDict are visible in the map and vice versa. Keys are enumerated in
// the order they were first seen, which for keys added to the map directly
// is Go map iteration order.
type MapDict[K, V comparable] struct {
	m     map[K]V
	order keyOrder[K]
	mu    sync.Mutex
}

// WrapMap creates a dictionary view over m. A nil map yields an empty
// dictionary with its own storage, since a nil map cannot be written.
func WrapMap[K, V comparable](m map[K]V) *MapDict[K, V] {
	if m == nil {
		m = make(map[K]V)
	}
	return &MapDict[K, V]{m: m}
}

// Flags match OrderedDict.
func (d *MapDict[K, V]) Count() int { return len(d.m) }
func (d *MapDict[K, V]) IsReadOnly() bool { return false }
func (d *MapDict[K, V]) IsFixedSize() bool { return false }
func (d *MapDict[K, V]) IsSynchronized() bool { return false }
func (d *MapDict[K, V]) SyncRoot() sync.Locker { return &d.mu }

func (d *MapDict[K, V]) keys() []K {
	return d.order.resolve(
		func(k K) bool {
			_, ok := d.m[k]
			return ok
		},
		func(yield func(K)) {
			for k := range d.m {
				yield(k)
			}
		},
	)
}

// Keys returns the keys. Go map order is unspecified, but repeated calls
// return surviving keys in the same order, and Values, Entries and Each
// follow it.
func (d *MapDict[K, V]) Keys() []K { return d.keys() }

// Values returns the values in the order of Keys.
func (d *MapDict[K, V]) Values() []V {
	keys := d.keys()
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = d.m[k]
	}
	return out
}

// Entries returns the entries in the order of Keys.
func (d *MapDict[K, V]) Entries() []Entry[K, V] {
	keys := d.keys()
	out := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		out[i] = Entry[K, V]{Key: k, Value: d.m[k]}
	}
	return out
}

// Each calls fn(key, value) for every entry in the order of Keys.
func (d *MapDict[K, V]) Each(fn func(K, V)) {
	for _, k := range d.keys() {
		fn(k, d.m[k])
	}
}

// Get returns the value under key.
func (d *MapDict[K, V]) Get(key K) (V, error) {
	v, ok := d.m[key]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// TryGetValue returns the value under key and whether it was present.
func (d *MapDict[K, V]) TryGetValue(key K) (V, bool, error) {
	v, ok := d.m[key]
	return v, ok, nil
}

// Set adds or replaces the value under key.
func (d *MapDict[K, V]) Set(key K, value V) error {
	d.m[key] = value
	return nil
}

// Add stores value under a new key.
func (d *MapDict[K, V]) Add(key K, value V) error {
	if _, ok := d.m[key]; ok {
		return fmt.Errorf("%w: key %v already present", ErrInvalidArgument, key)
	}
	d.m[key] = value
	return nil
}

// Remove deletes key.
func (d *MapDict[K, V]) Remove(key K) (bool, error) {
	_, ok := d.m[key]
	delete(d.m, key)
	return ok, nil
}

// ContainsKey reports whether key is present.
func (d *MapDict[K, V]) ContainsKey(key K) (bool, error) {
	_, ok := d.m[key]
	return ok, nil
}

// Contains reports whether entry.Key maps to entry.Value.
func (d *MapDict[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	v, ok := d.m[entry.Key]
	return ok && v == entry.Value, nil
}

// CopyTo copies the entries into dst starting at index.
func (d *MapDict[K, V]) CopyTo(dst []Entry[K, V], index int) error {
	return copyInto(d.Entries(), dst, index)
}

// Clear removes every entry from the underlying map.
func (d *MapDict[K, V]) Clear() error {
	clear(d.m)
	return nil
}
