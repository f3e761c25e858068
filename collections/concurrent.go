package collections

import (
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

var _ Dictionary[string, int] = (*ConcurrentDict[string, int])(nil)

// ConcurrentDict is a [Dictionary] backed by xsync.MapOf. Individual
// operations are safe for concurrent use and it reports IsSynchronized.
// Keys are enumerated in the order they were first seen. Snapshots taken
// while other goroutines write are not atomic.
//
// Wrapping a ConcurrentDict in a decorator does not make the decorator
// synchronized: decorators read and then write in separate steps.
type ConcurrentDict[K, V comparable] struct {
	m     *xsync.MapOf[K, V]
	order keyOrder[K]
	mu    sync.Mutex
}

// NewConcurrentDict creates an empty concurrent dictionary.
func NewConcurrentDict[K, V comparable](entries ...Entry[K, V]) *ConcurrentDict[K, V] {
	d := &ConcurrentDict[K, V]{m: xsync.NewMapOf[K, V]()}
	for _, e := range entries {
		d.m.Store(e.Key, e.Value)
	}
	return d
}

// A ConcurrentDict is always synchronized and never read-only.
func (d *ConcurrentDict[K, V]) Count() int { return d.m.Size() }
func (d *ConcurrentDict[K, V]) IsReadOnly() bool { return false }
func (d *ConcurrentDict[K, V]) IsFixedSize() bool { return false }
func (d *ConcurrentDict[K, V]) IsSynchronized() bool { return true }
func (d *ConcurrentDict[K, V]) SyncRoot() sync.Locker { return &d.mu }

func (d *ConcurrentDict[K, V]) keys() []K {
	return d.order.resolve(
		func(k K) bool {
			_, ok := d.m.Load(k)
			return ok
		},
		func(yield func(K)) {
			d.m.Range(func(k K, _ V) bool {
				yield(k)
				return true
			})
		},
	)
}

// Keys returns the keys. Repeated calls return surviving keys in the same
// order, and Values, Entries and Each follow it.
func (d *ConcurrentDict[K, V]) Keys() []K { return d.keys() }

// Values returns the values in the order of Keys. A key deleted by another
// goroutine between the two steps is skipped.
func (d *ConcurrentDict[K, V]) Values() []V {
	keys := d.keys()
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		if v, ok := d.m.Load(k); ok {
			out = append(out, v)
		}
	}
	return out
}

// Entries returns the entries in the order of Keys.
func (d *ConcurrentDict[K, V]) Entries() []Entry[K, V] {
	keys := d.keys()
	out := make([]Entry[K, V], 0, len(keys))
	for _, k := range keys {
		if v, ok := d.m.Load(k); ok {
			out = append(out, Entry[K, V]{Key: k, Value: v})
		}
	}
	return out
}

// Each calls fn(key, value) for every entry in the order of Keys.
func (d *ConcurrentDict[K, V]) Each(fn func(K, V)) {
	for _, k := range d.keys() {
		if v, ok := d.m.Load(k); ok {
			fn(k, v)
		}
	}
}

// Get returns the value under key.
func (d *ConcurrentDict[K, V]) Get(key K) (V, error) {
	v, ok := d.m.Load(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// TryGetValue returns the value under key and whether it was present.
func (d *ConcurrentDict[K, V]) TryGetValue(key K) (V, bool, error) {
	v, ok := d.m.Load(key)
	return v, ok, nil
}

// Set adds or replaces the value under key.
func (d *ConcurrentDict[K, V]) Set(key K, value V) error {
	d.m.Store(key, value)
	return nil
}

// Add stores value under a new key. The presence check and the store are a
// single atomic step.
func (d *ConcurrentDict[K, V]) Add(key K, value V) error {
	if _, loaded := d.m.LoadOrStore(key, value); loaded {
		return fmt.Errorf("%w: key %v already present", ErrInvalidArgument, key)
	}
	return nil
}

// Remove deletes key.
func (d *ConcurrentDict[K, V]) Remove(key K) (bool, error) {
	_, ok := d.m.LoadAndDelete(key)
	return ok, nil
}

// ContainsKey reports whether key is present.
func (d *ConcurrentDict[K, V]) ContainsKey(key K) (bool, error) {
	_, ok := d.m.Load(key)
	return ok, nil
}

// Contains reports whether entry.Key maps to entry.Value.
func (d *ConcurrentDict[K, V]) Contains(entry Entry[K, V]) (bool, error) {
	v, ok := d.m.Load(entry.Key)
	return ok && v == entry.Value, nil
}

// CopyTo copies the entries into dst starting at index.
func (d *ConcurrentDict[K, V]) CopyTo(dst []Entry[K, V], index int) error {
	return copyInto(d.Entries(), dst, index)
}

// Clear removes every entry.
func (d *ConcurrentDict[K, V]) Clear() error {
	d.m.Clear()
	return nil
}
