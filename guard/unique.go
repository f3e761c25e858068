package guard

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-guarded-collections/arr"
	"github.com/hasbyte1/go-guarded-collections/collections"
)

var (
	_ collections.Collection[int]         = (*UniqueCollection[int])(nil)
	_ collections.List[int]               = (*UniqueList[int])(nil)
	_ collections.Dictionary[string, int] = (*UniqueDictionary[string, int])(nil)
)

// Set is the read-only view of a uniqueness decorator's distinct-element
// index. It changes as the decorator is mutated.
type Set[T comparable] struct {
	m map[T]struct{}
}

func newSet[T comparable](items []T) *Set[T] {
	return &Set[T]{m: arr.ToSet(items)}
}

// Count returns the number of distinct elements.
func (s *Set[T]) Count() int { return len(s.m) }

// Contains reports whether v is in the index.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.m[v]
	return ok
}

// All returns the elements in unspecified order.
func (s *Set[T]) All() []T {
	out := make([]T, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	return out
}

func (s *Set[T]) add(v T) { s.m[v] = struct{}{} }
func (s *Set[T]) remove(v T) { delete(s.m, v) }
func (s *Set[T]) reset(items []T) {
	clear(s.m)
	for _, v := range items {
		s.m[v] = struct{}{}
	}
}

func duplicate(op string, item any) error {
	return violation(RuleUnique, op, item, ErrInvalidOperation, nil)
}

// dedupe removes repeated elements from c, keeping the first occurrence of
// each value. Lists lose the repeats in place; other collections are
// cleared and refilled in their original order. The repair is all or
// nothing: if c refuses any step, the storage beneath it is put back as it
// was and the refusal is returned.
func dedupe[T comparable](c collections.Collection[T]) error {
	items := c.All()
	dups := arr.DuplicateIndexes(items)
	if len(dups) == 0 {
		return nil
	}
	storage := storageOf(c)
	saved := storage.All()
	if err := dropIndexes(c, items, dups); err != nil {
		return rollback(err, func() error {
			if err := storage.Clear(); err != nil {
				return err
			}
			return collections.AddAll(storage, saved...)
		})
	}
	return nil
}

func dropIndexes[T comparable](c collections.Collection[T], items []T, dups []int) error {
	if l, ok := c.(collections.List[T]); ok {
		for i := len(dups) - 1; i >= 0; i-- {
			if err := l.RemoveAt(dups[i]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := c.Clear(); err != nil {
		return err
	}
	return collections.AddAll(c, arr.Unique(items)...)
}

// storageOf follows Inner down a stack of decorators to the collection
// that holds the elements.
func storageOf[T comparable](c collections.Collection[T]) collections.Collection[T] {
	for {
		switch d := c.(type) {
		case interface{ Inner() collections.List[T] }:
			c = d.Inner()
		case interface{ Inner() collections.Collection[T] }:
			c = d.Inner()
		default:
			return c
		}
	}
}

func dictStorageOf[K, V comparable](d collections.Dictionary[K, V]) collections.Dictionary[K, V] {
	for {
		inner, ok := d.(interface {
			Inner() collections.Dictionary[K, V]
		})
		if !ok {
			return d
		}
		d = inner.Inner()
	}
}

// rollback runs restore after a failed repair. The repair error is returned
// either way; a failed restore is joined to it.
func rollback(err error, restore func() error) error {
	if rerr := restore(); rerr != nil {
		return errors.Join(err, fmt.Errorf("restore contents: %w", rerr))
	}
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// UniqueCollection
// ─────────────────────────────────────────────────────────────────────────────

// UniqueCollection refuses duplicate elements.
//
// Wrapping a collection that already holds duplicates repairs it: the
// repeats are removed from the inner collection and the first occurrence of
// each value is kept. Afterwards Add of a value already present fails with
// ErrInvalidOperation and changes nothing.
//
// The distinct-element index follows every mutation made through the
// decorator. Mutations made directly on the inner collection are not seen;
// call Reindex after them.
type UniqueCollection[T comparable] struct {
	*collections.CollectionBase[T]
	index *Set[T]
}

// NewUniqueCollection wraps inner, removing any duplicates it holds.
func NewUniqueCollection[T comparable](inner collections.Collection[T]) (*UniqueCollection[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner collection")
	}
	if err := dedupe(inner); err != nil {
		return nil, err
	}
	return &UniqueCollection[T]{
		CollectionBase: collections.NewCollectionBase(inner, inheritFlags(inner)),
		index:          newSet(inner.All()),
	}, nil
}

// ElementsSet returns the distinct-element index.
func (c *UniqueCollection[T]) ElementsSet() *Set[T] { return c.index }

// Reindex removes duplicates introduced behind the decorator's back and
// rebuilds the index from the inner collection.
func (c *UniqueCollection[T]) Reindex() error {
	if err := dedupe(c.Inner()); err != nil {
		return err
	}
	c.index.reset(c.Inner().All())
	return nil
}

// Add refuses a value already present.
func (c *UniqueCollection[T]) Add(item T) error {
	if c.index.Contains(item) {
		return duplicate("add", item)
	}
	if err := c.CollectionBase.Add(item); err != nil {
		return err
	}
	c.index.add(item)
	return nil
}

// Remove drops item from the collection and the index.
func (c *UniqueCollection[T]) Remove(item T) (bool, error) {
	ok, err := c.CollectionBase.Remove(item)
	if err != nil {
		return false, err
	}
	if ok {
		c.index.remove(item)
	}
	return ok, nil
}

// Clear empties the collection and the index.
func (c *UniqueCollection[T]) Clear() error {
	if err := c.CollectionBase.Clear(); err != nil {
		return err
	}
	c.index.reset(nil)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UniqueList
// ─────────────────────────────────────────────────────────────────────────────

// UniqueList is the list form of [UniqueCollection]. Insert refuses a value
// already present; Set accepts a value only when it is new or equal to the
// element it replaces.
type UniqueList[T comparable] struct {
	*collections.ListBase[T]
	index *Set[T]
}

// NewUniqueList wraps inner, removing any duplicates it holds.
func NewUniqueList[T comparable](inner collections.List[T]) (*UniqueList[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner list")
	}
	if err := dedupe[T](inner); err != nil {
		return nil, err
	}
	return &UniqueList[T]{
		ListBase: collections.NewListBase(inner, inheritFlags(inner)),
		index:    newSet(inner.All()),
	}, nil
}

// ElementsSet returns the distinct-element index.
func (l *UniqueList[T]) ElementsSet() *Set[T] { return l.index }

// Reindex removes duplicates introduced behind the decorator's back and
// rebuilds the index from the inner list.
func (l *UniqueList[T]) Reindex() error {
	if err := dedupe[T](l.Inner()); err != nil {
		return err
	}
	l.index.reset(l.Inner().All())
	return nil
}

// Add refuses a value already present.
func (l *UniqueList[T]) Add(item T) error {
	if l.index.Contains(item) {
		return duplicate("add", item)
	}
	if err := l.ListBase.Add(item); err != nil {
		return err
	}
	l.index.add(item)
	return nil
}

// Insert refuses a value already present.
func (l *UniqueList[T]) Insert(index int, item T) error {
	if l.index.Contains(item) {
		return duplicate("insert", item)
	}
	if err := l.ListBase.Insert(index, item); err != nil {
		return err
	}
	l.index.add(item)
	return nil
}

// Set refuses a value held at another position.
func (l *UniqueList[T]) Set(index int, item T) error {
	current, err := l.ListBase.Get(index)
	if err != nil {
		return err
	}
	if current == item {
		return l.ListBase.Set(index, item)
	}
	if l.index.Contains(item) {
		return duplicate("set", item)
	}
	if err := l.ListBase.Set(index, item); err != nil {
		return err
	}
	l.index.remove(current)
	l.index.add(item)
	return nil
}

// Remove drops item from the list and the index.
func (l *UniqueList[T]) Remove(item T) (bool, error) {
	ok, err := l.ListBase.Remove(item)
	if err != nil {
		return false, err
	}
	if ok {
		l.index.remove(item)
	}
	return ok, nil
}

// RemoveAt drops the element at index from the list and the index.
func (l *UniqueList[T]) RemoveAt(index int) error {
	current, err := l.ListBase.Get(index)
	if err != nil {
		return err
	}
	if err := l.ListBase.RemoveAt(index); err != nil {
		return err
	}
	l.index.remove(current)
	return nil
}

// Clear empties the list and the index.
func (l *UniqueList[T]) Clear() error {
	if err := l.ListBase.Clear(); err != nil {
		return err
	}
	l.index.reset(nil)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UniqueDictionary
// ─────────────────────────────────────────────────────────────────────────────

// UniqueDictionary refuses a value that is already stored under another
// key. Keys are unique by contract, so its index holds the distinct values.
// Wrapping repairs existing duplicates by removing every key after the
// first, in enumeration order, that maps to a repeated value; if any
// removal is refused the dictionary is restored and wrapping fails.
type UniqueDictionary[K, V comparable] struct {
	*collections.DictionaryBase[K, V]
	index *Set[V]
}

func dedupeValues[K, V comparable](d collections.Dictionary[K, V]) error {
	entries := d.Entries()
	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	dups := arr.DuplicateIndexes(values)
	if len(dups) == 0 {
		return nil
	}
	storage := dictStorageOf(d)
	saved := storage.Entries()
	for _, i := range dups {
		if _, err := d.Remove(entries[i].Key); err != nil {
			return rollback(err, func() error {
				if err := storage.Clear(); err != nil {
					return err
				}
				for _, e := range saved {
					if err := storage.Set(e.Key, e.Value); err != nil {
						return err
					}
				}
				return nil
			})
		}
	}
	return nil
}

// NewUniqueDictionary wraps inner, removing entries whose value repeats.
func NewUniqueDictionary[K, V comparable](inner collections.Dictionary[K, V]) (*UniqueDictionary[K, V], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner dictionary")
	}
	if err := dedupeValues(inner); err != nil {
		return nil, err
	}
	return &UniqueDictionary[K, V]{
		DictionaryBase: collections.NewDictionaryBase(inner, inheritFlags(inner)),
		index:          newSet(inner.Values()),
	}, nil
}

// ElementsSet returns the distinct-value index.
func (d *UniqueDictionary[K, V]) ElementsSet() *Set[V] { return d.index }

// Reindex removes repeated values introduced behind the decorator's back and
// rebuilds the index from the inner dictionary.
func (d *UniqueDictionary[K, V]) Reindex() error {
	if err := dedupeValues(d.Inner()); err != nil {
		return err
	}
	d.index.reset(d.Inner().Values())
	return nil
}

// Add refuses a value already held by another key.
func (d *UniqueDictionary[K, V]) Add(key K, value V) error {
	if d.index.Contains(value) {
		return duplicate("add", value)
	}
	if err := d.DictionaryBase.Add(key, value); err != nil {
		return err
	}
	d.index.add(value)
	return nil
}

// Set refuses a value already held by another key.
func (d *UniqueDictionary[K, V]) Set(key K, value V) error {
	current, present, err := d.DictionaryBase.TryGetValue(key)
	if err != nil {
		return err
	}
	if present && current == value {
		return d.DictionaryBase.Set(key, value)
	}
	if d.index.Contains(value) {
		return duplicate("set", value)
	}
	if err := d.DictionaryBase.Set(key, value); err != nil {
		return err
	}
	if present {
		d.index.remove(current)
	}
	d.index.add(value)
	return nil
}

// Remove drops key and frees its value.
func (d *UniqueDictionary[K, V]) Remove(key K) (bool, error) {
	current, present, err := d.DictionaryBase.TryGetValue(key)
	if err != nil || !present {
		return false, err
	}
	ok, err := d.DictionaryBase.Remove(key)
	if err != nil {
		return false, err
	}
	if ok {
		d.index.remove(current)
	}
	return ok, nil
}

// Clear empties the dictionary and the index.
func (d *UniqueDictionary[K, V]) Clear() error {
	if err := d.DictionaryBase.Clear(); err != nil {
		return err
	}
	d.index.reset(nil)
	return nil
}
