package guard

import (
	"fmt"

	"github.com/hasbyte1/go-guarded-collections/collections"
)

var (
	_ collections.Collection[int]         = (*SizedCollection[int])(nil)
	_ collections.Dictionary[string, int] = (*SizedDictionary[string, int])(nil)
)

// bounds is an optional [min, max] range on Count().
type bounds struct {
	min, max       int
	hasMin, hasMax bool
}

func newBounds(min, max int, hasMin, hasMax bool) (bounds, error) {
	b := bounds{min: min, max: max, hasMin: hasMin, hasMax: hasMax}
	if hasMin && min < 0 {
		return b, fmt.Errorf("%w: minimum size %d is negative", ErrInvalidArgument, min)
	}
	if hasMin && hasMax && min > max {
		return b, fmt.Errorf("%w: minimum size %d exceeds maximum %d", ErrInvalidArgument, min, max)
	}
	return b, nil
}

// capacity is the largest count the maximum allows; a non-positive maximum
// allows none.
func (b bounds) capacity() int {
	if b.max < 0 {
		return 0
	}
	return b.max
}

// admit checks existing content at construction time.
func (b bounds) admit(count int) error {
	if b.hasMin && count < b.min {
		return violation(RuleSize, "wrap", count, ErrInvalidOperation,
			fmt.Errorf("count %d is below minimum %d", count, b.min))
	}
	if b.hasMax && count > b.capacity() {
		return violation(RuleSize, "wrap", count, ErrInvalidOperation,
			fmt.Errorf("count %d is above maximum %d", count, b.max))
	}
	return nil
}

func (b bounds) grow(op string, count int) error {
	if b.hasMax && count >= b.capacity() {
		return violation(RuleSize, op, nil, ErrInvalidOperation,
			fmt.Errorf("count %d has reached maximum %d", count, b.max))
	}
	return nil
}

func (b bounds) shrink(op string, after int) error {
	if b.hasMin && after < b.min {
		return violation(RuleSize, op, nil, ErrInvalidOperation,
			fmt.Errorf("count would drop to %d, below minimum %d", after, b.min))
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// SizedCollection
// ─────────────────────────────────────────────────────────────────────────────

// SizedCollection keeps Count() within optional bounds.
//
// With a maximum, Add fails with ErrInvalidOperation once Count() has
// reached it; a maximum of zero or less refuses every Add. With a minimum,
// Remove and Clear fail when they would leave fewer elements than the
// minimum. Content outside the bounds is refused at construction.
type SizedCollection[T comparable] struct {
	*collections.CollectionBase[T]
	bounds bounds
}

func newSizedCollection[T comparable](inner collections.Collection[T], b bounds) (*SizedCollection[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner collection")
	}
	if err := b.admit(inner.Count()); err != nil {
		return nil, err
	}
	return &SizedCollection[T]{
		CollectionBase: collections.NewCollectionBase(inner, inheritFlags(inner)),
		bounds:         b,
	}, nil
}

// NewSizedCollection wraps inner with both bounds.
func NewSizedCollection[T comparable](inner collections.Collection[T], min, max int) (*SizedCollection[T], error) {
	b, err := newBounds(min, max, true, true)
	if err != nil {
		return nil, err
	}
	return newSizedCollection(inner, b)
}

// Min returns the minimum and whether one is set.
func (c *SizedCollection[T]) Min() (int, bool) { return c.bounds.min, c.bounds.hasMin }

// Max returns the maximum and whether one is set.
func (c *SizedCollection[T]) Max() (int, bool) { return c.bounds.max, c.bounds.hasMax }

// Add refuses to grow past the maximum.
func (c *SizedCollection[T]) Add(item T) error {
	if err := c.bounds.grow("add", c.Count()); err != nil {
		return err
	}
	return c.CollectionBase.Add(item)
}

// Remove refuses to drop below the minimum. An absent item is not
// a removal and reports false.
func (c *SizedCollection[T]) Remove(item T) (bool, error) {
	if c.bounds.hasMin {
		present, err := c.Contains(item)
		if err != nil {
			return false, err
		}
		if !present {
			return false, nil
		}
		if err := c.bounds.shrink("remove", c.Count()-1); err != nil {
			return false, err
		}
	}
	return c.CollectionBase.Remove(item)
}

// Clear is refused when a positive minimum is set.
func (c *SizedCollection[T]) Clear() error {
	if err := c.bounds.shrink("clear", 0); err != nil {
		return err
	}
	return c.CollectionBase.Clear()
}

// ─────────────────────────────────────────────────────────────────────────────
// SizedDictionary
// ─────────────────────────────────────────────────────────────────────────────

// SizedDictionary is the dictionary form of [SizedCollection]. Adding a new
// key, by Add or Set, counts as growth; replacing a value does not.
type SizedDictionary[K, V comparable] struct {
	*collections.DictionaryBase[K, V]
	bounds bounds
}

func newSizedDictionary[K, V comparable](inner collections.Dictionary[K, V], b bounds) (*SizedDictionary[K, V], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner dictionary")
	}
	if err := b.admit(inner.Count()); err != nil {
		return nil, err
	}
	return &SizedDictionary[K, V]{
		DictionaryBase: collections.NewDictionaryBase(inner, inheritFlags(inner)),
		bounds:         b,
	}, nil
}

// NewSizedDictionary wraps inner with both bounds.
func NewSizedDictionary[K, V comparable](inner collections.Dictionary[K, V], min, max int) (*SizedDictionary[K, V], error) {
	b, err := newBounds(min, max, true, true)
	if err != nil {
		return nil, err
	}
	return newSizedDictionary(inner, b)
}

// Min returns the minimum and whether one is set.
func (d *SizedDictionary[K, V]) Min() (int, bool) { return d.bounds.min, d.bounds.hasMin }

// Max returns the maximum and whether one is set.
func (d *SizedDictionary[K, V]) Max() (int, bool) { return d.bounds.max, d.bounds.hasMax }

// Add refuses to grow past the maximum.
func (d *SizedDictionary[K, V]) Add(key K, value V) error {
	if err := d.bounds.grow("add", d.Count()); err != nil {
		return err
	}
	return d.DictionaryBase.Add(key, value)
}

// Set refuses a new key past the maximum; replacing a value is
// always allowed.
func (d *SizedDictionary[K, V]) Set(key K, value V) error {
	present, err := d.ContainsKey(key)
	if err != nil {
		return err
	}
	if !present {
		if err := d.bounds.grow("set", d.Count()); err != nil {
			return err
		}
	}
	return d.DictionaryBase.Set(key, value)
}

// Remove refuses to drop below the minimum.
func (d *SizedDictionary[K, V]) Remove(key K) (bool, error) {
	if d.bounds.hasMin {
		present, err := d.ContainsKey(key)
		if err != nil || !present {
			return false, err
		}
		if err := d.bounds.shrink("remove", d.Count()-1); err != nil {
			return false, err
		}
	}
	return d.DictionaryBase.Remove(key)
}

// Clear is refused when a positive minimum is set.
func (d *SizedDictionary[K, V]) Clear() error {
	if err := d.bounds.shrink("clear", 0); err != nil {
		return err
	}
	return d.DictionaryBase.Clear()
}
