package guard

import "github.com/hasbyte1/go-guarded-collections/collections"

var (
	_ collections.Collection[*int]             = (*NonNullableCollection[*int])(nil)
	_ collections.List[*int]                   = (*NonNullableList[*int])(nil)
	_ collections.Dictionary[*string, *string] = (*NonNullableDictionary[*string, *string])(nil)
)

func rejectNil[T any](op string, item T) error {
	if collections.IsNil(item) {
		return violation(RuleNonNil, op, nil, ErrNilArgument, nil)
	}
	return nil
}

func rejectNilTarget[T any](dst []T) error {
	if dst == nil {
		return violation(RuleNonNil, "copy to", nil, ErrNilArgument, nil)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// NonNullableCollection
// ─────────────────────────────────────────────────────────────────────────────

// NonNullableCollection refuses nil elements. Add, Remove and Contains fail
// with ErrNilArgument on a nil element, and CopyTo on a nil target, before
// the inner collection is called. Nil elements already present are left
// alone.
type NonNullableCollection[T comparable] struct {
	*collections.CollectionBase[T]
}

// NewNonNullableCollection wraps inner.
func NewNonNullableCollection[T comparable](inner collections.Collection[T]) (*NonNullableCollection[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner collection")
	}
	return &NonNullableCollection[T]{collections.NewCollectionBase(inner, inheritFlags(inner))}, nil
}

// Add refuses a nil item.
func (c *NonNullableCollection[T]) Add(item T) error {
	if err := rejectNil("add", item); err != nil {
		return err
	}
	return c.CollectionBase.Add(item)
}

// Remove refuses a nil item.
func (c *NonNullableCollection[T]) Remove(item T) (bool, error) {
	if err := rejectNil("remove", item); err != nil {
		return false, err
	}
	return c.CollectionBase.Remove(item)
}

// Contains refuses a nil item.
func (c *NonNullableCollection[T]) Contains(item T) (bool, error) {
	if err := rejectNil("contains", item); err != nil {
		return false, err
	}
	return c.CollectionBase.Contains(item)
}

// CopyTo refuses a nil dst.
func (c *NonNullableCollection[T]) CopyTo(dst []T, index int) error {
	if err := rejectNilTarget(dst); err != nil {
		return err
	}
	return c.CollectionBase.CopyTo(dst, index)
}

// ─────────────────────────────────────────────────────────────────────────────
// NonNullableList
// ─────────────────────────────────────────────────────────────────────────────

// NonNullableList is the list form of [NonNullableCollection]; Insert, Set
// and IndexOf refuse nil as well.
type NonNullableList[T comparable] struct {
	*collections.ListBase[T]
}

// NewNonNullableList wraps inner.
func NewNonNullableList[T comparable](inner collections.List[T]) (*NonNullableList[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner list")
	}
	return &NonNullableList[T]{collections.NewListBase(inner, inheritFlags(inner))}, nil
}

// Add refuses a nil item.
func (l *NonNullableList[T]) Add(item T) error {
	if err := rejectNil("add", item); err != nil {
		return err
	}
	return l.ListBase.Add(item)
}

// Insert refuses a nil item.
func (l *NonNullableList[T]) Insert(index int, item T) error {
	if err := rejectNil("insert", item); err != nil {
		return err
	}
	return l.ListBase.Insert(index, item)
}

// Set refuses a nil item.
func (l *NonNullableList[T]) Set(index int, item T) error {
	if err := rejectNil("set", item); err != nil {
		return err
	}
	return l.ListBase.Set(index, item)
}

// Remove refuses a nil item.
func (l *NonNullableList[T]) Remove(item T) (bool, error) {
	if err := rejectNil("remove", item); err != nil {
		return false, err
	}
	return l.ListBase.Remove(item)
}

// Contains refuses a nil item.
func (l *NonNullableList[T]) Contains(item T) (bool, error) {
	if err := rejectNil("contains", item); err != nil {
		return false, err
	}
	return l.ListBase.Contains(item)
}

// IndexOf refuses a nil item and reports -1.
func (l *NonNullableList[T]) IndexOf(item T) (int, error) {
	if err := rejectNil("index of", item); err != nil {
		return -1, err
	}
	return l.ListBase.IndexOf(item)
}

// CopyTo refuses a nil dst.
func (l *NonNullableList[T]) CopyTo(dst []T, index int) error {
	if err := rejectNilTarget(dst); err != nil {
		return err
	}
	return l.ListBase.CopyTo(dst, index)
}

// ─────────────────────────────────────────────────────────────────────────────
// NonNullableDictionary
// ─────────────────────────────────────────────────────────────────────────────

// NonNullableDictionary refuses nil keys and nil values on every method that
// takes one, and a nil CopyTo target.
type NonNullableDictionary[K, V comparable] struct {
	*collections.DictionaryBase[K, V]
}

// NewNonNullableDictionary wraps inner.
func NewNonNullableDictionary[K, V comparable](inner collections.Dictionary[K, V]) (*NonNullableDictionary[K, V], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner dictionary")
	}
	return &NonNullableDictionary[K, V]{collections.NewDictionaryBase(inner, inheritFlags(inner))}, nil
}

func rejectNilEntry[K, V any](op string, key K, value V) error {
	if err := rejectNil(op+" key", key); err != nil {
		return err
	}
	return rejectNil(op+" value", value)
}

// Add refuses a nil key or value.
func (d *NonNullableDictionary[K, V]) Add(key K, value V) error {
	if err := rejectNilEntry("add", key, value); err != nil {
		return err
	}
	return d.DictionaryBase.Add(key, value)
}

// Set refuses a nil key or value.
func (d *NonNullableDictionary[K, V]) Set(key K, value V) error {
	if err := rejectNilEntry("set", key, value); err != nil {
		return err
	}
	return d.DictionaryBase.Set(key, value)
}

// Get refuses a nil key.
func (d *NonNullableDictionary[K, V]) Get(key K) (V, error) {
	if err := rejectNil("get key", key); err != nil {
		var zero V
		return zero, err
	}
	return d.DictionaryBase.Get(key)
}

// TryGetValue refuses a nil key.
func (d *NonNullableDictionary[K, V]) TryGetValue(key K) (V, bool, error) {
	if err := rejectNil("get key", key); err != nil {
		var zero V
		return zero, false, err
	}
	return d.DictionaryBase.TryGetValue(key)
}

// Remove refuses a nil key.
func (d *NonNullableDictionary[K, V]) Remove(key K) (bool, error) {
	if err := rejectNil("remove key", key); err != nil {
		return false, err
	}
	return d.DictionaryBase.Remove(key)
}

// ContainsKey refuses a nil key.
func (d *NonNullableDictionary[K, V]) ContainsKey(key K) (bool, error) {
	if err := rejectNil("contains key", key); err != nil {
		return false, err
	}
	return d.DictionaryBase.ContainsKey(key)
}

// Contains refuses an entry with a nil key or value.
func (d *NonNullableDictionary[K, V]) Contains(entry collections.Entry[K, V]) (bool, error) {
	if err := rejectNilEntry("contains", entry.Key, entry.Value); err != nil {
		return false, err
	}
	return d.DictionaryBase.Contains(entry)
}

// CopyTo refuses a nil dst.
func (d *NonNullableDictionary[K, V]) CopyTo(dst []collections.Entry[K, V], index int) error {
	if err := rejectNilTarget(dst); err != nil {
		return err
	}
	return d.DictionaryBase.CopyTo(dst, index)
}
