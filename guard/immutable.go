package guard

import "github.com/hasbyte1/go-guarded-collections/collections"

var _ collections.List[int] = (*ImmutableList[int])(nil)

// ImmutableList is a read-only list decorator. Every mutating method fails
// with ErrNotSupported, whatever its arguments; reads pass through and
// reflect the inner list as it is now.
type ImmutableList[T comparable] struct {
	*collections.ListBase[T]
}

// NewImmutableList wraps inner.
func NewImmutableList[T comparable](inner collections.List[T]) (*ImmutableList[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner list")
	}
	flags := collections.Flags{ReadOnly: true, FixedSize: true}
	return &ImmutableList[T]{ListBase: collections.NewListBase(inner, flags)}, nil
}

func denied(op string) error {
	return violation(RuleImmutable, op, nil, ErrNotSupported, nil)
}

// Every mutating method is refused with ErrNotSupported.
func (l *ImmutableList[T]) Add(T) error { return denied("add") }
func (l *ImmutableList[T]) Insert(int, T) error { return denied("insert") }
func (l *ImmutableList[T]) Set(int, T) error { return denied("set") }
func (l *ImmutableList[T]) Remove(T) (bool, error) { return false, denied("remove") }
func (l *ImmutableList[T]) RemoveAt(int) error { return denied("remove at") }
func (l *ImmutableList[T]) Clear() error { return denied("clear") }
