package guard

import "github.com/hasbyte1/go-guarded-collections/collections"

var _ collections.List[int] = (*ConstrainedList[int])(nil)

// ConstrainedList is a list decorator that refuses elements failing a check.
//
// Add, Insert and Set run the check first; a failing element is reported as
// ErrInvalidArgument and the inner list is not touched. Elements already in
// the list are not re-checked by the constructor.
type ConstrainedList[T comparable] struct {
	*collections.ListBase[T]
	check Check[T]
}

// NewConstrainedList wraps inner with a boolean predicate.
func NewConstrainedList[T comparable](inner collections.List[T], pred func(T) bool) (*ConstrainedList[T], error) {
	if pred == nil {
		return nil, nilSource("predicate")
	}
	return NewCheckedList(inner, Predicate(pred))
}

// NewCheckedList wraps inner with a Check.
func NewCheckedList[T comparable](inner collections.List[T], check Check[T]) (*ConstrainedList[T], error) {
	if collections.IsNil(inner) {
		return nil, nilSource("inner list")
	}
	if check == nil {
		return nil, nilSource("check")
	}
	return &ConstrainedList[T]{
		ListBase: collections.NewListBase(inner, inheritFlags(inner)),
		check:    check,
	}, nil
}

// Validate runs the check against item without touching the list.
func (l *ConstrainedList[T]) Validate(item T) error {
	return l.validate("validate", item)
}

func (l *ConstrainedList[T]) validate(op string, item T) error {
	if err := l.check(item); err != nil {
		return violation(RuleConstraint, op, item, ErrInvalidArgument, err)
	}
	return nil
}

// Add appends item if it passes the check.
func (l *ConstrainedList[T]) Add(item T) error {
	if err := l.validate("add", item); err != nil {
		return err
	}
	return l.ListBase.Add(item)
}

// Insert places item at index if it passes the check.
func (l *ConstrainedList[T]) Insert(index int, item T) error {
	if err := l.validate("insert", item); err != nil {
		return err
	}
	return l.ListBase.Insert(index, item)
}

// Set replaces the element at index if item passes the check.
func (l *ConstrainedList[T]) Set(index int, item T) error {
	if err := l.validate("set", item); err != nil {
		return err
	}
	return l.ListBase.Set(index, item)
}
