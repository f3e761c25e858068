package guard

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-guarded-collections/collections"
)

// Error kinds. The first six are the sentinels of package collections,
// repeated here so callers of guard need a single import.
var (
	ErrNilArgument      = collections.ErrNilArgument
	ErrInvalidArgument  = collections.ErrInvalidArgument
	ErrInvalidOperation = collections.ErrInvalidOperation
	ErrNotSupported     = collections.ErrNotSupported
	ErrIndexOutOfRange  = collections.ErrIndexOutOfRange
	ErrKeyNotFound      = collections.ErrKeyNotFound

	// ErrConstraintFailed is the cause reported when a predicate returns
	// false.
	ErrConstraintFailed = errors.New("guard: element does not satisfy constraint")

	// ErrConstraintNotFound is returned when a named constraint is not
	// registered.
	ErrConstraintNotFound = errors.New("guard: constraint not found")
)

// Rule names reported in [ViolationError.Rule].
const (
	RuleConstraint = "constraint"
	RuleImmutable  = "immutable"
	RuleNonNil     = "non-nil"
	RuleSize       = "size"
	RuleUnique     = "unique"
)

// ViolationError describes a call a decorator refused.
//
// It unwraps to both Kind (one of the sentinels above) and Err (the
// underlying cause, such as a validation.Errors from ozzo-validation), so
// errors.Is and errors.As see through it.
type ViolationError struct {
	Rule  string
	Op    string
	Value any
	Kind  error
	Err   error
}

// Error describes the refused operation and its cause.
func (e *ViolationError) Error() string {
	msg := fmt.Sprintf("%v: %s rule refused %s", e.Kind, e.Rule, e.Op)
	if e.Value != nil {
		msg += fmt.Sprintf(" of %v", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns Kind, followed by Err when there is one.
func (e *ViolationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func violation(rule, op string, value any, kind, cause error) error {
	return &ViolationError{Rule: rule, Op: op, Value: value, Kind: kind, Err: cause}
}

func nilSource(what string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, what)
}
