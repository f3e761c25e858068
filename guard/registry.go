package guard

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

// ConstraintFunc checks one element. It receives the element as any so that
// one registration serves lists of every element type.
type ConstraintFunc func(value any) error

// constraints maps names to checks for [Named] and [Policy].
var constraints = xsync.NewMapOf[string, ConstraintFunc]()

// RegisterConstraint stores fn under name, replacing any earlier
// registration. An empty name is ErrInvalidArgument and a nil fn is
// ErrNilArgument.
//
//	err := guard.RegisterConstraint("lowercase", func(v any) error {
//	    s, ok := v.(string)
//	    if !ok || s != strings.ToLower(s) {
//	        return guard.ErrConstraintFailed
//	    }
//	    return nil
//	})
func RegisterConstraint(name string, fn ConstraintFunc) error {
	if name == "" {
		return fmt.Errorf("%w: constraint name is empty", ErrInvalidArgument)
	}
	if fn == nil {
		return nilSource("constraint " + name)
	}
	constraints.Store(name, fn)
	return nil
}

// HasConstraint reports whether name is registered.
func HasConstraint(name string) bool {
	_, ok := constraints.Load(name)
	return ok
}

// Constraints returns the registered names, sorted.
func Constraints() []string {
	names := make([]string, 0, constraints.Size())
	constraints.Range(func(name string, _ ConstraintFunc) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// FlushConstraints removes every registration. Tests use it to start clean.
func FlushConstraints() { constraints.Clear() }

// CallConstraint runs the constraint registered under name. An unknown name
// is ErrConstraintNotFound, and the error lists what is registered.
func CallConstraint(name string, value any) error {
	fn, ok := constraints.Load(name)
	if !ok {
		return notFound(name)
	}
	return fn(value)
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q (registered: %v)", ErrConstraintNotFound, name, Constraints())
}
