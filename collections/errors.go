package collections

import "errors"

// Sentinel errors returned by collections, bases and decorators. Returned
// errors usually wrap one of these with context; compare with [errors.Is].
var (
	// ErrNilArgument is returned when a required argument is nil: a nil
	// source collection, predicate or CopyTo target, or a nil element passed
	// to a decorator that rejects nil.
	ErrNilArgument = errors.New("collections: argument is nil")

	// ErrInvalidArgument is returned when an argument has the wrong dynamic
	// type, an element fails a constraint, or a key is already present.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidOperation is returned when an operation is well formed but
	// would break an invariant of the current contents (size bounds,
	// uniqueness).
	ErrInvalidOperation = errors.New("collections: invalid operation")

	// ErrNotSupported is returned by every mutating method of a read-only
	// collection.
	ErrNotSupported = errors.New("collections: operation not supported")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1]
	// (or [0, Count()] for Insert).
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrKeyNotFound is returned by Dictionary.Get when the key is absent.
	ErrKeyNotFound = errors.New("collections: key not found")
)
