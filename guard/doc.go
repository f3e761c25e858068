// Package guard provides collection decorators that enforce one extra rule
// on top of the ordinary [collections.Collection], [collections.List] and
// [collections.Dictionary] contracts.
//
// # Overview
//
// A decorator wraps a collection the caller already has and implements the
// same contract, so it can be passed anywhere the original could:
//
//	tags := []string{"go", "go", "generics"}
//	u, err := guard.AsUniqueList(collections.Wrap(&tags))
//	// tags is now [go generics]
//	err = u.Add("go") // wraps ErrInvalidOperation, tags unchanged
//
// The decorator is a view, not a copy. It forwards every call to the inner
// collection, which remains the single source of truth; changes made to the
// inner collection directly are visible through the decorator and are not
// checked by it.
//
// # Rules
//
//	Decorator            Refuses                      Error kind
//	ConstrainedList      elements failing a Check     ErrInvalidArgument
//	ImmutableList        every mutation               ErrNotSupported
//	NonNullable*         nil elements, keys, values   ErrNilArgument
//	Sized*               leaving [min, max]           ErrInvalidOperation
//	Unique*              duplicates                   ErrInvalidOperation
//
// A refused call never changes the inner collection. The returned error is
// a [*ViolationError] naming the rule and operation; it unwraps to the kind
// above and to the underlying cause.
//
// # Construction
//
// The As* factories check existing content when the decorator is attached:
// AsChecked/AsConstrained and the size factories refuse content that already
// breaks the rule, and the uniqueness factories repair it by dropping
// repeats (keeping the first occurrence). The New* constructors behave the
// same, except NewConstrainedList and NewCheckedList, which do not scan.
//
// # Composition
//
// Every decorator implements the contract it wraps, so rules stack by
// nesting:
//
//	nn, _ := guard.AsNonNullable[*User](c)
//	u, _ := guard.AsUnique[*User](nn) // refuses nil and duplicates
//
// [Policy] builds such a stack from YAML configuration.
//
// # Checks
//
// A [Check] is a func(T) error. [Predicate] adapts a boolean predicate,
// [Rules] adapts ozzo-validation rules, [Tag] and [Struct] use
// go-playground/validator, and [Named] looks up a constraint registered with
// [RegisterConstraint].
//
// # Concurrency
//
// Decorators do no locking and always report IsSynchronized() == false,
// even over a [collections.ConcurrentDict]. Callers that share a decorator
// between goroutines must serialise access, for example with SyncRoot().
package guard
