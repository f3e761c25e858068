package guard

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
)

// Check validates one element and returns nil when it is acceptable.
type Check[T any] func(T) error

// elementValidate backs Tag and Struct. A *validator.Validate caches struct
// metadata and is safe for concurrent use, so one instance is shared.
var elementValidate = validator.New(validator.WithRequiredStructEnabled())

// Validator returns the shared go-playground validator used by [Tag] and
// [Struct], so callers can register custom validations on it.
func Validator() *validator.Validate { return elementValidate }

// Predicate turns a boolean predicate into a Check that fails with
// ErrConstraintFailed.
func Predicate[T any](p func(T) bool) Check[T] {
	return func(v T) error {
		if !p(v) {
			return ErrConstraintFailed
		}
		return nil
	}
}

// Rules checks each element against ozzo-validation rules:
//
//	guard.Rules[string](validation.Required, validation.Length(2, 32))
func Rules[T any](rules ...validation.Rule) Check[T] {
	return func(v T) error {
		return validation.Validate(v, rules...)
	}
}

// Tag checks each element against a go-playground validator tag, such as
// "required,email". A tag naming an unknown validation is reported as
// ErrInvalidArgument instead of panicking.
func Tag[T any](tag string) Check[T] {
	return TagWith[T](elementValidate, tag)
}

// TagWith is [Tag] with a caller-supplied validator.
func TagWith[T any](v *validator.Validate, tag string) Check[T] {
	return func(item T) (err error) {
		defer recoverTag(tag, &err)
		return v.Var(item, tag)
	}
}

// Struct checks struct elements (or pointers to structs) against their
// `validate` field tags.
func Struct[T any]() Check[T] {
	return func(item T) error {
		return elementValidate.Struct(item)
	}
}

// Named checks each element with the registered constraint name. The lookup
// happens on every call, so the constraint may be registered later.
func Named[T any](name string) Check[T] {
	return func(v T) error {
		return CallConstraint(name, v)
	}
}

// All combines checks; the first failure wins. Nil checks are skipped.
func All[T any](checks ...Check[T]) Check[T] {
	return func(v T) error {
		for _, c := range checks {
			if c == nil {
				continue
			}
			if err := c(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// validateTag reports whether tag parses with the shared validator.
func validateTag(tag string) (err error) {
	defer recoverTag(tag, &err)
	verr := elementValidate.Var("", tag)
	var invalid *validator.InvalidValidationError
	if errors.As(verr, &invalid) {
		return fmt.Errorf("%w: tag %q: %v", ErrInvalidArgument, tag, verr)
	}
	return nil
}

func recoverTag(tag string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: tag %q: %v", ErrInvalidArgument, tag, r)
	}
}
