package guard

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-guarded-collections/arr"
	"github.com/hasbyte1/go-guarded-collections/collections"
)

// Policy describes a stack of decorators, typically read from configuration:
//
//	non_nil: true
//	unique: true
//	min: 1
//	max: 10
//	tag: "required,min=2"
//	constraints: [lowercase]
//
// Decorators are applied innermost first in this order: non-nil,
// constraints (tag, then named constraints), unique, immutable, size.
type Policy struct {
	NonNil      bool     `yaml:"non_nil"`
	Unique      bool     `yaml:"unique"`
	Immutable   bool     `yaml:"immutable"`
	Min         *int     `yaml:"min,omitempty"`
	Max         *int     `yaml:"max,omitempty"`
	Tag         string   `yaml:"tag,omitempty"`
	Constraints []string `yaml:"constraints,omitempty"`
}

// LoadPolicy decodes a YAML policy and validates it. Unknown fields are an
// error; an empty document yields the zero Policy.
func LoadPolicy(data []byte) (Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("decode policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// String renders the policy as YAML.
func (p Policy) String() string {
	b, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Sprintf("policy: %v", err)
	}
	return string(b)
}

// Validate reports structural problems: a negative minimum, min > max, a
// validator tag that does not parse, a repeated constraint name, or an
// unregistered one.
func (p Policy) Validate() error {
	if p.Min != nil && *p.Min < 0 {
		return fmt.Errorf("%w: policy minimum %d is negative", ErrInvalidArgument, *p.Min)
	}
	if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
		return fmt.Errorf("%w: policy minimum %d exceeds maximum %d", ErrInvalidArgument, *p.Min, *p.Max)
	}
	if p.Tag != "" {
		if err := validateTag(p.Tag); err != nil {
			return err
		}
	}
	if arr.HasDuplicates(p.Constraints) {
		return fmt.Errorf("%w: constraint listed twice in %v", ErrInvalidArgument, p.Constraints)
	}
	for _, name := range p.Constraints {
		if !HasConstraint(name) {
			return notFound(name)
		}
	}
	return nil
}

// HasSize reports whether the policy sets a minimum or maximum.
func (p Policy) HasSize() bool { return p.Min != nil || p.Max != nil }

func (p Policy) check() Check[any] {
	var checks []Check[any]
	if p.Tag != "" {
		checks = append(checks, Tag[any](p.Tag))
	}
	for _, name := range p.Constraints {
		checks = append(checks, Named[any](name))
	}
	if len(checks) == 0 {
		return nil
	}
	return All(checks...)
}

// ApplyList wraps l with every list decorator the policy asks for. Size
// bounds cannot be expressed on a list; use [Apply] for a policy with them.
func ApplyList[T comparable](l collections.List[T], p Policy) (collections.List[T], error) {
	if collections.IsNil(l) {
		return nil, nilSource("list")
	}
	if p.HasSize() {
		return nil, fmt.Errorf("%w: size bounds need Apply, not ApplyList", ErrInvalidArgument)
	}
	return applyList(l, p)
}

// Apply wraps l with every decorator the policy asks for. The result is a
// [collections.Collection] because the size decorator is the outermost layer.
func Apply[T comparable](l collections.List[T], p Policy) (collections.Collection[T], error) {
	if collections.IsNil(l) {
		return nil, nilSource("list")
	}
	out, err := applyList(l, p)
	if err != nil {
		return nil, err
	}
	if !p.HasSize() {
		return out, nil
	}
	minSize, maxSize := 0, 0
	if p.Min != nil {
		minSize = *p.Min
	}
	if p.Max != nil {
		maxSize = *p.Max
	}
	b, err := newBounds(minSize, maxSize, p.Min != nil, p.Max != nil)
	if err != nil {
		return nil, err
	}
	sized, err := newSizedCollection[T](out, b)
	if err != nil {
		return nil, err
	}
	return sized, nil
}

func applyList[T comparable](l collections.List[T], p Policy) (collections.List[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := l
	if p.NonNil {
		nn, err := AsNonNullableList(out)
		if err != nil {
			return nil, err
		}
		out = nn
	}
	if check := p.check(); check != nil {
		c, err := AsChecked[T](out, func(v T) error { return check(v) })
		if err != nil {
			return nil, err
		}
		out = c
	}
	if p.Unique {
		u, err := AsUniqueList(out)
		if err != nil {
			return nil, err
		}
		out = u
	}
	if p.Immutable {
		im, err := AsImmutable(out)
		if err != nil {
			return nil, err
		}
		out = im
	}
	return out, nil
}
