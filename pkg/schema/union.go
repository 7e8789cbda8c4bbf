package schema

import (
	"fmt"
	"strings"
)

// Variant is one named alternative within a union.
type Variant struct {
	Name  string
	Shape Shape
}

// Union matches a value against a set of mutually exclusive variants.
// A value conforms only when it matches exactly one variant. Zero matches
// and multiple matches are both rejections: mutual exclusivity is part of
// the contract, so a value satisfying two variants at once is not a legal
// configuration.
type Union struct {
	Variants []Variant
}

// Kind implements Shape.
func (Union) Kind() Kind { return KindUnion }

// Match implements Shape.
func (u Union) Match(v any) error {
	_, err := u.Resolve(v)
	return err
}

// Resolve returns the name of the single variant the value matches.
func (u Union) Resolve(v any) (string, error) {
	var (
		matched []string
		reasons []string
	)
	for _, variant := range u.Variants {
		if err := variant.Shape.Match(v); err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: %v", variant.Name, err))
			continue
		}
		matched = append(matched, variant.Name)
	}
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoVariant, strings.Join(reasons, "; "))
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousVariant, strings.Join(matched, ", "))
	}
}
