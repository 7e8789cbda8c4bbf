package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Fixable kinds, mirroring ESLint rule metadata.
const (
	FixableNone       = ""
	FixableCode       = "code"
	FixableWhitespace = "whitespace"
)

// Schema declares every legal shape of one rule's configuration arguments.
// It carries no enforcement logic: the only behavior is classifying a
// candidate option tuple as matching exactly one variant or not matching.
type Schema struct {
	ID          string // Rule identifier, e.g. "no-restricted-imports"
	Group       string // Category, e.g. "modules", "arrows", "spacing"
	Description string // Human-readable description

	// Deprecation metadata. ReplacedBy lists successor rule IDs, if any.
	Deprecated bool
	ReplacedBy []string

	// Rule metadata mirrored from the upstream definitions.
	Recommended    bool   // Part of eslint:recommended
	Fixable        string // FixableNone, FixableCode, or FixableWhitespace
	HasSuggestions bool

	// Variants are the legal argument tuples, mutually exclusive by
	// construction. An empty list means the rule accepts no options.
	Variants []TupleVariant
}

// TupleVariant is one legal shape for a rule's option tuple (the
// configuration array with the severity element already stripped).
type TupleVariant struct {
	Name string // Variant identifier, e.g. "paths" or "as-needed"

	// Args are the positional option shapes. Trailing args beyond MinArgs
	// may be omitted.
	Args []Shape

	// MinArgs is the number of leading args that must be present.
	MinArgs int

	// Variadic allows the tuple to extend past len(Args); extra elements
	// are matched against the last shape in Args.
	Variadic bool
}

func (tv TupleVariant) match(args []any) error {
	if len(args) < tv.MinArgs {
		return fmt.Errorf("expected at least %d option(s), got %d", tv.MinArgs, len(args))
	}
	if len(args) > len(tv.Args) && !tv.Variadic {
		return fmt.Errorf("%w: expected at most %d, got %d", ErrTooManyOptions, len(tv.Args), len(args))
	}
	for i, arg := range args {
		shape := tv.Args[min(i, len(tv.Args)-1)]
		if err := shape.Match(arg); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}
	return nil
}

// Classify checks a candidate option tuple against the schema's variants
// and returns the name of the single variant it matches. An empty tuple is
// always valid (configuring a rule with only a severity is always legal)
// and yields an empty variant name.
//
// Zero matching variants and more than one matching variant are both
// rejections: variants are mutually exclusive by contract.
func (s *Schema) Classify(args []any) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	if len(s.Variants) == 0 {
		return "", fmt.Errorf("rule %q accepts no options, got %d", s.ID, len(args))
	}

	var (
		matched []string
		reasons []string
	)
	for _, tv := range s.Variants {
		if err := tv.match(args); err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: %v", tv.Name, err))
			continue
		}
		matched = append(matched, tv.Name)
	}
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return "", fmt.Errorf("rule %q: %w: %s", s.ID, ErrNoVariant, strings.Join(reasons, "; "))
	default:
		return "", fmt.Errorf("rule %q: %w: %s", s.ID, ErrAmbiguousVariant, strings.Join(matched, ", "))
	}
}

// Validate classifies the tuple and discards the variant name.
func (s *Schema) Validate(args []any) error {
	_, err := s.Classify(args)
	return err
}

// DeprecatedFields returns names of deprecated fields present anywhere in
// the option tuple, for reporting alongside a successful match.
func (s *Schema) DeprecatedFields(args []any) []string {
	var out []string
	seen := make(map[string]bool)
	for _, arg := range args {
		for _, tv := range s.Variants {
			for _, shape := range tv.Args {
				for _, name := range deprecatedIn(shape, arg) {
					if !seen[name] {
						seen[name] = true
						out = append(out, name)
					}
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

func deprecatedIn(shape Shape, v any) []string {
	switch s := shape.(type) {
	case Object:
		if s.Match(v) == nil {
			return s.DeprecatedFields(v)
		}
	case Union:
		for _, variant := range s.Variants {
			if variant.Shape.Match(v) == nil {
				return deprecatedIn(variant.Shape, v)
			}
		}
	case Array:
		items, ok := asSlice(v)
		if !ok {
			return nil
		}
		var out []string
		for _, item := range items {
			out = append(out, deprecatedIn(s.Of, item)...)
		}
		return out
	}
	return nil
}

// ConfigKeys returns the sorted union of object field names reachable from
// the schema's variants. Forbidden markers are excluded: they describe
// absence, not configuration surface.
func (s *Schema) ConfigKeys() []string {
	seen := make(map[string]bool)
	for _, tv := range s.Variants {
		for _, shape := range tv.Args {
			collectKeys(shape, seen)
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func collectKeys(shape Shape, seen map[string]bool) {
	switch s := shape.(type) {
	case Object:
		for _, f := range s.Fields {
			if f.Forbidden {
				continue
			}
			seen[f.Name] = true
			collectKeys(f.Shape, seen)
		}
	case Union:
		for _, v := range s.Variants {
			collectKeys(v.Shape, seen)
		}
	case Array:
		collectKeys(s.Of, seen)
	}
}
