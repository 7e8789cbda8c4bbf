package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the structural category of a shape.
type Kind int

// Shape kinds.
const (
	KindBool Kind = iota
	KindInt
	KindString
	KindEnum
	KindArray
	KindObject
	KindUnion
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindUnion:
		return "union"
	default:
		return "invalid"
	}
}

// Shape describes one structural form a configuration value may take.
// Match reports nil when the value conforms to the shape, or an error
// describing the first mismatch found.
type Shape interface {
	Kind() Kind
	Match(v any) error
}

// Bool matches a JSON boolean.
type Bool struct{}

// Kind implements Shape.
func (Bool) Kind() Kind { return KindBool }

// Match implements Shape.
func (Bool) Match(v any) error {
	if _, ok := v.(bool); !ok {
		return fmt.Errorf("expected boolean, got %s", typeName(v))
	}
	return nil
}

// Int matches a JSON integer, optionally bounded.
type Int struct {
	Min *int
	Max *int
}

// Kind implements Shape.
func (Int) Kind() Kind { return KindInt }

// Match implements Shape.
func (s Int) Match(v any) error {
	n, ok := asInt(v)
	if !ok {
		return fmt.Errorf("expected integer, got %s", typeName(v))
	}
	if s.Min != nil && n < *s.Min {
		return fmt.Errorf("value %d is below minimum %d", n, *s.Min)
	}
	if s.Max != nil && n > *s.Max {
		return fmt.Errorf("value %d is above maximum %d", n, *s.Max)
	}
	return nil
}

// MinInt is a convenience for declaring Int lower bounds inline.
func MinInt(n int) *int { return &n }

// String matches a JSON string. When Pattern is set the string must also
// match the (anchoring is the pattern's own business) regular expression.
type String struct {
	Pattern string
}

// Kind implements Shape.
func (String) Kind() Kind { return KindString }

// Match implements Shape.
func (s String) Match(v any) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected string, got %s", typeName(v))
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return fmt.Errorf("invalid shape pattern %q: %w", s.Pattern, err)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("string %q does not match pattern %q", str, s.Pattern)
		}
	}
	return nil
}

// Enum matches one of a fixed set of string literals.
type Enum []string

// Kind implements Shape.
func (Enum) Kind() Kind { return KindEnum }

// Match implements Shape.
func (e Enum) Match(v any) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected one of %s, got %s", e.list(), typeName(v))
	}
	for _, lit := range e {
		if str == lit {
			return nil
		}
	}
	return fmt.Errorf("expected one of %s, got %q", e.list(), str)
}

func (e Enum) list() string {
	quoted := make([]string, len(e))
	for i, lit := range e {
		quoted[i] = fmt.Sprintf("%q", lit)
	}
	return strings.Join(quoted, ", ")
}

// Array matches a JSON array whose elements all conform to Of.
type Array struct {
	Of       Shape
	MinItems int
	MaxItems int // 0 means unbounded
	Unique   bool
}

// Kind implements Shape.
func (Array) Kind() Kind { return KindArray }

// Match implements Shape.
func (a Array) Match(v any) error {
	items, ok := asSlice(v)
	if !ok {
		return fmt.Errorf("expected array, got %s", typeName(v))
	}
	if len(items) < a.MinItems {
		return fmt.Errorf("array has %d items, minimum is %d", len(items), a.MinItems)
	}
	if a.MaxItems > 0 && len(items) > a.MaxItems {
		return fmt.Errorf("array has %d items, maximum is %d", len(items), a.MaxItems)
	}
	for i, item := range items {
		if err := a.Of.Match(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	if a.Unique {
		seen := make(map[string]int, len(items))
		for i, item := range items {
			key := fmt.Sprintf("%v", item)
			if prev, dup := seen[key]; dup {
				return fmt.Errorf("items %d and %d are duplicates (%v)", prev, i, item)
			}
			seen[key] = i
		}
	}
	return nil
}

// asInt converts the numeric representations produced by JSON and YAML
// decoders to an int. JSON decodes all numbers as float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// asSlice normalizes the slice representations produced by decoders.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}

// typeName reports a config-author-friendly name for a decoded value's type.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, uint64, float64:
		return "number"
	case []any, []string:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
