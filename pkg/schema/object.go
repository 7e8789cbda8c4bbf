package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Field is a named attribute within an object shape.
type Field struct {
	Name  string
	Shape Shape

	// Required fields must be present for the object to match.
	Required bool

	// Default is advisory metadata: the value the consuming tool applies
	// when the field is omitted. Matching never fills it in.
	Default any

	// Deprecated marks fields that still match but should be reported.
	Deprecated bool

	// Forbidden marks a field that must be genuinely absent. This is the
	// "never" marker that keeps union variants mutually exclusive: each
	// variant forbids the discriminating fields of its siblings.
	Forbidden bool
}

// Object matches a JSON object against a fixed set of fields.
// Unknown keys are rejected unless AdditionalProperties is set.
type Object struct {
	Fields               []Field
	AdditionalProperties bool
}

// Kind implements Shape.
func (Object) Kind() Kind { return KindObject }

// Match implements Shape.
func (o Object) Match(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("expected object, got %s", typeName(v))
	}

	known := make(map[string]bool, len(o.Fields))
	for _, f := range o.Fields {
		known[f.Name] = true
		val, present := m[f.Name]
		if f.Forbidden {
			if present {
				return fmt.Errorf("field %q must not be present here", f.Name)
			}
			continue
		}
		if !present {
			if f.Required {
				return fmt.Errorf("missing required field %q", f.Name)
			}
			continue
		}
		if err := f.Shape.Match(val); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	if !o.AdditionalProperties {
		var unknown []string
		for key := range m {
			if !known[key] {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return fmt.Errorf("unknown field(s): %s", strings.Join(unknown, ", "))
		}
	}
	return nil
}

// DeprecatedFields returns the names of deprecated fields present in v.
// Used for reporting; a deprecated field is still a valid match.
func (o Object) DeprecatedFields(v any) []string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	var out []string
	for _, f := range o.Fields {
		if f.Deprecated {
			if _, present := m[f.Name]; present {
				out = append(out, f.Name)
			}
		}
	}
	return out
}
