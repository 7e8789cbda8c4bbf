// Package eslintrc loads ESLint configuration files and validates their
// rule entries against the registered option schemas. This is the external
// validator the schema layer deliberately leaves out: the schemas only
// classify shapes, this package turns classifications into findings.
package eslintrc

import (
	"fmt"

	"github.com/lintwell/esconf/pkg/schema"
)

// RuleEntry is one normalized rule configuration: a severity plus the
// option tuple that follows it in the array form.
type RuleEntry struct {
	Severity schema.Severity
	Options  []any
}

// Config is a loaded ESLint configuration's rules section.
type Config struct {
	Path  string
	Rules map[string]RuleEntry
}

// ParseRuleEntry normalizes the three entry forms ESLint accepts:
// a bare severity ("error", 2), or an array whose first element is the
// severity and whose remaining elements are the rule's options.
func ParseRuleEntry(v any) (RuleEntry, error) {
	if items, ok := v.([]any); ok {
		if len(items) == 0 {
			return RuleEntry{}, fmt.Errorf("empty rule entry array")
		}
		sev, ok := schema.ParseSeverity(items[0])
		if !ok {
			return RuleEntry{}, fmt.Errorf("invalid severity %v", items[0])
		}
		return RuleEntry{Severity: sev, Options: items[1:]}, nil
	}
	sev, ok := schema.ParseSeverity(v)
	if !ok {
		return RuleEntry{}, fmt.Errorf("invalid severity %v", v)
	}
	return RuleEntry{Severity: sev}, nil
}
