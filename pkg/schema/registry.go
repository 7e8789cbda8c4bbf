package schema

import (
	"fmt"
	"sort"
	"sync"
)

// globalRegistry is the single global registry for rule schemas.
var globalRegistry = &Registry{
	schemas: make(map[string]*Schema),
}

// Registry stores registered rule schemas for discovery.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema // keyed by rule ID
}

// Register adds a schema to the global registry.
// Call this from init() functions in rule packages.
// Registering a duplicate or empty ID panics: both are programming errors
// that would silently shadow another rule's schema.
func Register(s Schema) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if s.ID == "" {
		panic("schema: Register called with empty rule ID")
	}
	if _, dup := globalRegistry.schemas[s.ID]; dup {
		panic(fmt.Sprintf("schema: duplicate registration for rule %q", s.ID))
	}
	globalRegistry.schemas[s.ID] = &s
}

// Get returns a schema by rule ID.
func Get(id string) (*Schema, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	s, ok := globalRegistry.schemas[id]
	return s, ok
}

// All returns all registered schemas, sorted by rule ID.
func All() []*Schema {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	schemas := make([]*Schema, 0, len(globalRegistry.schemas))
	for _, s := range globalRegistry.schemas {
		schemas = append(schemas, s)
	}
	sort.Slice(schemas, func(i, j int) bool { return schemas[i].ID < schemas[j].ID })
	return schemas
}

// ByGroup returns all schemas in a specific group, sorted by rule ID.
func ByGroup(group string) []*Schema {
	var out []*Schema
	for _, s := range All() {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// Deprecated returns all deprecated schemas, sorted by rule ID.
func Deprecated() []*Schema {
	var out []*Schema
	for _, s := range All() {
		if s.Deprecated {
			out = append(out, s)
		}
	}
	return out
}

// Groups returns the sorted set of group names with registered schemas.
func Groups() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	seen := make(map[string]bool)
	for _, s := range globalRegistry.schemas {
		seen[s.Group] = true
	}
	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Count returns the number of registered schemas.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.schemas)
}

// Clear removes all registered schemas. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.schemas = make(map[string]*Schema)
}

// Classify looks up the rule's schema and classifies the option tuple.
func Classify(ruleID string, args []any) (string, error) {
	s, ok := Get(ruleID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, ruleID)
	}
	return s.Classify(args)
}
