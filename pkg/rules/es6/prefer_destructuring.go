package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(PreferDestructuring)
}

// destructuringPrefs is the {array, object} toggle pair.
var destructuringPrefs = schema.Object{
	Fields: []schema.Field{
		{Name: "array", Shape: schema.Bool{}, Default: true},
		{Name: "object", Shape: schema.Bool{}, Default: true},
	},
}

// PreferDestructuring requires destructuring from arrays and objects.
// The first option takes either the shorthand {array, object} form or the
// per-node form keyed by VariableDeclarator and AssignmentExpression; an
// empty object satisfies both forms and is therefore rejected as ambiguous.
var PreferDestructuring = schema.Schema{
	ID:          "prefer-destructuring",
	Group:       GroupPreferences,
	Description: "Require destructuring from arrays and/or objects.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Union{
					Variants: []schema.Variant{
						{Name: "by-node", Shape: schema.Object{
							Fields: []schema.Field{
								{Name: "VariableDeclarator", Shape: destructuringPrefs},
								{Name: "AssignmentExpression", Shape: destructuringPrefs},
							},
						}},
						{Name: "shorthand", Shape: destructuringPrefs},
					},
				},
				schema.Object{
					Fields: []schema.Field{
						{Name: "enforceForRenamedProperties", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// DestructuringPrefs holds the array/object toggles for one node kind.
type DestructuringPrefs struct {
	Array  bool `mapstructure:"array"`
	Object bool `mapstructure:"object"`
}

// PreferDestructuringOptions is the decoded configuration for
// prefer-destructuring. The shorthand form populates both node kinds.
type PreferDestructuringOptions struct {
	VariableDeclarator          DestructuringPrefs
	AssignmentExpression        DestructuringPrefs
	EnforceForRenamedProperties bool
}

// ParsePreferDestructuringOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParsePreferDestructuringOptions(args []any) (PreferDestructuringOptions, error) {
	opts := PreferDestructuringOptions{
		VariableDeclarator:   DestructuringPrefs{Array: true, Object: true},
		AssignmentExpression: DestructuringPrefs{Array: true, Object: true},
	}
	if _, err := PreferDestructuring.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		m := args[0].(map[string]any)
		if _, byNode := m["VariableDeclarator"]; byNode || hasKey(m, "AssignmentExpression") {
			if raw, ok := m["VariableDeclarator"].(map[string]any); ok {
				if err := schema.DecodeObject(raw, &opts.VariableDeclarator); err != nil {
					return opts, err
				}
			}
			if raw, ok := m["AssignmentExpression"].(map[string]any); ok {
				if err := schema.DecodeObject(raw, &opts.AssignmentExpression); err != nil {
					return opts, err
				}
			}
		} else {
			var prefs DestructuringPrefs
			prefs.Array = schema.GetBoolOption(m, "array", true)
			prefs.Object = schema.GetBoolOption(m, "object", true)
			opts.VariableDeclarator = prefs
			opts.AssignmentExpression = prefs
		}
	}
	if len(args) > 1 {
		m := args[1].(map[string]any)
		opts.EnforceForRenamedProperties = schema.GetBoolOption(m, "enforceForRenamedProperties", false)
	}
	return opts, nil
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}
