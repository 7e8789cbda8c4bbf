package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(ObjectShorthand)
}

// ObjectShorthand requires or disallows shorthand syntax for object
// literal methods and properties. The extended option object is only
// accepted with "always" and "methods"; "properties" accepts avoidQuotes
// alone. Variants are disjoint by first-argument value and arity.
var ObjectShorthand = schema.Schema{
	ID:          "object-shorthand",
	Group:       GroupPreferences,
	Description: "Require or disallow method and property shorthand syntax for object literals.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "mode",
			Args: []schema.Shape{
				schema.Enum{"always", "methods", "properties", "never", "consistent", "consistent-as-needed"},
			},
			MinArgs: 1,
		},
		{
			Name: "methods-options",
			Args: []schema.Shape{
				schema.Enum{"always", "methods"},
				schema.Object{
					Fields: []schema.Field{
						{Name: "avoidQuotes", Shape: schema.Bool{}, Default: false},
						{Name: "ignoreConstructors", Shape: schema.Bool{}, Default: false},
						{Name: "methodsIgnorePattern", Shape: schema.String{}},
						{Name: "avoidExplicitReturnArrows", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 2,
		},
		{
			Name: "properties-options",
			Args: []schema.Shape{
				schema.Enum{"properties"},
				schema.Object{
					Fields: []schema.Field{
						{Name: "avoidQuotes", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 2,
		},
	},
}

// ObjectShorthandOptions is the decoded configuration for object-shorthand.
type ObjectShorthandOptions struct {
	Mode                      string
	AvoidQuotes               bool
	IgnoreConstructors        bool
	MethodsIgnorePattern      string
	AvoidExplicitReturnArrows bool
}

// ParseObjectShorthandOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseObjectShorthandOptions(args []any) (ObjectShorthandOptions, error) {
	opts := ObjectShorthandOptions{Mode: "always"}
	if _, err := ObjectShorthand.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		opts.Mode = args[0].(string)
	}
	if len(args) > 1 {
		m := args[1].(map[string]any)
		opts.AvoidQuotes = schema.GetBoolOption(m, "avoidQuotes", false)
		opts.IgnoreConstructors = schema.GetBoolOption(m, "ignoreConstructors", false)
		opts.MethodsIgnorePattern = schema.GetStringOption(m, "methodsIgnorePattern", "")
		opts.AvoidExplicitReturnArrows = schema.GetBoolOption(m, "avoidExplicitReturnArrows", false)
	}
	return opts, nil
}
