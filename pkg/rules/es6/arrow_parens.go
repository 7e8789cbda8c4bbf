package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(ArrowParens)
}

// ArrowParens requires parentheses around arrow function arguments.
// The requireForBlockBody option is only accepted with "as-needed".
var ArrowParens = schema.Schema{
	ID:          "arrow-parens",
	Group:       GroupArrows,
	Description: "Require parentheses around arrow function arguments.",
	Fixable:     schema.FixableCode,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/arrow-parens"},
	Variants: []schema.TupleVariant{
		{
			Name:    "always",
			Args:    []schema.Shape{schema.Enum{"always"}},
			MinArgs: 1,
		},
		{
			Name: "as-needed",
			Args: []schema.Shape{
				schema.Enum{"as-needed"},
				schema.Object{
					Fields: []schema.Field{
						{Name: "requireForBlockBody", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// ArrowParensOptions is the decoded configuration for arrow-parens.
type ArrowParensOptions struct {
	Style               string
	RequireForBlockBody bool
}

// ParseArrowParensOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseArrowParensOptions(args []any) (ArrowParensOptions, error) {
	opts := ArrowParensOptions{Style: "always"}
	if _, err := ArrowParens.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		opts.Style = args[0].(string)
	}
	if len(args) > 1 {
		m := args[1].(map[string]any)
		opts.RequireForBlockBody = schema.GetBoolOption(m, "requireForBlockBody", false)
	}
	return opts, nil
}
