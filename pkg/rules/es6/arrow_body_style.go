package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(ArrowBodyStyle)
}

// ArrowBodyStyle enforces consistent use of braces around arrow function
// bodies. The object option is only accepted together with "as-needed";
// the tuple variants keep the combinations mutually exclusive.
var ArrowBodyStyle = schema.Schema{
	ID:          "arrow-body-style",
	Group:       GroupArrows,
	Description: "Require braces around arrow function bodies.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name:    "bare",
			Args:    []schema.Shape{schema.Enum{"always", "never"}},
			MinArgs: 1,
		},
		{
			Name: "as-needed",
			Args: []schema.Shape{
				schema.Enum{"as-needed"},
				schema.Object{
					Fields: []schema.Field{
						{Name: "requireReturnForObjectLiteral", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// ArrowBodyStyleOptions is the decoded configuration for arrow-body-style.
type ArrowBodyStyleOptions struct {
	Style                         string
	RequireReturnForObjectLiteral bool
}

// ParseArrowBodyStyleOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseArrowBodyStyleOptions(args []any) (ArrowBodyStyleOptions, error) {
	opts := ArrowBodyStyleOptions{Style: "always"}
	if _, err := ArrowBodyStyle.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		opts.Style = args[0].(string)
	}
	if len(args) > 1 {
		m := args[1].(map[string]any)
		opts.RequireReturnForObjectLiteral = schema.GetBoolOption(m, "requireReturnForObjectLiteral", false)
	}
	return opts, nil
}
