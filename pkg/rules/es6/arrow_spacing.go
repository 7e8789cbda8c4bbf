package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(ArrowSpacing)
}

// ArrowSpacing enforces spacing before and after the arrow in arrow
// functions.
var ArrowSpacing = schema.Schema{
	ID:          "arrow-spacing",
	Group:       GroupSpacing,
	Description: "Enforce consistent spacing before and after the arrow in arrow functions.",
	Fixable:     schema.FixableWhitespace,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/arrow-spacing"},
	Variants: []schema.TupleVariant{
		{
			Name: "spacing",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "before", Shape: schema.Bool{}, Default: true},
						{Name: "after", Shape: schema.Bool{}, Default: true},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// ArrowSpacingOptions is the decoded configuration for arrow-spacing.
type ArrowSpacingOptions struct {
	Before bool `mapstructure:"before"`
	After  bool `mapstructure:"after"`
}

// ParseArrowSpacingOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseArrowSpacingOptions(args []any) (ArrowSpacingOptions, error) {
	opts := ArrowSpacingOptions{Before: true, After: true}
	if _, err := ArrowSpacing.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
