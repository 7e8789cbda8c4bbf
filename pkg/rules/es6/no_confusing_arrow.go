package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(NoConfusingArrow)
}

// NoConfusingArrow disallows arrow functions where they could be confused
// with comparison operators.
var NoConfusingArrow = schema.Schema{
	ID:          "no-confusing-arrow",
	Group:       GroupArrows,
	Description: "Disallow arrow functions where they could be confused with comparisons.",
	Fixable:     schema.FixableCode,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/no-confusing-arrow"},
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "allowParens", Shape: schema.Bool{}, Default: true},
						{Name: "onlyOneSimpleParam", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// NoConfusingArrowOptions is the decoded configuration for no-confusing-arrow.
type NoConfusingArrowOptions struct {
	AllowParens        bool `mapstructure:"allowParens"`
	OnlyOneSimpleParam bool `mapstructure:"onlyOneSimpleParam"`
}

// ParseNoConfusingArrowOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseNoConfusingArrowOptions(args []any) (NoConfusingArrowOptions, error) {
	opts := NoConfusingArrowOptions{AllowParens: true}
	if _, err := NoConfusingArrow.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
