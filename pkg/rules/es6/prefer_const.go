package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(PreferConst)
}

// PreferConst requires const declarations for variables that are never
// reassigned.
var PreferConst = schema.Schema{
	ID:          "prefer-const",
	Group:       GroupVariables,
	Description: "Require const declarations for variables that are never reassigned after declared.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "destructuring", Shape: schema.Enum{"any", "all"}, Default: "any"},
						{Name: "ignoreReadBeforeAssign", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// PreferConstOptions is the decoded configuration for prefer-const.
type PreferConstOptions struct {
	Destructuring          string `mapstructure:"destructuring"`
	IgnoreReadBeforeAssign bool   `mapstructure:"ignoreReadBeforeAssign"`
}

// ParsePreferConstOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParsePreferConstOptions(args []any) (PreferConstOptions, error) {
	opts := PreferConstOptions{Destructuring: "any"}
	if _, err := PreferConst.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
