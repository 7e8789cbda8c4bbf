package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(PreferArrowCallback)
}

// PreferArrowCallback requires arrow functions as callbacks.
var PreferArrowCallback = schema.Schema{
	ID:          "prefer-arrow-callback",
	Group:       GroupArrows,
	Description: "Require using arrow functions for callbacks.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "allowNamedFunctions", Shape: schema.Bool{}, Default: false},
						{Name: "allowUnboundThis", Shape: schema.Bool{}, Default: true},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// PreferArrowCallbackOptions is the decoded configuration for
// prefer-arrow-callback.
type PreferArrowCallbackOptions struct {
	AllowNamedFunctions bool `mapstructure:"allowNamedFunctions"`
	AllowUnboundThis    bool `mapstructure:"allowUnboundThis"`
}

// ParsePreferArrowCallbackOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParsePreferArrowCallbackOptions(args []any) (PreferArrowCallbackOptions, error) {
	opts := PreferArrowCallbackOptions{AllowUnboundThis: true}
	if _, err := PreferArrowCallback.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
