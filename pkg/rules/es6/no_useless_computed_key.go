package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(NoUselessComputedKey)
}

// NoUselessComputedKey disallows unnecessary computed property keys.
var NoUselessComputedKey = schema.Schema{
	ID:          "no-useless-computed-key",
	Group:       GroupClasses,
	Description: "Disallow unnecessary computed property keys in objects and classes.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "enforceForClassMembers", Shape: schema.Bool{}, Default: true},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// NoUselessComputedKeyOptions is the decoded configuration for
// no-useless-computed-key.
type NoUselessComputedKeyOptions struct {
	EnforceForClassMembers bool `mapstructure:"enforceForClassMembers"`
}

// ParseNoUselessComputedKeyOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseNoUselessComputedKeyOptions(args []any) (NoUselessComputedKeyOptions, error) {
	opts := NoUselessComputedKeyOptions{EnforceForClassMembers: true}
	if _, err := NoUselessComputedKey.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
