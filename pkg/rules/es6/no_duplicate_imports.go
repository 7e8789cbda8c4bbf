package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(NoDuplicateImports)
}

// NoDuplicateImports disallows importing from the same module twice.
var NoDuplicateImports = schema.Schema{
	ID:          "no-duplicate-imports",
	Group:       GroupModules,
	Description: "Disallow duplicate module imports.",
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "includeExports", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// NoDuplicateImportsOptions is the decoded configuration for
// no-duplicate-imports.
type NoDuplicateImportsOptions struct {
	IncludeExports bool `mapstructure:"includeExports"`
}

// ParseNoDuplicateImportsOptions classifies and decodes an option tuple.
func ParseNoDuplicateImportsOptions(args []any) (NoDuplicateImportsOptions, error) {
	var opts NoDuplicateImportsOptions
	if _, err := NoDuplicateImports.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
