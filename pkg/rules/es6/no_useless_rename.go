package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(NoUselessRename)
}

// NoUselessRename disallows renaming imports, exports, and destructured
// bindings to the same name.
var NoUselessRename = schema.Schema{
	ID:          "no-useless-rename",
	Group:       GroupModules,
	Description: "Disallow renaming import, export, and destructured assignments to the same name.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "ignoreDestructuring", Shape: schema.Bool{}, Default: false},
						{Name: "ignoreImport", Shape: schema.Bool{}, Default: false},
						{Name: "ignoreExport", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// NoUselessRenameOptions is the decoded configuration for no-useless-rename.
type NoUselessRenameOptions struct {
	IgnoreDestructuring bool `mapstructure:"ignoreDestructuring"`
	IgnoreImport        bool `mapstructure:"ignoreImport"`
	IgnoreExport        bool `mapstructure:"ignoreExport"`
}

// ParseNoUselessRenameOptions classifies and decodes an option tuple.
func ParseNoUselessRenameOptions(args []any) (NoUselessRenameOptions, error) {
	var opts NoUselessRenameOptions
	if _, err := NoUselessRename.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
