package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(SortImports)
}

// SortImports enforces sorted import declarations within modules.
// memberSyntaxSortOrder must be a permutation of all four syntax kinds.
var SortImports = schema.Schema{
	ID:          "sort-imports",
	Group:       GroupModules,
	Description: "Enforce sorted import declarations within modules.",
	Fixable:     schema.FixableCode,
	Variants: []schema.TupleVariant{
		{
			Name: "options",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "ignoreCase", Shape: schema.Bool{}, Default: false},
						{Name: "ignoreDeclarationSort", Shape: schema.Bool{}, Default: false},
						{Name: "ignoreMemberSort", Shape: schema.Bool{}, Default: false},
						{Name: "memberSyntaxSortOrder", Shape: schema.Array{
							Of:       schema.Enum{"none", "all", "multiple", "single"},
							MinItems: 4,
							MaxItems: 4,
							Unique:   true,
						}, Default: []string{"none", "all", "multiple", "single"}},
						{Name: "allowSeparatedGroups", Shape: schema.Bool{}, Default: false},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// SortImportsOptions is the decoded configuration for sort-imports.
type SortImportsOptions struct {
	IgnoreCase            bool     `mapstructure:"ignoreCase"`
	IgnoreDeclarationSort bool     `mapstructure:"ignoreDeclarationSort"`
	IgnoreMemberSort      bool     `mapstructure:"ignoreMemberSort"`
	MemberSyntaxSortOrder []string `mapstructure:"memberSyntaxSortOrder"`
	AllowSeparatedGroups  bool     `mapstructure:"allowSeparatedGroups"`
}

// ParseSortImportsOptions classifies and decodes an option tuple,
// applying documented defaults.
func ParseSortImportsOptions(args []any) (SortImportsOptions, error) {
	opts := SortImportsOptions{
		MemberSyntaxSortOrder: []string{"none", "all", "multiple", "single"},
	}
	if _, err := SortImports.Classify(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		if err := schema.DecodeObject(args[0].(map[string]any), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
