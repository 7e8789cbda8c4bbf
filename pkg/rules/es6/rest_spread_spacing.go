package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(RestSpreadSpacing)
}

// RestSpreadSpacing enforces spacing between rest and spread operators and
// their expressions.
var RestSpreadSpacing = schema.Schema{
	ID:          "rest-spread-spacing",
	Group:       GroupSpacing,
	Description: "Enforce spacing between rest and spread operators and their expressions.",
	Fixable:     schema.FixableWhitespace,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/rest-spread-spacing"},
	Variants: []schema.TupleVariant{
		{
			Name:    "mode",
			Args:    []schema.Shape{schema.Enum{"never", "always"}},
			MinArgs: 1,
		},
	},
}
