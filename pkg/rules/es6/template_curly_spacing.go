package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(TemplateCurlySpacing)
}

// TemplateCurlySpacing requires or disallows spacing around embedded
// expressions of template strings.
var TemplateCurlySpacing = schema.Schema{
	ID:          "template-curly-spacing",
	Group:       GroupSpacing,
	Description: "Require or disallow spacing around embedded expressions of template strings.",
	Fixable:     schema.FixableWhitespace,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/template-curly-spacing"},
	Variants: []schema.TupleVariant{
		{
			Name:    "mode",
			Args:    []schema.Shape{schema.Enum{"never", "always"}},
			MinArgs: 1,
		},
	},
}
