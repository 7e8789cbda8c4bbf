package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(YieldStarSpacing)
}

// YieldStarSpacing enforces spacing around the star in yield* expressions.
// Accepts either a positional keyword or a {before, after} object; the two
// forms are mutually exclusive.
var YieldStarSpacing = schema.Schema{
	ID:          "yield-star-spacing",
	Group:       GroupSpacing,
	Description: "Require or disallow spacing around the * in yield* expressions.",
	Fixable:     schema.FixableWhitespace,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/yield-star-spacing"},
	Variants: []schema.TupleVariant{
		{
			Name: "spacing",
			Args: []schema.Shape{
				schema.Union{
					Variants: []schema.Variant{
						{Name: "keyword", Shape: schema.Enum{"before", "after", "both", "neither"}},
						{Name: "object", Shape: schema.Object{
							Fields: []schema.Field{
								{Name: "before", Shape: schema.Bool{}, Default: false},
								{Name: "after", Shape: schema.Bool{}, Default: true},
							},
						}},
					},
				},
			},
			MinArgs: 1,
		},
	},
}
