package es6

import "github.com/lintwell/esconf/pkg/schema"

func init() {
	schema.Register(GeneratorStarSpacing)
}

// starSpacingObject is the {before, after} form shared by the star-spacing
// rules. Named and anonymous generator overrides nest the same shape.
var starSpacingObject = schema.Object{
	Fields: []schema.Field{
		{Name: "before", Shape: schema.Bool{}, Default: true},
		{Name: "after", Shape: schema.Bool{}, Default: false},
	},
}

// starSpacingValue accepts either a positional keyword or a {before, after}
// object. The keyword and object forms are mutually exclusive variants.
var starSpacingValue = schema.Union{
	Variants: []schema.Variant{
		{Name: "keyword", Shape: schema.Enum{"before", "after", "both", "neither"}},
		{Name: "object", Shape: starSpacingObject},
	},
}

// GeneratorStarSpacing enforces spacing around the star in generator
// functions, with per-kind overrides for named, anonymous, and method
// generators.
var GeneratorStarSpacing = schema.Schema{
	ID:          "generator-star-spacing",
	Group:       GroupSpacing,
	Description: "Enforce consistent spacing around star operators in generator functions.",
	Fixable:     schema.FixableWhitespace,
	Deprecated:  true,
	ReplacedBy:  []string{"@stylistic/generator-star-spacing"},
	Variants: []schema.TupleVariant{
		{
			Name: "spacing",
			Args: []schema.Shape{
				schema.Union{
					Variants: []schema.Variant{
						{Name: "keyword", Shape: schema.Enum{"before", "after", "both", "neither"}},
						{Name: "config", Shape: schema.Object{
							Fields: []schema.Field{
								{Name: "before", Shape: schema.Bool{}, Default: true},
								{Name: "after", Shape: schema.Bool{}, Default: false},
								{Name: "named", Shape: starSpacingValue},
								{Name: "anonymous", Shape: starSpacingValue},
								{Name: "method", Shape: starSpacingValue},
							},
						}},
					},
				},
			},
			MinArgs: 1,
		},
	},
}
