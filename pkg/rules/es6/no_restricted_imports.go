package es6

import (
	"fmt"

	"github.com/lintwell/esconf/pkg/schema"
)

func init() {
	schema.Register(NoRestrictedImports)
}

// restrictedPathObject describes one entry of the paths form. importNames
// and allowImportNames are mutually exclusive: the restrict arm forbids
// allowImportNames, and the allow arm requires allowImportNames while
// forbidding importNames, so an entry carrying both matches neither and an
// entry carrying neither matches only the restrict arm.
var restrictedPathObject = schema.Union{
	Variants: []schema.Variant{
		{Name: "restrict", Shape: schema.Object{
			Fields: []schema.Field{
				{Name: "name", Shape: schema.String{}, Required: true},
				{Name: "message", Shape: schema.String{}},
				{Name: "importNames", Shape: schema.Array{Of: schema.String{}, MinItems: 1}},
				{Name: "allowImportNames", Forbidden: true},
			},
		}},
		{Name: "allow", Shape: schema.Object{
			Fields: []schema.Field{
				{Name: "name", Shape: schema.String{}, Required: true},
				{Name: "message", Shape: schema.String{}},
				{Name: "allowImportNames", Shape: schema.Array{Of: schema.String{}, MinItems: 1}, Required: true},
				{Name: "importNames", Forbidden: true},
			},
		}},
	},
}

// restrictedPathEntry is a bare module name or a path object.
var restrictedPathEntry = schema.Union{
	Variants: []schema.Variant{
		{Name: "module-name", Shape: schema.String{}},
		{Name: "path", Shape: restrictedPathObject},
	},
}

// restrictedPatternsValue is the patterns form: either gitignore-style
// strings or pattern objects, never mixed.
var restrictedPatternsValue = schema.Union{
	Variants: []schema.Variant{
		{Name: "groups", Shape: schema.Array{Of: schema.String{}, MinItems: 1, Unique: true}},
		{Name: "objects", Shape: schema.Array{
			Of:       schema.Union{Variants: restrictedPatternVariants()},
			MinItems: 1,
		}},
	},
}

// restrictedPatternVariants expands the pattern object into its mutually
// exclusive arms. Two exclusivities apply at once: group XOR regex, and at
// most one of the four name specifiers. Each arm requires its own
// discriminating fields and marks every sibling's fields Forbidden, so a
// value can never satisfy two arms.
func restrictedPatternVariants() []schema.Variant {
	common := []schema.Field{
		{Name: "message", Shape: schema.String{}},
		{Name: "caseSensitive", Shape: schema.Bool{}, Default: false},
	}
	matchers := []struct {
		field schema.Field
		other string
	}{
		{schema.Field{Name: "group", Shape: schema.Array{Of: schema.String{}, MinItems: 1}, Required: true}, "regex"},
		{schema.Field{Name: "regex", Shape: schema.String{}, Required: true}, "group"},
	}
	specifiers := []schema.Field{
		{Name: "importNames", Shape: schema.Array{Of: schema.String{}, MinItems: 1}},
		{Name: "importNamePattern", Shape: schema.String{}},
		{Name: "allowImportNames", Shape: schema.Array{Of: schema.String{}, MinItems: 1}},
		{Name: "allowImportNamePattern", Shape: schema.String{}},
	}

	var variants []schema.Variant
	for _, m := range matchers {
		base := []schema.Field{m.field, {Name: m.other, Forbidden: true}}
		base = append(base, common...)

		// Arm with no name specifier: all four are forbidden.
		fields := append([]schema.Field(nil), base...)
		for _, sp := range specifiers {
			fields = append(fields, schema.Field{Name: sp.Name, Forbidden: true})
		}
		variants = append(variants, schema.Variant{Name: m.field.Name, Shape: schema.Object{Fields: fields}})

		// One arm per name specifier, forbidding the other three.
		for i, sp := range specifiers {
			fields := append([]schema.Field(nil), base...)
			sp.Required = true
			fields = append(fields, sp)
			for j, other := range specifiers {
				if j != i {
					fields = append(fields, schema.Field{Name: other.Name, Forbidden: true})
				}
			}
			variants = append(variants, schema.Variant{
				Name:  m.field.Name + "+" + sp.Name,
				Shape: schema.Object{Fields: fields},
			})
		}
	}
	return variants
}

// NoRestrictedImports disallows specified modules when loaded by import.
// The rule takes either a variadic list of module names and path objects,
// or a single object with paths and patterns.
var NoRestrictedImports = schema.Schema{
	ID:          "no-restricted-imports",
	Group:       GroupModules,
	Description: "Disallow specified modules when loaded by import.",
	Variants: []schema.TupleVariant{
		{
			Name:     "paths",
			Args:     []schema.Shape{restrictedPathEntry},
			MinArgs:  1,
			Variadic: true,
		},
		{
			Name: "grouped",
			Args: []schema.Shape{
				schema.Object{
					Fields: []schema.Field{
						{Name: "paths", Shape: schema.Array{Of: restrictedPathEntry}},
						{Name: "patterns", Shape: restrictedPatternsValue},
					},
				},
			},
			MinArgs: 1,
		},
	},
}

// PatternMatcher selects how a restricted pattern identifies modules: by
// gitignore-style groups or by regular expression. Exactly one constructor
// exists per legal form, so a pattern can never carry both.
type PatternMatcher interface {
	patternMatcher()
}

// GroupPattern matches modules with gitignore-style path groups.
type GroupPattern []string

// RegexPattern matches modules with a regular expression.
type RegexPattern string

func (GroupPattern) patternMatcher() {}
func (RegexPattern) patternMatcher() {}

// NameSpecifier restricts or allows specific imported names within a
// restricted module. At most one specifier applies; nil means the whole
// module is restricted.
type NameSpecifier interface {
	nameSpecifier()
}

// ImportNames restricts the listed imported names.
type ImportNames []string

// ImportNamePattern restricts imported names matching a pattern.
type ImportNamePattern string

// AllowImportNames permits only the listed imported names.
type AllowImportNames []string

// AllowImportNamePattern permits only imported names matching a pattern.
type AllowImportNamePattern string

func (ImportNames) nameSpecifier()            {}
func (ImportNamePattern) nameSpecifier()      {}
func (AllowImportNames) nameSpecifier()       {}
func (AllowImportNamePattern) nameSpecifier() {}

// RestrictedPath is one restricted module in decoded form.
type RestrictedPath struct {
	Name    string
	Message string
	Names   NameSpecifier // ImportNames or AllowImportNames, or nil
}

// RestrictedPattern is one restricted pattern in decoded form.
type RestrictedPattern struct {
	Matcher       PatternMatcher
	Names         NameSpecifier
	Message       string
	CaseSensitive bool
}

// RestrictedImportsOptions is the decoded configuration for
// no-restricted-imports.
type RestrictedImportsOptions struct {
	Paths    []RestrictedPath
	Patterns []RestrictedPattern
}

type rawRestrictedPath struct {
	Name             string   `mapstructure:"name"`
	Message          string   `mapstructure:"message"`
	ImportNames      []string `mapstructure:"importNames"`
	AllowImportNames []string `mapstructure:"allowImportNames"`
}

type rawRestrictedPattern struct {
	Group                  []string `mapstructure:"group"`
	Regex                  string   `mapstructure:"regex"`
	Message                string   `mapstructure:"message"`
	CaseSensitive          bool     `mapstructure:"caseSensitive"`
	ImportNames            []string `mapstructure:"importNames"`
	ImportNamePattern      string   `mapstructure:"importNamePattern"`
	AllowImportNames       []string `mapstructure:"allowImportNames"`
	AllowImportNamePattern string   `mapstructure:"allowImportNamePattern"`
}

// ParseRestrictedImportsOptions classifies and decodes an option tuple into
// the sum-typed form. Classification guarantees exclusivity, so decoding
// can pick constructors without re-checking.
func ParseRestrictedImportsOptions(args []any) (RestrictedImportsOptions, error) {
	var opts RestrictedImportsOptions
	variant, err := NoRestrictedImports.Classify(args)
	if err != nil {
		return opts, err
	}

	switch variant {
	case "":
		return opts, nil
	case "paths":
		for _, arg := range args {
			path, err := decodeRestrictedPath(arg)
			if err != nil {
				return opts, err
			}
			opts.Paths = append(opts.Paths, path)
		}
		return opts, nil
	case "grouped":
		m := args[0].(map[string]any)
		for _, entry := range schema.GetOption(m, "paths", []any(nil)) {
			path, err := decodeRestrictedPath(entry)
			if err != nil {
				return opts, err
			}
			opts.Paths = append(opts.Paths, path)
		}
		if groups := schema.GetStringSliceOption(m, "patterns", nil); len(groups) > 0 {
			opts.Patterns = append(opts.Patterns, RestrictedPattern{Matcher: GroupPattern(groups)})
			return opts, nil
		}
		for _, entry := range schema.GetOption(m, "patterns", []any(nil)) {
			pattern, err := decodeRestrictedPattern(entry)
			if err != nil {
				return opts, err
			}
			opts.Patterns = append(opts.Patterns, pattern)
		}
		return opts, nil
	default:
		return opts, fmt.Errorf("unexpected variant %q", variant)
	}
}

func decodeRestrictedPath(v any) (RestrictedPath, error) {
	if name, ok := v.(string); ok {
		return RestrictedPath{Name: name}, nil
	}
	var raw rawRestrictedPath
	if err := schema.DecodeObject(v.(map[string]any), &raw); err != nil {
		return RestrictedPath{}, err
	}
	path := RestrictedPath{Name: raw.Name, Message: raw.Message}
	switch {
	case len(raw.ImportNames) > 0:
		path.Names = ImportNames(raw.ImportNames)
	case len(raw.AllowImportNames) > 0:
		path.Names = AllowImportNames(raw.AllowImportNames)
	}
	return path, nil
}

func decodeRestrictedPattern(v any) (RestrictedPattern, error) {
	var raw rawRestrictedPattern
	if err := schema.DecodeObject(v.(map[string]any), &raw); err != nil {
		return RestrictedPattern{}, err
	}
	pattern := RestrictedPattern{Message: raw.Message, CaseSensitive: raw.CaseSensitive}
	if raw.Regex != "" {
		pattern.Matcher = RegexPattern(raw.Regex)
	} else {
		pattern.Matcher = GroupPattern(raw.Group)
	}
	switch {
	case len(raw.ImportNames) > 0:
		pattern.Names = ImportNames(raw.ImportNames)
	case raw.ImportNamePattern != "":
		pattern.Names = ImportNamePattern(raw.ImportNamePattern)
	case len(raw.AllowImportNames) > 0:
		pattern.Names = AllowImportNames(raw.AllowImportNames)
	case raw.AllowImportNamePattern != "":
		pattern.Names = AllowImportNamePattern(raw.AllowImportNamePattern)
	}
	return pattern, nil
}
