// Package schema declares the option shapes accepted by ESLint's built-in
// ES2015+ rules and classifies candidate configuration values against them.
//
// # Architecture
//
// The package follows a declarative layering:
//
//  1. Shapes (Bool, Int, String, Enum, Array, Object, Union): structural
//     descriptions of a single configuration value
//  2. Schema: a rule identifier plus the set of legal argument tuples,
//     expressed as mutually exclusive TupleVariants
//  3. Registry: a global rule-ID-to-schema mapping populated via init()
//
// # Rule Registration
//
// Schemas are automatically registered when their package is imported:
//
//	import _ "github.com/lintwell/esconf/pkg/rules/es6"
//
// # Classification
//
// A candidate option tuple is valid if and only if it structurally matches
// exactly one of the schema's declared variants. Variants are mutually
// exclusive by construction: fields belonging to other variants are marked
// Forbidden, so a value can never satisfy two variants at once.
//
//	s, ok := schema.Get("no-restricted-imports")
//	variant, err := s.Classify([]any{map[string]any{"name": "lodash"}})
//
// Matching exactly zero variants yields an error describing each variant's
// mismatch; matching more than one is reported as ambiguity and likewise
// rejected, since mutual exclusivity is part of the contract.
//
// # Defaults
//
// Default values recorded on fields are advisory metadata. Classification
// never fills them in; only the typed Parse helpers in rule packages apply
// them when decoding matched values into option structs.
package schema
