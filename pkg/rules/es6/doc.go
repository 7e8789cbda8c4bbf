// Package es6 declares option schemas for ESLint's built-in ES2015+ rule
// family, from arrow-body-style through yield-star-spacing.
//
// Each rule's schema is registered with the global registry via init(), so
// importing this package for side effects makes the whole family available:
//
//	import _ "github.com/lintwell/esconf/pkg/rules/es6"
//
// Option-bearing rules additionally export a typed options struct and a
// Parse helper that classifies a raw option tuple, decodes the matched
// values, and applies the documented defaults. The schemas themselves never
// apply defaults; they only classify.
//
// Rules deprecated upstream (the formatting rules that moved to the
// @stylistic plugin, and no-new-symbol) keep their schemas here with
// Deprecated and ReplacedBy metadata so existing configurations can still
// be validated and flagged.
package es6
