package es6

import "github.com/lintwell/esconf/pkg/schema"

// Rules in the family that accept no configuration options beyond a
// severity. Their schemas have no variants: any non-empty option tuple is
// rejected.

func init() {
	schema.Register(ConstructorSuper)
	schema.Register(NoClassAssign)
	schema.Register(NoConstAssign)
	schema.Register(NoDupeClassMembers)
	schema.Register(NoNewSymbol)
	schema.Register(NoThisBeforeSuper)
	schema.Register(NoUselessConstructor)
	schema.Register(NoVar)
	schema.Register(PreferNumericLiterals)
	schema.Register(PreferRestParams)
	schema.Register(PreferSpread)
	schema.Register(PreferTemplate)
	schema.Register(RequireYield)
	schema.Register(SymbolDescription)
}

// ConstructorSuper requires super() calls in constructors of derived classes.
var ConstructorSuper = schema.Schema{
	ID:          "constructor-super",
	Group:       GroupClasses,
	Description: "Require super() calls in constructors.",
	Recommended: true,
}

// NoClassAssign disallows reassigning class declarations.
var NoClassAssign = schema.Schema{
	ID:          "no-class-assign",
	Group:       GroupClasses,
	Description: "Disallow reassigning class members.",
	Recommended: true,
}

// NoConstAssign disallows reassigning const variables.
var NoConstAssign = schema.Schema{
	ID:          "no-const-assign",
	Group:       GroupVariables,
	Description: "Disallow reassigning const variables.",
	Recommended: true,
}

// NoDupeClassMembers disallows duplicate class member names.
var NoDupeClassMembers = schema.Schema{
	ID:          "no-dupe-class-members",
	Group:       GroupClasses,
	Description: "Disallow duplicate class members.",
	Recommended: true,
}

// NoNewSymbol disallows calling the Symbol constructor with new.
// Deprecated upstream in favor of no-new-native-nonconstructor.
var NoNewSymbol = schema.Schema{
	ID:          "no-new-symbol",
	Group:       GroupSymbols,
	Description: "Disallow new operators with the Symbol object.",
	Recommended: true,
	Deprecated:  true,
	ReplacedBy:  []string{"no-new-native-nonconstructor"},
}

// NoThisBeforeSuper disallows using this before super() in constructors.
var NoThisBeforeSuper = schema.Schema{
	ID:          "no-this-before-super",
	Group:       GroupClasses,
	Description: "Disallow this/super before calling super() in constructors.",
	Recommended: true,
}

// NoUselessConstructor disallows constructors that can be safely removed.
var NoUselessConstructor = schema.Schema{
	ID:          "no-useless-constructor",
	Group:       GroupClasses,
	Description: "Disallow unnecessary constructors.",
}

// NoVar requires let or const instead of var.
var NoVar = schema.Schema{
	ID:          "no-var",
	Group:       GroupVariables,
	Description: "Require let or const instead of var.",
	Fixable:     schema.FixableCode,
}

// PreferNumericLiterals disallows parseInt() in favor of numeric literals.
var PreferNumericLiterals = schema.Schema{
	ID:          "prefer-numeric-literals",
	Group:       GroupPreferences,
	Description: "Disallow parseInt() and Number.parseInt() in favor of binary, octal, and hexadecimal literals.",
	Fixable:     schema.FixableCode,
}

// PreferRestParams requires rest parameters instead of arguments.
var PreferRestParams = schema.Schema{
	ID:          "prefer-rest-params",
	Group:       GroupPreferences,
	Description: "Require rest parameters instead of arguments.",
}

// PreferSpread requires spread syntax instead of Function.prototype.apply.
var PreferSpread = schema.Schema{
	ID:          "prefer-spread",
	Group:       GroupPreferences,
	Description: "Require spread operators instead of .apply().",
}

// PreferTemplate requires template literals instead of string concatenation.
var PreferTemplate = schema.Schema{
	ID:          "prefer-template",
	Group:       GroupPreferences,
	Description: "Require template literals instead of string concatenation.",
	Fixable:     schema.FixableCode,
}

// RequireYield disallows generator functions without yield.
var RequireYield = schema.Schema{
	ID:          "require-yield",
	Group:       GroupGenerators,
	Description: "Require generator functions to contain yield.",
	Recommended: true,
}

// SymbolDescription requires a description argument when creating symbols.
var SymbolDescription = schema.Schema{
	ID:             "symbol-description",
	Group:          GroupSymbols,
	Description:    "Require symbol descriptions.",
	HasSuggestions: true,
}
