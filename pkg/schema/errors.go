package schema

import "errors"

// Sentinel errors returned by classification and registry lookups.
var (
	// ErrUnknownRule indicates the rule ID is not in the registry.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrNoVariant indicates a value matched none of the declared variants.
	ErrNoVariant = errors.New("no option variant matched")

	// ErrAmbiguousVariant indicates a value matched more than one variant.
	// Mutual exclusivity is part of the contract: a value satisfying two
	// variants at once is rejected.
	ErrAmbiguousVariant = errors.New("more than one option variant matched")

	// ErrTooManyOptions indicates an option tuple longer than any variant allows.
	ErrTooManyOptions = errors.New("too many options")
)
