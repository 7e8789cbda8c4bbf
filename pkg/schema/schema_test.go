package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumSchema() *Schema {
	return &Schema{
		ID:    "test-enum-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{Name: "mode", Args: []Shape{Enum{"always", "never"}}, MinArgs: 1},
		},
	}
}

func TestClassifyEmptyTuple(t *testing.T) {
	// Severity-only configuration is always legal, even for rules that
	// declare no variants.
	s := enumSchema()
	variant, err := s.Classify(nil)
	require.NoError(t, err)
	assert.Empty(t, variant)

	noOpts := &Schema{ID: "bare", Group: "testing"}
	variant, err = noOpts.Classify([]any{})
	require.NoError(t, err)
	assert.Empty(t, variant)
}

func TestClassifyNoVariantsRejectsOptions(t *testing.T) {
	s := &Schema{ID: "bare", Group: "testing"}
	_, err := s.Classify([]any{"always"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts no options")
}

func TestClassifySingleVariant(t *testing.T) {
	s := enumSchema()

	variant, err := s.Classify([]any{"always"})
	require.NoError(t, err)
	assert.Equal(t, "mode", variant)

	_, err = s.Classify([]any{"sometimes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoVariant)
}

func TestClassifyTooManyOptions(t *testing.T) {
	s := enumSchema()
	_, err := s.Classify([]any{"always", "never"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyOptions)
}

func TestClassifyOptionalTrailingArg(t *testing.T) {
	s := &Schema{
		ID:    "test-optional-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{
				Name: "mode",
				Args: []Shape{
					Enum{"always", "never"},
					Object{Fields: []Field{{Name: "strict", Shape: Bool{}}}},
				},
				MinArgs: 1,
			},
		},
	}

	variant, err := s.Classify([]any{"always"})
	require.NoError(t, err)
	assert.Equal(t, "mode", variant)

	variant, err = s.Classify([]any{"always", map[string]any{"strict": true}})
	require.NoError(t, err)
	assert.Equal(t, "mode", variant)

	_, err = s.Classify([]any{"always", map[string]any{"strikt": true}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoVariant)
}

func TestClassifyVariadic(t *testing.T) {
	s := &Schema{
		ID:    "test-variadic-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{Name: "items", Args: []Shape{String{}}, MinArgs: 1, Variadic: true},
		},
	}

	variant, err := s.Classify([]any{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "items", variant)

	_, err = s.Classify([]any{"a", 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option 1")
}

func TestClassifyDisjointVariants(t *testing.T) {
	// Variants discriminated by first-arg enums and arity, the way
	// object-shorthand declares its forms.
	s := &Schema{
		ID:    "test-disjoint-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{Name: "short", Args: []Shape{Enum{"always", "methods", "properties"}}, MinArgs: 1},
			{
				Name: "long",
				Args: []Shape{
					Enum{"always", "methods"},
					Object{Fields: []Field{{Name: "avoidQuotes", Shape: Bool{}}}},
				},
				MinArgs: 2,
			},
		},
	}

	variant, err := s.Classify([]any{"always"})
	require.NoError(t, err)
	assert.Equal(t, "short", variant)

	variant, err = s.Classify([]any{"always", map[string]any{"avoidQuotes": true}})
	require.NoError(t, err)
	assert.Equal(t, "long", variant)

	_, err = s.Classify([]any{"properties", map[string]any{"avoidQuotes": true}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoVariant)
}

func TestClassifyAmbiguousRejected(t *testing.T) {
	s := &Schema{
		ID:    "test-ambiguous-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{Name: "a", Args: []Shape{Object{Fields: []Field{{Name: "x", Shape: Bool{}}}}}, MinArgs: 1},
			{Name: "b", Args: []Shape{Object{Fields: []Field{{Name: "y", Shape: Bool{}}}}}, MinArgs: 1},
		},
	}

	_, err := s.Classify([]any{map[string]any{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousVariant)
}

func TestValidate(t *testing.T) {
	s := enumSchema()
	assert.NoError(t, s.Validate([]any{"never"}))
	assert.Error(t, s.Validate([]any{"bogus"}))
}

func TestSchemaDeprecatedFields(t *testing.T) {
	s := &Schema{
		ID:    "test-deprecated-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{
				Name: "options",
				Args: []Shape{Object{Fields: []Field{
					{Name: "modern", Shape: Bool{}},
					{Name: "legacy", Shape: Bool{}, Deprecated: true},
				}}},
				MinArgs: 1,
			},
		},
	}

	assert.Empty(t, s.DeprecatedFields([]any{map[string]any{"modern": true}}))
	assert.Equal(t, []string{"legacy"},
		s.DeprecatedFields([]any{map[string]any{"legacy": true, "modern": false}}))
}

func TestConfigKeys(t *testing.T) {
	s := &Schema{
		ID:    "test-keys-rule",
		Group: "testing",
		Variants: []TupleVariant{
			{
				Name: "options",
				Args: []Shape{Object{Fields: []Field{
					{Name: "beta", Shape: Bool{}},
					{Name: "alpha", Shape: Array{Of: Object{Fields: []Field{
						{Name: "nested", Shape: String{}},
					}}}},
					{Name: "hidden", Forbidden: true},
				}}},
				MinArgs: 1,
			},
		},
	}

	assert.Equal(t, []string{"alpha", "beta", "nested"}, s.ConfigKeys())
}
