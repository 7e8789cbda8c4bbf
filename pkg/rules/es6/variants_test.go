package es6

import (
	"testing"

	"github.com/lintwell/esconf/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowBodyStyleVariants(t *testing.T) {
	tests := []struct {
		name        string
		args        []any
		wantVariant string
		wantErr     bool
	}{
		{"no options", nil, "", false},
		{"always", []any{"always"}, "bare", false},
		{"never", []any{"never"}, "bare", false},
		{"as-needed", []any{"as-needed"}, "as-needed", false},
		{"as-needed with object", []any{"as-needed", map[string]any{"requireReturnForObjectLiteral": true}}, "as-needed", false},
		{"object after always", []any{"always", map[string]any{"requireReturnForObjectLiteral": true}}, "", true},
		{"unknown mode", []any{"whenever"}, "", true},
		{"unknown object key", []any{"as-needed", map[string]any{"requireReturn": true}}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant, err := ArrowBodyStyle.Classify(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVariant, variant)
		})
	}
}

func TestParseArrowBodyStyleOptions(t *testing.T) {
	opts, err := ParseArrowBodyStyleOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "always", opts.Style)
	assert.False(t, opts.RequireReturnForObjectLiteral)

	opts, err = ParseArrowBodyStyleOptions([]any{"as-needed", map[string]any{"requireReturnForObjectLiteral": true}})
	require.NoError(t, err)
	assert.Equal(t, "as-needed", opts.Style)
	assert.True(t, opts.RequireReturnForObjectLiteral)
}

func TestObjectShorthandVariants(t *testing.T) {
	tests := []struct {
		name        string
		args        []any
		wantVariant string
		wantErr     bool
	}{
		{"bare mode", []any{"consistent-as-needed"}, "mode", false},
		{"always with options", []any{"always", map[string]any{"ignoreConstructors": true}}, "methods-options", false},
		{"methods with pattern", []any{"methods", map[string]any{"methodsIgnorePattern": "^on"}}, "methods-options", false},
		{"properties with avoidQuotes", []any{"properties", map[string]any{"avoidQuotes": true}}, "properties-options", false},
		{"properties with method-only key", []any{"properties", map[string]any{"ignoreConstructors": true}}, "", true},
		{"never with options", []any{"never", map[string]any{"avoidQuotes": true}}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant, err := ObjectShorthand.Classify(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVariant, variant)
		})
	}
}

func TestParseObjectShorthandOptions(t *testing.T) {
	opts, err := ParseObjectShorthandOptions([]any{"methods", map[string]any{
		"avoidQuotes":          true,
		"methodsIgnorePattern": "^legacy",
	}})
	require.NoError(t, err)
	assert.Equal(t, "methods", opts.Mode)
	assert.True(t, opts.AvoidQuotes)
	assert.Equal(t, "^legacy", opts.MethodsIgnorePattern)
	assert.False(t, opts.IgnoreConstructors)
}

func TestPreferDestructuringVariants(t *testing.T) {
	t.Run("shorthand form", func(t *testing.T) {
		variant, err := PreferDestructuring.Classify([]any{map[string]any{"array": false}})
		require.NoError(t, err)
		assert.Equal(t, "options", variant)
	})

	t.Run("by-node form", func(t *testing.T) {
		variant, err := PreferDestructuring.Classify([]any{map[string]any{
			"VariableDeclarator": map[string]any{"object": true},
		}})
		require.NoError(t, err)
		assert.Equal(t, "options", variant)
	})

	t.Run("empty object is ambiguous", func(t *testing.T) {
		// {} satisfies both the shorthand and by-node forms, so it is
		// rejected rather than resolved arbitrarily.
		_, err := PreferDestructuring.Classify([]any{map[string]any{}})
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrNoVariant)
	})

	t.Run("second option", func(t *testing.T) {
		_, err := PreferDestructuring.Classify([]any{
			map[string]any{"object": true},
			map[string]any{"enforceForRenamedProperties": true},
		})
		assert.NoError(t, err)
	})
}

func TestParsePreferDestructuringOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := ParsePreferDestructuringOptions(nil)
		require.NoError(t, err)
		assert.True(t, opts.VariableDeclarator.Array)
		assert.True(t, opts.AssignmentExpression.Object)
		assert.False(t, opts.EnforceForRenamedProperties)
	})

	t.Run("shorthand populates both node kinds", func(t *testing.T) {
		opts, err := ParsePreferDestructuringOptions([]any{map[string]any{"array": false}})
		require.NoError(t, err)
		assert.False(t, opts.VariableDeclarator.Array)
		assert.False(t, opts.AssignmentExpression.Array)
		assert.True(t, opts.VariableDeclarator.Object)
	})

	t.Run("by-node form", func(t *testing.T) {
		opts, err := ParsePreferDestructuringOptions([]any{
			map[string]any{"AssignmentExpression": map[string]any{"array": false, "object": false}},
			map[string]any{"enforceForRenamedProperties": true},
		})
		require.NoError(t, err)
		assert.False(t, opts.AssignmentExpression.Array)
		assert.True(t, opts.VariableDeclarator.Array, "unset node kind keeps defaults")
		assert.True(t, opts.EnforceForRenamedProperties)
	})
}

func TestStarSpacingVariants(t *testing.T) {
	for _, rule := range []*schema.Schema{&GeneratorStarSpacing, &YieldStarSpacing} {
		t.Run(rule.ID, func(t *testing.T) {
			_, err := rule.Classify([]any{"after"})
			assert.NoError(t, err)

			_, err = rule.Classify([]any{map[string]any{"before": true, "after": false}})
			assert.NoError(t, err)

			_, err = rule.Classify([]any{"sideways"})
			assert.Error(t, err)
		})
	}

	t.Run("nested generator overrides", func(t *testing.T) {
		_, err := GeneratorStarSpacing.Classify([]any{map[string]any{
			"before":    false,
			"named":     "after",
			"anonymous": map[string]any{"before": true},
			"method":    "both",
		}})
		assert.NoError(t, err)
	})
}

func TestSortImportsOptions(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		opts, err := ParseSortImportsOptions([]any{map[string]any{
			"ignoreCase":            true,
			"memberSyntaxSortOrder": []any{"all", "single", "multiple", "none"},
		}})
		require.NoError(t, err)
		assert.True(t, opts.IgnoreCase)
		assert.Equal(t, []string{"all", "single", "multiple", "none"}, opts.MemberSyntaxSortOrder)
	})

	t.Run("default order", func(t *testing.T) {
		opts, err := ParseSortImportsOptions(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"none", "all", "multiple", "single"}, opts.MemberSyntaxSortOrder)
	})

	t.Run("incomplete permutation rejected", func(t *testing.T) {
		_, err := ParseSortImportsOptions([]any{map[string]any{
			"memberSyntaxSortOrder": []any{"all", "single"},
		}})
		assert.Error(t, err)
	})

	t.Run("duplicate entry rejected", func(t *testing.T) {
		_, err := ParseSortImportsOptions([]any{map[string]any{
			"memberSyntaxSortOrder": []any{"all", "all", "multiple", "none"},
		}})
		assert.Error(t, err)
	})
}

func TestParseArrowSpacingOptions(t *testing.T) {
	opts, err := ParseArrowSpacingOptions(nil)
	require.NoError(t, err)
	assert.True(t, opts.Before)
	assert.True(t, opts.After)

	opts, err = ParseArrowSpacingOptions([]any{map[string]any{"before": false}})
	require.NoError(t, err)
	assert.False(t, opts.Before)
	assert.True(t, opts.After, "omitted keys keep their defaults")
}

func TestParsePreferConstOptions(t *testing.T) {
	opts, err := ParsePreferConstOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "any", opts.Destructuring)

	opts, err = ParsePreferConstOptions([]any{map[string]any{
		"destructuring":          "all",
		"ignoreReadBeforeAssign": true,
	}})
	require.NoError(t, err)
	assert.Equal(t, "all", opts.Destructuring)
	assert.True(t, opts.IgnoreReadBeforeAssign)

	_, err = ParsePreferConstOptions([]any{map[string]any{"destructuring": "some"}})
	assert.Error(t, err)
}

func TestTemplateCurlySpacing(t *testing.T) {
	_, err := TemplateCurlySpacing.Classify([]any{"never"})
	assert.NoError(t, err)
	_, err = TemplateCurlySpacing.Classify([]any{"always"})
	assert.NoError(t, err)
	_, err = TemplateCurlySpacing.Classify([]any{"maybe"})
	assert.Error(t, err)
}
