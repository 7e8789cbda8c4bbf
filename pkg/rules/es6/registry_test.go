package es6

import (
	"testing"

	"github.com/lintwell/esconf/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRulesRegistered(t *testing.T) {
	assert.Equal(t, 31, schema.Count())

	for _, id := range []string{
		"arrow-body-style",
		"constructor-super",
		"no-restricted-imports",
		"object-shorthand",
		"prefer-destructuring",
		"sort-imports",
		"yield-star-spacing",
	} {
		_, ok := schema.Get(id)
		assert.True(t, ok, "rule %q should be registered", id)
	}
}

func TestGroups(t *testing.T) {
	assert.Equal(t, []string{
		GroupArrows,
		GroupClasses,
		GroupGenerators,
		GroupModules,
		GroupPreferences,
		GroupSpacing,
		GroupSymbols,
		GroupVariables,
	}, schema.Groups())

	modules := schema.ByGroup(GroupModules)
	require.Len(t, modules, 4)
	assert.Equal(t, "no-duplicate-imports", modules[0].ID)
	assert.Equal(t, "sort-imports", modules[3].ID)
}

func TestDeprecatedRules(t *testing.T) {
	var ids []string
	for _, s := range schema.Deprecated() {
		ids = append(ids, s.ID)
		assert.NotEmpty(t, s.ReplacedBy, "deprecated rule %q should name a successor", s.ID)
	}
	assert.Equal(t, []string{
		"arrow-parens",
		"arrow-spacing",
		"generator-star-spacing",
		"no-confusing-arrow",
		"no-new-symbol",
		"rest-spread-spacing",
		"template-curly-spacing",
		"yield-star-spacing",
	}, ids)
}

func TestRecommendedRules(t *testing.T) {
	recommended := map[string]bool{
		"constructor-super":     true,
		"no-class-assign":       true,
		"no-const-assign":       true,
		"no-dupe-class-members": true,
		"no-new-symbol":         true,
		"no-this-before-super":  true,
		"require-yield":         true,
	}
	for _, s := range schema.All() {
		assert.Equal(t, recommended[s.ID], s.Recommended, "rule %q", s.ID)
	}
}

func TestNoOptionRulesRejectOptions(t *testing.T) {
	for _, id := range []string{"no-var", "constructor-super", "require-yield", "prefer-spread"} {
		t.Run(id, func(t *testing.T) {
			variant, err := schema.Classify(id, nil)
			require.NoError(t, err)
			assert.Empty(t, variant)

			_, err = schema.Classify(id, []any{map[string]any{"anything": true}})
			assert.Error(t, err)
		})
	}
}
