package eslintrc

import (
	"testing"

	"github.com/lintwell/esconf/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleEntry(t *testing.T) {
	t.Run("bare string severity", func(t *testing.T) {
		entry, err := ParseRuleEntry("error")
		require.NoError(t, err)
		assert.Equal(t, schema.SeverityError, entry.Severity)
		assert.Empty(t, entry.Options)
	})

	t.Run("bare numeric severity", func(t *testing.T) {
		entry, err := ParseRuleEntry(float64(1))
		require.NoError(t, err)
		assert.Equal(t, schema.SeverityWarn, entry.Severity)
	})

	t.Run("array with options", func(t *testing.T) {
		entry, err := ParseRuleEntry([]any{"error", "always", map[string]any{"strict": true}})
		require.NoError(t, err)
		assert.Equal(t, schema.SeverityError, entry.Severity)
		assert.Equal(t, []any{"always", map[string]any{"strict": true}}, entry.Options)
	})

	t.Run("array with severity only", func(t *testing.T) {
		entry, err := ParseRuleEntry([]any{float64(2)})
		require.NoError(t, err)
		assert.Equal(t, schema.SeverityError, entry.Severity)
		assert.Empty(t, entry.Options)
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := ParseRuleEntry([]any{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty rule entry")
	})

	t.Run("invalid severity", func(t *testing.T) {
		_, err := ParseRuleEntry("fatal")
		assert.Error(t, err)

		_, err = ParseRuleEntry([]any{"fatal", "always"})
		assert.Error(t, err)

		_, err = ParseRuleEntry(float64(5))
		assert.Error(t, err)
	})
}
