package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [config-files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"watch", "fail-on-warn", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"group", "deprecated", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "esconf v1.2.3")
}

func TestRulesCommand_ListJSON(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	var out RulesJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 31, out.Count.Total)
	assert.Equal(t, 8, out.Count.Deprecated)
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--group", "modules", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var out RulesJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 4, out.Count.Total)
	for _, rule := range out.Rules {
		assert.Equal(t, "modules", rule.Group)
	}
}

func TestRulesCommand_ShowRule(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"no-restricted-imports", "--format", "markdown"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "# no-restricted-imports")
	assert.Contains(t, output, "`paths`")
	assert.Contains(t, output, "`grouped`")
	assert.Contains(t, output, "importNamePattern")
}

func TestRulesCommand_UnknownRule(t *testing.T) {
	cmd := NewRulesCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"no-such-rule"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCheckCommand_ValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eslintrc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "rules": {
    "no-var": "error",
    "arrow-body-style": ["warn", "as-needed"]
  }
}`), 0600))

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var out CheckJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Summary.Files)
	assert.Equal(t, 2, out.Summary.Checked)
	assert.Zero(t, out.Summary.Errors)
}

func TestCheckCommand_InvalidOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eslintrc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "rules": {
    "no-restricted-imports": ["error", {
      "patterns": [{"group": ["lodash/*"], "regex": "^lodash"}]
    }]
  }
}`), 0600))

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path, "--format", "json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")

	var out CheckJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Summary.Errors)
	require.Len(t, out.Reports, 1)
	assert.Equal(t, "no-restricted-imports", out.Reports[0].Findings[0].RuleID)
}

func TestCheckCommand_MissingFile(t *testing.T) {
	cmd := NewCheckCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json")})

	assert.Error(t, cmd.Execute())
}

func TestCheckCommand_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.eslintrc.json")
	b := filepath.Join(dir, "b.eslintrc.yaml")
	require.NoError(t, os.WriteFile(a, []byte(`{"rules": {"no-var": "error"}}`), 0600))
	require.NoError(t, os.WriteFile(b, []byte("rules:\n  prefer-const: warn\n"), 0600))

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{a, b, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var out CheckJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 2, out.Summary.Files)
	require.Len(t, out.Reports, 2)
	assert.Equal(t, a, out.Reports[0].Path, "report order follows argument order")
}
