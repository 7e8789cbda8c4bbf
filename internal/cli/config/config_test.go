package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, FileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(Reset)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "esconf.yaml"), []byte(`
output: json
verbose: true
ignore:
  - no-var
  - prefer-const
docs_base_url: https://docs.example.com/rules
`), 0600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"no-var", "prefer-const"}, cfg.Ignore)
	assert.Equal(t, "https://docs.example.com/rules", cfg.DocsBaseURL)
	assert.Equal(t, "esconf.yaml", FileUsed())
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(Reset)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: markdown\n"), 0600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, path, FileUsed())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(Reset)

	_, err := Load("does-not-exist.yaml", nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(Reset)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "esconf.yaml"), []byte("output: text\n"), 0600))
	t.Setenv("ESCONF_OUTPUT", "json")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(Reset)
	t.Setenv("ESCONF_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "output format")
	require.NoError(t, flags.Set("output", "markdown"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestGetCurrentConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(Reset)

	assert.Nil(t, GetCurrentConfig())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Same(t, cfg, GetCurrentConfig())
}
