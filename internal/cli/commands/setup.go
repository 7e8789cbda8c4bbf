// Package commands implements the esconf subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/lintwell/esconf/internal/cli/config"
	"github.com/lintwell/esconf/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's loaded
// configuration and context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	outputFormat := os.Getenv("ESCONF_OUTPUT")
	if outputFormat == "" {
		outputFormat = config.DefaultOutput
	}

	return &config.Config{
		OutputFormat: outputFormat,
		Verbose:      os.Getenv("ESCONF_VERBOSE") == "true",
		DocsBaseURL:  os.Getenv("ESCONF_DOCS_BASE_URL"),
	}
}
