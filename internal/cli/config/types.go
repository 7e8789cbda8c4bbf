// Package config loads tool configuration for the esconf CLI from file,
// environment variables, and flags.
package config

// Default configuration values.
const (
	// DefaultOutput auto-detects: TTY gets styled text, pipes get markdown.
	DefaultOutput = "auto"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string   `koanf:"output"`
	Verbose      bool     `koanf:"verbose"`
	DocsBaseURL  string   `koanf:"docs_base_url"`
	Ignore       []string `koanf:"ignore"` // Rule IDs excluded from checking
}
