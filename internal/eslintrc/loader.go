package eslintrc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config file names searched, in priority order.
var configFileNames = []string{
	".eslintrc.json",
	".eslintrc.yaml",
	".eslintrc.yml",
}

// maxUpwardSearchLevels limits how far up the directory tree FindConfigFile
// searches.
const maxUpwardSearchLevels = 10

// Load reads an ESLint configuration file and normalizes its rules section.
// The parser is selected by extension: .json uses the JSON parser,
// everything else is treated as YAML.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser = kyaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = kjson.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{
		Path:  path,
		Rules: make(map[string]RuleEntry),
	}
	raw, ok := k.Get("rules").(map[string]any)
	if !ok {
		// No rules section is a valid, if pointless, configuration.
		return cfg, nil
	}
	for ruleID, entry := range raw {
		normalized, err := ParseRuleEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", ruleID, err)
		}
		cfg.Rules[ruleID] = normalized
	}
	return cfg, nil
}

// RuleIDs returns the configured rule IDs in sorted order.
func (c *Config) RuleIDs() []string {
	ids := make([]string, 0, len(c.Rules))
	for id := range c.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FindConfigFile searches startDir and its ancestors for an ESLint
// configuration file. Returns empty string if none is found.
func FindConfigFile(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}
