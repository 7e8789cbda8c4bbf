package schema

import (
	"fmt"
	"strings"
)

// DefaultDocsBaseURL is the hosted rule documentation site.
const DefaultDocsBaseURL = "https://eslint.org/docs/latest/rules"

// DocsBaseURL can be overridden via config for mirrors or offline docs.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs a documentation URL for a rule.
func BuildDocURL(ruleID string) string {
	return fmt.Sprintf("%s/%s", DocsBaseURL, ruleID)
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}

// Info is a flattened, serializable view of a schema for tooling output.
type Info struct {
	ID             string   `json:"id"`
	Group          string   `json:"group"`
	Description    string   `json:"description"`
	Deprecated     bool     `json:"deprecated,omitempty"`
	ReplacedBy     []string `json:"replaced_by,omitempty"`
	Recommended    bool     `json:"recommended,omitempty"`
	Fixable        string   `json:"fixable,omitempty"`
	HasSuggestions bool     `json:"has_suggestions,omitempty"`
	ConfigKeys     []string `json:"config_keys,omitempty"`
	Variants       []string `json:"variants,omitempty"`
	DocURL         string   `json:"doc_url"`
}

// GetInfo extracts serializable metadata from a schema.
func GetInfo(s *Schema) Info {
	variants := make([]string, 0, len(s.Variants))
	for _, tv := range s.Variants {
		variants = append(variants, tv.Name)
	}
	return Info{
		ID:             s.ID,
		Group:          s.Group,
		Description:    s.Description,
		Deprecated:     s.Deprecated,
		ReplacedBy:     s.ReplacedBy,
		Recommended:    s.Recommended,
		Fixable:        s.Fixable,
		HasSuggestions: s.HasSuggestions,
		ConfigKeys:     s.ConfigKeys(),
		Variants:       variants,
		DocURL:         BuildDocURL(s.ID),
	}
}
