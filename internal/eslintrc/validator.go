package eslintrc

import (
	"fmt"
	"strings"

	"github.com/lintwell/esconf/pkg/schema"
)

// Finding levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// Finding is one validation result for a configured rule.
type Finding struct {
	RuleID  string `json:"rule_id"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Variant string `json:"variant,omitempty"`
	DocURL  string `json:"doc_url,omitempty"`
}

// Report summarizes validation of one configuration file.
type Report struct {
	Path     string    `json:"path"`
	Checked  int       `json:"checked"`
	Skipped  int       `json:"skipped"`
	Findings []Finding `json:"findings,omitempty"`
}

// Errors reports how many findings are errors.
func (r *Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == LevelError {
			n++
		}
	}
	return n
}

// Warnings reports how many findings are warnings.
func (r *Report) Warnings() int {
	return len(r.Findings) - r.Errors()
}

// Validate checks every configured rule that has a registered schema.
// Entries for rules outside the registered family are counted as skipped,
// not flagged: this tool only knows the schemas it registers.
func Validate(cfg *Config, ignore []string) *Report {
	report := &Report{Path: cfg.Path}
	ignored := make(map[string]bool, len(ignore))
	for _, id := range ignore {
		ignored[id] = true
	}

	for _, ruleID := range cfg.RuleIDs() {
		if ignored[ruleID] {
			report.Skipped++
			continue
		}
		s, ok := schema.Get(ruleID)
		if !ok {
			report.Skipped++
			continue
		}
		report.Checked++
		entry := cfg.Rules[ruleID]
		report.Findings = append(report.Findings, checkEntry(s, entry)...)
	}
	return report
}

func checkEntry(s *schema.Schema, entry RuleEntry) []Finding {
	var findings []Finding

	if s.Deprecated {
		msg := "rule is deprecated"
		if len(s.ReplacedBy) > 0 {
			msg = fmt.Sprintf("rule is deprecated, use %s instead", strings.Join(s.ReplacedBy, " or "))
		}
		findings = append(findings, Finding{
			RuleID:  s.ID,
			Level:   LevelWarning,
			Message: msg,
			DocURL:  schema.BuildDocURL(s.ID),
		})
	}

	// A disabled rule's options are not worth validating strictly, but a
	// shape error in them is almost always a mistake worth surfacing.
	variant, err := s.Classify(entry.Options)
	if err != nil {
		findings = append(findings, Finding{
			RuleID:  s.ID,
			Level:   LevelError,
			Message: err.Error(),
			DocURL:  schema.BuildDocURL(s.ID),
		})
		return findings
	}

	for _, field := range s.DeprecatedFields(entry.Options) {
		findings = append(findings, Finding{
			RuleID:  s.ID,
			Level:   LevelWarning,
			Message: fmt.Sprintf("option field %q is deprecated", field),
			DocURL:  schema.BuildDocURL(s.ID),
		})
	}

	if variant != "" {
		// Record the matched variant on an informational finding only
		// when something else was already reported, to keep clean runs
		// quiet.
		for i := range findings {
			findings[i].Variant = variant
		}
	}
	return findings
}
