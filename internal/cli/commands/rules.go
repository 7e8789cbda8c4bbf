package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lintwell/esconf/internal/cli/output"
	_ "github.com/lintwell/esconf/pkg/rules/es6" // register rule schemas
	"github.com/lintwell/esconf/pkg/schema"
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group      string // Filter by group
	Deprecated bool   // Show deprecated rules only
	Format     string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List rules with option schemas",
		Long: `List the rules whose option schemas are registered, grouped by
category (arrows, classes, modules, ...).

With a rule ID argument, shows the rule's full schema metadata including
its option variants and configuration keys.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  esconf rules

  # Show details for a specific rule
  esconf rules no-restricted-imports

  # List rules in the modules group
  esconf rules --group modules

  # List deprecated rules only
  esconf rules --deprecated

  # Output as JSON
  esconf rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVar(&opts.Deprecated, "deprecated", false, "Show deprecated rules only")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	_ = cmd.RegisterFlagCompletionFunc("group", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return schema.Groups(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	schemas := schema.All()
	schemas = filterSchemas(schemas, opts)

	// All() sorts by ID; the grouped listings need group-major order.
	sort.SliceStable(schemas, func(i, j int) bool {
		if schemas[i].Group != schemas[j].Group {
			return schemas[i].Group < schemas[j].Group
		}
		return schemas[i].ID < schemas[j].ID
	})

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, schemas)
	case output.ModeMarkdown:
		listRulesMarkdown(r, schemas)
		return nil
	default:
		listRulesText(r, schemas)
		return nil
	}
}

func filterSchemas(schemas []*schema.Schema, opts *RulesOptions) []*schema.Schema {
	if opts.Group == "" && !opts.Deprecated {
		return schemas
	}
	var filtered []*schema.Schema
	for _, s := range schemas {
		if opts.Group != "" && s.Group != opts.Group {
			continue
		}
		if opts.Deprecated && !s.Deprecated {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	s, ok := schema.Get(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := schema.GetInfo(s)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		showRuleMarkdown(r, info)
		return nil
	default:
		showRuleText(r, info)
		return nil
	}
}

// listRulesText outputs rules in styled text format, grouped by category.
func listRulesText(r *output.Renderer, schemas []*schema.Schema) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Rules (%d)", len(schemas))))
	r.Println("")

	currentGroup := ""
	for _, s := range schemas {
		if s.Group != currentGroup {
			currentGroup = s.Group
			r.Println(styles.Header2.Render("  " + capitalizeFirst(currentGroup)))
		}

		flags := ruleFlags(s)
		line := fmt.Sprintf("    %-32s %s", s.ID, s.Description)
		if flags != "" {
			line += "  " + styles.Muted.Render(flags)
		}
		if s.Deprecated {
			r.Println(styles.Muted.Render(line))
		} else {
			r.Println(line)
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'esconf rules <rule-id>' for schema details"))
	r.Println("")
}

// listRulesMarkdown outputs rules as a markdown table per group.
func listRulesMarkdown(r *output.Renderer, schemas []*schema.Schema) {
	r.Println("# Rules")
	r.Println("")

	currentGroup := ""
	for _, s := range schemas {
		if s.Group != currentGroup {
			currentGroup = s.Group
			r.Println("## " + capitalizeFirst(currentGroup))
			r.Println("")
		}
		flags := ruleFlags(s)
		if flags != "" {
			r.Printf("- **%s** - %s (%s)\n", s.ID, s.Description, flags)
		} else {
			r.Printf("- **%s** - %s\n", s.ID, s.Description)
		}
	}
	r.Println("")
}

// RulesJSONOutput is the JSON output structure for the rules listing.
type RulesJSONOutput struct {
	Rules []schema.Info `json:"rules"`
	Count struct {
		Deprecated int `json:"deprecated"`
		Total      int `json:"total"`
	} `json:"count"`
}

func listRulesJSON(r *output.Renderer, schemas []*schema.Schema) error {
	jsonOutput := RulesJSONOutput{}
	for _, s := range schemas {
		jsonOutput.Rules = append(jsonOutput.Rules, schema.GetInfo(s))
		if s.Deprecated {
			jsonOutput.Count.Deprecated++
		}
	}
	jsonOutput.Count.Total = len(schemas)
	return r.JSON(jsonOutput)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, info schema.Info) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(info.ID))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), info.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), info.DocURL)
	r.Println("")
	r.Println("  " + info.Description)
	r.Println("")

	if info.Deprecated {
		msg := "This rule is deprecated."
		if len(info.ReplacedBy) > 0 {
			msg = fmt.Sprintf("This rule is deprecated. Use %s instead.", strings.Join(info.ReplacedBy, " or "))
		}
		r.Println("  " + styles.Warning.Render(msg))
		r.Println("")
	}
	if info.Recommended {
		r.Println("  " + styles.Success.Render("Included in the recommended set."))
		r.Println("")
	}
	if info.Fixable != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Fixable"), info.Fixable)
	}
	if info.HasSuggestions {
		r.Printf("  %s\n", styles.Muted.Render("Provides editor suggestions."))
	}

	if len(info.Variants) > 0 {
		r.Println("")
		r.Println(styles.Bold.Render("  Option Variants"))
		for _, v := range info.Variants {
			r.Println("    - " + v)
		}
	}
	if len(info.ConfigKeys) > 0 {
		r.Println("")
		r.Println(styles.Bold.Render("  Configuration Keys"))
		r.Printf("    %s\n", strings.Join(info.ConfigKeys, ", "))
	}
	r.Println("")
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, info schema.Info) {
	r.Printf("# %s\n\n", info.ID)
	r.Printf("**Group:** %s | [Documentation](%s)\n\n", info.Group, info.DocURL)
	r.Println(info.Description)
	r.Println("")

	if info.Deprecated {
		if len(info.ReplacedBy) > 0 {
			r.Printf("> **Deprecated.** Use `%s` instead.\n\n", strings.Join(info.ReplacedBy, "`, `"))
		} else {
			r.Println("> **Deprecated.**")
			r.Println("")
		}
	}

	if len(info.Variants) > 0 {
		r.Println("## Option Variants")
		r.Println("")
		for _, v := range info.Variants {
			r.Println("- `" + v + "`")
		}
		r.Println("")
	}
	if len(info.ConfigKeys) > 0 {
		r.Println("## Configuration Keys")
		r.Println("")
		r.Printf("`%s`\n", strings.Join(info.ConfigKeys, "`, `"))
		r.Println("")
	}
}

// Helper functions

func ruleFlags(s *schema.Schema) string {
	var flags []string
	if s.Recommended {
		flags = append(flags, "recommended")
	}
	if s.Deprecated {
		flags = append(flags, "deprecated")
	}
	if s.Fixable != "" {
		flags = append(flags, "fixable")
	}
	return strings.Join(flags, ", ")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
