package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lintwell/esconf/internal/cli/output"
	"github.com/lintwell/esconf/internal/eslintrc"
	_ "github.com/lintwell/esconf/pkg/rules/es6" // register rule schemas
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// debounceDelay coalesces bursts of filesystem events in watch mode.
const debounceDelay = 100 * time.Millisecond

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch      bool   // Re-validate on file changes
	FailOnWarn bool   // Treat warnings as failures
	Format     string // Output format override
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:           "check [config-files...]",
		Short:         "Validate ESLint configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Validate the rule options in one or more ESLint configuration files
against the registered option schemas.

Without arguments, searches the current directory and its ancestors for
.eslintrc.json, .eslintrc.yaml, or .eslintrc.yml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the nearest config file
  esconf check

  # Check specific files
  esconf check .eslintrc.json packages/app/.eslintrc.yml

  # Re-validate whenever the files change
  esconf check --watch

  # Fail the build on warnings too
  esconf check --fail-on-warn

  # Output as JSON
  esconf check --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			if opts.Format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
			}

			paths, err := resolveConfigPaths(args)
			if err != nil {
				return err
			}

			if opts.Watch {
				return watchAndCheck(cmd.Context(), cmdCtx, r, paths, opts)
			}

			reports, err := validateAll(cmd.Context(), cmdCtx, paths)
			if err != nil {
				return err
			}
			return renderReports(r, reports, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-validate when config files change")
	cmd.Flags().BoolVar(&opts.FailOnWarn, "fail-on-warn", false, "Exit non-zero on warnings")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// resolveConfigPaths turns command arguments into config file paths,
// falling back to an upward search from the working directory.
func resolveConfigPaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	path := eslintrc.FindConfigFile(cwd)
	if path == "" {
		return nil, fmt.Errorf("no ESLint config file found in %s or its ancestors", cwd)
	}
	return []string{path}, nil
}

// validateAll loads and validates the config files concurrently,
// preserving argument order in the result.
func validateAll(ctx context.Context, cmdCtx *CommandContext, paths []string) ([]*eslintrc.Report, error) {
	reports := make([]*eslintrc.Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmdCtx.Logger.Debug("validating config", "path", path)
			cfg, err := eslintrc.Load(path)
			if err != nil {
				return err
			}
			reports[i] = eslintrc.Validate(cfg, cmdCtx.Cfg.Ignore)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// checkSummary aggregates counts across reports.
type checkSummary struct {
	Files    int `json:"files"`
	Checked  int `json:"checked"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

func summarize(reports []*eslintrc.Report) checkSummary {
	s := checkSummary{Files: len(reports)}
	for _, rep := range reports {
		s.Checked += rep.Checked
		s.Skipped += rep.Skipped
		s.Errors += rep.Errors()
		s.Warnings += rep.Warnings()
	}
	return s
}

// CheckJSONOutput is the JSON output structure for the check command.
type CheckJSONOutput struct {
	Reports []*eslintrc.Report `json:"reports"`
	Summary checkSummary       `json:"summary"`
}

func renderReports(r *output.Renderer, reports []*eslintrc.Report, opts *CheckOptions) error {
	summary := summarize(reports)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(CheckJSONOutput{Reports: reports, Summary: summary}); err != nil {
			return err
		}
	case output.ModeMarkdown:
		renderReportsMarkdown(r, reports, summary)
	default:
		renderReportsText(r, reports, summary)
	}

	if summary.Errors > 0 || (opts.FailOnWarn && summary.Warnings > 0) {
		return fmt.Errorf("%d errors, %d warnings", summary.Errors, summary.Warnings)
	}
	return nil
}

func renderReportsText(r *output.Renderer, reports []*eslintrc.Report, summary checkSummary) {
	styles := r.Styles()

	for _, rep := range reports {
		r.Println("")
		r.Println(styles.Header1.Render(rep.Path))
		r.Printf("  %s rules checked, %s skipped\n",
			styles.Bold.Render(fmt.Sprintf("%d", rep.Checked)),
			styles.Muted.Render(fmt.Sprintf("%d", rep.Skipped)),
		)

		for _, f := range rep.Findings {
			levelStyle := styles.Warning
			if f.Level == eslintrc.LevelError {
				levelStyle = styles.Error
			}
			r.Printf("  %s  %s  %s\n",
				levelStyle.Render(f.Level),
				styles.Bold.Render(f.RuleID),
				f.Message,
			)
			if f.DocURL != "" {
				r.Println(styles.Muted.Render("           " + f.DocURL))
			}
		}
	}

	if len(reports) > 1 {
		rows := make([][]string, 0, len(reports))
		for _, rep := range reports {
			rows = append(rows, []string{
				rep.Path,
				fmt.Sprintf("%d", rep.Checked),
				fmt.Sprintf("%d", rep.Skipped),
				fmt.Sprintf("%d", rep.Errors()),
				fmt.Sprintf("%d", rep.Warnings()),
			})
		}
		r.Println("")
		r.Table([]string{"File", "Checked", "Skipped", "Errors", "Warnings"}, rows)
	}

	r.Println("")
	if summary.Errors == 0 && summary.Warnings == 0 {
		r.Println(styles.Success.Render(fmt.Sprintf("✓ %d files OK (%d rules checked)", summary.Files, summary.Checked)))
	} else {
		r.Println(styles.Error.Render(fmt.Sprintf("%d errors, %d warnings across %d files", summary.Errors, summary.Warnings, summary.Files)))
	}
	r.Println("")
}

func renderReportsMarkdown(r *output.Renderer, reports []*eslintrc.Report, summary checkSummary) {
	r.Println("# Config Check")
	r.Println("")

	for _, rep := range reports {
		r.Printf("## %s\n\n", rep.Path)
		r.Printf("%d rules checked, %d skipped\n\n", rep.Checked, rep.Skipped)
		for _, f := range rep.Findings {
			r.Printf("- **%s** `%s` - %s\n", f.Level, f.RuleID, f.Message)
		}
		if len(rep.Findings) > 0 {
			r.Println("")
		}
	}

	r.Printf("**Summary:** %d errors, %d warnings across %d files\n", summary.Errors, summary.Warnings, summary.Files)
}

// watchAndCheck re-validates the config files whenever one of them changes.
// Findings are reported but never terminate the loop; only Ctrl+C or a
// watcher failure does.
func watchAndCheck(ctx context.Context, cmdCtx *CommandContext, r *output.Renderer, paths []string, opts *CheckOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directories. Editors often replace files on save,
	// which drops a watch registered on the file itself.
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	runOnce := func() {
		reports, err := validateAll(ctx, cmdCtx, paths)
		if err != nil {
			fmt.Fprintf(r.ErrWriter(), "Error: %v\n", err)
			return
		}
		_ = renderReports(r, reports, opts)
	}

	runOnce()
	r.Println(r.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				cmdCtx.Logger.Debug("change detected", "path", filepath.Base(event.Name))
				runOnce()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(r.ErrWriter(), "Watcher error: %v\n", err)
		}
	}
}
