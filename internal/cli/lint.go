package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dotdrift/internal/history"
	"dotdrift/internal/ui"
	"dotdrift/pkg/lint"
)

var (
	lintFix  bool
	lintTool string
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Run format and lint tools over tracked dotfiles",
	Long: `Run the configured lint and format tools over dotfiles and print a
pass/fail summary per tool.

Without arguments the file set is everything git tracks in the current
directory. Tools whose binaries are not installed are skipped with a
warning, never treated as failures.

Exits 0 when every check passes, 1 when any check fails.

Examples:
  dotdrift lint                      # Lint all git-tracked files
  dotdrift lint install.sh           # Lint specific files
  dotdrift lint --tool shellcheck    # Run a single tool
  dotdrift lint --fix                # Rewrite files with fix-capable tools`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintFix, "fix", false, "rewrite files in place where tools support it")
	lintCmd.Flags().StringVarP(&lintTool, "tool", "t", "", "run only the named tool")
}

// activeTools applies config disables and the --tool filter.
func activeTools() ([]lint.Tool, error) {
	var tools []lint.Tool
	for _, tool := range lint.DefaultTools() {
		if cfg.ToolDisabled(string(tool.ID)) {
			continue
		}
		if lintTool != "" && string(tool.ID) != lintTool {
			continue
		}
		tools = append(tools, tool)
	}

	if lintTool != "" && len(tools) == 0 {
		return nil, fmt.Errorf("unknown or disabled tool: %s", lintTool)
	}

	return tools, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tools, err := activeTools()
	if err != nil {
		return err
	}

	runner := lint.NewRunner(exec, tools)

	files := args
	if len(files) == 0 {
		if !lint.GitAvailable() {
			ui.WarningMsg("Install git or pass files explicitly")
			return ErrGitNotFound
		}
		files, err = runner.TrackedFiles(ctx)
		if err != nil {
			return err
		}
	}

	for _, tool := range tools {
		if !tool.Available() {
			ui.WarningMsg("%s is not installed, skipping (%s)", tool.ID, tool.InstallHint)
		}
	}

	if lintFix {
		return runLintFix(ctx, runner, files)
	}

	var outcomes []lint.Outcome
	err = ui.WithSpinner("Running lint tools...", func() error {
		outcomes = runner.Run(ctx, files)
		return nil
	})
	if err != nil {
		return err
	}

	ui.PrintLintFailures(outcomes)
	ui.PrintLintSummary(outcomes)

	checked, failures := countFiles(outcomes)

	if cfg.General.RecordHistory && !cfg.General.DryRun {
		if err := recordLint(checked, failures); err != nil {
			ui.WarningMsg("Could not record history: %v", err)
		}
	}

	if lint.Failed(outcomes) {
		return ErrLintIssues
	}

	if checked > 0 {
		ui.SuccessMsg("All checks passed")
	}

	return nil
}

func runLintFix(ctx context.Context, runner *lint.Runner, files []string) error {
	fixable := 0
	for _, tool := range runner.Tools() {
		if !tool.CanFix() || !tool.Available() {
			continue
		}
		for _, file := range files {
			if tool.Covers(file) {
				fixable++
			}
		}
	}

	if fixable == 0 {
		ui.MutedMsg("Nothing to fix")
		return nil
	}

	if !yes {
		ok, err := ui.Confirm(fmt.Sprintf("Rewrite %d file(s) in place?", fixable), false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	if err := runner.Fix(ctx, files); err != nil {
		return err
	}

	ui.SuccessMsg("Formatting applied")
	return nil
}

// countFiles reduces outcomes to distinct files checked and files with at
// least one failure.
func countFiles(outcomes []lint.Outcome) (checked, failures int) {
	files := make(map[string]bool)
	failed := make(map[string]bool)

	for _, o := range outcomes {
		files[o.File] = true
		if o.Status == lint.StatusFailed {
			failed[o.File] = true
		}
	}

	return len(files), len(failed)
}

func recordLint(checked, failures int) error {
	store, err := history.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(history.NewLintEntry(checked, failures))
}
