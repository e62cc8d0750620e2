package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"dotdrift/internal/config"
	"dotdrift/internal/ui"
	"dotdrift/pkg/brew"
	"dotdrift/pkg/lint"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose tool and manifest availability",
	Long: `Check that everything dotdrift depends on is in place: the brew and
git executables, the manifest file, and each lint tool.

Examples:
  dotdrift doctor           # Run diagnostics`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	issues := 0

	ui.HeaderMsg("Running diagnostics...")

	// Homebrew
	client := brew.New(exec)
	if client.IsAvailable() {
		if version, err := client.Version(ctx); err == nil {
			ui.SuccessMsg("Homebrew available: %s", version)
		} else {
			ui.ErrorMsg("brew is on PATH but failed to run: %v", err)
			issues++
		}
	} else {
		ui.ErrorMsg("brew not found on PATH (install from https://brew.sh)")
		issues++
	}

	// Manifest
	path := manifestPath(nil)
	if _, err := os.Stat(path); err == nil {
		ui.SuccessMsg("Manifest found: %s", path)
	} else {
		ui.ErrorMsg("Manifest missing: %s", path)
		issues++
	}

	// Git (used for tracked-file discovery and format diffs)
	if lint.GitAvailable() {
		ui.SuccessMsg("git available")
	} else {
		ui.ErrorMsg("git not found on PATH")
		issues++
	}

	// Lint tools
	ui.HeaderMsg("Lint Tools")
	for _, tool := range lint.DefaultTools() {
		switch {
		case cfg.ToolDisabled(string(tool.ID)):
			ui.MutedMsg("%s is disabled in config", tool.ID)
		case tool.Available():
			ui.SuccessMsg("%s is available", tool.ID)
		default:
			ui.WarningMsg("%s is not installed (%s)", tool.ID, tool.InstallHint)
		}
	}

	// Configuration
	ui.HeaderMsg("Configuration")
	if _, err := os.Stat(config.ConfigPath()); err == nil {
		ui.SuccessMsg("Config file: %s", config.ConfigPath())
	} else {
		ui.MutedMsg("No config file (using defaults): %s", config.ConfigPath())
	}
	ui.MutedMsg("History database: %s", config.HistoryPath())

	// Summary
	ui.HeaderMsg("Summary")
	if issues == 0 {
		ui.SuccessMsg("No issues found! dotdrift is ready to use.")
	} else {
		ui.WarningMsg("Found %d issue(s). Some commands may not work correctly.", issues)
	}

	return nil
}
