package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dotdrift/internal/config"
	"dotdrift/internal/history"
	"dotdrift/internal/tui"
	"dotdrift/internal/ui"
	"dotdrift/pkg/brew"
	"dotdrift/pkg/manifest"
	"dotdrift/pkg/reconcile"
)

var (
	checkRecord      bool
	checkInteractive bool
)

var checkCmd = &cobra.Command{
	Use:   "check [manifest-path]",
	Short: "Diff the Brewfile against installed packages",
	Long: `Compare the packages declared in a Brewfile against the packages
Homebrew reports as installed.

Installed leaves (packages nothing else depends on) and declared packages
that other packages depend on count as top-level. Packages declared but
not top-level, and top-level packages not declared, are reported as drift.

The manifest defaults to ~/.Brewfile; the config file or a positional
argument overrides it.

Exits 0 when everything is in sync, 1 on drift or any failure.

Examples:
  dotdrift check                       # Diff ~/.Brewfile
  dotdrift check ~/dotfiles/Brewfile   # Diff a specific manifest
  dotdrift check --interactive         # Browse the drift in a TUI`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkRecord, "record", true, "record the result in history")
	checkCmd.Flags().BoolVarP(&checkInteractive, "interactive", "i", false, "browse results interactively")
}

// manifestPath resolves the manifest location: positional argument, then
// config override, then the default under the home directory.
func manifestPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.General.Brewfile != "" {
		return cfg.General.Brewfile
	}
	return config.DefaultBrewfilePath()
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client := brew.New(exec)

	// Preflight: both checks run before any subprocess is spawned.
	if !client.IsAvailable() {
		ui.WarningMsg("Install Homebrew from https://brew.sh and re-run")
		return ErrBrewNotFound
	}

	path := manifestPath(args)

	declared, err := manifest.Parse(path)
	if err != nil {
		return err
	}

	var leaves, installed []string
	err = ui.WithSpinner("Querying Homebrew...", func() error {
		var err error
		if leaves, err = client.Leaves(ctx); err != nil {
			return err
		}
		installed, err = client.Installed(ctx)
		return err
	})
	if err != nil {
		return err
	}

	result := reconcile.Reconcile(declared, leaves, installed)

	ui.PrintDrift(result)

	if checkRecord && cfg.General.RecordHistory && !cfg.General.DryRun {
		if err := recordCheck(path, result); err != nil {
			ui.WarningMsg("Could not record history: %v", err)
		}
	}

	if checkInteractive && !result.Clean() {
		if err := tui.Run(result); err != nil {
			return fmt.Errorf("interactive browser: %w", err)
		}
	}

	if !result.Clean() {
		return ErrDriftDetected
	}

	return nil
}

func recordCheck(path string, result *reconcile.Result) error {
	store, err := history.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(history.NewCheckEntry(path, result.OnlyInManifest, result.OnlyOnSystem))
}
