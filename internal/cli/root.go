// Package cli implements the command-line interface for dotdrift.
package cli

import (
	"dotdrift/internal/config"
	"dotdrift/internal/executor"
	"dotdrift/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	dryRun  bool
	yes     bool
	verbose bool
	noColor bool

	// Global state
	cfg  *config.Config
	exec *executor.Executor
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.3.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dotdrift",
	Short: "Keep a Brewfile and its dotfiles honest",
	Long: `dotdrift reconciles the packages declared in a Brewfile against what
Homebrew actually has installed, and runs format/lint tools over tracked
dotfiles.

Examples:
  dotdrift check                      # Diff ~/.Brewfile against the system
  dotdrift check ~/dotfiles/Brewfile  # Diff a specific manifest
  dotdrift lint                       # Lint all git-tracked dotfiles
  dotdrift doctor                     # Diagnose tool availability`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	// Initialize UI
	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	exec = executor.New(cfg.General.DryRun, cfg.Output.Verbose)

	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print dotdrift version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("dotdrift version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
