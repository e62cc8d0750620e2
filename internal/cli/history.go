package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dotdrift/internal/history"
	"dotdrift/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past check and lint runs",
	Long: `Display recorded check and lint runs, newest first.

Examples:
  dotdrift history              # Show recent runs
  dotdrift history -l 20        # Show last 20 runs
  dotdrift history clear        # Wipe the history`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "number of entries to show")
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		ui.MutedMsg("No history entries found")
		return nil
	}

	ui.HeaderMsg("Run History")

	for i, entry := range entries {
		status := ui.Green("clean")
		if !entry.Clean {
			status = ui.Red("drift")
			if entry.Kind == history.KindLint {
				status = ui.Red("failed")
			}
		}

		detail := entry.Summary()
		if entry.Kind == history.KindCheck && entry.Manifest != "" {
			detail += " " + ui.Cyan("["+shortenHome(entry.Manifest)+"]")
		}

		fmt.Printf("%2d. %s %s %s (%s)\n",
			i+1,
			ui.Muted.Sprint(entry.FormatTime()),
			ui.Bold(string(entry.Kind)),
			detail,
			status,
		)
	}

	total, _ := store.Count()
	ui.MutedMsg("\nShowing %d of %d total entries", len(entries), total)

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	if !yes {
		ok, err := ui.Confirm("Delete all recorded runs?", false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	store, err := history.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	ui.SuccessMsg("History cleared")
	return nil
}

// shortenHome renders paths under $HOME with a leading tilde.
func shortenHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
