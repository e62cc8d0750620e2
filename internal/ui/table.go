package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"dotdrift/pkg/lint"
	"dotdrift/pkg/reconcile"
)

// Table wraps tabwriter for consistent styling.
type Table struct {
	writer  *tabwriter.Writer
	headers []string
}

// NewTable creates a new table with default styling.
func NewTable(headers []string) *Table {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	t := &Table{
		writer:  w,
		headers: headers,
	}

	if len(headers) > 0 {
		headerRow := make([]string, len(headers))
		for i, h := range headers {
			headerRow[i] = Bold(strings.ToUpper(h))
		}
		fmt.Fprintln(w, strings.Join(headerRow, "\t"))
	}

	return t
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	fmt.Fprintln(t.writer, strings.Join(row, "\t"))
}

// Render outputs the table.
func (t *Table) Render() {
	t.writer.Flush()
}

// PrintDrift renders a reconciliation result as a two-column table on
// stdout. The columns are independent side-by-side listings, not a paired
// comparison: row i holds the i-th entry of each column, and the shorter
// column's cells are left blank once exhausted.
func PrintDrift(result *reconcile.Result) {
	if result.Clean() {
		Println("No differences found.")
		return
	}

	table := NewTable([]string{"Only in Manifest", "Only on System"})

	rows := len(result.OnlyInManifest)
	if len(result.OnlyOnSystem) > rows {
		rows = len(result.OnlyOnSystem)
	}

	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(result.OnlyInManifest) {
			left = Yellow(result.OnlyInManifest[i])
		}
		if i < len(result.OnlyOnSystem) {
			right = Red(result.OnlyOnSystem[i])
		}
		table.AddRow([]string{left, right})
	}

	table.Render()
}

// PrintLintSummary renders the per-tool outcome counts of a lint run.
func PrintLintSummary(outcomes []lint.Outcome) {
	if len(outcomes) == 0 {
		MutedMsg("No files to lint")
		return
	}

	type counts struct {
		passed, failed, skipped int
	}
	byTool := make(map[lint.ToolID]*counts)
	var order []lint.ToolID

	for _, o := range outcomes {
		c, ok := byTool[o.Tool]
		if !ok {
			c = &counts{}
			byTool[o.Tool] = c
			order = append(order, o.Tool)
		}
		switch o.Status {
		case lint.StatusPassed:
			c.passed++
		case lint.StatusFailed:
			c.failed++
		case lint.StatusSkipped:
			c.skipped++
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	table := NewTable([]string{"Tool", "Checked", "Passed", "Failed", "Skipped"})
	for _, id := range order {
		c := byTool[id]

		failed := fmt.Sprintf("%d", c.failed)
		if c.failed > 0 {
			failed = Failed.Sprint(failed)
		}

		table.AddRow([]string{
			ToolName.Sprint(string(id)),
			fmt.Sprintf("%d", c.passed+c.failed+c.skipped),
			Passed.Sprint(fmt.Sprintf("%d", c.passed)),
			failed,
			Skipped.Sprint(fmt.Sprintf("%d", c.skipped)),
		})
	}
	table.Render()
}

// PrintLintFailures prints the detail output of each failed outcome.
func PrintLintFailures(outcomes []lint.Outcome) {
	for _, o := range outcomes {
		if o.Status != lint.StatusFailed {
			continue
		}

		Println("%s %s", Failed.Sprint(SymbolError), Bold(o.File))
		MutedMsg("  [%s]", o.Tool)
		if o.Detail != "" {
			for _, line := range strings.Split(strings.TrimRight(o.Detail, "\n"), "\n") {
				Println("  %s", line)
			}
		}
	}
}
