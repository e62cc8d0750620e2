package lint

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"dotdrift/internal/executor"
)

// Runner executes lint tools over a set of files, one tool at a time,
// one file at a time.
type Runner struct {
	exec  *executor.Executor
	tools []Tool
}

// NewRunner creates a runner over the given tool set.
func NewRunner(exec *executor.Executor, tools []Tool) *Runner {
	return &Runner{
		exec:  exec,
		tools: tools,
	}
}

// Tools returns the configured tool set.
func (r *Runner) Tools() []Tool {
	return r.tools
}

// GitAvailable returns true if the git executable is on PATH.
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// TrackedFiles returns the files tracked by git in the current working
// directory's repository.
func (r *Runner) TrackedFiles(ctx context.Context) ([]string, error) {
	output, err := r.exec.Output(ctx, "git", "ls-files")
	if err != nil {
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	var files []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}

	return files, nil
}

// Run checks every file with every tool that covers it and returns one
// outcome per tool/file pair. A missing tool binary yields skipped
// outcomes; it never aborts the run.
func (r *Runner) Run(ctx context.Context, files []string) []Outcome {
	var outcomes []Outcome

	for _, tool := range r.tools {
		available := tool.Available()

		for _, file := range files {
			if !tool.Covers(file) {
				continue
			}

			if !available {
				outcomes = append(outcomes, Outcome{
					Tool:   tool.ID,
					File:   file,
					Status: StatusSkipped,
					Detail: tool.InstallHint,
				})
				continue
			}

			outcomes = append(outcomes, r.check(ctx, tool, file))
		}
	}

	return outcomes
}

// Fix rewrites the given files in place using every fix-capable tool
// that covers them, streaming tool output to the terminal.
func (r *Runner) Fix(ctx context.Context, files []string) error {
	for _, tool := range r.tools {
		if !tool.CanFix() || !tool.Available() {
			continue
		}

		for _, file := range files {
			if !tool.Covers(file) {
				continue
			}

			args := append(append([]string{}, tool.FixArgs...), file)
			if err := r.exec.Run(ctx, tool.Binary, args...); err != nil {
				return fmt.Errorf("%s %s: %w", tool.Binary, file, err)
			}
		}
	}

	return nil
}

// check runs one tool on one file.
func (r *Runner) check(ctx context.Context, tool Tool, file string) Outcome {
	if tool.CheckArgs == nil {
		return r.formatDiff(ctx, tool, file)
	}

	args := append(append([]string{}, tool.CheckArgs...), file)
	output, err := r.exec.OutputCombined(ctx, tool.Binary, args...)
	if err != nil {
		return Outcome{
			Tool:   tool.ID,
			File:   file,
			Status: StatusFailed,
			Detail: strings.TrimSpace(output),
		}
	}

	return Outcome{Tool: tool.ID, File: file, Status: StatusPassed}
}

// formatDiff checks a formatter without a native check mode: it captures
// the formatted output into a temporary file and compares it against the
// original. The temporary file is removed on every exit path.
func (r *Runner) formatDiff(ctx context.Context, tool Tool, file string) Outcome {
	formatted, err := r.exec.OutputQuiet(ctx, tool.Binary, file)
	if err != nil {
		return Outcome{
			Tool:   tool.ID,
			File:   file,
			Status: StatusFailed,
			Detail: fmt.Sprintf("%s failed: %v", tool.Binary, err),
		}
	}

	tmp, err := os.CreateTemp("", "dotdrift-"+filepath.Base(file)+"-*")
	if err != nil {
		return Outcome{
			Tool:   tool.ID,
			File:   file,
			Status: StatusFailed,
			Detail: fmt.Sprintf("temp file: %v", err),
		}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(formatted); err != nil {
		tmp.Close()
		return Outcome{
			Tool:   tool.ID,
			File:   file,
			Status: StatusFailed,
			Detail: fmt.Sprintf("temp file: %v", err),
		}
	}
	tmp.Close()

	diff, err := r.exec.OutputQuiet(ctx, "git", "diff", "--no-index", "--", file, tmp.Name())
	if err != nil {
		// Non-zero exit means the formatted output differs.
		return Outcome{
			Tool:   tool.ID,
			File:   file,
			Status: StatusFailed,
			Detail: strings.TrimSpace(diff),
		}
	}

	return Outcome{Tool: tool.ID, File: file, Status: StatusPassed}
}

// Failed returns true if any outcome failed.
func Failed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}
