// Package lint orchestrates third-party format and lint tools over
// dotfiles.
package lint

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// ToolID identifies a lint tool.
type ToolID string

const (
	ToolShellcheck ToolID = "shellcheck"
	ToolShfmt      ToolID = "shfmt"
	ToolYamllint   ToolID = "yamllint"
	ToolFishIndent ToolID = "fish_indent"
)

// Status represents the outcome of running one tool on one file.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped" // Tool binary not installed
)

// Outcome records the result of running one tool on one file.
type Outcome struct {
	Tool   ToolID
	File   string
	Status Status
	Detail string // Tool output for failures, install hint for skips
}

// Tool describes an external lint or format tool.
type Tool struct {
	ID     ToolID
	Binary string

	// CheckArgs invoke the tool in check mode with the file appended.
	// When nil, the tool has no check mode: the runner captures its
	// formatted output and diffs it against the original instead.
	CheckArgs []string

	// FixArgs rewrite the file in place. Nil if the tool cannot fix.
	FixArgs []string

	// Extensions the tool covers, with leading dot.
	Extensions []string

	// InstallHint tells the user how to get the tool.
	InstallHint string
}

// DefaultTools returns the standard dotfiles tool set.
func DefaultTools() []Tool {
	return []Tool{
		{
			ID:          ToolShellcheck,
			Binary:      "shellcheck",
			CheckArgs:   []string{},
			Extensions:  []string{".sh", ".bash"},
			InstallHint: "brew install shellcheck",
		},
		{
			ID:          ToolShfmt,
			Binary:      "shfmt",
			CheckArgs:   []string{"-d"},
			FixArgs:     []string{"-w"},
			Extensions:  []string{".sh", ".bash"},
			InstallHint: "brew install shfmt",
		},
		{
			ID:          ToolYamllint,
			Binary:      "yamllint",
			CheckArgs:   []string{},
			Extensions:  []string{".yml", ".yaml"},
			InstallHint: "brew install yamllint",
		},
		{
			ID:          ToolFishIndent,
			Binary:      "fish_indent",
			FixArgs:     []string{"-w"},
			Extensions:  []string{".fish"},
			InstallHint: "brew install fish",
		},
	}
}

// Available returns true if the tool binary is on PATH.
func (t Tool) Available() bool {
	_, err := exec.LookPath(t.Binary)
	return err == nil
}

// CanFix returns true if the tool can rewrite files in place.
func (t Tool) CanFix() bool {
	return len(t.FixArgs) > 0
}

// Covers returns true if the tool applies to the given file.
func (t Tool) Covers(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, e := range t.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
