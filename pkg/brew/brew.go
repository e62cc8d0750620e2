// Package brew queries Homebrew for installed package state.
package brew

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"dotdrift/internal/executor"
)

const binary = "brew"

// Client wraps the Homebrew executable.
type Client struct {
	exec *executor.Executor
}

// New creates a new Homebrew client.
func New(exec *executor.Executor) *Client {
	return &Client{exec: exec}
}

// IsAvailable returns true if the brew executable is on PATH.
func (c *Client) IsAvailable() bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Leaves returns installed packages that no other installed package
// depends on, sorted and deduplicated.
func (c *Client) Leaves(ctx context.Context) ([]string, error) {
	output, err := c.exec.Output(ctx, binary, "leaves")
	if err != nil {
		return nil, fmt.Errorf("brew leaves: %w", err)
	}

	return parseNames(output), nil
}

// Installed returns all installed formulae, leaves and dependencies
// alike, sorted and deduplicated.
func (c *Client) Installed(ctx context.Context) ([]string, error) {
	output, err := c.exec.Output(ctx, binary, "list", "--formula")
	if err != nil {
		return nil, fmt.Errorf("brew list: %w", err)
	}

	return parseNames(output), nil
}

// Version returns the Homebrew version line.
func (c *Client) Version(ctx context.Context) (string, error) {
	output, err := c.exec.OutputQuiet(ctx, binary, "--version")
	if err != nil {
		return "", fmt.Errorf("brew --version: %w", err)
	}

	line, _, _ := strings.Cut(output, "\n")
	return strings.TrimSpace(line), nil
}

// parseNames tokenizes whitespace-separated brew output into a sorted,
// deduplicated name list.
func parseNames(output string) []string {
	seen := make(map[string]struct{})
	for _, name := range strings.Fields(output) {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
