// Package manifest parses Brewfile package declarations.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// ErrNotFound is returned when the manifest file does not exist.
var ErrNotFound = fmt.Errorf("manifest not found")

// Matches `brew "name"` or `brew 'name'`, with trailing options allowed
// (e.g. `brew "mysql", restart_service: true`).
var brewLine = regexp.MustCompile(`^brew\s+["']([^"']+)["']`)

// Parse reads a Brewfile and returns the declared formula names, sorted
// and deduplicated. Lines other than `brew` declarations (comments, taps,
// casks, mas entries) are ignored.
func Parse(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	names, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return names, nil
}

// ParseReader extracts declared formula names from Brewfile content.
func ParseReader(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		m := brewLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		seen[m[1]] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
