package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name: "typical Brewfile",
			input: `# CLI tools
tap "homebrew/bundle"
brew "git"
brew "wget"
cask "firefox"
mas "Xcode", id: 497799835

brew "jq"
`,
			want: []string{"git", "jq", "wget"},
		},
		{
			name:  "empty file",
			input: "",
			want:  []string{},
		},
		{
			name: "only non-brew lines",
			input: `tap "homebrew/core"
cask "iterm2"
# brew "commented-out"
`,
			want: []string{},
		},
		{
			name: "duplicates collapse",
			input: `brew "git"
brew "git"
brew "git"
`,
			want: []string{"git"},
		},
		{
			name: "single quotes and trailing options",
			input: `brew 'fzf'
brew "mysql", restart_service: true
brew "gnupg", link: false
`,
			want: []string{"fzf", "gnupg", "mysql"},
		},
		{
			name: "indented declarations",
			input: "  brew \"bat\"\n\tbrew \"fd\"\n",
			want: []string{"bat", "fd"},
		},
		{
			name: "output is sorted",
			input: `brew "zsh"
brew "bat"
brew "ripgrep"
`,
			want: []string{"bat", "ripgrep", "zsh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReader(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseReader() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Brewfile")

	content := "brew \"git\"\nbrew \"htop\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []string{"git", "htop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParseMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-Brewfile")

	_, err := Parse(path)
	if err == nil {
		t.Fatal("Parse() should fail for a missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the missing path, got %q", err.Error())
	}
}
