package lint

import "testing"

func TestCovers(t *testing.T) {
	tool := Tool{
		ID:         ToolShellcheck,
		Extensions: []string{".sh", ".bash"},
	}

	tests := []struct {
		file string
		want bool
	}{
		{"install.sh", true},
		{"profile.bash", true},
		{"nested/dir/setup.sh", true},
		{"UPPER.SH", true},
		{"config.fish", false},
		{"README.md", false},
		{"shellscript", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if got := tool.Covers(tt.file); got != tt.want {
				t.Errorf("Covers(%s) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestCanFix(t *testing.T) {
	fixer := Tool{ID: ToolShfmt, FixArgs: []string{"-w"}}
	if !fixer.CanFix() {
		t.Error("expected CanFix() for tool with FixArgs")
	}

	checker := Tool{ID: ToolShellcheck}
	if checker.CanFix() {
		t.Error("expected !CanFix() for tool without FixArgs")
	}
}

func TestDefaultTools(t *testing.T) {
	tools := DefaultTools()
	if len(tools) == 0 {
		t.Fatal("DefaultTools() returned no tools")
	}

	seen := make(map[ToolID]bool)
	for _, tool := range tools {
		if seen[tool.ID] {
			t.Errorf("duplicate tool %s", tool.ID)
		}
		seen[tool.ID] = true

		if tool.Binary == "" {
			t.Errorf("tool %s has no binary", tool.ID)
		}
		if len(tool.Extensions) == 0 {
			t.Errorf("tool %s covers no extensions", tool.ID)
		}
		if tool.InstallHint == "" {
			t.Errorf("tool %s has no install hint", tool.ID)
		}
	}

	for _, id := range []ToolID{ToolShellcheck, ToolShfmt, ToolYamllint, ToolFishIndent} {
		if !seen[id] {
			t.Errorf("missing expected tool %s", id)
		}
	}
}

func TestAvailable(t *testing.T) {
	present := Tool{Binary: "sh"}
	if !present.Available() {
		t.Error("expected sh to be available")
	}

	missing := Tool{Binary: "definitely-not-a-real-binary-xyz"}
	if missing.Available() {
		t.Error("expected missing binary to be unavailable")
	}
}
