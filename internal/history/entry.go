// Package history records past dotdrift runs with BoltDB.
package history

import (
	"fmt"
	"time"
)

// Kind represents the type of recorded run.
type Kind string

const (
	KindCheck Kind = "check"
	KindLint  Kind = "lint"
)

// Entry represents a single recorded run.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`

	// Check runs
	Manifest       string   `json:"manifest,omitempty"`
	OnlyInManifest []string `json:"only_in_manifest,omitempty"`
	OnlyOnSystem   []string `json:"only_on_system,omitempty"`

	// Lint runs
	FilesChecked int `json:"files_checked,omitempty"`
	Failures     int `json:"failures,omitempty"`

	// Clean is true when the run found nothing to report.
	Clean bool `json:"clean"`
}

// NewCheckEntry creates a history entry for a drift check.
func NewCheckEntry(manifest string, onlyInManifest, onlyOnSystem []string) *Entry {
	return &Entry{
		ID:             generateID(),
		Timestamp:      time.Now(),
		Kind:           KindCheck,
		Manifest:       manifest,
		OnlyInManifest: onlyInManifest,
		OnlyOnSystem:   onlyOnSystem,
		Clean:          len(onlyInManifest) == 0 && len(onlyOnSystem) == 0,
	}
}

// NewLintEntry creates a history entry for a lint run.
func NewLintEntry(filesChecked, failures int) *Entry {
	return &Entry{
		ID:           generateID(),
		Timestamp:    time.Now(),
		Kind:         KindLint,
		FilesChecked: filesChecked,
		Failures:     failures,
		Clean:        failures == 0,
	}
}

// generateID generates a unique ID for the entry.
func generateID() string {
	return time.Now().Format("20060102150405.000000")
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a brief summary of the run.
func (e *Entry) Summary() string {
	switch e.Kind {
	case KindCheck:
		if e.Clean {
			return "in sync"
		}
		return fmt.Sprintf("%d only in manifest, %d only on system",
			len(e.OnlyInManifest), len(e.OnlyOnSystem))
	case KindLint:
		if e.Clean {
			return fmt.Sprintf("%d files clean", e.FilesChecked)
		}
		return fmt.Sprintf("%d of %d files failed", e.Failures, e.FilesChecked)
	}
	return "unknown run"
}
