// Package reconcile compares the packages declared in a Brewfile against
// the packages actually installed on the system.
package reconcile

import (
	"fmt"
	"sort"
)

// Result holds the outcome of a reconciliation. Both columns are sorted
// lexicographically and never share an element.
type Result struct {
	// OnlyInManifest contains packages declared in the Brewfile that are
	// not installed as top-level packages (mis-declared, removed, or
	// purely transitive).
	OnlyInManifest []string `json:"only_in_manifest"`

	// OnlyOnSystem contains top-level installed packages the Brewfile
	// does not track.
	OnlyOnSystem []string `json:"only_on_system"`
}

// Clean returns true if declared and installed packages match exactly.
func (r *Result) Clean() bool {
	return len(r.OnlyInManifest) == 0 && len(r.OnlyOnSystem) == 0
}

// Summary returns a brief human-readable summary of the result.
func (r *Result) Summary() string {
	if r.Clean() {
		return "No differences"
	}

	switch {
	case len(r.OnlyOnSystem) == 0:
		return fmt.Sprintf("%d only in manifest", len(r.OnlyInManifest))
	case len(r.OnlyInManifest) == 0:
		return fmt.Sprintf("%d only on system", len(r.OnlyOnSystem))
	default:
		return fmt.Sprintf("%d only in manifest, %d only on system",
			len(r.OnlyInManifest), len(r.OnlyOnSystem))
	}
}

// Reconcile partitions installed packages against the declared set.
//
// A package counts as "promoted" (top-level from the user's point of view)
// if it is an installed leaf, or if it is declared in the manifest and some
// other installed package depends on it. Declared packages that are
// promoted are considered reconciled and appear in neither column.
//
// The computation is total: any combination of inputs, including empty
// sets, produces a valid Result. Inputs are treated as sets; duplicates
// and ordering do not affect the outcome.
func Reconcile(declared, leaves, allInstalled []string) *Result {
	declaredSet := toSet(declared)
	leafSet := toSet(leaves)

	// Non-leaves: installed packages some other package depends on.
	nonLeaves := make(map[string]struct{})
	for _, pkg := range allInstalled {
		if _, isLeaf := leafSet[pkg]; !isLeaf {
			nonLeaves[pkg] = struct{}{}
		}
	}

	// Promote leaves plus declared packages that are non-leaf dependencies.
	promoted := make(map[string]struct{}, len(leafSet))
	for pkg := range leafSet {
		promoted[pkg] = struct{}{}
	}
	for pkg := range declaredSet {
		if _, ok := nonLeaves[pkg]; ok {
			promoted[pkg] = struct{}{}
		}
	}

	result := &Result{
		OnlyInManifest: []string{},
		OnlyOnSystem:   []string{},
	}

	for pkg := range declaredSet {
		if _, ok := promoted[pkg]; !ok {
			result.OnlyInManifest = append(result.OnlyInManifest, pkg)
		}
	}

	for pkg := range promoted {
		if _, ok := declaredSet[pkg]; !ok {
			result.OnlyOnSystem = append(result.OnlyOnSystem, pkg)
		}
	}

	// Sort for deterministic, human-scannable output.
	sort.Strings(result.OnlyInManifest)
	sort.Strings(result.OnlyOnSystem)

	return result
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
