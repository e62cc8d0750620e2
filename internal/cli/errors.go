package cli

import "errors"

var (
	// ErrDriftDetected is a reported condition, not a failure: the check
	// found packages out of sync. It carries exit code 1 without an error
	// message, since the diff table already says everything.
	ErrDriftDetected = errors.New("drift detected")

	// ErrLintIssues is the lint equivalent of ErrDriftDetected.
	ErrLintIssues = errors.New("lint issues found")

	// ErrBrewNotFound is returned when the brew executable is not on PATH.
	ErrBrewNotFound = errors.New("brew executable not found in PATH")

	// ErrGitNotFound is returned when the git executable is not on PATH.
	ErrGitNotFound = errors.New("git executable not found in PATH")

	// ErrAborted is returned when the user declines a confirmation.
	ErrAborted = errors.New("operation aborted by user")
)

// Silent reports whether an error is a reported condition whose output
// has already been printed, so main should not print it again.
func Silent(err error) bool {
	return errors.Is(err, ErrDriftDetected) || errors.Is(err, ErrLintIssues)
}
