package workspace

import "errors"

var (
	// ErrDependencyMissing is returned when lerna cannot be resolved from the working directory.
	ErrDependencyMissing = errors.New("lerna is not installed")

	// ErrWorkspaceQuery is returned when the workspace packages cannot be enumerated.
	ErrWorkspaceQuery = errors.New("failed to query workspace packages")
)
