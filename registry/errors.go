package registry

import "errors"

// Sentinel errors for registry operations. Callers should match with
// errors.Is; messages are prefixed with "registry: " for grep-ability.
var (
	// ErrEmptyName is returned when Intern is called with an empty string.
	ErrEmptyName = errors.New("registry: entity name is empty")

	// ErrFrozen is returned when Intern encounters a name not already
	// present after the registry has been frozen.
	ErrFrozen = errors.New("registry: registry is frozen")

	// ErrUnknownIndex is returned by Lookup for an index that was never
	// allocated by Intern.
	ErrUnknownIndex = errors.New("registry: unknown index")
)
