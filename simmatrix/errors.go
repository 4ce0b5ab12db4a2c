package simmatrix

import "errors"

// Sentinel errors for the simmatrix package.
var (
	// ErrNegativeSize is returned when a matrix is constructed with n < 0.
	ErrNegativeSize = errors.New("simmatrix: negative size")

	// ErrOutOfRange is returned by At/Set for an index outside [0,n).
	ErrOutOfRange = errors.New("simmatrix: index out of range")
)
