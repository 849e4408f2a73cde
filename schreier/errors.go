package schreier

import "errors"

// Sentinel errors for Schreier structure operations.
var (
	// ErrNotInOrbit indicates a transversal was requested for a point not
	// yet recorded in the structure (i.e. not in the orbit).
	ErrNotInOrbit = errors.New("schreier: point not in orbit")
)
