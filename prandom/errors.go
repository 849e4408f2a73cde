package prandom

import "errors"

// Sentinel errors for Randomizer construction.
var (
	// ErrEmptyGenerators indicates the randomizer was constructed with an
	// empty generating set; product replacement needs at least one
	// generator to seed its tape.
	ErrEmptyGenerators = errors.New("prandom: empty generating set")
)
