package material

import "errors"

var (
	// ErrInvalidParameter indicates a material parameter outside its admissible range.
	ErrInvalidParameter = errors.New("material: invalid parameter")

	// ErrUnknownModel indicates a model name with no registered allocator.
	ErrUnknownModel = errors.New("material: unknown model")

	// ErrParticleNotFound indicates the particle lookup had no entry for the requested id.
	ErrParticleNotFound = errors.New("material: particle not found")

	// ErrDimension indicates a stress, strain or velocity gradient of the wrong size.
	ErrDimension = errors.New("material: dimension mismatch")
)
