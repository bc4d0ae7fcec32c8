package smoothlife

import "errors"

var (
	// ErrInvalidParameters reports a configuration the kernel cannot evaluate,
	// such as an empty inner or outer ring.
	ErrInvalidParameters = errors.New("smoothlife: invalid parameters")
	// ErrNonFinite reports a NaN or infinite delta produced by the transition.
	ErrNonFinite = errors.New("smoothlife: non-finite delta")
)
