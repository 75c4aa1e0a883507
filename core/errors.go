package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core model operations.
var (
	// ErrInvalidArgument indicates an empty, unset or out-of-range argument.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrLoopCorridor indicates a corridor whose start equals its end.
	ErrLoopCorridor = fmt.Errorf("%w: corridor start and end must differ", ErrInvalidArgument)

	// ErrNonPositiveCapacity indicates a corridor or venue capacity <= 0.
	ErrNonPositiveCapacity = fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)

	// ErrProfileExceedsCapacity indicates a venue profile load greater than the venue capacity.
	ErrProfileExceedsCapacity = fmt.Errorf("%w: profile load exceeds venue capacity", ErrInvalidArgument)

	// ErrInvalidTraffic indicates an update that would leave an unrepresentable
	// (negative or overflowing) load on a corridor.
	ErrInvalidTraffic = errors.New("core: invalid traffic load")

	// ErrTrafficOverflow indicates a load that would exceed math.MaxInt.
	ErrTrafficOverflow = fmt.Errorf("%w: load overflows int", ErrInvalidTraffic)
)
