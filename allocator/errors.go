package allocator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/venueplan/core"
)

var (
	// ErrAllocationRejected matches every rule-based rejection.
	ErrAllocationRejected = errors.New("allocator: allocation rejected")

	// ErrDuplicateEvent indicates the event is already allocated to a venue.
	ErrDuplicateEvent = fmt.Errorf("%w: event already allocated", ErrAllocationRejected)

	// ErrDuplicateVenue indicates the venue already hosts another event.
	ErrDuplicateVenue = fmt.Errorf("%w: venue already allocated", ErrAllocationRejected)

	// ErrCapacityExceeded indicates the event is larger than the venue capacity.
	ErrCapacityExceeded = fmt.Errorf("%w: event exceeds venue capacity", ErrAllocationRejected)

	// ErrUnsafeTraffic indicates the allocation would overload at least one corridor.
	ErrUnsafeTraffic = fmt.Errorf("%w: traffic exceeds corridor capacity", ErrAllocationRejected)

	// ErrUnknownVenue indicates a venue that is not part of the session's venue list.
	ErrUnknownVenue = fmt.Errorf("%w: unknown venue", core.ErrInvalidArgument)
)

// RejectionError describes a rejected allocation.
// It unwraps to one of the ErrDuplicateEvent, ErrDuplicateVenue,
// ErrCapacityExceeded or ErrUnsafeTraffic sentinels.
type RejectionError struct {
	Reason     error
	Event      core.Event
	Venue      core.Venue
	Overloaded []core.Corridor // corridors over capacity, only for ErrUnsafeTraffic
}

func (e *RejectionError) Error() string {
	msg := fmt.Sprintf("%v: %s at %s (%d)", e.Reason, e.Event, e.Venue.Name(), e.Venue.Capacity())
	if len(e.Overloaded) == 0 {
		return msg
	}
	names := make([]string, len(e.Overloaded))
	for i, c := range e.Overloaded {
		names[i] = c.String()
	}

	return msg + " [" + strings.Join(names, ", ") + "]"
}

func (e *RejectionError) Unwrap() error { return e.Reason }
