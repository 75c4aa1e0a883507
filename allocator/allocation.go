package allocator

import (
	"fmt"

	"github.com/katalvlaran/venueplan/core"
)

// Allocation is one event assigned to one venue.
type Allocation struct {
	Event core.Event
	Venue core.Venue
}

// String renders "NAME (Size: SIZE) : VENUE (Capacity: CAPACITY)".
func (a Allocation) String() string {
	return fmt.Sprintf("%s (Size: %d) : %s (Capacity: %d)",
		a.Event.Name(), a.Event.Size(), a.Venue.Name(), a.Venue.Capacity())
}
