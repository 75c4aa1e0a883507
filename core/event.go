package core

import (
	"fmt"
	"strings"
)

// Event is a named activity of a given size (number of attendees).
// Two events are the same allocation candidate iff name and size are equal.
type Event struct {
	name string
	size int
}

// NewEvent returns the event (name, size).
// An empty name or a size <= 0 is rejected with ErrInvalidArgument.
func NewEvent(name string, size int) (Event, error) {
	if strings.TrimSpace(name) == "" {
		return Event{}, fmt.Errorf("%w: event name is empty", ErrInvalidArgument)
	}
	if size <= 0 {
		return Event{}, fmt.Errorf("%w: event size must be positive, got %d", ErrInvalidArgument, size)
	}

	return Event{name: name, size: size}, nil
}

// Name returns the event name.
func (e Event) Name() string { return e.name }

// Size returns the number of attendees.
func (e Event) Size() int { return e.size }

// String renders "NAME (SIZE)".
func (e Event) String() string { return fmt.Sprintf("%s (%d)", e.name, e.size) }
