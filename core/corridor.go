// SPDX-License-Identifier: MIT
//
// File: corridor.go
// Role: Immutable directed corridor between two distinct locations.
// Policy:
//   - Constructor is the only way to obtain a valid Corridor; the zero value is "unset".
//   - Corridor is comparable: equal fields collide as map keys (structural identity).

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// Corridor is a directed edge Start→End that can carry at most Capacity
// people at the same time.
type Corridor struct {
	start    Location
	end      Location
	capacity int
}

// NewCorridor validates and returns the corridor start→end with the given capacity.
//
// Errors:
//   - ErrInvalidArgument if start or end is the zero Location.
//   - ErrLoopCorridor if start == end.
//   - ErrNonPositiveCapacity if capacity <= 0.
//
// Complexity: O(1).
func NewCorridor(start, end Location, capacity int) (Corridor, error) {
	if start.IsZero() || end.IsZero() {
		return Corridor{}, fmt.Errorf("%w: corridor endpoints must be set", ErrInvalidArgument)
	}
	if start == end {
		return Corridor{}, fmt.Errorf("%w: %q", ErrLoopCorridor, start.name)
	}
	if capacity <= 0 {
		return Corridor{}, fmt.Errorf("%w: got %d", ErrNonPositiveCapacity, capacity)
	}

	return Corridor{start: start, end: end, capacity: capacity}, nil
}

// Start returns the start location.
func (c Corridor) Start() Location { return c.start }

// End returns the end location.
func (c Corridor) End() Location { return c.end }

// Capacity returns the maximum number of people the corridor carries at once.
func (c Corridor) Capacity() int { return c.capacity }

// IsZero reports whether c is the unset Corridor (never a valid ledger key).
func (c Corridor) IsZero() bool { return c == Corridor{} }

// Compare orders corridors by start, then end, then capacity.
// It returns a negative number, zero or a positive number.
func (c Corridor) Compare(other Corridor) int {
	if r := c.start.Compare(other.start); r != 0 {
		return r
	}
	if r := c.end.Compare(other.end); r != 0 {
		return r
	}

	return cmp.Compare(c.capacity, other.capacity)
}

// Less reports whether c sorts before other.
func (c Corridor) Less(other Corridor) bool { return c.Compare(other) < 0 }

// String renders "Corridor START to END (CAPACITY)".
func (c Corridor) String() string {
	return fmt.Sprintf("Corridor %s to %s (%d)", c.start, c.end, c.capacity)
}

// SortCorridors sorts cs in place into ascending Corridor order.
func SortCorridors(cs []Corridor) {
	slices.SortFunc(cs, Corridor.Compare)
}
