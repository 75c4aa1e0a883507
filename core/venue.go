// SPDX-License-Identifier: MIT
//
// File: venue.go
// Role: Immutable bookable venue with a fixed corridor traffic profile.
// Policy:
//   - The profile is copied in on construction and copied out on every read.
//   - Hosting an event imposes the same profile whatever the event size.

package core

import (
	"fmt"
	"strings"
)

// Venue is a place that can host one event at a time. Hosting an event
// imposes the venue's traffic profile on the corridors around it.
type Venue struct {
	name     string
	capacity int
	profile  *Traffic
}

// NewVenue validates and returns a venue.
//
// Errors (all ErrInvalidArgument):
//   - empty name;
//   - capacity <= 0 (ErrNonPositiveCapacity);
//   - nil profile;
//   - a profile load greater than capacity (a venue cannot send more people
//     onto a corridor than it holds).
func NewVenue(name string, capacity int, profile *Traffic) (Venue, error) {
	if strings.TrimSpace(name) == "" {
		return Venue{}, fmt.Errorf("%w: venue name is empty", ErrInvalidArgument)
	}
	if capacity <= 0 {
		return Venue{}, fmt.Errorf("%w: venue %q has capacity %d", ErrNonPositiveCapacity, name, capacity)
	}
	if profile == nil {
		return Venue{}, fmt.Errorf("%w: venue %q has no traffic profile", ErrInvalidArgument, name)
	}
	for c, n := range profile.loads {
		if n > capacity {
			return Venue{}, fmt.Errorf("%w: venue %q sends %d onto %s but holds %d",
				ErrProfileExceedsCapacity, name, n, c, capacity)
		}
	}

	return Venue{name: name, capacity: capacity, profile: profile.Clone()}, nil
}

// Name returns the venue name.
func (v Venue) Name() string { return v.name }

// Capacity returns the largest event size the venue can host.
func (v Venue) Capacity() int { return v.capacity }

// CanHost reports whether e fits in the venue.
func (v Venue) CanHost(e Event) bool { return e.size <= v.capacity }

// Traffic returns the load hosting e imposes on each corridor, as an owned copy.
// The profile is fixed: it does not scale with e's size.
func (v Venue) Traffic(Event) *Traffic {
	return v.Profile()
}

// Profile returns an owned copy of the venue's traffic profile.
func (v Venue) Profile() *Traffic {
	if v.profile == nil {
		return NewTraffic()
	}

	return v.profile.Clone()
}

// Equal reports structural equality: same name, capacity and traffic profile.
func (v Venue) Equal(other Venue) bool {
	if v.name != other.name || v.capacity != other.capacity {
		return false
	}

	if v.profile == nil || other.profile == nil {
		return v.profile.empty() && other.profile.empty()
	}

	return v.profile.SameAs(other.profile)
}

// String renders "NAME (CAPACITY)\n" followed by the profile lines.
func (v Venue) String() string {
	return fmt.Sprintf("%s (%d)\n%s", v.name, v.capacity, v.Profile())
}
