package core

import (
	"fmt"
	"strings"
)

// Location is an immutable named point. The name is its sole identity.
type Location struct {
	name string
}

// NewLocation returns the Location called name.
// Whitespace-only names are rejected with ErrInvalidArgument.
func NewLocation(name string) (Location, error) {
	if strings.TrimSpace(name) == "" {
		return Location{}, fmt.Errorf("%w: location name is empty", ErrInvalidArgument)
	}

	return Location{name: name}, nil
}

// Name returns the location name.
func (l Location) Name() string { return l.name }

// String returns the location name.
func (l Location) String() string { return l.name }

// IsZero reports whether l is the unset Location.
func (l Location) IsZero() bool { return l.name == "" }

// Compare orders locations by name and returns -1, 0 or +1.
func (l Location) Compare(other Location) int {
	return strings.Compare(l.name, other.name)
}
