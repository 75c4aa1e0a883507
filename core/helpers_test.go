package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/venueplan/core"
)

// loc builds a Location or fails the test.
func loc(t *testing.T, name string) core.Location {
	t.Helper()
	l, err := core.NewLocation(name)
	require.NoError(t, err)

	return l
}

// corridor builds a Corridor from location names or fails the test.
func corridor(t *testing.T, start, end string, capacity int) core.Corridor {
	t.Helper()
	c, err := core.NewCorridor(loc(t, start), loc(t, end), capacity)
	require.NoError(t, err)

	return c
}
