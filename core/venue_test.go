package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/venueplan/core"
)

func TestNewEvent(t *testing.T) {
	_, err := core.NewEvent("", 10)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = core.NewEvent("Concert", 0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	e, err := core.NewEvent("Concert", 10)
	require.NoError(t, err)
	assert.Equal(t, "Concert", e.Name())
	assert.Equal(t, 10, e.Size())
	assert.Equal(t, "Concert (10)", e.String())

	same, _ := core.NewEvent("Concert", 10)
	assert.Equal(t, e, same)
}

func TestNewVenue_Validation(t *testing.T) {
	profile := core.NewTraffic()
	require.NoError(t, profile.Update(corridor(t, "A", "B", 100), 60))

	_, err := core.NewVenue("", 50, profile)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = core.NewVenue("Tivoli", 0, profile)
	require.ErrorIs(t, err, core.ErrNonPositiveCapacity)
	_, err = core.NewVenue("Tivoli", 50, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = core.NewVenue("Tivoli", 50, profile)
	require.ErrorIs(t, err, core.ErrInvalidArgument, "profile load above venue capacity")
	require.ErrorIs(t, err, core.ErrProfileExceedsCapacity)

	v, err := core.NewVenue("Tivoli", 60, profile)
	require.NoError(t, err)
	assert.Equal(t, "Tivoli", v.Name())
	assert.Equal(t, 60, v.Capacity())
}

func TestVenue_ProfileIsImmutable(t *testing.T) {
	ab := corridor(t, "A", "B", 100)
	profile := core.NewTraffic()
	require.NoError(t, profile.Update(ab, 10))

	v, err := core.NewVenue("Gabba", 200, profile)
	require.NoError(t, err)

	require.NoError(t, profile.Update(ab, 5))
	n, _ := v.Profile().Get(ab)
	assert.Equal(t, 10, n, "constructor must copy the profile")

	small, _ := core.NewEvent("Small", 1)
	big, _ := core.NewEvent("Big", 200)
	got := v.Traffic(small)
	require.NoError(t, got.Update(ab, 50))
	assert.True(t, v.Traffic(big).SameAs(v.Traffic(small)), "profile does not scale with event size")
	n, _ = v.Traffic(big).Get(ab)
	assert.Equal(t, 10, n, "returned traffic must be an owned copy")
}

func TestVenue_CanHost(t *testing.T) {
	v, err := core.NewVenue("Tivoli", 50, core.NewTraffic())
	require.NoError(t, err)

	fits, _ := core.NewEvent("Gig", 50)
	tooBig, _ := core.NewEvent("Gig", 51)
	assert.True(t, v.CanHost(fits))
	assert.False(t, v.CanHost(tooBig))
}

func TestVenue_EqualAndString(t *testing.T) {
	p1 := core.NewTraffic()
	require.NoError(t, p1.Update(corridor(t, "l2", "l3", 100), 50))
	require.NoError(t, p1.Update(corridor(t, "l1", "l2", 200), 150))
	p2 := core.NewTraffic()
	require.NoError(t, p2.Update(corridor(t, "l1", "l2", 200), 150))
	require.NoError(t, p2.Update(corridor(t, "l2", "l3", 100), 50))

	v1, err := core.NewVenue("The Gabba", 200, p1)
	require.NoError(t, err)
	v2, err := core.NewVenue("The Gabba", 200, p2)
	require.NoError(t, err)
	v3, err := core.NewVenue("The Gabba", 150, p2)
	require.NoError(t, err)

	assert.True(t, v1.Equal(v2))
	assert.False(t, v1.Equal(v3))
	assert.Equal(t, "The Gabba (200)\n"+
		"Corridor l1 to l2 (200): 150\n"+
		"Corridor l2 to l3 (100): 50\n", v1.String())

	empty, err := core.NewVenue("Tivoli", 50, core.NewTraffic())
	require.NoError(t, err)
	assert.Equal(t, "Tivoli (50)\n", empty.String())
}
