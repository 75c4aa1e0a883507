package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/venueplan/core"
)

func TestNewLocation_RejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := core.NewLocation(name)
		require.ErrorIs(t, err, core.ErrInvalidArgument, "name %q", name)
	}

	l, err := core.NewLocation("City")
	require.NoError(t, err)
	assert.Equal(t, "City", l.Name())
	assert.Equal(t, "City", l.String())
	assert.False(t, l.IsZero())
}

func TestNewCorridor_Invariants(t *testing.T) {
	a, b := loc(t, "Annerley"), loc(t, "City")

	_, err := core.NewCorridor(a, a, 10)
	require.ErrorIs(t, err, core.ErrLoopCorridor)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = core.NewCorridor(a, b, 0)
	require.ErrorIs(t, err, core.ErrNonPositiveCapacity)

	_, err = core.NewCorridor(a, b, -3)
	require.ErrorIs(t, err, core.ErrNonPositiveCapacity)

	_, err = core.NewCorridor(core.Location{}, b, 3)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	c, err := core.NewCorridor(a, b, 20)
	require.NoError(t, err)
	assert.Equal(t, a, c.Start())
	assert.Equal(t, b, c.End())
	assert.Equal(t, 20, c.Capacity())
	assert.Equal(t, "Corridor Annerley to City (20)", c.String())
}

func TestCorridor_StructuralIdentity(t *testing.T) {
	c1 := corridor(t, "A", "B", 5)
	c2 := corridor(t, "A", "B", 5)
	require.Equal(t, c1, c2)

	set := map[core.Corridor]int{c1: 1}
	set[c2]++
	assert.Len(t, set, 1)
	assert.Equal(t, 2, set[c1])

	assert.NotEqual(t, c1, corridor(t, "B", "A", 5), "direction matters")
	assert.NotEqual(t, c1, corridor(t, "A", "B", 6), "capacity matters")
}

func TestCorridor_Ordering(t *testing.T) {
	want := []core.Corridor{
		corridor(t, "Annerley", "City", 20),
		corridor(t, "Annerley", "City", 30),
		corridor(t, "Bardon", "Ascot", 40),
		corridor(t, "Bardon", "City", 10),
		corridor(t, "Bardon", "Toowong", 20),
		corridor(t, "City", "Bardon", 10),
	}
	got := []core.Corridor{want[4], want[1], want[5], want[0], want[3], want[2]}
	core.SortCorridors(got)
	require.Equal(t, want, got)

	ab20, ab30, bc10 := corridor(t, "A", "B", 20), corridor(t, "A", "B", 30), corridor(t, "B", "C", 10)
	assert.True(t, ab20.Less(ab30))
	assert.True(t, ab30.Less(bc10))
	assert.Negative(t, ab20.Compare(bc10))
	assert.Positive(t, bc10.Compare(ab20))
	assert.Zero(t, ab20.Compare(corridor(t, "A", "B", 20)))
}
