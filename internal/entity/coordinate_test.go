package entity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Compare(t *testing.T) {
	t.Run("Orders by row first", func(t *testing.T) {
		assert.Negative(t, NewCoordinate(0, 2).Compare(NewCoordinate(1, 0)))
		assert.Positive(t, NewCoordinate(2, 0).Compare(NewCoordinate(1, 2)))
	})

	t.Run("Then by column", func(t *testing.T) {
		assert.Negative(t, NewCoordinate(1, 0).Compare(NewCoordinate(1, 1)))
		assert.Zero(t, NewCoordinate(1, 1).Compare(NewCoordinate(1, 1)))
	})

	t.Run("Sorting yields row-major order", func(t *testing.T) {
		// Given: the board cells in reverse
		coords := AllCoordinates()
		slices.Reverse(coords)

		// When: sorting by Compare
		slices.SortFunc(coords, Coordinate.Compare)

		// Then: they match AllCoordinates
		assert.Equal(t, AllCoordinates(), coords)
	})
}

func TestCoordinate_Label(t *testing.T) {
	assert.Equal(t, "a1", NewCoordinate(0, 0).Label())
	assert.Equal(t, "b2", NewCoordinate(1, 1).Label())
	assert.Equal(t, "c1", NewCoordinate(0, 2).Label())
	assert.Equal(t, "a3", NewCoordinate(2, 0).Label())

	// out of range cells fall back to the raw pair
	assert.Equal(t, "(row=3, col=0)", NewCoordinate(3, 0).Label())
}

func TestAllCoordinates(t *testing.T) {
	coords := AllCoordinates()

	assert.Len(t, coords, 9)
	assert.Equal(t, NewCoordinate(0, 0), coords[0])
	assert.Equal(t, NewCoordinate(2, 2), coords[8])
	for _, coord := range coords {
		assert.True(t, coord.IsValid())
	}
}
