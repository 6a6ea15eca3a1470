package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

func TestNew(t *testing.T) {
	t.Run("Fresh grid is empty for every size", func(t *testing.T) {
		for size := 1; size <= 6; size++ {
			// When: a grid is created
			g, err := New(size)
			require.NoError(t, err)

			// Then: every cell is empty and the free counter is N*N
			assert.Equal(t, size, g.Size())
			assert.Equal(t, size*size, g.FreeCells())

			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					owner, err := g.Get(entity.NewPosition(x, y))
					require.NoError(t, err)
					assert.Equal(t, Empty, owner)
				}
			}
		}
	})

	t.Run("Rejects non-positive size", func(t *testing.T) {
		// When: a grid of size 0 is requested
		g, err := New(0)

		// Then: ErrInvalidSize is returned
		require.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, g)
	})
}

func TestGrid_Set(t *testing.T) {
	t.Run("Marks cell and consumes one free cell", func(t *testing.T) {
		// Given: an empty 3x3 grid
		g, err := New(3)
		require.NoError(t, err)

		// When: player 1 takes the centre
		err = g.Set(entity.NewPosition(1, 1), 1)
		require.NoError(t, err)

		// Then: the cell is owned and the free counter dropped by one
		owner, err := g.Get(entity.NewPosition(1, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, owner)
		assert.False(t, g.IsEmpty(entity.NewPosition(1, 1)))
		assert.Equal(t, 8, g.FreeCells())
	})

	t.Run("Error on occupied cell leaves grid unchanged", func(t *testing.T) {
		// Given: a grid where (0,0) is owned by player 0
		g, err := New(3)
		require.NoError(t, err)
		require.NoError(t, g.Set(entity.NewPosition(0, 0), 0))
		before := g.Clone()

		// When: player 1 tries the same cell
		err = g.Set(entity.NewPosition(0, 0), 1)

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, before, g)
	})

	t.Run("Error on out of bounds leaves grid unchanged", func(t *testing.T) {
		g, err := New(3)
		require.NoError(t, err)

		for _, pos := range []entity.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -1}} {
			err = g.Set(pos, 0)
			require.ErrorIs(t, err, ErrOutOfBounds)
		}

		assert.Equal(t, 9, g.FreeCells())
	})

	t.Run("Error on negative owner", func(t *testing.T) {
		g, err := New(3)
		require.NoError(t, err)

		err = g.Set(entity.NewPosition(0, 0), Empty)

		require.ErrorIs(t, err, ErrInvalidOwner)
		assert.Equal(t, 9, g.FreeCells())
	})
}

func TestGrid_Get(t *testing.T) {
	// Given: a 2x2 grid
	g, err := New(2)
	require.NoError(t, err)

	// When: reading outside the grid
	owner, err := g.Get(entity.NewPosition(2, 0))

	// Then: the error is reported, not clamped
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, Empty, owner)
}

func TestGrid_ResetAndResize(t *testing.T) {
	t.Run("Reset empties all cells", func(t *testing.T) {
		// Given: a partially filled grid
		g, err := New(3)
		require.NoError(t, err)
		require.NoError(t, g.Set(entity.NewPosition(0, 0), 0))
		require.NoError(t, g.Set(entity.NewPosition(2, 2), 1))

		// When: the grid is reset
		g.Reset()

		// Then: it is indistinguishable from a fresh grid
		fresh, err := New(3)
		require.NoError(t, err)
		assert.Equal(t, fresh, g)
	})

	t.Run("Resize discards contents", func(t *testing.T) {
		g, err := New(3)
		require.NoError(t, err)
		require.NoError(t, g.Set(entity.NewPosition(1, 1), 0))

		err = g.Resize(5)
		require.NoError(t, err)

		assert.Equal(t, 5, g.Size())
		assert.Equal(t, 25, g.FreeCells())
		assert.True(t, g.IsEmpty(entity.NewPosition(1, 1)))
		assert.True(t, g.IsEmpty(entity.NewPosition(4, 4)))
	})

	t.Run("Resize rejects non-positive size", func(t *testing.T) {
		g, err := New(3)
		require.NoError(t, err)

		err = g.Resize(-2)

		require.ErrorIs(t, err, ErrInvalidSize)
		assert.Equal(t, 3, g.Size())
	})
}

func TestGrid_Clone(t *testing.T) {
	// Given: a grid and its clone
	g, err := New(3)
	require.NoError(t, err)
	clone := g.Clone()

	// When: the source grid changes
	require.NoError(t, g.Set(entity.NewPosition(0, 0), 0))

	// Then: the clone does not
	assert.True(t, clone.IsEmpty(entity.NewPosition(0, 0)))
	assert.Equal(t, 9, clone.FreeCells())
}
