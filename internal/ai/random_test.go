package ai

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
)

func TestRandom_Move(t *testing.T) {
	t.Run("Stays within the grid", func(t *testing.T) {
		// Given: a seeded random controller bound to a 4x4 game
		r := NewRandom(rand.NewSource(42))
		require.NoError(t, r.Initialize(&stubGame{grid: board(t, "....", "....", "....", "....")}, 0))

		for range 100 {
			// When: the controller moves
			pos, err := r.Move(context.Background())
			require.NoError(t, err)

			// Then: the position is on the grid
			assert.GreaterOrEqual(t, pos.X, 0)
			assert.Less(t, pos.X, 4)
			assert.GreaterOrEqual(t, pos.Y, 0)
			assert.Less(t, pos.Y, 4)
		}
	})

	t.Run("Error before initialization", func(t *testing.T) {
		r := NewRandom(nil)

		_, err := r.Move(context.Background())

		require.ErrorIs(t, err, apperror.ErrNotInitialized)
	})
}
