package ai

import (
	"context"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/player"
)

// Random picks any cell of the grid, occupied or not. The game revalidates.
type Random struct {
	rand *rand.Rand

	game     player.Game
	playerID int
}

// NewRandom - source may be nil for a time seeded generator.
func NewRandom(source rand.Source) *Random {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &Random{
		rand:     rand.New(source), //nolint: gosec // it's ok
		playerID: entity.NoWinner,
	}
}

func (that *Random) Initialize(game player.Game, playerID int) error {
	that.game = game
	that.playerID = playerID

	return nil
}

func (that *Random) Move(ctx context.Context) (entity.Position, error) {
	if that.game == nil {
		return entity.Position{}, apperror.ErrNotInitialized
	}

	if err := ctx.Err(); err != nil {
		return entity.Position{}, err
	}

	size := that.game.GridSize()

	return entity.NewPosition(that.rand.Intn(size), that.rand.Intn(size)), nil
}
