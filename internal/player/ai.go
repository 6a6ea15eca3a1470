package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// Controller is the move strategy behind a computer player.
type Controller interface {
	Initialize(game Game, playerID int) error
	Move(ctx context.Context) (entity.Position, error)
}

// AI is a computer player delegating moves to a Controller.
type AI struct {
	base

	controller Controller
}

func NewAI(name string, symbol rune, controller Controller) *AI {
	return &AI{
		base:       newBase(name, symbol, false),
		controller: controller,
	}
}

// PostGameInitialize - binds the player and its controller. A controller failure keeps the previous binding.
func (that *AI) PostGameInitialize(game Game, playerID int) error {
	prevGame, prevID := that.game, that.playerID

	if err := that.base.PostGameInitialize(game, playerID); err != nil {
		return err
	}

	if err := that.controller.Initialize(game, playerID); err != nil {
		that.game, that.playerID = prevGame, prevID

		return fmt.Errorf("failed to initialize controller: %w", err)
	}

	return nil
}

func (that *AI) Move(ctx context.Context) (entity.Position, error) {
	pos, err := that.controller.Move(ctx)
	if err != nil {
		return entity.Position{}, fmt.Errorf("controller failed to move: %w", err)
	}

	return pos, nil
}
