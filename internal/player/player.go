package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/grid"
)

// Game is the read-only view of a game that players are bound to.
type Game interface {
	ID() string
	GridSize() int
	Snapshot() *grid.Grid
}

// Player is a source of moves taking part in one game.
type Player interface {
	Name() string
	Symbol() rune
	// ShouldRedrawScreen - hint for renderers; humans want the board redrawn before their turn.
	ShouldRedrawScreen() bool
	// PostGameInitialize - called by the game before it starts.
	PostGameInitialize(game Game, playerID int) error
	// PostGameRelease - drops the binding to game, if any. Called when a start is rolled back.
	PostGameRelease(game Game)
	// PlayerID - index in the bound game, -1 while unbound.
	PlayerID() int
	// Move - returns the cell the player wants. The game validates it and asks again if it is invalid.
	Move(ctx context.Context) (entity.Position, error)
}

// base holds identity and the game binding shared by all players.
type base struct {
	name   string
	symbol rune
	redraw bool

	game     Game
	playerID int
}

func newBase(name string, symbol rune, redraw bool) base {
	return base{
		name:     name,
		symbol:   symbol,
		redraw:   redraw,
		playerID: entity.NoWinner,
	}
}

func (that *base) Name() string {
	return that.name
}

func (that *base) Symbol() rune {
	return that.symbol
}

func (that *base) ShouldRedrawScreen() bool {
	return that.redraw
}

// PlayerID - index in the bound game, -1 before binding.
func (that *base) PlayerID() int {
	return that.playerID
}

// PostGameInitialize - binds the player to exactly one game. Binding again to the same game
// (a restart after reset) takes the new id, the roster may have changed in between.
func (that *base) PostGameInitialize(game Game, playerID int) error {
	if that.game != nil && that.game != game {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerAlreadyBound, that.name)
	}

	that.game = game
	that.playerID = playerID

	return nil
}

func (that *base) PostGameRelease(game Game) {
	if that.game != game {
		return
	}

	that.game = nil
	that.playerID = entity.NoWinner
}
