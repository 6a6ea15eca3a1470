package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/grid"
)

// PlayerInfo is what a renderer needs to know about a player.
type PlayerInfo struct {
	Name   string
	Symbol rune
}

// Frame is a snapshot of the game handed to the renderer.
type Frame struct {
	GameID       string
	Grid         *grid.Grid
	Players      []PlayerInfo
	PlayerOnMove int
	// Redraw is set when the player about to move wants to see the board, and on the final frame.
	Redraw   bool
	State    entity.GameState
	WinnerID int
}

// Current - the player on move, false before the game starts.
func (that Frame) Current() (PlayerInfo, bool) {
	if that.PlayerOnMove < 0 || that.PlayerOnMove >= len(that.Players) {
		return PlayerInfo{}, false
	}

	return that.Players[that.PlayerOnMove], true
}

// Winner - the winning player, false on a tie or while the game runs.
func (that Frame) Winner() (PlayerInfo, bool) {
	if !that.State.IsFinished() || that.WinnerID < 0 || that.WinnerID >= len(that.Players) {
		return PlayerInfo{}, false
	}

	return that.Players[that.WinnerID], true
}

// Symbol - returns the symbol drawn for a cell owner, ' ' for an empty cell.
func (that Frame) Symbol(owner int) rune {
	if owner < 0 || owner >= len(that.Players) {
		return ' '
	}

	return that.Players[owner].Symbol
}
