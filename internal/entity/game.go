package entity

import "time"

// GameState is the lifecycle stage of a game.
type GameState int

const (
	StateUninitialized GameState = iota
	StateInitializing
	StatePlaying
	StateReset
	StateFinished
)

// NoWinner is the winner id of a tie or of a game that has not finished.
const NoWinner = -1

// PlayerTie is the standings key for games without a winner.
const PlayerTie = "-"

func (that GameState) String() string {
	switch that {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StatePlaying:
		return "playing"
	case StateReset:
		return "reset"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

func (that GameState) IsPlaying() bool {
	return that == StatePlaying
}

func (that GameState) IsFinished() bool {
	return that == StateFinished
}

// Result is the outcome of a finished game.
type Result struct {
	ID         string    `json:"id"`
	GridSize   int       `json:"grid_size"`
	WinnerID   int       `json:"winner_id"`
	Winner     string    `json:"winner"`
	Players    []string  `json:"players"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Result) IsTie() bool {
	return that.WinnerID == NoWinner
}
