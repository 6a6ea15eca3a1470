package apperror

import "errors"

var (
	ErrInvalidState           = errors.New("invalid game state")
	ErrInvalidPlayerReference = errors.New("no such player in the game")
	ErrIndexOutOfRange        = errors.New("player index out of range")
	ErrInvalidMove            = errors.New("invalid move")
	ErrPlayerAlreadyBound     = errors.New("player is already in this or a different game")
	ErrNotInitialized         = errors.New("controller must be initialized before use")
	ErrNoAvailableMoves       = errors.New("no available moves")
	ErrInvalidInput           = errors.New("invalid input")
	ErrMoveTimeout            = errors.New("player did not move in time")
)
