package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/grid"
	"github.com/rocketscienceinc/tictactoe-grid/internal/player"
)

const minPlayers = 2

// Renderer draws the game after every state changing step. It cannot influence the game.
type Renderer interface {
	Render(frame Frame)
}

// Option configures a GameController.
type Option func(*GameController)

// WithLogger - sets the logger, the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(that *GameController) {
		that.logger = logger.With("component", "game_controller")
	}
}

func WithRenderer(renderer Renderer) Option {
	return func(that *GameController) {
		that.renderer = renderer
	}
}

// WithMoveTimeout - bounds how long one turn may take. Zero, the default, waits forever.
func WithMoveTimeout(timeout time.Duration) Option {
	return func(that *GameController) {
		that.moveTimeout = timeout
	}
}

// GameController runs a turn based game on an NxN grid. It is not safe for concurrent use;
// players are asked for moves one at a time from the goroutine that called Start.
type GameController struct {
	logger      *slog.Logger
	renderer    Renderer
	moveTimeout time.Duration

	id           string
	players      []player.Player
	grid         *grid.Grid
	state        entity.GameState
	startPlayer  int
	playerOnMove int
	winnerID     int
}

// NewGameController - creates a game with an empty size x size grid, ready for players.
func NewGameController(size int, opts ...Option) (*GameController, error) {
	gameGrid, err := grid.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	that := &GameController{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		grid:        gameGrid,
		startPlayer: -1,
	}

	for _, opt := range opts {
		opt(that)
	}

	that.initialize()

	return that, nil
}

func (that *GameController) ID() string {
	return that.id
}

func (that *GameController) GridSize() int {
	return that.grid.Size()
}

func (that *GameController) State() entity.GameState {
	return that.state
}

// WinnerID - index of the winning player, entity.NoWinner for a tie or an unfinished game.
func (that *GameController) WinnerID() int {
	return that.winnerID
}

// PlayerOnMove - index of the player whose turn it is, -1 before the game starts.
func (that *GameController) PlayerOnMove() int {
	return that.playerOnMove
}

// StartPlayer - index of the player making the first move, -1 while unset.
func (that *GameController) StartPlayer() int {
	return that.startPlayer
}

func (that *GameController) Players() []player.Player {
	return slices.Clone(that.players)
}

// Snapshot - returns a copy of the grid that callers may read freely.
func (that *GameController) Snapshot() *grid.Grid {
	return that.grid.Clone()
}

// CellAt - returns the owner of a cell, grid.Empty for an empty one.
func (that *GameController) CellAt(pos entity.Position) (int, error) {
	owner, err := that.grid.Get(pos)
	if err != nil {
		return grid.Empty, fmt.Errorf("failed to read cell: %w", err)
	}

	return owner, nil
}

func (that *GameController) AddPlayer(p player.Player) error {
	return that.AddPlayers(p)
}

// AddPlayers - appends players in turn order. Nothing is added if any of them is rejected.
func (that *GameController) AddPlayers(players ...player.Player) error {
	if that.state.IsPlaying() {
		return fmt.Errorf("%w: cannot add players while the game is playing", apperror.ErrInvalidState)
	}

	for i, p := range players {
		if slices.Contains(that.players, p) || slices.Contains(players[:i], p) {
			return fmt.Errorf("%w: %s is already in the game", apperror.ErrInvalidPlayerReference, p.Name())
		}
	}

	that.players = append(that.players, players...)

	return nil
}

func (that *GameController) RemovePlayer(p player.Player) error {
	return that.RemovePlayers(p)
}

// RemovePlayers - removes players from a game that is not playing. Nothing is removed
// if any of them is unknown.
func (that *GameController) RemovePlayers(players ...player.Player) error {
	if that.state.IsPlaying() {
		return fmt.Errorf("%w: cannot remove players while the game is playing", apperror.ErrInvalidState)
	}

	for _, p := range players {
		if !slices.Contains(that.players, p) {
			return fmt.Errorf("%w: %s", apperror.ErrInvalidPlayerReference, p.Name())
		}
	}

	for _, p := range players {
		idx := slices.Index(that.players, p)
		if idx < 0 {
			// listed twice
			continue
		}

		that.players = slices.Delete(that.players, idx, idx+1)

		switch {
		case idx < that.startPlayer:
			that.startPlayer--
		case idx == that.startPlayer:
			that.startPlayer = -1
		}
	}

	return nil
}

// SetStartPlayer - sets which player makes the first move.
func (that *GameController) SetStartPlayer(p player.Player) error {
	if that.state.IsPlaying() {
		return fmt.Errorf("%w: cannot change start player while the game is playing", apperror.ErrInvalidState)
	}

	idx := slices.Index(that.players, p)
	if idx < 0 {
		return apperror.ErrInvalidPlayerReference
	}

	that.startPlayer = idx

	return nil
}

// SetStartPlayerIndex - sets the index of the player which makes the first move.
func (that *GameController) SetStartPlayerIndex(index int) error {
	if that.state.IsPlaying() {
		return fmt.Errorf("%w: cannot change start player while the game is playing", apperror.ErrInvalidState)
	}

	if index < 0 || index >= len(that.players) {
		return fmt.Errorf("%w: %d of %d", apperror.ErrIndexOutOfRange, index, len(that.players))
	}

	that.startPlayer = index

	return nil
}

// Start - binds the players and runs the game loop until the game finishes. A finished game
// is cleared first, like Reset. A rejected start leaves the game and its players untouched.
// If ctx is canceled or a player fails to produce a move the loop stops with that error and
// the game stays in the playing state until Reset.
func (that *GameController) Start(ctx context.Context) error {
	switch that.state {
	case entity.StateUninitialized:
		return fmt.Errorf("%w: game must be initialized before calling Start", apperror.ErrInvalidState)
	case entity.StatePlaying:
		return fmt.Errorf("%w: game is already running on this instance", apperror.ErrInvalidState)
	}

	if len(that.players) < minPlayers {
		return fmt.Errorf("%w: game needs at least two players", apperror.ErrInvalidState)
	}

	if err := that.bindPlayers(); err != nil {
		return err
	}

	if that.state.IsFinished() {
		that.initialize()
	}

	log := that.logger.With("game_id", that.id)

	if that.startPlayer == -1 {
		log.Warn("first player not set, player 0 starts")
		that.startPlayer = 0
	}

	that.playerOnMove = that.startPlayer

	that.state = entity.StatePlaying
	log.Info("game started", "grid_size", that.grid.Size(), "players", len(that.players), "start_player", that.playerOnMove)

	that.render(that.players[that.playerOnMove].ShouldRedrawScreen())

	return that.gameLoop(ctx)
}

// bindPlayers - binds every player under its roster index. When one fails the players bound
// so far get their previous binding back.
func (that *GameController) bindPlayers() error {
	prevIDs := make([]int, 0, len(that.players))

	for playerID, p := range that.players {
		prevID := p.PlayerID()

		if err := p.PostGameInitialize(that, playerID); err != nil {
			that.restorePlayers(prevIDs)

			return fmt.Errorf("failed to initialize player %s: %w", p.Name(), err)
		}

		prevIDs = append(prevIDs, prevID)
	}

	return nil
}

func (that *GameController) restorePlayers(prevIDs []int) {
	for i, prevID := range prevIDs {
		p := that.players[i]

		if prevID < 0 {
			p.PostGameRelease(that)
			continue
		}

		if err := p.PostGameInitialize(that, prevID); err != nil {
			that.logger.Error("failed to restore player binding", "game_id", that.id, "player", p.Name(), "error", err)
		}
	}
}

// Reset - empties the grid, clears the winner and returns the game to the initializing state.
func (that *GameController) Reset() {
	that.state = entity.StateReset
	that.initialize()
}

// Resize - replaces the grid with an empty one of the new size. Not allowed while playing.
func (that *GameController) Resize(size int) error {
	if that.state.IsPlaying() {
		return fmt.Errorf("%w: cannot resize while a game is running", apperror.ErrInvalidState)
	}

	if err := that.grid.Resize(size); err != nil {
		return fmt.Errorf("failed to resize grid: %w", err)
	}

	that.initialize()

	return nil
}

func (that *GameController) initialize() {
	that.state = entity.StateInitializing
	that.id = uuid.NewString()
	that.winnerID = entity.NoWinner
	that.playerOnMove = -1
	that.grid.Reset()
}

func (that *GameController) gameLoop(ctx context.Context) error {
	log := that.logger.With("game_id", that.id)

	for that.state.IsPlaying() {
		current := that.players[that.playerOnMove]

		pos, err := that.requestMove(ctx, current)
		if err != nil {
			return fmt.Errorf("player %s failed to move: %w", current.Name(), err)
		}

		if err = that.grid.Set(pos, that.playerOnMove); err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		log.Debug("move applied", "player", that.playerOnMove, "position", pos.String(), "free_cells", that.grid.FreeCells())

		if err = that.updateGameState(pos); err != nil {
			return err
		}

		if that.state.IsPlaying() {
			that.playerOnMove = (that.playerOnMove + 1) % len(that.players)
			that.render(that.players[that.playerOnMove].ShouldRedrawScreen())
		}
	}

	if that.winnerID == entity.NoWinner {
		log.Info("game finished", "result", "tie")
	} else {
		log.Info("game finished", "winner", that.players[that.winnerID].Name())
	}

	that.render(true)

	return nil
}

// requestMove - asks p until it returns a valid move. Invalid moves are dropped silently.
func (that *GameController) requestMove(ctx context.Context, p player.Player) (entity.Position, error) {
	moveCtx, cancel := ctx, context.CancelFunc(func() {})
	if that.moveTimeout > 0 {
		moveCtx, cancel = context.WithTimeout(ctx, that.moveTimeout)
	}
	defer cancel()

	for {
		pos, err := p.Move(moveCtx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return entity.Position{}, fmt.Errorf("%w: %s", apperror.ErrMoveTimeout, that.moveTimeout)
			}

			return entity.Position{}, err
		}

		if err = that.validateMove(pos); err != nil {
			that.logger.Debug("move rejected", "game_id", that.id, "player", that.playerOnMove, "error", err)
			continue
		}

		return pos, nil
	}
}

func (that *GameController) validateMove(pos entity.Position) error {
	if !that.grid.InBounds(pos) {
		return fmt.Errorf("%w: %s is outside the grid", apperror.ErrInvalidMove, pos)
	}

	if !that.grid.IsEmpty(pos) {
		return fmt.Errorf("%w: %s is occupied", apperror.ErrInvalidMove, pos)
	}

	return nil
}

// updateGameState - checks the lines through the last move for a win, then the grid for a tie.
func (that *GameController) updateGameState(lastMove entity.Position) error {
	totals, err := that.grid.LinesThrough(lastMove, that.playerOnMove)
	if err != nil {
		return fmt.Errorf("failed to scan lines: %w", err)
	}

	switch {
	case slices.Contains(totals[:], that.grid.Size()):
		that.state = entity.StateFinished
		that.winnerID = that.playerOnMove
	case that.grid.FreeCells() == 0:
		that.state = entity.StateFinished
		that.winnerID = entity.NoWinner
	}

	return nil
}

// render - redraw is the hint of the player about to move; renderers may skip frames without it.
func (that *GameController) render(redraw bool) {
	if that.renderer == nil {
		return
	}

	frame := Frame{
		GameID:       that.id,
		Grid:         that.grid.Clone(),
		Players:      make([]PlayerInfo, 0, len(that.players)),
		PlayerOnMove: that.playerOnMove,
		Redraw:       redraw,
		State:        that.state,
		WinnerID:     that.winnerID,
	}

	for _, p := range that.players {
		frame.Players = append(frame.Players, PlayerInfo{Name: p.Name(), Symbol: p.Symbol()})
	}

	that.renderer.Render(frame)
}
