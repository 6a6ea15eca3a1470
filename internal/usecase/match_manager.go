package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Standings(ctx context.Context) (map[string]int, error)
}

// MatchManager plays a game to its end and records the outcome.
type MatchManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	game       *tictactoe.GameController
	now        func() time.Time
}

// NewMatchManager - resultRepo may be nil, results are then only logged.
func NewMatchManager(logger *slog.Logger, resultRepo resultRepo, game *tictactoe.GameController) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		resultRepo: resultRepo,
		game:       game,
		now:        time.Now,
	}
}

// Play - runs the game until it finishes and saves the result.
func (that *MatchManager) Play(ctx context.Context) (*entity.Result, error) {
	if err := that.game.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	result := that.result()

	log := that.logger.With("game_id", result.ID)
	if result.IsTie() {
		log.Info("match finished", "result", "tie")
	} else {
		log.Info("match finished", "winner", result.Winner)
	}

	if that.resultRepo == nil {
		return result, nil
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return result, fmt.Errorf("failed to save result: %w", err)
	}

	return result, nil
}

// Recorded - the stored result of a game, nil without a repository.
func (that *MatchManager) Recorded(ctx context.Context, id string) (*entity.Result, error) {
	if that.resultRepo == nil {
		return nil, nil
	}

	result, err := that.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get result %s: %w", id, err)
	}

	return result, nil
}

// Standings - wins per player over all recorded games, nil without a repository.
func (that *MatchManager) Standings(ctx context.Context) (map[string]int, error) {
	if that.resultRepo == nil {
		return nil, nil
	}

	standings, err := that.resultRepo.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	return standings, nil
}

func (that *MatchManager) result() *entity.Result {
	players := that.game.Players()

	result := &entity.Result{
		ID:         that.game.ID(),
		GridSize:   that.game.GridSize(),
		WinnerID:   that.game.WinnerID(),
		Players:    make([]string, 0, len(players)),
		FinishedAt: that.now().UTC(),
	}

	for _, p := range players {
		result.Players = append(result.Players, p.Name())
	}

	if !result.IsTie() {
		result.Winner = players[result.WinnerID].Name()
	}

	return result
}
