package ai

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/grid"
	"github.com/rocketscienceinc/tictactoe-grid/internal/player"
)

// MaxScore is given to cells that complete a line, for either side.
const MaxScore = math.MaxFloat64

// DefaultStreakMultiplier works best when mine and enemy multipliers match.
const DefaultStreakMultiplier = 1.0

// Heuristic is a defensive single-ply controller. Works correctly with two players.
//
// Every empty cell is scored by the streaks on its eight rays. A cell that would complete
// a full line is forced, whoever owns that line, so the controller takes its own wins and
// blocks the opponent's with the same rule. Otherwise the cell scores the longest streak.
type Heuristic struct {
	myMultiplier    float64
	enemyMultiplier float64

	game     player.Game
	playerID int
}

func NewHeuristic(myMultiplier, enemyMultiplier float64) *Heuristic {
	return &Heuristic{
		myMultiplier:    myMultiplier,
		enemyMultiplier: enemyMultiplier,
		playerID:        entity.NoWinner,
	}
}

func (that *Heuristic) Initialize(game player.Game, playerID int) error {
	that.game = game
	that.playerID = playerID

	return nil
}

// Move - returns the best ranked empty cell of the current grid.
func (that *Heuristic) Move(ctx context.Context) (entity.Position, error) {
	if that.game == nil {
		return entity.Position{}, apperror.ErrNotInitialized
	}

	queue, err := that.think(ctx, that.game.Snapshot())
	if err != nil {
		return entity.Position{}, err
	}

	if queue.Len() == 0 {
		return entity.Position{}, apperror.ErrNoAvailableMoves
	}

	return queue.dequeue().Position, nil
}

// Rank - returns every empty cell of g from best to worst.
func (that *Heuristic) Rank(ctx context.Context, g *grid.Grid) ([]Candidate, error) {
	queue, err := that.think(ctx, g)
	if err != nil {
		return nil, err
	}

	ranked := make([]Candidate, 0, queue.Len())
	for queue.Len() > 0 {
		ranked = append(ranked, queue.dequeue())
	}

	return ranked, nil
}

// Score - returns the score of pos on g; occupied and out of grid cells score 0.
func (that *Heuristic) Score(g *grid.Grid, pos entity.Position) float64 {
	streaks, ok := g.StreaksFrom(pos, that.playerID)
	if !ok {
		return 0
	}

	size := g.Size()
	for i := range grid.OrientationCount {
		if completesLine(streaks[i], streaks[i+grid.OrientationCount], size) {
			return MaxScore
		}
	}

	// ties keep the first ray in scan order
	best := streaks[0]
	for _, streak := range streaks[1:] {
		if that.weigh(best) < that.weigh(streak) {
			best = streak
		}
	}

	return that.weigh(best)
}

// think - scores rows concurrently, then feeds empty cells to the queue in row-major order
// so that equal scores resolve to the top-left most cell.
func (that *Heuristic) think(ctx context.Context, g *grid.Grid) (*scoreQueue, error) {
	size := g.Size()
	scores := make([]float64, size*size)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for y := range size {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for x := range size {
				scores[x+y*size] = that.Score(g, entity.NewPosition(x, y))
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score grid: %w", err)
	}

	queue := newScoreQueue(g.FreeCells())
	for y := range size {
		for x := range size {
			pos := entity.NewPosition(x, y)
			if !g.IsEmpty(pos) {
				continue
			}

			queue.enqueue(Candidate{Position: pos, Score: scores[x+y*size]})
		}
	}

	return queue, nil
}

func (that *Heuristic) weigh(streak grid.Streak) float64 {
	if streak.Mine {
		return float64(streak.Length) * that.myMultiplier
	}

	return float64(streak.Length) * that.enemyMultiplier
}

// completesLine - reports whether filling the cell between two opposite rays makes a full line.
// Either ray alone may already hold size-1 cells, or both rays may belong to the same owner
// (an empty or edge ray agrees with any owner) and add up to size-1.
func completesLine(a, b grid.Streak, size int) bool {
	need := size - 1

	if a.Length == need || b.Length == need {
		return true
	}

	agree := a.Owner == b.Owner || a.Owner == grid.Empty || b.Owner == grid.Empty

	return agree && a.Length+b.Length == need
}
