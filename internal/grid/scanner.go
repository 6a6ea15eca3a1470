package grid

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// Orientation is one of the four undirected lines through a cell.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	Diagonal     // top-left to bottom-right
	AntiDiagonal // top-right to bottom-left
)

// OrientationCount is the number of lines through a cell.
const OrientationCount = 4

// HalfDirectionCount is the number of rays from a cell. Ray i and ray i+4 are opposite.
const HalfDirectionCount = 8

type vector struct {
	dx, dy int
}

// orientationVectors are indexed by Orientation; each line is scanned along the vector and its negation.
var orientationVectors = [OrientationCount]vector{
	Horizontal:   {1, 0},
	Vertical:     {0, 1},
	Diagonal:     {1, 1},
	AntiDiagonal: {-1, 1},
}

// halfDirections clockwise from top-left:
//
//	0 1 2
//	7 P 3
//	6 5 4
var halfDirections = [HalfDirectionCount]vector{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// Streak is the run seen along one ray from an empty cell.
type Streak struct {
	// Owner of the adjacent cell, or Empty when the neighbour is empty or off the grid.
	Owner int
	// Length of consecutive Owner cells starting at the neighbour.
	Length int
	// Mine is true when Owner is the evaluating player, and by convention for an empty neighbour.
	Mine bool
	// Edge is true when the ray leaves the grid immediately.
	Edge bool
}

// LinesThrough - returns, per orientation, the number of owner cells on the line through pos,
// counting pos itself. The four lines are scanned concurrently and joined before returning.
func (that *Grid) LinesThrough(pos entity.Position, owner int) ([OrientationCount]int, error) {
	var totals [OrientationCount]int

	if owner < 0 {
		return totals, fmt.Errorf("%w: %d", ErrInvalidOwner, owner)
	}

	if !that.InBounds(pos) {
		return totals, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	var group errgroup.Group
	for orientation, vec := range orientationVectors {
		group.Go(func() error {
			totals[orientation] = 1 +
				that.run(pos.X, pos.Y, vec.dx, vec.dy, owner) +
				that.run(pos.X, pos.Y, -vec.dx, -vec.dy, owner)
			return nil
		})
	}

	// never returns error
	_ = group.Wait()

	return totals, nil
}

// StreaksFrom - returns the streak on each of the eight rays around an empty cell, seen by perspective.
// The second value is false when pos is occupied or outside the grid.
func (that *Grid) StreaksFrom(pos entity.Position, perspective int) ([HalfDirectionCount]Streak, bool) {
	var streaks [HalfDirectionCount]Streak

	if !that.IsEmpty(pos) {
		return streaks, false
	}

	for i, vec := range halfDirections {
		x, y := pos.X+vec.dx, pos.Y+vec.dy

		if !that.inBounds(x, y) {
			streaks[i] = Streak{Owner: Empty, Edge: true}
			continue
		}

		owner := that.at(x, y)
		if owner == Empty {
			// open line placeholder
			streaks[i] = Streak{Owner: Empty, Mine: true}
			continue
		}

		streaks[i] = Streak{
			Owner:  owner,
			Length: 1 + that.run(x, y, vec.dx, vec.dy, owner),
			Mine:   owner == perspective,
		}
	}

	return streaks, true
}

// run - counts consecutive owner cells after (x, y) along (dx, dy), stopping at the edge or another owner.
func (that *Grid) run(x, y, dx, dy, owner int) int {
	count := 0

	for {
		x += dx
		y += dy

		if !that.inBounds(x, y) || that.at(x, y) != owner {
			return count
		}

		count++
	}
}
