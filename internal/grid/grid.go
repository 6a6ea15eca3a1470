package grid

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// Empty marks a cell nobody owns.
const Empty = -1

var (
	ErrOutOfBounds  = errors.New("position is outside the grid")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidSize  = errors.New("grid size must be at least 1")
	ErrInvalidOwner = errors.New("owner id must not be negative")
)

// Grid is an NxN board of owner ids stored row-major.
type Grid struct {
	cells     []int
	size      int
	freeCells int
}

func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	that := &Grid{size: size}
	that.Reset()

	return that, nil
}

func (that *Grid) Size() int {
	return that.size
}

// FreeCells - number of cells still equal to Empty.
func (that *Grid) FreeCells() int {
	return that.freeCells
}

func (that *Grid) InBounds(pos entity.Position) bool {
	return pos.X >= 0 && pos.X < that.size && pos.Y >= 0 && pos.Y < that.size
}

// Get - returns the owner of the cell or Empty.
func (that *Grid) Get(pos entity.Position) (int, error) {
	if !that.InBounds(pos) {
		return Empty, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	return that.cells[that.index(pos)], nil
}

func (that *Grid) IsEmpty(pos entity.Position) bool {
	return that.InBounds(pos) && that.cells[that.index(pos)] == Empty
}

// Set - marks an empty cell as owned and consumes one free cell.
func (that *Grid) Set(pos entity.Position, owner int) error {
	if owner < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOwner, owner)
	}

	if !that.InBounds(pos) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	idx := that.index(pos)
	if that.cells[idx] != Empty {
		return fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}

	that.cells[idx] = owner
	that.freeCells--

	return nil
}

// Reset - empties every cell.
func (that *Grid) Reset() {
	if len(that.cells) != that.size*that.size {
		that.cells = make([]int, that.size*that.size)
	}

	for i := range that.cells {
		that.cells[i] = Empty
	}

	that.freeCells = len(that.cells)
}

// Resize - discards the contents and allocates an empty grid of the new size.
func (that *Grid) Resize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	that.size = size
	that.cells = nil
	that.Reset()

	return nil
}

// Clone - returns an independent copy.
func (that *Grid) Clone() *Grid {
	cells := make([]int, len(that.cells))
	copy(cells, that.cells)

	return &Grid{
		cells:     cells,
		size:      that.size,
		freeCells: that.freeCells,
	}
}

func (that *Grid) index(pos entity.Position) int {
	return pos.X + pos.Y*that.size
}

// at - unchecked read for scans that already did the bounds check.
func (that *Grid) at(x, y int) int {
	return that.cells[x+y*that.size]
}

func (that *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}
