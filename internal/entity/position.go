package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
)

// Position is a 0-indexed cell coordinate. X is the column, Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (that Position) String() string {
	return fmt.Sprintf("%d,%d", that.X, that.Y)
}

// ParsePosition - parses "X,Y" or "X Y" coordinates. Separators may be mixed and repeated.
func ParsePosition(text string) (Position, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if len(fields) != 2 {
		return Position{}, fmt.Errorf("%w: expected two coordinates, got %q", apperror.ErrInvalidInput, strings.TrimSpace(text))
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad X coordinate %q", apperror.ErrInvalidInput, fields[0])
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad Y coordinate %q", apperror.ErrInvalidInput, fields[1])
	}

	return Position{X: x, Y: y}, nil
}
