package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// InputSource reads a cell position typed by a person.
// Unparseable text is reported as apperror.ErrInvalidInput.
type InputSource interface {
	ReadPosition(ctx context.Context) (entity.Position, error)
}

// Human asks an input source for coordinates until it gets a parseable pair.
type Human struct {
	base

	input InputSource
}

func NewHuman(name string, symbol rune, input InputSource) *Human {
	return &Human{
		base:  newBase(name, symbol, true),
		input: input,
	}
}

func (that *Human) Move(ctx context.Context) (entity.Position, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Position{}, err
		}

		pos, err := that.input.ReadPosition(ctx)
		if errors.Is(err, apperror.ErrInvalidInput) {
			continue
		}

		if err != nil {
			return entity.Position{}, fmt.Errorf("failed to read position: %w", err)
		}

		return pos, nil
	}
}
