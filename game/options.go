package game

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

var (
	ErrInvalidOptions  = stderrors.New("invalid game options")
	ErrCellOutOfBounds = stderrors.New("cell out of bounds")
	ErrInvalidSnapshot = stderrors.New("invalid board snapshot")
)

type GameOptions struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Bombs int `yaml:"bombs"`
}

func (options GameOptions) Validate() error {
	switch {
	case options.Rows <= 0:
		return errors.Wrapf(ErrInvalidOptions, "rows must be positive, got %d", options.Rows)
	case options.Cols <= 0:
		return errors.Wrapf(ErrInvalidOptions, "cols must be positive, got %d", options.Cols)
	case options.Bombs < 0:
		return errors.Wrapf(ErrInvalidOptions, "bombs must not be negative, got %d", options.Bombs)
	}
	return nil
}

// EffectiveBombs is the number of mines actually placed: bombs clamped to the board size
func (options GameOptions) EffectiveBombs() int {
	if numCells := options.Rows * options.Cols; options.Bombs > numCells {
		return numCells
	}
	return options.Bombs
}
