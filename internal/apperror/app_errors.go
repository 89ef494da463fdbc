package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidColumn = fmt.Errorf("%w: column index out of range", ErrInvalidMove)
	ErrColumnFull    = fmt.Errorf("%w: column is full", ErrInvalidMove)
	ErrInvalidPlayer = fmt.Errorf("%w: cell is not a player", ErrInvalidMove)
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotFound      = errors.New("not found")
	ErrInvalidTheme  = errors.New("unknown theme")
)
