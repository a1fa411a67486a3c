package core

import "errors"

// Contract violations. Seeing one of these means the caller and the
// engine disagree about the board state.
var (
	ErrOutOfBounds     = errors.New("ponpon: coordinate out of bounds")
	ErrCellEmpty       = errors.New("ponpon: cell is empty")
	ErrCellOccupied    = errors.New("ponpon: cell is occupied")
	ErrDuplicateCoord  = errors.New("ponpon: duplicate coordinate")
	ErrTileNotIdle     = errors.New("ponpon: tile is not idle")
	ErrSelectionActive = errors.New("ponpon: selection already in progress")
	ErrNoSelection     = errors.New("ponpon: no selection in progress")
)

// Configuration errors. A round cannot start with any of these.
var (
	ErrInvalidDimensions = errors.New("ponpon: grid dimensions must be positive")
	ErrInvalidTileTypes  = errors.New("ponpon: tile type count must be between 1 and 256")
	ErrInvalidMinChain   = errors.New("ponpon: minimum chain length must be at least 2")
	ErrInvalidDuration   = errors.New("ponpon: round duration must be positive")
	ErrInvalidFever      = errors.New("ponpon: fever threshold and duration must be positive")
)
