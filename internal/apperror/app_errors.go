package apperror

import "errors"

// setup errors.
var (
	ErrInvalidDimensions     = errors.New("battlefield dimensions must be at least 2x2")
	ErrInvalidShipLength     = errors.New("ship length must be at least 1")
	ErrUnknownShipType       = errors.New("unknown ship type")
	ErrOverlap               = errors.New("ship overlaps an already placed ship")
	ErrDuplicatePlacement    = errors.New("ship type is already placed")
	ErrIncompletePlacement   = errors.New("not all ships are placed")
	ErrConfigurationConsumed = errors.New("configuration is already started")
	ErrUnknownPlayer         = errors.New("unknown player")
	ErrUnknownOrientation    = errors.New("unknown orientation")
)

// match errors.
var (
	ErrOutOfBounds  = errors.New("coordinates are out of bounds")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrAlreadyShot  = errors.New("cell is already shot")
	ErrGameOver     = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrEmptyGameID  = errors.New("game id is empty")

	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")
)
