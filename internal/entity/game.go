package entity

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
)

const (
	StatusSetup    = "setup"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - one game session. Holds the configuration while ships are being
// placed and the match once it is started. Callers must hold the lock while
// touching Setup or Match.
type Game struct {
	sync.Mutex

	ID     string
	Status string
	Setup  *battleship.Configuration
	Match  *battleship.Match
}

func NewGame(id string, setup *battleship.Configuration) *Game {
	return &Game{
		ID:     id,
		Status: StatusSetup,
		Setup:  setup,
	}
}

// Begin - swaps the configuration for a freshly started match.
func (that *Game) Begin() error {
	if !that.IsWaiting() {
		return apperror.ErrGameAlreadyStarted
	}

	match, err := that.Setup.Start()
	if err != nil {
		return fmt.Errorf("failed start match: %w", err)
	}

	that.Match = match
	that.Setup = nil
	that.Status = StatusOngoing

	return nil
}

// UpdateGameState - marks the session finished once the match has a winner.
func (that *Game) UpdateGameState() {
	if that.Match != nil && that.Match.IsFinished() {
		that.Status = StatusFinished
	}
}

func (that *Game) Winner() (battleship.Player, bool) {
	if that.Match == nil {
		return 0, false
	}
	return that.Match.Winner()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusSetup
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameOver
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// ConfirmSetupState - placements are only accepted before the match starts.
func (that *Game) ConfirmSetupState() error {
	switch {
	case that.IsWaiting():
		return nil
	case that.IsOngoing(), that.IsFinished():
		return apperror.ErrGameAlreadyStarted
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
