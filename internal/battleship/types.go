package battleship

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

type Player int

const (
	P1 Player = iota
	P2
)

// Players - both players in turn order.
var Players = [2]Player{P1, P2}

func (that Player) Valid() bool {
	return that == P1 || that == P2
}

// Next - returns the other player.
func (that Player) Next() Player {
	if that == P1 {
		return P2
	}
	return P1
}

func (that Player) String() string {
	switch that {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return fmt.Sprintf("Player(%d)", int(that))
	}
}

// ParsePlayer - accepts "P1"/"P2" as well as "1"/"2".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "P1", "p1", "1":
		return P1, nil
	case "P2", "p2", "2":
		return P2, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, s)
	}
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (that Orientation) Valid() bool {
	return that == Horizontal || that == Vertical
}

func (that Orientation) String() string {
	switch that {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(that))
	}
}

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "h", "H":
		return Horizontal, nil
	case "vertical", "v", "V":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownOrientation, s)
	}
}

// CellStatus - the visible state of a single cell from one viewer's perspective.
type CellStatus int

const (
	Empty CellStatus = iota
	Ship
	Hit
	Miss
)

func (that CellStatus) String() string {
	switch that {
	case Empty:
		return "empty"
	case Ship:
		return "ship"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return fmt.Sprintf("CellStatus(%d)", int(that))
	}
}

// ShotResult - outcome of an accepted shot.
type ShotResult int

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotDestroyed
	ShotWinning
)

func (that ShotResult) String() string {
	switch that {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotDestroyed:
		return "destroyed"
	case ShotWinning:
		return "winning shot"
	default:
		return fmt.Sprintf("ShotResult(%d)", int(that))
	}
}

// KeepsTurn - reports whether the shooter shoots again after this result.
func (that ShotResult) KeepsTurn() bool {
	return that == ShotHit || that == ShotDestroyed
}

type ShipTypeID int

type ShipType struct {
	ID     ShipTypeID `json:"id"`
	Name   string     `json:"name"`
	Length int        `json:"length"`
}
