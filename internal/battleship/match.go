package battleship

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

// Match - a running game. P1 always shoots first. A hit keeps the turn with
// the shooter, a miss passes it to the opponent.
type Match struct {
	width     int
	height    int
	shipTypes []ShipType
	fields    [2]battlefield

	turn     Player
	winner   Player
	finished bool
}

func newMatch(width, height int, shipTypes []ShipType, fields [2]battlefield) *Match {
	return &Match{
		width:     width,
		height:    height,
		shipTypes: shipTypes,
		fields:    fields,
		turn:      P1,
	}
}

func (that *Match) Width() int {
	return that.width
}

func (that *Match) Height() int {
	return that.height
}

func (that *Match) ShipTypes() []ShipType {
	return slices.Clone(that.shipTypes)
}

// CurrentPlayer - the player allowed to shoot next. Meaningless once finished.
func (that *Match) CurrentPlayer() Player {
	return that.turn
}

func (that *Match) IsFinished() bool {
	return that.finished
}

func (that *Match) Winner() (Player, bool) {
	return that.winner, that.finished
}

// ShipsAfloat - number of the player's ships that are not destroyed.
func (that *Match) ShipsAfloat(player Player) int {
	if !player.Valid() {
		return 0
	}
	return that.fields[player].afloat()
}

// Shoot - fires at the opponent's battlefield. Errors leave the match unchanged.
func (that *Match) Shoot(shooter Player, x, y int) (ShotResult, error) {
	if that.finished {
		return ShotMiss, fmt.Errorf("%w: %s won", apperror.ErrGameOver, that.winner)
	}

	if err := validatePlayer(shooter); err != nil {
		return ShotMiss, err
	}

	if shooter != that.turn {
		return ShotMiss, fmt.Errorf("%w: %s is to shoot", apperror.ErrNotYourTurn, that.turn)
	}

	target := &that.fields[shooter.Next()]

	idx, err := target.index(x, y)
	if err != nil {
		return ShotMiss, err
	}

	c := &target.cells[idx]
	if c.shot {
		return ShotMiss, fmt.Errorf("%w: (%d, %d)", apperror.ErrAlreadyShot, x, y)
	}

	c.shot = true

	if c.ship == noShip {
		that.turn = shooter.Next()
		return ShotMiss, nil
	}

	ship := &target.ships[c.ship]
	ship.hits++

	switch {
	case target.afloat() == 0:
		that.finished = true
		that.winner = shooter
		return ShotWinning, nil
	case ship.destroyed():
		return ShotDestroyed, nil
	default:
		return ShotHit, nil
	}
}

// Cell - the player's own battlefield: ships, hits and misses are all visible.
func (that *Match) Cell(player Player, x, y int) (CellStatus, error) {
	if err := validatePlayer(player); err != nil {
		return Empty, err
	}

	field := &that.fields[player]

	idx, err := field.index(x, y)
	if err != nil {
		return Empty, err
	}

	return field.ownerView(idx), nil
}

// OpponentCell - the opponent's battlefield as seen by player. Ships that were
// not hit are reported as Empty.
func (that *Match) OpponentCell(player Player, x, y int) (CellStatus, error) {
	if err := validatePlayer(player); err != nil {
		return Empty, err
	}

	field := &that.fields[player.Next()]

	idx, err := field.index(x, y)
	if err != nil {
		return Empty, err
	}

	return field.opponentView(idx), nil
}
