package battleship

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

const noShip = -1

type cell struct {
	ship int // index into battlefield.ships, noShip when water
	shot bool
}

type placedShip struct {
	typeID ShipTypeID
	cells  []int
	hits   int
}

func (that *placedShip) destroyed() bool {
	return that.hits >= len(that.cells)
}

// battlefield - one player's grid, stored row-major.
type battlefield struct {
	width  int
	height int
	cells  []cell
	ships  []placedShip
}

func newBattlefield(width, height int) battlefield {
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i].ship = noShip
	}

	return battlefield{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (that *battlefield) inBounds(x, y int) bool {
	return x >= 0 && x < that.width && y >= 0 && y < that.height
}

func (that *battlefield) index(x, y int) (int, error) {
	if !that.inBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d", apperror.ErrOutOfBounds, x, y, that.width, that.height)
	}

	return y*that.width + x, nil
}

// footprint - cell indexes a ship would occupy, extending right or down from the anchor.
func (that *battlefield) footprint(length, x, y int, orientation Orientation) ([]int, error) {
	dx, dy := 1, 0
	room := that.width - x
	if orientation == Vertical {
		dx, dy = 0, 1
		room = that.height - y
	}

	// the ship has to fit before anything is sized by its length
	if !that.inBounds(x, y) || length > room {
		return nil, fmt.Errorf("%w: length %d %s from (%d, %d) on %dx%d",
			apperror.ErrOutOfBounds, length, orientation, x, y, that.width, that.height)
	}

	cells := make([]int, 0, length)
	for i := range length {
		idx, err := that.index(x+i*dx, y+i*dy)
		if err != nil {
			return nil, err
		}
		cells = append(cells, idx)
	}

	return cells, nil
}

func (that *battlefield) occupied(cells []int) bool {
	for _, idx := range cells {
		if that.cells[idx].ship != noShip {
			return true
		}
	}
	return false
}

func (that *battlefield) hasShipOfType(id ShipTypeID) bool {
	for i := range that.ships {
		if that.ships[i].typeID == id {
			return true
		}
	}
	return false
}

func (that *battlefield) place(id ShipTypeID, cells []int) {
	shipIdx := len(that.ships)
	that.ships = append(that.ships, placedShip{typeID: id, cells: cells})

	for _, idx := range cells {
		that.cells[idx].ship = shipIdx
	}
}

func (that *battlefield) afloat() int {
	n := 0
	for i := range that.ships {
		if !that.ships[i].destroyed() {
			n++
		}
	}
	return n
}

// ownerView - status as seen by the battlefield's owner.
func (that *battlefield) ownerView(idx int) CellStatus {
	c := that.cells[idx]

	switch {
	case c.ship != noShip && c.shot:
		return Hit
	case c.ship != noShip:
		return Ship
	case c.shot:
		return Miss
	default:
		return Empty
	}
}

// opponentView - status as seen by the shooter; unhit ships stay hidden.
func (that *battlefield) opponentView(idx int) CellStatus {
	c := that.cells[idx]

	switch {
	case c.shot && c.ship != noShip:
		return Hit
	case c.shot:
		return Miss
	default:
		return Empty
	}
}

func (that *battlefield) clone() battlefield {
	ships := make([]placedShip, len(that.ships))
	for i, s := range that.ships {
		ships[i] = placedShip{typeID: s.typeID, cells: slices.Clone(s.cells), hits: s.hits}
	}

	return battlefield{
		width:  that.width,
		height: that.height,
		cells:  slices.Clone(that.cells),
		ships:  ships,
	}
}
