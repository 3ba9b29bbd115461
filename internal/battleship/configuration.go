package battleship

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

const MinDimension = 2

// Configuration - pre-game stage. Collects ship types and placements for both
// players and turns into a Match once every player has placed every ship type.
type Configuration struct {
	width     int
	height    int
	shipTypes []ShipType
	fields    [2]battlefield
	consumed  bool
}

func NewConfiguration(width, height int) (*Configuration, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	return &Configuration{
		width:  width,
		height: height,
		fields: [2]battlefield{newBattlefield(width, height), newBattlefield(width, height)},
	}, nil
}

func (that *Configuration) Width() int {
	return that.width
}

func (that *Configuration) Height() int {
	return that.height
}

// DefineShipType - registers a new ship type and returns its id. Ids are
// assigned densely starting at zero.
func (that *Configuration) DefineShipType(name string, length int) (ShipTypeID, error) {
	if that.consumed {
		return 0, apperror.ErrConfigurationConsumed
	}

	if length < 1 {
		return 0, fmt.Errorf("%w: %q has length %d", apperror.ErrInvalidShipLength, name, length)
	}

	id := ShipTypeID(len(that.shipTypes))
	that.shipTypes = append(that.shipTypes, ShipType{ID: id, Name: name, Length: length})

	return id, nil
}

func (that *Configuration) ShipTypes() []ShipType {
	return slices.Clone(that.shipTypes)
}

func (that *Configuration) ShipType(id ShipTypeID) (ShipType, error) {
	if id < 0 || int(id) >= len(that.shipTypes) {
		return ShipType{}, fmt.Errorf("%w: id %d", apperror.ErrUnknownShipType, id)
	}

	return that.shipTypes[id], nil
}

// PlaceShip - validates and records a placement. The configuration is left
// untouched when an error is returned.
func (that *Configuration) PlaceShip(player Player, id ShipTypeID, x, y int, orientation Orientation) error {
	if that.consumed {
		return apperror.ErrConfigurationConsumed
	}

	if err := validatePlayer(player); err != nil {
		return err
	}

	if !orientation.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownOrientation, int(orientation))
	}

	shipType, err := that.ShipType(id)
	if err != nil {
		return err
	}

	field := &that.fields[player]

	if field.hasShipOfType(id) {
		return fmt.Errorf("%w: %s already placed %q", apperror.ErrDuplicatePlacement, player, shipType.Name)
	}

	cells, err := field.footprint(shipType.Length, x, y, orientation)
	if err != nil {
		return fmt.Errorf("place %q: %w", shipType.Name, err)
	}

	if field.occupied(cells) {
		return fmt.Errorf("%w: %q at (%d, %d) %s", apperror.ErrOverlap, shipType.Name, x, y, orientation)
	}

	field.place(id, cells)

	return nil
}

func (that *Configuration) IsPlaced(player Player, id ShipTypeID) bool {
	if !player.Valid() {
		return false
	}
	return that.fields[player].hasShipOfType(id)
}

// Missing - ship types the player still has to place.
func (that *Configuration) Missing(player Player) []ShipType {
	var missing []ShipType
	for _, st := range that.shipTypes {
		if !that.IsPlaced(player, st.ID) {
			missing = append(missing, st)
		}
	}
	return missing
}

// Cell - own-field status during setup, either Empty or Ship.
func (that *Configuration) Cell(player Player, x, y int) (CellStatus, error) {
	if that.consumed {
		return Empty, apperror.ErrConfigurationConsumed
	}

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

// Start - consumes the configuration and returns an independent Match. On
// failure the configuration stays usable.
func (that *Configuration) Start() (*Match, error) {
	if that.consumed {
		return nil, apperror.ErrConfigurationConsumed
	}

	if len(that.shipTypes) == 0 {
		return nil, fmt.Errorf("%w: no ship types defined", apperror.ErrIncompletePlacement)
	}

	for _, player := range Players {
		if missing := that.Missing(player); len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s has %d ship(s) left to place", apperror.ErrIncompletePlacement, player, len(missing))
		}
	}

	match := newMatch(that.width, that.height, slices.Clone(that.shipTypes), [2]battlefield{
		that.fields[P1].clone(),
		that.fields[P2].clone(),
	})

	that.consumed = true
	that.shipTypes = nil
	that.fields = [2]battlefield{}

	return match, nil
}

func validatePlayer(player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, int(player))
	}
	return nil
}
