package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/config"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - owns game sessions and serializes every call on a session.
type GameManager struct {
	logger   *slog.Logger
	rules    config.Rules
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, rules config.Rules, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),

		rules:    rules,
		gameRepo: gameRepo,
	}
}

// CreateGame - new session in setup with the configured fleet defined in order.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	setup, err := battleship.NewConfiguration(that.rules.Width, that.rules.Height)
	if err != nil {
		return nil, fmt.Errorf("failed create configuration: %w", err)
	}

	for _, spec := range that.rules.Fleet {
		if _, err = setup.DefineShipType(spec.Name, spec.Length); err != nil {
			return nil, fmt.Errorf("failed define ship type: %w", err)
		}
	}

	game := entity.NewGame(uuid.NewString(), setup)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "width", setup.Width(), "height", setup.Height(), "ship_types", len(that.rules.Fleet))

	return game, nil
}

func (that *GameManager) ShipTypes(ctx context.Context, gameID string) ([]battleship.ShipType, error) {
	var shipTypes []battleship.ShipType

	err := that.withGame(ctx, gameID, func(game *entity.Game) error {
		if game.Setup != nil {
			shipTypes = game.Setup.ShipTypes()
		} else {
			shipTypes = game.Match.ShipTypes()
		}
		return nil
	})

	return shipTypes, err
}

func (that *GameManager) PlaceShip(
	ctx context.Context,
	gameID string,
	player battleship.Player,
	shipType battleship.ShipTypeID,
	x, y int,
	orientation battleship.Orientation,
) error {
	log := that.logger.With("method", "PlaceShip", "game_id", gameID)

	return that.withGame(ctx, gameID, func(game *entity.Game) error {
		if err := game.ConfirmSetupState(); err != nil {
			return err
		}

		if err := game.Setup.PlaceShip(player, shipType, x, y, orientation); err != nil {
			log.Debug("placement rejected", "player", player, "ship_type", shipType, "error", err)
			return fmt.Errorf("failed place ship: %w", err)
		}

		log.Debug("ship placed", "player", player, "ship_type", shipType, "x", x, "y", y, "orientation", orientation)

		return nil
	})
}

func (that *GameManager) StartGame(ctx context.Context, gameID string) error {
	return that.withGame(ctx, gameID, func(game *entity.Game) error {
		if err := game.Begin(); err != nil {
			return err
		}

		if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed update game: %w", err)
		}

		that.logger.Info("game started", "game_id", game.ID, "turn", game.Match.CurrentPlayer())

		return nil
	})
}

func (that *GameManager) Shoot(ctx context.Context, gameID string, shooter battleship.Player, x, y int) (battleship.ShotResult, error) {
	log := that.logger.With("method", "Shoot", "game_id", gameID)

	var result battleship.ShotResult

	err := that.withGame(ctx, gameID, func(game *entity.Game) error {
		if game.IsWaiting() {
			return fmt.Errorf("failed shoot: %w", game.ConfirmOngoingState())
		}

		var err error
		if result, err = game.Match.Shoot(shooter, x, y); err != nil {
			return fmt.Errorf("failed shoot: %w", err)
		}

		log.Debug("shot resolved", "shooter", shooter, "x", x, "y", y, "result", result)

		game.UpdateGameState()
		if game.IsFinished() {
			if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
				return fmt.Errorf("failed update game: %w", err)
			}

			log.Info("game finished", "winner", shooter)
		}

		return nil
	})

	return result, err
}

// OwnCell - the player's own battlefield, during setup or the match.
func (that *GameManager) OwnCell(ctx context.Context, gameID string, player battleship.Player, x, y int) (battleship.CellStatus, error) {
	var status battleship.CellStatus

	err := that.withGame(ctx, gameID, func(game *entity.Game) error {
		var err error
		if game.Setup != nil {
			status, err = game.Setup.Cell(player, x, y)
		} else {
			status, err = game.Match.Cell(player, x, y)
		}
		return err
	})

	return status, err
}

// OpponentCell - the opponent's battlefield as seen by player. Only available once started.
func (that *GameManager) OpponentCell(ctx context.Context, gameID string, player battleship.Player, x, y int) (battleship.CellStatus, error) {
	var status battleship.CellStatus

	err := that.withGame(ctx, gameID, func(game *entity.Game) error {
		if game.IsWaiting() {
			return game.ConfirmOngoingState()
		}

		var err error
		status, err = game.Match.OpponentCell(player, x, y)
		return err
	})

	return status, err
}

// ShipsAfloat - number of the player's ships not yet destroyed. Only available once started.
func (that *GameManager) ShipsAfloat(ctx context.Context, gameID string, player battleship.Player) (int, error) {
	var afloat int

	err := that.withGame(ctx, gameID, func(game *entity.Game) error {
		if game.IsWaiting() {
			return game.ConfirmOngoingState()
		}

		afloat = game.Match.ShipsAfloat(player)
		return nil
	})

	return afloat, err
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", gameID)

	return nil
}

func (that *GameManager) withGame(ctx context.Context, gameID string, fn func(game *entity.Game) error) error {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed get game by id: %w", err)
	}

	game.Lock()
	defer game.Unlock()

	return fn(game)
}
