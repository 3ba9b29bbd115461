package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/config"
	"github.com/rocketscienceinc/battleship-backend/internal/repository"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
)

// RunApp - checks the configured ruleset: creates a game from the rules,
// applies the preset layouts and starts the match.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger, conf.Rules, repository.NewGameRepository())

	game, err := gameManager.CreateGame(ctx)
	if err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	if len(conf.Layouts) == 0 {
		log.Info("Rules are valid, no layouts configured", "width", conf.Rules.Width, "height", conf.Rules.Height)
		return nil
	}

	for _, layout := range conf.Layouts {
		if err = applyLayout(ctx, gameManager, conf.Rules, game.ID, layout); err != nil {
			return fmt.Errorf("invalid layout for %s: %w", layout.Player, err)
		}
	}

	if err = gameManager.StartGame(ctx, game.ID); err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	for _, player := range battleship.Players {
		afloat, err := gameManager.ShipsAfloat(ctx, game.ID, player)
		if err != nil {
			return fmt.Errorf("could not read fleet: %w", err)
		}

		log.Info("Fleet ready", "player", player, "ships_afloat", afloat)
	}

	log.Info("Ruleset check passed", "game_id", game.ID)

	return nil
}

func applyLayout(ctx context.Context, gameManager *usecase.GameManager, rules config.Rules, gameID string, layout config.Layout) error {
	player, err := battleship.ParsePlayer(layout.Player)
	if err != nil {
		return err
	}

	for _, placement := range layout.Ships {
		idx, ok := rules.FindShip(placement.Ship)
		if !ok {
			return fmt.Errorf("%w: %q", apperror.ErrUnknownShipType, placement.Ship)
		}

		orientation := battleship.Horizontal
		if placement.Orientation != "" {
			if orientation, err = battleship.ParseOrientation(placement.Orientation); err != nil {
				return err
			}
		}

		err = gameManager.PlaceShip(ctx, gameID, player, battleship.ShipTypeID(idx), placement.X, placement.Y, orientation)
		if err != nil {
			return err
		}
	}

	return nil
}
