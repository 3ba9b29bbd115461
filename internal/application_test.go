package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/config"
)

func TestRunApp(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rules := config.Rules{
		Width:  4,
		Height: 4,
		Fleet: []config.ShipSpec{
			{Name: "Corvette", Length: 2},
			{Name: "Frigate", Length: 3},
		},
	}

	fullLayout := func(player string) config.Layout {
		return config.Layout{
			Player: player,
			Ships: []config.Placement{
				{Ship: "Corvette", X: 0, Y: 0},
				{Ship: "Frigate", X: 3, Y: 1, Orientation: "vertical"},
			},
		}
	}

	t.Run("Passes with rules only", func(t *testing.T) {
		err := RunApp(ctx, logger, &config.Config{Rules: rules})

		require.NoError(t, err)
	})

	t.Run("Passes with complete layouts", func(t *testing.T) {
		err := RunApp(ctx, logger, &config.Config{
			Rules:   rules,
			Layouts: []config.Layout{fullLayout("P1"), fullLayout("P2")},
		})

		require.NoError(t, err)
	})

	t.Run("Fails with invalid rules", func(t *testing.T) {
		err := RunApp(ctx, logger, &config.Config{Rules: config.Rules{Width: 1, Height: 1}})

		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
	})

	t.Run("Fails when a layout is missing", func(t *testing.T) {
		err := RunApp(ctx, logger, &config.Config{
			Rules:   rules,
			Layouts: []config.Layout{fullLayout("P1")},
		})

		require.ErrorIs(t, err, apperror.ErrIncompletePlacement)
	})

	t.Run("Fails on overlapping ships", func(t *testing.T) {
		overlapping := config.Layout{
			Player: "P2",
			Ships: []config.Placement{
				{Ship: "Corvette", X: 0, Y: 0, Orientation: "vertical"},
				{Ship: "Frigate", X: 0, Y: 1},
			},
		}

		err := RunApp(ctx, logger, &config.Config{
			Rules:   rules,
			Layouts: []config.Layout{fullLayout("P1"), overlapping},
		})

		require.ErrorIs(t, err, apperror.ErrOverlap)
	})

	t.Run("Fails on unknown ships, players and orientations", func(t *testing.T) {
		cases := map[string]struct {
			layout   config.Layout
			expected error
		}{
			"ship":        {config.Layout{Player: "P1", Ships: []config.Placement{{Ship: "Jetski"}}}, apperror.ErrUnknownShipType},
			"player":      {config.Layout{Player: "P3"}, apperror.ErrUnknownPlayer},
			"orientation": {config.Layout{Player: "P1", Ships: []config.Placement{{Ship: "Corvette", Orientation: "up"}}}, apperror.ErrUnknownOrientation},
		}

		for name, tc := range cases {
			err := RunApp(ctx, logger, &config.Config{Rules: rules, Layouts: []config.Layout{tc.layout}})

			require.ErrorIs(t, err, tc.expected, name)
		}
	})
}
