package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished only
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
		assert.False(t, game.IsWaiting())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game is in setup", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", newSetup(t))

		// Then: it should be waiting
		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is in setup", func(t *testing.T) {
		game := &Game{Status: StatusSetup}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameOver when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameOver)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_ConfirmSetupState(t *testing.T) {
	assert.NoError(t, (&Game{Status: StatusSetup}).ConfirmSetupState())
	assert.ErrorIs(t, (&Game{Status: StatusOngoing}).ConfirmSetupState(), apperror.ErrGameAlreadyStarted)
	assert.ErrorIs(t, (&Game{Status: StatusFinished}).ConfirmSetupState(), apperror.ErrGameAlreadyStarted)
	assert.ErrorIs(t, (&Game{Status: "unknown"}).ConfirmSetupState(), ErrUnknownGameStatus)
}

func TestGame_Begin(t *testing.T) {
	t.Run("Starts the match once every ship is placed", func(t *testing.T) {
		// Given: a game where both players placed their jetski
		setup := newSetup(t)
		for _, player := range battleship.Players {
			require.NoError(t, setup.PlaceShip(player, 0, 0, 0, battleship.Horizontal))
		}
		game := NewGame("123", setup)

		// When: beginning the game
		err := game.Begin()

		// Then: the match replaces the setup
		require.NoError(t, err)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Nil(t, game.Setup)
		require.NotNil(t, game.Match)

		// And: a second Begin is rejected
		require.ErrorIs(t, game.Begin(), apperror.ErrGameAlreadyStarted)
	})

	t.Run("Keeps the setup when placements are missing", func(t *testing.T) {
		// Given: a game without placements
		setup := newSetup(t)
		game := NewGame("123", setup)

		// When: beginning the game
		err := game.Begin()

		// Then: ErrIncompletePlacement is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrIncompletePlacement)
		assert.Equal(t, StatusSetup, game.Status)
		assert.Same(t, setup, game.Setup)
		assert.Nil(t, game.Match)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	// Given: an ongoing 2x2 game with a single jetski each
	setup := newSetup(t)
	for _, player := range battleship.Players {
		require.NoError(t, setup.PlaceShip(player, 0, 1, 1, battleship.Horizontal))
	}
	game := NewGame("123", setup)
	require.NoError(t, game.Begin())

	// When: P1 sinks the jetski
	result, err := game.Match.Shoot(battleship.P1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, battleship.ShotWinning, result)
	game.UpdateGameState()

	// Then: the game is finished with P1 as winner
	assert.Equal(t, StatusFinished, game.Status)
	winner, ok := game.Winner()
	assert.True(t, ok)
	assert.Equal(t, battleship.P1, winner)
}

func newSetup(t *testing.T) *battleship.Configuration {
	t.Helper()

	setup, err := battleship.NewConfiguration(2, 2)
	require.NoError(t, err)

	_, err = setup.DefineShipType("Jetski", 1)
	require.NoError(t, err)

	return setup
}
