package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

func TestPlayer_Next(t *testing.T) {
	assert.Equal(t, P2, P1.Next())
	assert.Equal(t, P1, P2.Next())
}

func TestParsePlayer(t *testing.T) {
	t.Run("Parses known players", func(t *testing.T) {
		for input, expected := range map[string]Player{"P1": P1, "1": P1, "p2": P2, "2": P2} {
			player, err := ParsePlayer(input)
			require.NoError(t, err)
			assert.Equal(t, expected, player)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParsePlayer("P3")
		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})
}

func TestParseOrientation(t *testing.T) {
	orientation, err := ParseOrientation("vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, orientation)

	_, err = ParseOrientation("diagonal")
	require.ErrorIs(t, err, apperror.ErrUnknownOrientation)
}

func TestShotResult_KeepsTurn(t *testing.T) {
	assert.False(t, ShotMiss.KeepsTurn())
	assert.True(t, ShotHit.KeepsTurn())
	assert.True(t, ShotDestroyed.KeepsTurn())
	assert.False(t, ShotWinning.KeepsTurn())
}
