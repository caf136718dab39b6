package crypto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lstasi/rummikub-backend/auth"
	"github.com/lstasi/rummikub-backend/crypto"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := crypto.NewJWTManager("supersupersecretkey don't share it with anyone", 2*time.Hour)

	token, err := manager.Generate("game-1", "player-1", time.Now())
	require.NoError(t, err)

	gameID, playerID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "game-1", gameID)
	assert.Equal(t, "player-1", playerID)
}

func TestVerifyRejections(t *testing.T) {
	manager := crypto.NewJWTManager("supersupersecretkey don't share it with anyone", 2*time.Hour)

	t.Run("expired token", func(t *testing.T) {
		token, _ := manager.Generate("game-1", "player-1", time.Now().Add(-3*time.Hour))

		_, _, err := manager.Verify(token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, _ := manager.Generate("game-1", "player-1", time.Now())

		_, _, err := manager.Verify(token + "lol")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := crypto.NewJWTManager("a completely different key", 2*time.Hour)
		token, _ := other.Generate("game-1", "player-1", time.Now())

		_, _, err := manager.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := manager.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
