package auth

import (
	"errors"
	"time"
)

// TokenManager issues and resolves session tokens. A token binds a caller to
// one (game, player) pair; the engine itself only ever sees the resolved ids.
type TokenManager interface {
	Generate(gameID, playerID string, now time.Time) (string, error)
	Verify(token string) (gameID, playerID string, err error)
}

var (
	ErrExpiredToken = errors.New("expired-token")
	ErrInvalidToken = errors.New("invalid-token")
)
