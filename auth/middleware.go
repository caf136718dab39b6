package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session"

	// Keys set on the gin context by RequireSession.
	ContextGameID   = "game_id"
	ContextPlayerID = "player_id"
)

// RequireSession resolves the session cookie to a (game, player) pair and
// rejects callers whose token does not match the game in the path.
func RequireSession(tokens TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookie)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing-token"})
			return
		}

		gameID, playerID, err := tokens.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if pathGame := ctx.Param("id"); pathGame != "" && pathGame != gameID {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "wrong-game"})
			return
		}

		ctx.Set(ContextGameID, gameID)
		ctx.Set(ContextPlayerID, playerID)
		ctx.Next()
	}
}
