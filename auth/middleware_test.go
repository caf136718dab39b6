package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lstasi/rummikub-backend/auth"
)

type stubTokenManager struct {
	gameID   string
	playerID string
	err      error
}

func (s stubTokenManager) Generate(gameID, playerID string, _ time.Time) (string, error) {
	return "token", nil
}

func (s stubTokenManager) Verify(string) (string, string, error) {
	return s.gameID, s.playerID, s.err
}

func serve(tm auth.TokenManager, path string, cookie bool) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/games/:id", auth.RequireSession(tm), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"game":   ctx.GetString(auth.ContextGameID),
			"player": ctx.GetString(auth.ContextPlayerID),
		})
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "token"})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	t.Run("valid session for the right game", func(t *testing.T) {
		w := serve(stubTokenManager{gameID: "g1", playerID: "p1"}, "/games/g1", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "p1")
	})

	t.Run("missing cookie", func(t *testing.T) {
		w := serve(stubTokenManager{gameID: "g1", playerID: "p1"}, "/games/g1", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		w := serve(stubTokenManager{err: errors.New("invalid-token")}, "/games/g1", true)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token bound to another game", func(t *testing.T) {
		w := serve(stubTokenManager{gameID: "g2", playerID: "p1"}, "/games/g1", true)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
