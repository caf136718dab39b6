package game

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lstasi/rummikub-backend/auth"
)

type gameHandler struct {
	service      *Service
	tokens       auth.TokenManager
	cookieMaxAge time.Duration
}

func NewGameHandler(service *Service, tokens auth.TokenManager, cookieMaxAge time.Duration) *gameHandler {
	return &gameHandler{service: service, tokens: tokens, cookieMaxAge: cookieMaxAge}
}

func (h *gameHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/games", h.CreateGameHandler)
	r.POST("/games/:id/join", h.JoinGameHandler)

	authed := r.Group("/", auth.RequireSession(h.tokens))
	authed.GET("/games/:id", h.GetGameHandler)
	authed.POST("/games/:id/actions", h.ActionHandler)
}

type createGameRequest struct {
	MaxPlayers int    `json:"max_players"`
	PlayerName string `json:"player_name" binding:"required"`
}

func (h *gameHandler) CreateGameHandler(ctx *gin.Context) {
	var req createGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad-request-format"})
		return
	}
	if req.MaxPlayers == 0 {
		req.MaxPlayers = MaxPlayers
	}
	if req.MaxPlayers < MinPlayers || req.MaxPlayers > MaxPlayers {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid-max-players"})
		return
	}

	view, playerID, err := h.service.CreateGame(ctx.Request.Context(), req.MaxPlayers, req.PlayerName)
	if err != nil {
		h.reject(ctx, err)
		return
	}

	if !h.issueSession(ctx, view.GameID, playerID) {
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"game_id":   view.GameID,
		"player_id": playerID,
		"state":     view,
	})
}

type joinGameRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
}

func (h *gameHandler) JoinGameHandler(ctx *gin.Context) {
	var req joinGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad-request-format"})
		return
	}

	view, playerID, err := h.service.Join(ctx.Request.Context(), ctx.Param("id"), req.PlayerName)
	if err != nil {
		h.reject(ctx, err)
		return
	}

	if !h.issueSession(ctx, view.GameID, playerID) {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"game_id":   view.GameID,
		"player_id": playerID,
		"state":     view,
	})
}

func (h *gameHandler) GetGameHandler(ctx *gin.Context) {
	view, err := h.service.View(ctx.Request.Context(), ctx.GetString(auth.ContextGameID), ctx.GetString(auth.ContextPlayerID))
	if err != nil {
		h.reject(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

type groupingPayload struct {
	Tiles          []string `json:"tiles" binding:"required"`
	DeclaredKind   string   `json:"declared_kind,omitempty"`
	DeclaredNumber int      `json:"declared_number,omitempty"`
	DeclaredColor  string   `json:"declared_color,omitempty"`
}

type actionRequest struct {
	ActionType string            `json:"action_type" binding:"required"`
	Groupings  []groupingPayload `json:"groupings,omitempty"`
}

func (h *gameHandler) ActionHandler(ctx *gin.Context) {
	var req actionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad-request-format"})
		return
	}

	var action Action
	switch req.ActionType {
	case "place_tiles":
		place := PlaceTiles{Groupings: make([]Grouping, 0, len(req.Groupings))}
		for _, g := range req.Groupings {
			place.Groupings = append(place.Groupings, Grouping{
				TileIDs:        g.Tiles,
				DeclaredKind:   CombinationKind(g.DeclaredKind),
				DeclaredNumber: g.DeclaredNumber,
				DeclaredColor:  TileColor(g.DeclaredColor),
			})
		}
		action = place
	case "draw_tile":
		action = DrawTile{}
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid-action-type"})
		return
	}

	view, err := h.service.Submit(ctx.Request.Context(), ctx.GetString(auth.ContextGameID), ctx.GetString(auth.ContextPlayerID), action)
	if err != nil {
		h.reject(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (h *gameHandler) issueSession(ctx *gin.Context, gameID, playerID string) bool {
	token, err := h.tokens.Generate(gameID, playerID, time.Now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unknown-error"})
		return false
	}
	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie(auth.SessionCookie, token, int(h.cookieMaxAge.Seconds()), "/", "", true, true)
	return true
}

func (h *gameHandler) reject(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGameNotFound), errors.Is(err, ErrPlayerNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, ErrGameFull),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrGameFinished),
		errors.Is(err, ErrGameStarted),
		errors.Is(err, ErrConcurrentAction):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, ErrNotYourTurn),
		errors.Is(err, ErrGameNotStarted),
		errors.Is(err, ErrTileNotOwned),
		errors.Is(err, ErrInvalidCombination),
		errors.Is(err, ErrInitialMeldTooLow),
		errors.Is(err, ErrBoardInvalid),
		errors.Is(err, ErrEmptyPlacement),
		errors.Is(err, ErrPoolExhausted):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unknown-error"})
	}
}
