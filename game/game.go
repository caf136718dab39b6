package game

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	StatusWaiting    GameStatus = "waiting"
	StatusInProgress GameStatus = "in_progress"
	StatusFinished   GameStatus = "finished"
)

type PlayerStatus string

const (
	PlayerWaiting  PlayerStatus = "waiting"
	PlayerPlaying  PlayerStatus = "playing"
	PlayerFinished PlayerStatus = "finished"
)

type Player struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Hand        []Tile       `json:"hand"`
	Status      PlayerStatus `json:"status"`
	InitialMeld bool         `json:"initial_meld"`
}

// Game holds the full state of one match. Join order is turn order. The
// union of all hands, the board and the pool is always exactly the 106
// tile deck.
type Game struct {
	ID         string     `json:"id"`
	Status     GameStatus `json:"status"`
	MaxPlayers int        `json:"max_players"`
	Players    []*Player  `json:"players"`
	Pool       []Tile     `json:"pool"`
	Board      Board      `json:"board"`
	Turn       int        `json:"turn"`
	WinnerID   string     `json:"winner_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

const (
	MinPlayers = 2
	MaxPlayers = 4
)

func NewGame(maxPlayers int) *Game {
	if maxPlayers < MinPlayers {
		maxPlayers = MinPlayers
	}
	if maxPlayers > MaxPlayers {
		maxPlayers = MaxPlayers
	}
	return &Game{
		ID:         uuid.NewString(),
		Status:     StatusWaiting,
		MaxPlayers: maxPlayers,
		Pool:       NewDeck(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Join adds a player to a waiting game, dealing their initial hand. Once a
// game is in progress the same name resolves to the existing player instead
// (multi-screen re-join); a new name can no longer enter.
func (g *Game) Join(name string) (*Player, error) {
	existing := g.playerByName(name)

	switch g.Status {
	case StatusFinished:
		return nil, ErrGameFinished

	case StatusInProgress:
		if existing == nil {
			return nil, ErrGameStarted
		}
		return existing, nil
	}

	if existing != nil {
		return nil, ErrDuplicateName
	}
	if len(g.Players) >= g.MaxPlayers {
		return nil, ErrGameFull
	}

	hand, rest, err := Deal(g.Pool, initialHandSize)
	if err != nil {
		return nil, err
	}

	player := &Player{
		ID:     uuid.NewString(),
		Name:   name,
		Hand:   append([]Tile(nil), hand...),
		Status: PlayerWaiting,
	}
	g.Pool = rest
	g.Players = append(g.Players, player)

	if len(g.Players) >= MinPlayers {
		g.Status = StatusInProgress
		for _, p := range g.Players {
			p.Status = PlayerPlaying
		}
	}

	return player, nil
}

func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 || g.Turn >= len(g.Players) {
		return nil
	}
	return g.Players[g.Turn]
}

func (g *Game) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) playerByName(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (g *Game) advanceTurn() {
	if len(g.Players) > 0 {
		g.Turn = (g.Turn + 1) % len(g.Players)
	}
}

func (g *Game) finish(winner *Player) {
	winner.Status = PlayerFinished
	g.Status = StatusFinished
	g.WinnerID = winner.ID
}
