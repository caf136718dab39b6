package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	t.Run("first player waits", func(t *testing.T) {
		g := NewGame(4)

		alice, err := g.Join("alice")
		require.NoError(t, err)

		assert.Equal(t, StatusWaiting, g.Status)
		assert.Equal(t, PlayerWaiting, alice.Status)
		assert.Len(t, alice.Hand, 14)
		assert.Len(t, g.Pool, DeckSize-14)
	})

	t.Run("second player starts the game", func(t *testing.T) {
		g := NewGame(4)
		g.Join("alice")

		bob, err := g.Join("bob")
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, g.Status)
		assert.Equal(t, PlayerPlaying, bob.Status)
		for _, p := range g.Players {
			assert.Equal(t, PlayerPlaying, p.Status)
			assert.Len(t, p.Hand, 14)
		}
		assert.Equal(t, "alice", g.CurrentPlayer().Name)
	})

	t.Run("duplicate name while waiting", func(t *testing.T) {
		g := NewGame(4)
		g.Join("alice")

		_, err := g.Join("alice")
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("re-join in progress resolves the same player", func(t *testing.T) {
		g := NewGame(4)
		alice, _ := g.Join("alice")
		g.Join("bob")

		again, err := g.Join("alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, again.ID)
		assert.Len(t, g.Players, 2, "re-join adds no player")
		assert.Equal(t, 0, g.Turn, "re-join does not touch turn state")
	})

	t.Run("new player cannot join in progress", func(t *testing.T) {
		g := NewGame(4)
		g.Join("alice")
		g.Join("bob")

		_, err := g.Join("carol")
		assert.ErrorIs(t, err, ErrGameStarted)
	})

	t.Run("game full", func(t *testing.T) {
		g := NewGame(2)
		g.Join("alice")
		g.Join("bob")
		g.Status = StatusWaiting // force, to hit the full check in isolation

		_, err := g.Join("carol")
		assert.ErrorIs(t, err, ErrGameFull)
	})

	t.Run("join finished game", func(t *testing.T) {
		g := NewGame(4)
		g.Join("alice")
		g.Join("bob")
		g.Status = StatusFinished

		_, err := g.Join("alice")
		assert.ErrorIs(t, err, ErrGameFinished)
	})

	t.Run("max players clamped", func(t *testing.T) {
		assert.Equal(t, MinPlayers, NewGame(1).MaxPlayers)
		assert.Equal(t, MaxPlayers, NewGame(9).MaxPlayers)
	})
}

// checkDeckInvariant asserts that hands, board and pool together hold the
// whole deck exactly once.
func checkDeckInvariant(t *testing.T, g *Game) {
	t.Helper()

	seen := make(map[string]bool, DeckSize)
	add := func(tiles []Tile) {
		for _, tl := range tiles {
			require.False(t, seen[tl.ID], "tile %s appears twice", tl.ID)
			seen[tl.ID] = true
		}
	}

	for _, p := range g.Players {
		add(p.Hand)
	}
	for _, c := range g.Board {
		add(c.Tiles)
	}
	add(g.Pool)

	require.Len(t, seen, DeckSize)
}
