package game

import "context"

// Repository loads and saves game snapshots. Implementations return
// ErrGameNotFound for missing ids and wrap everything unexpected in
// ErrStorage. Loads must hand back an isolated copy: the engine mutates
// what it loads and publishes only committed state back through Save.
type Repository interface {
	Load(ctx context.Context, gameID string) (*Game, error)
	Save(ctx context.Context, g *Game) error
}
