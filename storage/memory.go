package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lstasi/rummikub-backend/game"
)

// MemoryRepo keeps serialized snapshots in a map. Storing bytes rather than
// the games themselves gives callers the same isolation the Redis repo has:
// a loaded game never aliases stored state.
type MemoryRepo struct {
	mu    sync.RWMutex
	games map[string][]byte
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{games: make(map[string][]byte)}
}

func (r *MemoryRepo) Load(_ context.Context, gameID string) (*game.Game, error) {
	r.mu.RLock()
	data, ok := r.games[gameID]
	r.mu.RUnlock()

	if !ok {
		return nil, game.ErrGameNotFound
	}

	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrStorage, err)
	}
	return &g, nil
}

func (r *MemoryRepo) Save(_ context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("%w: %w", game.ErrStorage, err)
	}

	r.mu.Lock()
	r.games[g.ID] = data
	r.mu.Unlock()
	return nil
}
