package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lstasi/rummikub-backend/game"
)

// RedisRepo stores each game as one JSON snapshot under its key. A zero ttl
// keeps games forever; anything else lets Redis evict finished games on its
// own.
type RedisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepo(client *redis.Client, ttl time.Duration) *RedisRepo {
	return &RedisRepo{client: client, ttl: ttl}
}

func (r *RedisRepo) Load(ctx context.Context, gameID string) (*game.Game, error) {
	data, err := r.client.Get(ctx, gameKey(gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, game.ErrGameNotFound
		}
		return nil, fmt.Errorf("%w: %w", game.ErrStorage, err)
	}

	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrStorage, err)
	}
	return &g, nil
}

func (r *RedisRepo) Save(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("%w: %w", game.ErrStorage, err)
	}

	if err := r.client.Set(ctx, gameKey(g.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", game.ErrStorage, err)
	}
	return nil
}

// Ping reports whether Redis is reachable; cmd/server falls back to the
// in-memory repository when it is not.
func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
