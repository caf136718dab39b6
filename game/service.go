package game

import (
	"context"

	"github.com/rs/zerolog"
)

// Service wires the engine to a Repository and serializes the actions of
// each game behind its guard. Rule rejections are expected control flow and
// are never logged as failures; only infrastructure errors are.
type Service struct {
	repo   Repository
	guard  actionGuard
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateGame creates a game and joins the creator as its first player.
func (s *Service) CreateGame(ctx context.Context, maxPlayers int, creatorName string) (GameView, string, error) {
	g := NewGame(maxPlayers)

	creator, err := g.Join(creatorName)
	if err != nil {
		return GameView{}, "", err
	}

	if err := s.repo.Save(ctx, g); err != nil {
		s.logger.Error().Err(err).Str("game_id", g.ID).Msg("saving new game")
		return GameView{}, "", err
	}

	return g.View(creator.ID), creator.ID, nil
}

// Join adds a player to the game, or resolves an existing player for a
// multi-screen re-join. Re-joins do not mutate state and are not saved.
func (s *Service) Join(ctx context.Context, gameID, playerName string) (GameView, string, error) {
	release, ok := s.guard.tryAcquire(gameID)
	if !ok {
		return GameView{}, "", ErrConcurrentAction
	}
	defer release()

	g, err := s.repo.Load(ctx, gameID)
	if err != nil {
		return GameView{}, "", err
	}

	before := len(g.Players)
	player, err := g.Join(playerName)
	if err != nil {
		return GameView{}, "", err
	}

	if len(g.Players) != before {
		if err := s.repo.Save(ctx, g); err != nil {
			s.logger.Error().Err(err).Str("game_id", gameID).Msg("saving join")
			return GameView{}, "", err
		}
	}

	return g.View(player.ID), player.ID, nil
}

// View is read-only and takes no lock: it observes whichever snapshot the
// repository last published.
func (s *Service) View(ctx context.Context, gameID, playerID string) (GameView, error) {
	g, err := s.repo.Load(ctx, gameID)
	if err != nil {
		return GameView{}, err
	}
	return g.View(playerID), nil
}

// Submit runs one action under the game's exclusive section: load, validate,
// mutate, save. A contending call is rejected with ErrConcurrentAction. On
// rejection of the action itself nothing is saved.
func (s *Service) Submit(ctx context.Context, gameID, playerID string, action Action) (GameView, error) {
	release, ok := s.guard.tryAcquire(gameID)
	if !ok {
		return GameView{}, ErrConcurrentAction
	}
	defer release()

	g, err := s.repo.Load(ctx, gameID)
	if err != nil {
		return GameView{}, err
	}

	if err := g.Apply(playerID, action); err != nil {
		return GameView{}, err
	}

	if err := s.repo.Save(ctx, g); err != nil {
		s.logger.Error().Err(err).Str("game_id", gameID).Msg("saving action")
		return GameView{}, err
	}

	return g.View(playerID), nil
}
