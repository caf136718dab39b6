package game

import (
	"sync"
	"sync/atomic"
)

// actionGuard serializes actions per game without blocking: a contending
// caller is rejected outright instead of queued, so two browser sessions of
// the same player can never silently double-submit a move.
type actionGuard struct {
	flags sync.Map // game id -> *atomic.Bool
}

// tryAcquire claims the game's exclusive section. It returns the release
// callback and true on success, or nil and false when someone else holds it.
func (g *actionGuard) tryAcquire(gameID string) (func(), bool) {
	v, _ := g.flags.LoadOrStore(gameID, new(atomic.Bool))
	flag := v.(*atomic.Bool)

	if !flag.CompareAndSwap(false, true) {
		return nil, false
	}
	return func() { flag.Store(false) }, true
}
