package game

import "errors"

// Structural errors
var (
	ErrGameNotFound   = errors.New("game-not-found")
	ErrPlayerNotFound = errors.New("player-not-found")
	ErrGameFull       = errors.New("game-full")
	ErrGameFinished   = errors.New("game-finished")
	ErrGameStarted    = errors.New("game-already-started")
	ErrGameNotStarted = errors.New("game-not-started")
	ErrDuplicateName  = errors.New("duplicate-name")
	ErrPoolExhausted  = errors.New("pool-exhausted")
)

// Turn discipline errors
var (
	ErrNotYourTurn      = errors.New("not-your-turn")
	ErrConcurrentAction = errors.New("concurrent-action-rejected")
)

// Rule violations. ErrInvalidCombination and ErrBoardInvalid wrap the
// specific validator reason.
var (
	ErrTileNotOwned       = errors.New("tile-not-owned")
	ErrInvalidCombination = errors.New("invalid-combination")
	ErrInitialMeldTooLow  = errors.New("initial-meld-too-low")
	ErrBoardInvalid       = errors.New("board-invalid-after-move")
	ErrEmptyPlacement     = errors.New("no-tiles-specified")
)

// Validator reasons, a closed enumeration.
var (
	ErrTooShort       = errors.New("combination-too-short")
	ErrTooLong        = errors.New("combination-too-long")
	ErrMixedNumbers   = errors.New("mixed-numbers")
	ErrDuplicateColor = errors.New("duplicate-color")
	ErrNotSameColor   = errors.New("not-same-color")
	ErrNotConsecutive = errors.New("not-consecutive")
)

// Infrastructure errors, propagated unchanged to the caller.
var (
	ErrStorage = errors.New("storage-error")
)
