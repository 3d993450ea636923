package domain

import "errors"

// Entity validation errors
var (
	ErrEmptyID             = errors.New("id must not be empty")
	ErrEmptyName           = errors.New("name must not be empty")
	ErrInvalidRole         = errors.New("invalid hero role")
	ErrNegativePrice       = errors.New("price must be non-negative")
	ErrIDConflictsWithBase = errors.New("id conflicts with a built-in entity")
)

// Rule validation errors
var (
	ErrEmptyEnemyTags    = errors.New("enemy tags must not be empty")
	ErrEmptyCounterID    = errors.New("counter hero id must not be empty")
	ErrEmptyReason       = errors.New("reason must not be empty")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrEmptyItemIDs      = errors.New("item ids must not be empty")
	ErrEmptyTargetHeroes = errors.New("target hero ids must not be empty")
	ErrInvalidPhase      = errors.New("invalid item phase")
)

// Lookup and store errors
var (
	ErrHeroNotFound    = errors.New("hero not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidLane     = errors.New("invalid lane")
	ErrInvalidTier     = errors.New("invalid tier rank")
)

// Import errors
var (
	ErrInvalidImport = errors.New("invalid structure")
)
