// internal/store/memory.go
//
// In-memory holder for the current round of each player.
// The engine returns snapshots; this keeps the latest one between requests.
//
// Characteristics:
//   - One current round per owner; starting a round replaces the previous one.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the caller's transition under the write lock, so guesses on
//     one round apply one after another.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned when the owner has no round with the given ID.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for active rounds.
type Store interface {
	// Save sets s as the owner's current round.
	Save(ctx context.Context, owner string, s game.State) error

	// Get retrieves the owner's round by ID.
	Get(ctx context.Context, owner, id string) (game.State, error)

	// Update replaces the owner's round id with fn's result. Nothing is
	// stored when fn fails; its error is returned unchanged.
	Update(ctx context.Context, owner, id string, fn func(game.State) (game.State, error)) (game.State, error)
}

// memory is a map-based Store keyed by owner.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]game.State
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.State)}
}

func (m *memory) Save(_ context.Context, owner string, s game.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[owner] = s
	return nil
}

// Get fails with ErrNotFound when id is not the owner's current round, so a
// stale id from a replaced round cannot be played.
func (m *memory) Get(_ context.Context, owner, id string) (game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.rounds[owner]; ok && s.ID == id {
		return s, nil
	}
	return game.State{}, ErrNotFound
}

func (m *memory) Update(_ context.Context, owner, id string, fn func(game.State) (game.State, error)) (game.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rounds[owner]
	if !ok || cur.ID != id {
		return game.State{}, ErrNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	m.rounds[owner] = next
	return next, nil
}
