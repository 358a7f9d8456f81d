// internal/game/engine.go
//
// Round engine for a single Hangman round.
// Responsibilities:
//   - Start rounds with a word from the bank and a wrong-attempt budget.
//   - Validate and apply letter guesses (single A–Z, not repeated).
//   - Track state transitions: in_progress → won/lost, win checked first.
//   - Rate the round in stars when it ends.
//
// The engine holds no round state; callers keep the latest State and pass
// it back on each guess.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/robalobadob/hangman/internal/score"
	"github.com/robalobadob/hangman/internal/words"
)

// WordPicker is the part of words.Bank the engine needs.
type WordPicker interface {
	PickRandom() words.Word
}

// Engine starts rounds and applies guesses.
type Engine struct {
	bank  WordPicker
	newID func() string
}

// NewEngine builds an Engine drawing words from bank.
func NewEngine(bank WordPicker) *Engine {
	return &Engine{bank: bank, newID: randomID}
}

// StartRound begins a round with maxAttempts wrong guesses allowed.
func (e *Engine) StartRound(maxAttempts int) (State, error) {
	if maxAttempts <= 0 {
		return State{}, fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidInput, maxAttempts)
	}
	w := e.bank.PickRandom()
	revealed := make([]rune, len(w.Text))
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return State{
		ID:          e.newID(),
		Word:        w.Text,
		Revealed:    revealed,
		Guessed:     map[rune]bool{},
		MaxAttempts: maxAttempts,
		Status:      StatusInProgress,
	}, nil
}

// StartDifficulty begins a round with the budget of d.
func (e *Engine) StartDifficulty(d Difficulty) (State, error) {
	s, err := e.StartRound(d.MaxAttempts())
	if err != nil {
		return s, err
	}
	s.Difficulty = d
	return s, nil
}

// SubmitGuess applies letter to s and returns the next snapshot.
//
// Rejections return s unchanged with OutcomeRejected and one of
// ErrInvalidInput, ErrRoundOver or ErrDuplicateGuess.
func (e *Engine) SubmitGuess(s State, letter string) (State, Outcome, error) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return s, OutcomeRejected, fmt.Errorf("%w: letter %q", ErrInvalidInput, letter)
	}
	if s.Status != StatusInProgress {
		return s, OutcomeRejected, ErrRoundOver
	}
	l := rune(letter[0])
	if s.HasGuessed(l) {
		return s, OutcomeRejected, ErrDuplicateGuess
	}

	next := s.clone()
	next.Guessed[l] = true
	next.Order = append(next.Order, l)

	hit := false
	for i, c := range next.Word {
		if c == l {
			next.Revealed[i] = l
			hit = true
		}
	}
	if hit {
		next.Score += score.PointsPerHit
		next.Last = OutcomeHit
	} else {
		next.WrongAttempts++
		next.Last = OutcomeMiss
	}

	switch {
	case !slices.Contains(next.Revealed, Placeholder):
		next.Status = StatusWon
	case next.WrongAttempts >= next.MaxAttempts:
		next.Status = StatusLost
	}
	if next.Status.Terminal() {
		next.Stars = score.StarsFor(next.WrongAttempts, next.MaxAttempts)
	}
	return next, next.Last, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
