// internal/game/types.go
//
// Core type definitions for the Hangman round engine.
// Defines:
//   - Status: round lifecycle (in_progress → won | lost).
//   - Difficulty: named presets for the wrong-attempt budget.
//   - Outcome: per-guess result for presentation feedback.
//   - State: immutable snapshot of one round.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Placeholder marks a hidden letter in the reveal mask.
const Placeholder = '_'

var (
	// ErrInvalidInput covers a bad letter or a non-positive attempt budget.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateGuess is returned for a letter already guessed this round.
	ErrDuplicateGuess = errors.New("letter already guessed")
	// ErrRoundOver is returned for guesses after the round ended.
	ErrRoundOver = errors.New("round finished")
)

// Status is the round lifecycle state. Won and Lost are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Difficulty selects the wrong-attempt budget of a round.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// MaxAttempts returns the wrong-guess budget. Easy and normal are the same.
func (d Difficulty) MaxAttempts() int {
	if d == Hard {
		return 3
	}
	return 5
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
// The empty string selects Normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Normal, nil
	case Easy, Normal, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
	}
}

// Outcome describes what a guess did.
type Outcome int

const (
	OutcomeRejected Outcome = iota // state unchanged
	OutcomeHit                     // letter revealed at least one position
	OutcomeMiss                    // letter not in word, attempt consumed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "rejected"
	}
}

// State is a snapshot of a round. Values returned by the Engine are never
// modified afterwards; transitions produce a new State.
type State struct {
	ID            string        // Round identifier.
	Word          string        // Target word, uppercase. Fixed for the round.
	Difficulty    Difficulty    // Empty when started from a raw attempt count.
	Revealed      []rune        // One entry per letter: the letter or Placeholder.
	Guessed       map[rune]bool // Letters submitted this round.
	Order         []rune        // Guessed letters in submission order.
	WrongAttempts int           // Unique wrong letters so far.
	MaxAttempts   int           // Wrong-guess budget.
	Score         int           // PointsPerHit per correct letter.
	Status        Status        // in_progress | won | lost.
	Stars         int           // 1..3 once terminal, 0 before.
	Last          Outcome       // Result of the most recent accepted guess.
}

// RevealedString renders the mask with spaces between letters ("_ A _").
func (s State) RevealedString() string {
	parts := lo.Map(s.Revealed, func(r rune, _ int) string { return string(r) })
	return strings.Join(parts, " ")
}

// Remaining returns the wrong guesses still allowed.
func (s State) Remaining() int { return s.MaxAttempts - s.WrongAttempts }

// HasGuessed reports whether letter was already submitted.
func (s State) HasGuessed(letter rune) bool { return s.Guessed[letter] }

// GuessedLetters returns submitted letters in submission order.
func (s State) GuessedLetters() []string {
	return lo.Map(s.Order, func(r rune, _ int) string { return string(r) })
}

// clone deep-copies the mutable parts so a transition never aliases s.
func (s State) clone() State {
	c := s
	c.Revealed = append([]rune(nil), s.Revealed...)
	c.Order = append([]rune(nil), s.Order...)
	c.Guessed = make(map[rune]bool, len(s.Guessed)+1)
	for k, v := range s.Guessed {
		c.Guessed[k] = v
	}
	return c
}
