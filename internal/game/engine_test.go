package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/words"
)

type fixedWord string

func (f fixedWord) PickRandom() words.Word { return words.Word{Text: string(f)} }

func guessAll(t *testing.T, e *Engine, s State, letters ...string) State {
	t.Helper()
	for _, l := range letters {
		var err error
		s, _, err = e.SubmitGuess(s, l)
		if err != nil {
			t.Fatalf("guess %q: %v", l, err)
		}
	}
	return s
}

func TestStartRound(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))

	s, err := e.StartRound(3)
	is.NoErr(err)
	is.Equal(s.Word, "CAPTAIN")
	is.Equal(s.RevealedString(), "_ _ _ _ _ _ _")
	is.Equal(len(s.Guessed), 0)
	is.Equal(s.WrongAttempts, 0)
	is.Equal(s.MaxAttempts, 3)
	is.Equal(s.Score, 0)
	is.Equal(s.Status, StatusInProgress)
	is.Equal(s.Stars, 0)
	is.True(s.ID != "")
}

func TestStartRoundRejectsBadBudget(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	for _, n := range []int{0, -1} {
		_, err := e.StartRound(n)
		is.True(errors.Is(err, ErrInvalidInput))
	}
}

func TestStartDifficulty(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	for d, want := range map[Difficulty]int{Easy: 5, Normal: 5, Hard: 3} {
		s, err := e.StartDifficulty(d)
		is.NoErr(err)
		is.Equal(s.MaxAttempts, want)
		is.Equal(s.Difficulty, d)
	}
}

func TestParseDifficulty(t *testing.T) {
	is := is.New(t)
	d, err := ParseDifficulty(" HARD ")
	is.NoErr(err)
	is.Equal(d, Hard)

	d, err = ParseDifficulty("")
	is.NoErr(err)
	is.Equal(d, Normal)

	_, err = ParseDifficulty("nightmare")
	is.True(errors.Is(err, ErrInvalidInput))
}

func TestCaptainWin(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	s, _ := e.StartRound(3)

	s = guessAll(t, e, s, "C", "A", "P", "T", "I", "N")
	is.Equal(s.Status, StatusWon)
	is.Equal(s.Score, 60)
	is.Equal(s.WrongAttempts, 0)
	is.Equal(s.Stars, 3)
	is.Equal(string(s.Revealed), "CAPTAIN")
	is.Equal(s.GuessedLetters(), []string{"C", "A", "P", "T", "I", "N"})
}

func TestCaptainLoss(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	s, _ := e.StartRound(3)

	s, out, err := e.SubmitGuess(s, "Z")
	is.NoErr(err)
	is.Equal(out, OutcomeMiss)
	s = guessAll(t, e, s, "Q")
	is.Equal(s.Status, StatusInProgress)
	s = guessAll(t, e, s, "X")

	is.Equal(s.Status, StatusLost)
	is.Equal(s.Score, 0)
	is.Equal(s.WrongAttempts, 3)
	is.Equal(s.Stars, 1)
}

func TestEveryCatalogWordWinsWithoutMistakes(t *testing.T) {
	is := is.New(t)
	entries, err := assets.Catalog()
	is.NoErr(err)

	for _, entry := range entries {
		e := NewEngine(fixedWord(entry.Word))
		s, err := e.StartDifficulty(Hard)
		is.NoErr(err)
		for _, c := range entry.Word {
			if s.HasGuessed(c) {
				continue
			}
			s, _, err = e.SubmitGuess(s, string(c))
			is.NoErr(err)
		}
		is.Equal(s.Status, StatusWon)
		is.Equal(s.WrongAttempts, 0)
		is.Equal(string(s.Revealed), entry.Word)
	}
}

func TestWrongLettersExhaustBudget(t *testing.T) {
	is := is.New(t)
	for _, max := range []int{1, 3, 5} {
		e := NewEngine(fixedWord("HANGMAN"))
		s, _ := e.StartRound(max)
		wrong := strings.Split("BCDEFIJKLOPQRSTUVWXYZ", "")[:max]
		s = guessAll(t, e, s, wrong...)
		is.Equal(s.Status, StatusLost)
		is.Equal(s.WrongAttempts, max)
	}
}

func TestDuplicateGuessIsNoop(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	s, _ := e.StartRound(5)
	s = guessAll(t, e, s, "A", "Z")

	again, out, err := e.SubmitGuess(s, "A")
	is.True(errors.Is(err, ErrDuplicateGuess))
	is.Equal(out, OutcomeRejected)
	is.Equal(again.Score, s.Score)
	is.Equal(again.WrongAttempts, s.WrongAttempts)
	is.Equal(again.RevealedString(), s.RevealedString())

	again, _, err = e.SubmitGuess(s, "Z")
	is.True(errors.Is(err, ErrDuplicateGuess))
	is.Equal(again.WrongAttempts, 1)
}

func TestInvalidLetter(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	s, _ := e.StartRound(5)
	for _, bad := range []string{"", "a", "AB", "1", "É", " "} {
		next, out, err := e.SubmitGuess(s, bad)
		is.True(errors.Is(err, ErrInvalidInput))
		is.Equal(out, OutcomeRejected)
		is.Equal(len(next.Guessed), 0)
	}
}

func TestWinTakesPrecedenceOnLastAttempt(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("AB"))
	s, _ := e.StartRound(2)
	s = guessAll(t, e, s, "A", "Z")
	is.Equal(s.Remaining(), 1)

	// A correct guess never spends an attempt, so put the counter at the
	// budget by hand before the final letter.
	s.WrongAttempts = s.MaxAttempts
	s, out, err := e.SubmitGuess(s, "B")
	is.NoErr(err)
	is.Equal(out, OutcomeHit)
	is.Equal(s.Status, StatusWon)
}

func TestTerminalStateRejectsGuesses(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("AB"))
	s, _ := e.StartRound(1)
	s = guessAll(t, e, s, "Z")
	is.Equal(s.Status, StatusLost)

	next, out, err := e.SubmitGuess(s, "A")
	is.True(errors.Is(err, ErrRoundOver))
	is.Equal(out, OutcomeRejected)
	is.Equal(next.Status, StatusLost)
	is.Equal(next.RevealedString(), "_ _")
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("CAPTAIN"))
	start, _ := e.StartRound(5)
	after := guessAll(t, e, start, "A")

	is.Equal(start.RevealedString(), "_ _ _ _ _ _ _")
	is.Equal(len(start.Guessed), 0)
	is.Equal(len(start.Order), 0)
	is.Equal(after.RevealedString(), "_ A _ _ A _ _")
	is.Equal(after.Score, 10)
}

func TestRevealedNeverRehidden(t *testing.T) {
	is := is.New(t)
	e := NewEngine(fixedWord("MYSTERY"))
	s, _ := e.StartRound(5)
	prev := s
	for _, l := range []string{"Y", "Q", "M", "Z", "S"} {
		s = guessAll(t, e, s, l)
		for i, r := range prev.Revealed {
			if r != Placeholder {
				is.Equal(s.Revealed[i], r)
			}
		}
		is.True(s.Score >= prev.Score)
		prev = s
	}
}
