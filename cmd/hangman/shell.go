package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/profile"
)

// lineReader is the part of *readline.Instance the shell uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(p string)
}

var errQuit = errors.New("quit")

// shell drives login, difficulty choice and rounds from typed lines.
type shell struct {
	in     lineReader
	out    io.Writer
	engine *game.Engine
	kv     profile.KV
	hints  func(word string) (string, bool)
}

func (sh *shell) say(format string, args ...any) {
	fmt.Fprintf(sh.out, format+"\n", args...)
}

// read returns the next trimmed line. Ctrl-C on an empty line or EOF quits.
func (sh *shell) read(prompt string) (string, error) {
	sh.in.SetPrompt(prompt)
	for {
		line, err := sh.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", errQuit
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

// run plays until the user quits.
func (sh *shell) run(ctx context.Context) error {
	p, err := sh.login(ctx)
	if err != nil {
		return err
	}
	for {
		d, err := sh.chooseDifficulty()
		if err != nil {
			return err
		}
		for again := true; again; {
			if again, err = sh.playRound(ctx, p.Name, d); err != nil {
				return err
			}
		}
	}
}

// login reuses a stored name or asks for one.
func (sh *shell) login(ctx context.Context) (profile.Profile, error) {
	p, err := profile.Load(ctx, sh.kv)
	if err != nil {
		return p, err
	}
	for !p.LoggedIn() {
		name, err := sh.read("name> ")
		if err != nil {
			return p, err
		}
		p, err = profile.Login(ctx, sh.kv, name)
		if errors.Is(err, profile.ErrInvalidName) {
			sh.say("Please enter a valid username!")
			continue
		}
		if err != nil {
			return p, err
		}
	}
	sh.say("Welcome, %s! High score: %d", p.Name, p.HighScore)
	return p, nil
}

func (sh *shell) chooseDifficulty() (game.Difficulty, error) {
	for {
		line, err := sh.read("difficulty [easy/normal/hard]> ")
		if err != nil {
			return "", err
		}
		if line == "quit" {
			return "", errQuit
		}
		d, err := game.ParseDifficulty(line)
		if err != nil {
			sh.say("Pick easy, normal or hard.")
			continue
		}
		sh.say("Difficulty: %s", strings.ToUpper(string(d)))
		return d, nil
	}
}

// playRound plays one round and reports whether to play again at the same
// difficulty.
func (sh *shell) playRound(ctx context.Context, name string, d game.Difficulty) (bool, error) {
	st, err := sh.engine.StartDifficulty(d)
	if err != nil {
		return false, err
	}
	sh.show(ctx, st)

	for !st.Status.Terminal() {
		line, err := sh.read("guess> ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "quit":
			return false, errQuit
		case "hint":
			if h, ok := sh.hints(st.Word); ok {
				sh.say("Hint: %s", h)
			} else {
				sh.say("No hint for this word.")
			}
			continue
		}

		next, out, err := sh.engine.SubmitGuess(st, strings.ToUpper(line))
		switch {
		case errors.Is(err, game.ErrDuplicateGuess):
			sh.say("You already tried %s.", strings.ToUpper(line))
			continue
		case errors.Is(err, game.ErrInvalidInput):
			sh.say("Type a single letter A-Z, 'hint' or 'quit'.")
			continue
		case err != nil:
			return false, err
		}
		st = next
		if out == game.OutcomeHit {
			sh.say("Correct! Keep going!")
		} else {
			sh.say("Wrong guess!")
		}
		if st.Status == game.StatusWon {
			if _, err := profile.RecordWin(ctx, sh.kv, st.Score); err != nil {
				log.Warn().Err(err).Msg("failed to save high score")
			}
		}
		sh.show(ctx, st)
	}

	if st.Status == game.StatusWon {
		sh.say("Congratulations, %s! You won with %d wrong attempts!", name, st.WrongAttempts)
	} else {
		sh.say("Game Over! The word was %q", st.Word)
	}
	sh.say("Stars: %s", strings.Repeat("*", st.Stars))

	for {
		line, err := sh.read("[p]lay again, [m]enu, [q]uit> ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "p", "play":
			return true, nil
		case "m", "menu":
			return false, nil
		case "q", "quit":
			return false, errQuit
		}
	}
}

func (sh *shell) show(ctx context.Context, st game.State) {
	p, err := profile.Load(ctx, sh.kv)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load profile")
	}
	sh.say("%s   attempts left: %d   score: %d   high score: %d",
		st.RevealedString(), st.Remaining(), st.Score, p.HighScore)
}
