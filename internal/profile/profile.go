// internal/profile/profile.go
//
// Player profile persisted across rounds: the login name and the high score.
//
// The profile lives in a string-keyed store (KV) injected by the caller, so
// the same code runs against memory, SQLite, or anything else that can
// get and set strings. Two keys are used:
//   - "playerName": the name entered at login.
//   - "highscore":  best round score, decimal text.
//
// RecordWin is the only writer of the high score and is called only after a
// round is won.

package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/hangman/internal/score"
)

const (
	KeyPlayerName = "playerName"
	KeyHighScore  = "highscore"
)

// ErrInvalidName is returned by Login for a blank name.
var ErrInvalidName = errors.New("please enter a valid username")

// KV is a string key-value store for one player.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Profile is the cross-round state of a player.
type Profile struct {
	Name      string `json:"name"`
	HighScore int    `json:"highScore"`
}

// LoggedIn reports whether a name has been stored.
func (p Profile) LoggedIn() bool { return p.Name != "" }

// Load reads the profile. Missing or unparseable high scores read as 0.
func Load(ctx context.Context, kv KV) (Profile, error) {
	var p Profile
	name, _, err := kv.Get(ctx, KeyPlayerName)
	if err != nil {
		return p, fmt.Errorf("get %s: %w", KeyPlayerName, err)
	}
	p.Name = name

	raw, ok, err := kv.Get(ctx, KeyHighScore)
	if err != nil {
		return p, fmt.Errorf("get %s: %w", KeyHighScore, err)
	}
	if ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			p.HighScore = n
		}
	}
	return p, nil
}

// Login stores name (trimmed) and returns the resulting profile.
func Login(ctx context.Context, kv KV, name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, ErrInvalidName
	}
	if err := kv.Set(ctx, KeyPlayerName, name); err != nil {
		return Profile{}, fmt.Errorf("set %s: %w", KeyPlayerName, err)
	}
	return Load(ctx, kv)
}

// RecordWin folds a won round's score into the stored high score. The store
// is written only when the high score rises.
func RecordWin(ctx context.Context, kv KV, roundScore int) (Profile, error) {
	p, err := Load(ctx, kv)
	if err != nil {
		return p, err
	}
	best := score.Reconcile(roundScore, p.HighScore)
	if best == p.HighScore {
		return p, nil
	}
	if err := kv.Set(ctx, KeyHighScore, strconv.Itoa(best)); err != nil {
		return p, fmt.Errorf("set %s: %w", KeyHighScore, err)
	}
	p.HighScore = best
	return p, nil
}
