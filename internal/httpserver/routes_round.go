// internal/httpserver/routes_round.go
//
// HTTP routes for playing rounds:
//   - POST /round/new        → start a round for the chosen difficulty
//   - POST /round/guess      → submit one letter
//   - GET  /round/{id}       → current view of the round
//   - GET  /round/{id}/hint  → hint text for the round's word
//   - GET  /rounds/mine      → recently finished rounds
//
// The high score is updated only when a guess wins the round. Finished rounds
// are written to history (best effort).

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/history"
	"github.com/robalobadob/hangman/internal/profile"
	"github.com/robalobadob/hangman/internal/store"
)

// mountRounds registers the round routes on r.
func (s *Server) mountRounds(r chi.Router) {
	r.Post("/round/new", s.handleNewRound)
	r.Post("/round/guess", s.handleGuess)
	r.Get("/round/{id}", s.handleGetRound)
	r.Get("/round/{id}/hint", s.handleHint)
	r.Get("/rounds/mine", s.handleMyRounds)
}

// roundView is what the presentation layer renders.
type roundView struct {
	RoundID       string   `json:"roundId"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Revealed      string   `json:"revealed"`
	Guessed       []string `json:"guessed"`
	WrongAttempts int      `json:"wrongAttempts"`
	MaxAttempts   int      `json:"maxAttempts"`
	Remaining     int      `json:"remainingAttempts"`
	Score         int      `json:"score"`
	HighScore     int      `json:"highScore"`
	Status        string   `json:"status"`
	Stars         int      `json:"stars,omitempty"`
	Word          string   `json:"word,omitempty"`
	Message       string   `json:"message,omitempty"`
	Image         string   `json:"image"`
	Duplicate     bool     `json:"duplicate,omitempty"`
}

func newView(st game.State, p profile.Profile, out game.Outcome) roundView {
	v := roundView{
		RoundID:       st.ID,
		Difficulty:    string(st.Difficulty),
		Revealed:      st.RevealedString(),
		Guessed:       st.GuessedLetters(),
		WrongAttempts: st.WrongAttempts,
		MaxAttempts:   st.MaxAttempts,
		Remaining:     st.Remaining(),
		Score:         st.Score,
		HighScore:     p.HighScore,
		Status:        string(st.Status),
		Stars:         st.Stars,
		Image:         fmt.Sprintf("hangman%d.png", st.WrongAttempts),
	}
	switch {
	case st.Status == game.StatusWon:
		v.Message = fmt.Sprintf("Congratulations! You won with %d wrong attempts!", st.WrongAttempts)
	case st.Status == game.StatusLost:
		v.Word = st.Word
		v.Message = fmt.Sprintf("Game Over! The word was %q", st.Word)
	case out == game.OutcomeHit:
		v.Message = "Correct! Keep going!"
	case out == game.OutcomeMiss:
		v.Message = "Wrong guess!"
	}
	return v
}

type newRoundReq struct {
	Difficulty string `json:"difficulty"`
}

// handleNewRound starts a round and makes it the player's current one.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r.Context())
	var req newRoundReq
	if err := decode(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json")
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_difficulty")
		return
	}
	st, err := s.engine.StartDifficulty(d)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_input")
		return
	}
	if err := s.rounds.Save(r.Context(), me.ID, st); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save round")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	p := s.loadProfile(r, s.profiles.For(me.ID))
	hlog.FromRequest(r).Debug().Str("round", st.ID).Str("difficulty", string(d)).Msg("round started")
	writeJSON(w, http.StatusOK, newView(st, p, game.OutcomeRejected))
}

type guessReq struct {
	RoundID string `json:"roundId"`
	Letter  string `json:"letter"`
}

// handleGuess applies one letter to the player's current round. The guess
// and, on a win, the high-score update run inside rounds.Update, so
// concurrent guesses apply in turn and a round is only stored as won once
// its score is recorded.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r.Context())
	logger := hlog.FromRequest(r)
	var req guessReq
	if err := decode(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json")
		return
	}
	kv := s.profiles.For(me.ID)
	letter := strings.ToUpper(strings.TrimSpace(req.Letter))

	var (
		out game.Outcome
		p   profile.Profile
		won bool
	)
	next, err := s.rounds.Update(r.Context(), me.ID, req.RoundID, func(cur game.State) (game.State, error) {
		st, o, err := s.engine.SubmitGuess(cur, letter)
		if err != nil {
			return cur, err
		}
		if st.Status == game.StatusWon {
			if p, err = profile.RecordWin(r.Context(), kv, st.Score); err != nil {
				return cur, fmt.Errorf("record win: %w", err)
			}
			won = true
		}
		out = o
		return st, nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrInvalidInput):
		writeErr(w, http.StatusBadRequest, "invalid_letter")
		return
	case errors.Is(err, game.ErrRoundOver):
		writeErr(w, http.StatusConflict, "round_over")
		return
	case errors.Is(err, game.ErrDuplicateGuess):
		v := newView(next, s.loadProfile(r, kv), next.Last)
		v.Duplicate = true
		writeJSON(w, http.StatusOK, v)
		return
	case err != nil:
		logger.Error().Err(err).Str("round", req.RoundID).Msg("apply guess")
		writeErr(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !won {
		p = s.loadProfile(r, kv)
	}

	if next.Status.Terminal() {
		logger.Info().
			Str("round", next.ID).
			Str("status", string(next.Status)).
			Int("score", next.Score).
			Int("stars", next.Stars).
			Msg("round finished")
		if s.history != nil {
			if err := s.history.Insert(r.Context(), history.FromState(me.ID, next, s.now())); err != nil {
				logger.Warn().Err(err).Str("round", next.ID).Msg("record history")
			}
		}
	}
	writeJSON(w, http.StatusOK, newView(next, p, out))
}

// loadProfile reads the player's profile for a view. A failure is logged and
// the view falls back to the zero profile.
func (s *Server) loadProfile(r *http.Request, kv profile.KV) profile.Profile {
	p, err := profile.Load(r.Context(), kv)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("load profile")
	}
	return p
}

// handleGetRound returns the view of the player's current round.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r.Context())
	st, err := s.rounds.Get(r.Context(), me.ID, chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, newView(st, s.loadProfile(r, s.profiles.For(me.ID)), st.Last))
}

// handleHint returns the catalog hint of the round's word, if any.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r.Context())
	st, err := s.rounds.Get(r.Context(), me.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	hint, ok := s.bank.HintFor(st.Word)
	writeJSON(w, http.StatusOK, map[string]any{"hint": hint, "available": ok})
}

// handleMyRounds lists the player's recently finished rounds.
func (s *Server) handleMyRounds(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r.Context())
	out := []history.Entry{}
	if s.history != nil {
		rows, err := s.history.Recent(r.Context(), me.ID, 20)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("recent rounds")
			writeErr(w, http.StatusInternalServerError, "db_error")
			return
		}
		out = append(out, rows...)
	}
	writeJSON(w, http.StatusOK, out)
}
