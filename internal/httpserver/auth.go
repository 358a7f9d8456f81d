// internal/httpserver/auth.go
//
// Name-only login and session tokens.
//
//   - POST /auth/login stores the player name in the profile and issues an
//     HS256 JWT carrying the player id, as a cookie and in the body.
//   - A request that already carries a valid token keeps its player id on
//     re-login, so the high score survives a name change.
//   - requireAuth accepts the token from "Authorization: Bearer" or the cookie.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/hangman/internal/profile"
)

// player is placed into request context by requireAuth.
type player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ctxPlayerKey is the context key type for storing player.
type ctxPlayerKey struct{}

func playerFrom(ctx context.Context) *player {
	p, _ := ctx.Value(ctxPlayerKey{}).(*player)
	return p
}

type loginReq struct {
	Name string `json:"name"`
}

type loginRes struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HighScore int    `json:"highScore"`
	Token     string `json:"token"`
}

// handleLogin persists the name and issues a session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := decode(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json")
		return
	}

	id := ""
	if claims, err := s.parseToken(bearerOrCookie(r, s.cfg.CookieName)); err == nil {
		id = claims.ID
	}
	if id == "" {
		id = genID()
	}

	p, err := profile.Login(r.Context(), s.profiles.For(id), body.Name)
	if errors.Is(err, profile.ErrInvalidName) {
		writeErr(w, http.StatusBadRequest, "invalid_name")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("player", id).Msg("login")
		writeErr(w, http.StatusInternalServerError, "server_error")
		return
	}

	tok, exp, err := s.signToken(id, p.Name)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setAuthCookie(w, tok, exp)
	hlog.FromRequest(r).Info().Str("player", id).Msg("login")
	writeJSON(w, http.StatusOK, loginRes{ID: id, Name: p.Name, HighScore: p.HighScore, Token: tok})
}

// handleLogout clears the auth cookie. The stored profile is kept.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleMe returns the stored profile of the current player.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	me := playerFrom(r.Context())
	p, err := profile.Load(r.Context(), s.profiles.For(me.ID))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load profile")
		writeErr(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": me.ID, "name": p.Name, "highScore": p.HighScore})
}

// ---------------------------- auth middleware ------------------------------

// requireAuth enforces a valid token for a player with a stored name.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r, s.cfg.CookieName)
		if tok == "" {
			writeErr(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		claims, err := s.parseToken(tok)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		// The profile must still exist.
		p, err := profile.Load(r.Context(), s.profiles.For(claims.ID))
		if err != nil || !p.LoggedIn() {
			writeErr(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxPlayerKey{}, &player{ID: claims.ID, Name: p.Name})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ------------------------------ JWT & cookies ------------------------------

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// signToken creates an HS256 JWT with the player id as subject.
func (s *Server) signToken(id, name string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.TokenTTL())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseToken validates tok and returns its claims.
func (s *Server) parseToken(tok string) (*sessionClaims, error) {
	if tok == "" {
		return nil, errors.New("no token")
	}
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.ID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *Server) cookie(value string) *http.Cookie {
	secure := s.cfg.Production()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// setAuthCookie writes the session cookie.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	c := s.cookie(token)
	c.Expires = exp
	http.SetCookie(w, c)
}

// clearAuthCookie deletes the session cookie.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	c := s.cookie("")
	c.MaxAge = -1
	http.SetCookie(w, c)
}

// bearerOrCookie extracts a bearer token from Authorization header or the cookie.
func bearerOrCookie(r *http.Request, cookieName string) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
