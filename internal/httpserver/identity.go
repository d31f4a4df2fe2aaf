// internal/httpserver/identity.go
//
// Opaque player identity for the daily puzzles.
// The engine only needs a stable, opaque player string; there are no
// accounts here. Browser clients get one of:
//   - a signed HS256 JWT carrying the player id (bearer or cookie), minted
//     on demand via POST /player/token;
//   - failing that, a long-lived anonymous cookie.
// API callers may instead pass playerId explicitly; that always wins.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const anonCookieName = "spielbar_player"

// playerID resolves the caller's player identity, by precedence:
// explicit value, valid JWT, anonymous cookie (set if missing).
// Returns "" only if explicit is empty and cookies cannot be written.
func (s *Server) playerID(w http.ResponseWriter, r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if pid := playerFromToken(r); pid != "" {
		return pid
	}
	return ensureAnonID(w, r)
}

// playerFromToken extracts a player id from a valid bearer/cookie JWT.
func playerFromToken(r *http.Request) string {
	tok := bearerOrCookie(r)
	if tok == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
	})
	if err != nil || !t.Valid {
		return ""
	}
	pid, _ := claims["pid"].(string)
	return pid
}

// bearerOrCookie extracts a token from Authorization header or the token cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); len(a) > 7 && (a[:7] == "Bearer " || a[:7] == "bearer ") {
		return a[7:]
	}
	if c, err := r.Cookie(getEnv("COOKIE_NAME", "spielbar_token")); err == nil {
		return c.Value
	}
	return ""
}

// handleMintToken issues a signed token for the caller's player id, creating
// a fresh id when the caller has none yet. The token pins the identity
// across devices for clients that prefer headers over cookies.
func (s *Server) handleMintToken(w http.ResponseWriter, r *http.Request) {
	pid := playerFromToken(r)
	if pid == "" {
		pid = ensureAnonID(w, r)
	}
	exp := time.Now().Add(365 * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"pid": pid,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(getEnv("JWT_SECRET", "dev_secret_change_me")))
	if err != nil {
		log.Error().Err(err).Msg("sign player token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     getEnv("COOKIE_NAME", "spielbar_token"),
		Value:    ss,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	_ = json.NewEncoder(w).Encode(map[string]string{"playerId": pid, "token": ss})
}

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to give guests a stable identifier for their daily attempts.
func ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
	return id
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
