// Package session reads the persisted auth session (user payload + bearer
// token). Both entries tolerate a legacy alias key; corrupt state self-heals
// by clearing everything and resolving to the visitor role. Nothing here
// validates the token against the backend — a stale token simply fails
// upstream as a 401.
package session

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	KeyToken      = "token"
	KeyTokenAlias = "authToken"
	KeyUser       = "user"
	KeyUserAlias  = "currentUser"
)

var allKeys = []string{KeyToken, KeyTokenAlias, KeyUser, KeyUserAlias}

type Role string

const (
	RoleVisitor Role = "VISITANTE"
	RoleClient  Role = "CLIENTE"
	RoleSeller  Role = "VENDEDOR"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	ID   json.Number `json:"id"`
	Nome string      `json:"nome"`
	Tipo string      `json:"tipo"`
}

type Session struct {
	User  User
	Token string

	// TokenExpiresAt is filled from the token's unverified exp claim when the
	// token happens to be a JWT. Informational only; requests are never gated
	// on it (signature verification belongs to the backend).
	TokenExpiresAt *time.Time
}

func (s *Session) Role() Role {
	switch strings.ToUpper(strings.TrimSpace(s.User.Tipo)) {
	case string(RoleSeller):
		return RoleSeller
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleClient):
		return RoleClient
	default:
		return RoleClient // original treated any logged-in unknown tipo as a customer
	}
}

// FirstName returns the greeting name, "usuário" when the payload has none.
func (s *Session) FirstName() string {
	name := strings.TrimSpace(s.User.Nome)
	if name == "" {
		return "usuário"
	}
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

type Reader struct {
	store *Store
	log   *slog.Logger
}

func NewReader(store *Store, log *slog.Logger) *Reader {
	return &Reader{store: store, log: log}
}

// Current returns the persisted session, or nil when either half is absent.
// A user payload that no longer parses clears all four keys before resolving
// to nil, so one bad write does not wedge the chrome forever.
func (r *Reader) Current() *Session {
	rawUser := r.store.Get(KeyUser, KeyUserAlias)
	token := r.store.Get(KeyToken, KeyTokenAlias)
	if rawUser == "" || token == "" {
		return nil
	}

	var u User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		r.log.Warn("corrupt session payload, clearing auth state", "err", err)
		_ = r.store.Remove(allKeys...)
		return nil
	}

	sess := &Session{User: u, Token: token}
	if exp := tokenExpiry(token); exp != nil {
		sess.TokenExpiresAt = exp
		if exp.Before(time.Now()) {
			r.log.Warn("bearer token past its exp claim", "expired_at", exp)
		}
	}
	return sess
}

// Logout clears every persisted auth key, alias spellings included.
func (r *Reader) Logout() {
	_ = r.store.Remove(allKeys...)
}

// tokenExpiry peeks at the exp claim without verifying the signature.
// Opaque (non-JWT) tokens return nil.
func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	switch v := claims["exp"].(type) {
	case float64:
		t := time.Unix(int64(v), 0)
		return &t
	case json.Number:
		if n, err := v.Int64(); err == nil {
			t := time.Unix(n, 0)
			return &t
		}
	}
	return nil
}
