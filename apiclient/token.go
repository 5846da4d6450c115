package apiclient

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource supplies the bearer token attached to outbound requests. An
// empty token means "no valid credentials"; the request is then sent without
// an Authorization header and the backend decides whether that is acceptable.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) Token() string {
	return string(t)
}

// SessionTokens holds the current session's bearer token. It is safe for
// concurrent use. JWT tokens are inspected (without signature verification)
// so that an expired token is dropped client-side instead of producing a
// guaranteed 401 round-trip; opaque tokens are attached as-is.
type SessionTokens struct {
	mu    sync.RWMutex
	token string

	// now is swapped in tests.
	now func() time.Time
}

// NewSessionTokens creates an empty session token holder.
func NewSessionTokens() *SessionTokens {
	return &SessionTokens{now: time.Now}
}

// Set replaces the current token.
func (s *SessionTokens) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the current token. The client calls this through the
// unauthenticated hook when the backend responds 401.
func (s *SessionTokens) Clear() {
	s.Set("")
}

// Token implements TokenSource.
func (s *SessionTokens) Token() string {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return ""
	}
	if expired(token, s.now()) {
		return ""
	}
	return token
}

// expired reports whether token is a JWT with an exp claim in the past.
// Tokens that do not parse as JWTs, or carry no exp claim, are treated as
// opaque and never expire client-side.
func expired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
