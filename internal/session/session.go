// session/session.go - Admin session tokens with a defined lifetime
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevoked      = errors.New("session revoked")
)

// Manager issues and validates admin session tokens. Tokens are signed JWTs
// with a TTL; Revoke remembers the token ID until it would have expired, so
// logout ends the session server-side rather than only in the browser.
type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoked *cache.Cache
}

// New creates a Manager. The revocation list evicts entries on its own once
// the underlying token has expired anyway.
func New(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: cache.New(ttl, 10*time.Minute),
	}
}

type claims struct {
	jwt.RegisteredClaims
}

// Issue mints a new admin session token
func (m *Manager) Issue() (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature, expiry and revocation list
func (m *Manager) Validate(tokenString string) error {
	c, err := m.parse(tokenString)
	if err != nil {
		return err
	}
	if _, found := m.revoked.Get(c.ID); found {
		return ErrRevoked
	}
	return nil
}

// Revoke marks the token as dead for the remainder of its lifetime
func (m *Manager) Revoke(tokenString string) {
	c, err := m.parse(tokenString)
	if err != nil {
		return
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining <= 0 {
		return
	}
	m.revoked.Set(c.ID, true, remaining)
}

func (m *Manager) parse(tokenString string) (*claims, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return c, nil
}
