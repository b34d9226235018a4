// internal/session/session.go
//
// Signed session tokens binding a browser to its round.
// Tokens are HS256 JWTs carrying the round id ("rid") plus iat/exp.
// The HMAC key is derived from the configured secret with HKDF-SHA256 so the raw
// secret is never used directly as key material.

package session

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// ErrInvalidToken covers malformed, forged and expired tokens.
var ErrInvalidToken = errors.New("session: invalid token")

const hkdfInfo = "wdle session v1"

// Claims are the JWT claims of a session token.
type Claims struct {
	RoundID string `json:"rid"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewManager derives the signing key from secret. ttl <= 0 defaults to 14 days.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session: empty secret")
	}
	if ttl <= 0 {
		ttl = 14 * 24 * time.Hour
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("session: derive key: %w", err)
	}
	return &Manager{key: key, ttl: ttl, now: time.Now}, nil
}

// Sign issues a token for roundID and returns it with its expiry.
func (m *Manager) Sign(roundID string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RoundID: roundID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session: sign: %w", err)
	}
	return ss, exp, nil
}

// Verify checks a token and returns the round id it is bound to.
func (m *Manager) Verify(token string) (string, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || !t.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.RoundID == "" {
		return "", fmt.Errorf("%w: missing round id", ErrInvalidToken)
	}
	return claims.RoundID, nil
}
