// Package token issues and verifies the HS256 bearer tokens that carry
// marketplace identity claims.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the fixed token lifetime.
const DefaultTTL = 7 * 24 * time.Hour

// Claims is the identity payload embedded in a signed token. Subject holds
// the account id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Status is the tagged outcome of a verification. Callers outside the auth
// stack treat anything but StatusValid as a single "unauthenticated" outcome.
type Status int

const (
	StatusValid Status = iota
	StatusExpired
	StatusInvalid
)

// Manager signs and verifies tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. A non-positive ttl falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity. Expiry is issued-at plus the
// manager's fixed lifetime.
func (m *Manager) Issue(accountID, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature and expiry. Expired tokens are distinguished from
// malformed or forged ones; no failure is ever surfaced as an error value.
func (m *Manager) Verify(raw string) (*Claims, Status) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, StatusExpired
		}
		return nil, StatusInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, StatusInvalid
	}
	return claims, StatusValid
}
