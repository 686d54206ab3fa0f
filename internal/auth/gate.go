// Package auth implements the admin session gate: a single configured
// identity, opaque bearer tokens, and a pluggable session store.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionStore holds active session tokens with their expiry.
type SessionStore interface {
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Valid(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

// Gate guards the admin panel. It knows exactly one identity; there is
// no user table, no lockout and no backoff.
type Gate struct {
	username     string
	passwordHash []byte
	ttl          time.Duration
	sessions     SessionStore
}

// NewGate hashes the configured password up front so login never touches
// the plaintext again.
func NewGate(username, password string, ttl time.Duration, sessions SessionStore) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Gate{
		username:     username,
		passwordHash: hash,
		ttl:          ttl,
		sessions:     sessions,
	}, nil
}

// Login checks the credentials and, on success, mints an opaque random
// token registered with the gate's TTL. Both the username comparison and
// the bcrypt check run regardless of which one fails.
func (g *Gate) Login(ctx context.Context, username, password string) (string, error) {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password))
	if !nameOK || passErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	if err := g.sessions.Save(ctx, token, time.Now().Add(g.ttl)); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}
	return token, nil
}

// Verify reports whether the token belongs to an active, unexpired
// session.
func (g *Gate) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return g.sessions.Valid(ctx, token)
}

// Logout removes the session. Unknown or empty tokens are a no-op.
func (g *Gate) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return g.sessions.Revoke(ctx, token)
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
