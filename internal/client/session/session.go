// Package session owns the authenticated/unauthenticated state of the
// back-office client. It is the only component allowed to change that fact;
// everything else reads the current token through it.
package session

import (
	"context"
	"time"

	"github.com/allodocta/backoffice/internal/client/repositories/credentials"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the durable-storage key holding the bearer token.
const TokenKey = "token"

// Session holds the current bearer token, mirrored to durable storage.
// Invariant: IsAuthenticated() == (a token is present).
type Session struct {
	repo  credentials.Repository
	token string
}

// Load constructs a Session, deriving the initial state from whether a
// token already exists in durable storage.
func Load(ctx context.Context, repo credentials.Repository) (*Session, error) {
	s := &Session{repo: repo}

	v, err := repo.Get(ctx, TokenKey)
	if err != nil {
		return nil, err
	}
	s.token = string(v)
	return s, nil
}

// Current returns the token and whether one is present.
func (s *Session) Current() (string, bool) {
	return s.token, s.token != ""
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Set replaces the session wholesale with the given token and writes it
// through to durable storage.
func (s *Session) Set(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Clear wipes the session. The in-memory token is dropped even when the
// storage delete fails, so a caller on the logout path always ends up
// anonymous.
func (s *Session) Clear(ctx context.Context) error {
	s.token = ""
	return s.repo.Delete(ctx, TokenKey)
}

// ExpiresWithin reports whether the current token is a JWT whose exp claim
// falls within d from now. The claim is read without signature verification;
// this is advisory only and never gates navigation. Absent, non-JWT or
// exp-less tokens report false.
func (s *Session) ExpiresWithin(d time.Duration) bool {
	token, ok := s.Current()
	if !ok {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < d
}
