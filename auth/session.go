// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-vote/apperr"
)

// DefaultTokenTTL is how long an issued session token stays valid
const DefaultTokenTTL = 2 * time.Hour

// SessionAuthority issues and verifies stateless HS256 session tokens.
// Verification never touches the database.
type SessionAuthority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*SessionAuthority)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *SessionAuthority) { s.now = now }
}

// WithTTL overrides DefaultTokenTTL
func WithTTL(ttl time.Duration) Option {
	return func(s *SessionAuthority) { s.ttl = ttl }
}

func NewSessionAuthority(signingSecret string, opts ...Option) (*SessionAuthority, error) {
	if signingSecret == "" {
		return nil, errors.New("signing secret required")
	}

	s := &SessionAuthority{
		secret: []byte(signingSecret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", s.ttl)
	}

	return s, nil
}

// Issue signs a token for userID valid from now until now+ttl
func (s *SessionAuthority) Issue(userID int64) (string, error) {
	const op = "auth.Issue"

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(s.ttl))),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	return signed, nil
}

// Verify checks the signature first, then expiry, and returns the user id.
func (s *SessionAuthority) Verify(raw string) (int64, error) {
	const op = "auth.Verify"

	if raw == "" {
		return 0, fmt.Errorf("%s: %w", op, apperr.ErrMissingToken)
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%s: %w", op, apperr.ErrExpiredToken)
		}
		return 0, fmt.Errorf("%s: %w", op, apperr.ErrInvalidToken)
	}
	if !token.Valid {
		return 0, fmt.Errorf("%s: %w", op, apperr.ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%s: %w", op, apperr.ErrInvalidToken)
	}

	return userID, nil
}

// ceilSecond rounds t up to a whole second. NumericDate truncates, so an
// unrounded exp would end the token up to a second before now+ttl.
func ceilSecond(t time.Time) time.Time {
	if r := t.Truncate(time.Second); !r.Equal(t) {
		return r.Add(time.Second)
	}
	return t
}
