// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/quickly-vote/apperr"
)

// DefaultCost is the bcrypt work factor used outside tests
const DefaultCost = 10

// PasswordHasher derives and checks salted one-way password hashes
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

// BcryptHasher implements PasswordHasher with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash salts and hashes the password. bcrypt generates the salt itself.
func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.ErrInvalidInput.WithMessage("password must be at most 72 bytes")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return hash, nil
}

// Compare checks password against hash in constant time.
// Returns apperr.ErrBadCredentials on mismatch.
func (h *BcryptHasher) Compare(hash []byte, password string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return apperr.ErrBadCredentials
	default:
		// malformed stored hash
		return apperr.Storage(err)
	}
}
