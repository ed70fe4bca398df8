// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package accounts is the credential store: registration and password
// verification on top of a UserSaver/UserProvider and a PasswordHasher.
package accounts

//go:generate mockgen -source=accounts.go -destination=mocks/mock_accounts.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"

	"github.com/danielhkuo/quickly-vote/apperr"
	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/storage"
)

type UserSaver interface {
	SaveUser(ctx context.Context, username string, passHash []byte) (int64, error)
}

type UserProvider interface {
	User(ctx context.Context, username string) (models.User, error)
}

type CredentialStore struct {
	log          *slog.Logger
	userSaver    UserSaver
	userProvider UserProvider
	hasher       auth.PasswordHasher

	dummyOnce sync.Once
	dummyHash []byte
}

func New(log *slog.Logger, userSaver UserSaver, userProvider UserProvider, hasher auth.PasswordHasher) *CredentialStore {
	return &CredentialStore{
		log:          log,
		userSaver:    userSaver,
		userProvider: userProvider,
		hasher:       hasher,
	}
}

// Register stores username with a salted hash of password and returns the new user id.
// Fails with apperr.ErrDuplicateUsername if the username is taken.
func (c *CredentialStore) Register(ctx context.Context, username, password string) (int64, error) {
	const op = "accounts.Register"

	log := c.log.With(slog.String("op", op), slog.String("username", username))

	if username == "" || password == "" {
		return 0, fmt.Errorf("%s: %w", op, apperr.ErrInvalidInput.WithMessage("username and password are required"))
	}

	log.Info("registering user")

	passHash, err := c.hasher.Hash(password)
	if err != nil {
		log.Warn("failed to hash password", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := c.userSaver.SaveUser(ctx, username, passHash)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("username already taken")
			return 0, fmt.Errorf("%s: %w", op, apperr.ErrDuplicateUsername)
		}
		log.Error("failed to save user", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	log.Info("user registered", slog.Int64("user_id", id))
	return id, nil
}

// Verify checks password against the stored hash and returns the user id.
// Fails with apperr.ErrUserNotFound or apperr.ErrBadCredentials.
func (c *CredentialStore) Verify(ctx context.Context, username, password string) (int64, error) {
	const op = "accounts.Verify"

	log := c.log.With(slog.String("op", op), slog.String("username", username))

	if username == "" || password == "" {
		return 0, fmt.Errorf("%s: %w", op, apperr.ErrInvalidInput.WithMessage("username and password are required"))
	}

	user, err := c.userProvider.User(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// spend one hash comparison, same as the known-user path
			_ = c.hasher.Compare(c.dummy(), password)
			log.Info("user not found")
			return 0, fmt.Errorf("%s: %w", op, apperr.ErrUserNotFound)
		}
		log.Error("failed to get user", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	if err := c.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, apperr.ErrBadCredentials) {
			log.Info("invalid credentials")
		} else {
			log.Error("failed to compare password", sl.Err(err))
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("credentials verified", slog.Int64("user_id", user.ID))
	return user.ID, nil
}

func (c *CredentialStore) dummy() []byte {
	c.dummyOnce.Do(func() {
		hash, err := c.hasher.Hash("quickly-vote-dummy-password")
		if err != nil {
			c.log.Warn("failed to build dummy hash", sl.Err(err))
			return
		}
		c.dummyHash = hash
	})
	return c.dummyHash
}
