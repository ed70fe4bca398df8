// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielhkuo/quickly-vote/apperr"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

// Accounts registers users and checks their passwords
type Accounts interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Verify(ctx context.Context, username, password string) (int64, error)
}

// TokenIssuer mints a session token for a verified user
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

type AuthHandler struct {
	accounts Accounts
	tokens   TokenIssuer
}

func NewAuthHandler(accounts Accounts, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, apperr.ErrInvalidInput.WithMessage("invalid JSON"))
		return
	}

	userID, err := h.accounts.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Message: "User registered",
		UserID:  userID,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, apperr.ErrInvalidInput.WithMessage("invalid JSON"))
		return
	}

	userID, err := h.accounts.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		middleware.WriteError(w, fmt.Errorf("issue session token: %w", err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
