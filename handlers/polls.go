// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/apperr"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type PollService interface {
	CreatePoll(ctx context.Context, question, optionA, optionB string) (models.Poll, error)
	ListPolls(ctx context.Context) ([]models.Poll, error)
}

type PollHandler struct {
	polls PollService
}

func NewPollHandler(polls PollService) *PollHandler {
	return &PollHandler{polls: polls}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, apperr.ErrInvalidInput.WithMessage("invalid JSON"))
		return
	}

	poll, err := h.polls.CreatePoll(r.Context(), req.Question, req.OptionA, req.OptionB)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	slog.Info("poll created", "poll_id", poll.ID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPolls(r.Context())
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}
