// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/apperr"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type VoteService interface {
	CastVote(ctx context.Context, pollID, userID int64, chosenOption string) error
	Tally(ctx context.Context, pollID int64) (models.Tally, error)
	MyVote(ctx context.Context, pollID, userID int64) (models.Vote, error)
}

type VotingHandler struct {
	votes VoteService
}

func NewVotingHandler(votes VoteService) *VotingHandler {
	return &VotingHandler{votes: votes}
}

// CastVote handles POST /votes
// Re-voting replaces the previous choice.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, apperr.ErrMissingToken)
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, apperr.ErrInvalidInput.WithMessage("invalid JSON"))
		return
	}
	if req.PollID <= 0 {
		middleware.WriteError(w, apperr.ErrInvalidInput.WithMessage("pollId is required"))
		return
	}

	if err := h.votes.CastVote(r.Context(), req.PollID, userID, req.ChosenOption); err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{Success: true})
}

// Tally handles GET /votes/{pollId}
func (h *VotingHandler) Tally(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathPollID(r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	tally, err := h.votes.Tally(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}

// MyVote handles GET /votes/{pollId}/mine
func (h *VotingHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, apperr.ErrMissingToken)
		return
	}

	pollID, err := pathPollID(r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	vote, err := h.votes.MyVote(r.Context(), pollID, userID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVoteResponse{
		PollID:       vote.PollID,
		ChosenOption: vote.ChosenOption,
	})
}

func pathPollID(r *http.Request) (int64, error) {
	pollID, err := strconv.ParseInt(r.PathValue("pollId"), 10, 64)
	if err != nil {
		return 0, apperr.ErrInvalidInput.WithMessage("pollId must be an integer")
	}
	return pollID, nil
}
