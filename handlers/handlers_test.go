// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/accounts"
	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/storage/sqlstore"
	"github.com/danielhkuo/quickly-vote/testutil"
)

// testEnv wires real services over an in-memory database
type testEnv struct {
	db       *sql.DB
	sessions *auth.SessionAuthority
	mux      *http.ServeMux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	log := testutil.DiscardLogger()
	store := sqlstore.New(conn)

	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		t.Fatalf("Failed to create hasher: %v", err)
	}
	sessions, err := auth.NewSessionAuthority(cfg.SigningSecret, auth.WithTTL(cfg.TokenTTL))
	if err != nil {
		t.Fatalf("Failed to create session authority: %v", err)
	}

	voteLedger := ledger.New(log, store, store)
	authHandler := NewAuthHandler(accounts.New(log, store, store, hasher), sessions)
	pollHandler := NewPollHandler(voteLedger)
	votingHandler := NewVotingHandler(voteLedger)

	protect := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(sessions, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /polls", protect(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", protect(pollHandler.CreatePoll))
	mux.HandleFunc("POST /votes", protect(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/{pollId}", protect(votingHandler.Tally))
	mux.HandleFunc("GET /votes/{pollId}/mine", protect(votingHandler.MyVote))

	return &testEnv{db: conn, sessions: sessions, mux: mux}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

// signup registers and logs in a user, returning the session token
func (e *testEnv) signup(t *testing.T, username, password string) string {
	t.Helper()

	creds := models.CredentialsRequest{Username: username, Password: password}

	w := e.do(testutil.MakeRequest("POST", "/register", creds, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = e.do(testutil.MakeRequest("POST", "/login", creds, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.Token
}

func (e *testEnv) createPoll(t *testing.T, token, question, optionA, optionB string) int64 {
	t.Helper()

	w := e.do(testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Question: question,
		OptionA:  optionA,
		OptionB:  optionB,
	}, testutil.BearerHeader(token)))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	return poll.ID
}

func (e *testEnv) castVote(t *testing.T, token string, pollID int64, option string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(testutil.MakeRequest("POST", "/votes", models.CastVoteRequest{
		PollID:       pollID,
		ChosenOption: option,
	}, testutil.BearerHeader(token)))
}

func (e *testEnv) tally(t *testing.T, token string, pollID int64) models.Tally {
	t.Helper()

	w := e.do(testutil.MakeRequest("GET", fmt.Sprintf("/votes/%d", pollID), nil, testutil.BearerHeader(token)))
	testutil.AssertStatus(t, w, http.StatusOK)

	var tally models.Tally
	testutil.AssertJSON(t, w, &tally)
	return tally
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.Error
}
