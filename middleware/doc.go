// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every response carries an X-Request-ID header, taken from the
request when present and generated otherwise.

# Authentication

Gate a handler behind a bearer token:

	mux.HandleFunc("GET /polls", middleware.WithLogging(
		middleware.RequireAuth(sessions, pollHandler.ListPolls)))

A missing Authorization header is rejected with 401 MissingToken. A
malformed, tampered or expired token is rejected with 403. On success the
user id is available to the handler:

	userID, _ := middleware.UserIDFromContext(r.Context())

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.WriteError(w, err)

WriteError maps apperr kinds to status codes (validation 400, auth 401,
conflict 409, not found 404, anything else 500) and writes
{"error": code, "message": message}.

Parse JSON request bodies:

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, apperr.ErrInvalidInput)
		return
	}

# Client IP Extraction

Get the client IP behind proxies (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
