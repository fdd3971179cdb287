// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps handlers with start/completion logging:

	mux.HandleFunc("POST /createPoll", middleware.WithLogging(handler.CreatePoll))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right headers:

	middleware.JSONResponse(w, http.StatusCreated, response)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")

ParseJSONBody decodes a request body:

	var req models.SubmitPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil { ... }

# CORS

CORS wraps the whole mux and handles preflight requests.
*/
package middleware
