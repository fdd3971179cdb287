// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polling-bee/middleware"
	"github.com/danielhkuo/polling-bee/store"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(st *store.Store) *ResultsHandler {
	return &ResultsHandler{store: st}
}

// GetResults handles GET /getResults/{pollId}
// Returns the poll, tallied options, and total submission count. A poll
// with no submissions returns zero tallies with status 200; a missing poll
// returns 404.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollId")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pollId is required")
		return
	}

	results, err := h.store.GetResults(pollID)
	if err != nil {
		writeStoreError(w, err, "failed to get results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// writeStoreError maps store errors onto the HTTP taxonomy: deterministic
// outcomes get their own status, everything else is a logged 500.
func writeStoreError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, store.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, store.ErrInvalidPoll), errors.Is(err, store.ErrInvalidSelection):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateSubmission):
		middleware.ErrorResponse(w, http.StatusConflict, "User has already submitted for this poll")
	default:
		slog.Error(logMsg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
