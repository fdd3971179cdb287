// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polling-bee/middleware"
	"github.com/danielhkuo/polling-bee/models"
	"github.com/danielhkuo/polling-bee/store"
)

type PollHandler struct {
	store *store.Store
}

func NewPollHandler(st *store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// CreatePoll handles POST /createPoll
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pollID, err := h.store.CreatePoll(req.Question, req.MaxResponseOptions, req.Options, req.CreatedBy)
	if err != nil {
		writeStoreError(w, err, "failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "creator", req.CreatedBy)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: pollID,
	})
}

// GetPoll handles GET /getPoll/{pollId}/{userId}
// Returns the poll with tallies plus whether userId already voted and what
// they picked.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollId")
	userID := r.PathValue("userId")
	if pollID == "" || userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pollId and userId are required")
		return
	}

	view, err := h.store.GetPoll(pollID, userID)
	if err != nil {
		writeStoreError(w, err, "failed to get poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// ListPolls handles GET /getPolls
// Accepts an optional ?createdBy= filter.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	createdBy := r.URL.Query().Get("createdBy")

	polls, err := h.store.ListPolls(createdBy)
	if err != nil {
		writeStoreError(w, err, "failed to list polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}
