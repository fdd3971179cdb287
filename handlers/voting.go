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

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(st *store.Store) *VotingHandler {
	return &VotingHandler{store: st}
}

// SubmitPoll handles POST /submitPoll/{userId}
// The user identifier is trusted as-is; there is no authentication layer.
func (h *VotingHandler) SubmitPoll(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	var req models.SubmitPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	if err := h.store.Submit(req.PollID, userID, req.OptionIDs); err != nil {
		writeStoreError(w, err, "failed to submit poll")
		return
	}

	// The store collapses duplicate ids, so the persisted selection count may
	// be lower than what the request carried.
	slog.Info("submission accepted", "poll_id", req.PollID, "user_id", userID, "requested_options", len(req.OptionIDs))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitPollResponse{
		Message: "Submission recorded",
	})
}
