// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/polling-bee/handlers"
	"github.com/danielhkuo/polling-bee/middleware"
	"github.com/danielhkuo/polling-bee/store"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st)
	votingHandler := handlers.NewVotingHandler(st)
	resultsHandler := handlers.NewResultsHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll management
	mux.HandleFunc("POST /createPoll", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /getPoll/{pollId}/{userId}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("GET /getPolls", middleware.WithLogging(pollHandler.ListPolls))

	// Voting
	mux.HandleFunc("POST /submitPoll/{userId}", middleware.WithLogging(votingHandler.SubmitPoll))

	// Results
	mux.HandleFunc("GET /getResults/{pollId}", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("polling-bee API v1"))
	})

	return mux
}
