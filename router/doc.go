// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Polling Bee API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Poll management:

	POST /createPoll                 - Create a poll with its options
	GET  /getPoll/{pollId}/{userId}  - Poll, tallies, and the user's vote state
	GET  /getPolls                   - All polls with tallies (?createdBy= filter)

Voting:

	POST /submitPoll/{userId}        - Submit a vote set for a poll

Results:

	GET /getResults/{pollId}         - Poll, tallies, and submission count

# Handler Initialization

The router builds one store.Store over the shared database connection and
injects it into each handler:

	st := store.New(db)
	pollHandler := handlers.NewPollHandler(st)
	votingHandler := handlers.NewVotingHandler(st)
	resultsHandler := handlers.NewResultsHandler(st)
*/
package router
