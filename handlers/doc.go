// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements HTTP request handlers for the Polling Bee API.

# Handler Types

  - PollHandler: poll creation and queries (CreatePoll, GetPoll, ListPolls)
  - VotingHandler: vote submission (SubmitPoll)
  - ResultsHandler: tallied results (GetResults)

Handlers parse and validate the HTTP surface, delegate to the store
package, and map its errors to status codes:

  - store.ErrPollNotFound → 404
  - store.ErrInvalidPoll, store.ErrInvalidSelection → 400
  - store.ErrDuplicateSubmission → 409
  - anything else → logged 500

No domain logic lives here; the store owns validation, transactions, and
tally computation.
*/
package handlers
