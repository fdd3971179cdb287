// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, max_response_options, options, created_by
  - SubmitPollRequest: poll_id, option_ids

# Response Types

Types for JSON responses:

  - CreatePollResponse: poll_id
  - SubmitPollResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: question, selection limit, creator, creation time
  - Option: one selectable answer belonging to exactly one poll
  - OptionResult: option plus its derived vote tally
  - PollWithResults: poll joined with tallied options
  - UserPollView: poll, tallies, and the caller's submission state
  - PollResults: poll, tallies, and total submission count

Ownership is one-directional: a Poll never carries its Options or
Submissions as fields. Joined views (PollWithResults, UserPollView,
PollResults) are assembled explicitly by the store package as query
results, never as back-pointers.
*/
package models
