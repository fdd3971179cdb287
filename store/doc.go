// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the poll domain: poll creation, vote submission,
and all poll queries. Handlers stay thin; everything that must be correct
under concurrency lives here, and nothing here depends on the web layer.

# Submission Consistency

Submit is the only mutating operation on an existing poll. Its guarantees:

  - At most one submission per (poll, user) pair, enforced by the UNIQUE
    (poll_id, user_id) index. When N submissions race for the same pair,
    exactly one commits and the rest return ErrDuplicateSubmission.
  - The submission row and its selection rows commit atomically. A failed
    Submit leaves no partial state, so callers can always retry; a retry
    of a Submit that actually committed reports ErrDuplicateSubmission,
    which is the correct signal.
  - Validation (poll exists, options belong to the poll, selection count
    within the poll's limit) happens before the write transaction, which
    then contains only inserts.

The correctness mechanism is the database constraint, not in-process
locking, so multiple server instances can share one database safely.

# Tallies

Per-option vote counts are derived by counting selection rows at query
time. There is no materialized counter, which removes both the lost-update
hazard of read-modify-write increments and any window where a committed
submission is not yet reflected in the counts.

# Errors

Operations return sentinel errors for deterministic outcomes:

  - ErrPollNotFound: the poll ID does not exist
  - ErrInvalidPoll: bad poll creation input
  - ErrInvalidSelection: empty, oversized, or foreign option set
  - ErrDuplicateSubmission: the user already voted on this poll

Store failures (connectivity, transaction errors) are returned wrapped and
are never collapsed into a boolean result.
*/
package store
