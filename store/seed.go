// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"log/slog"
)

// SeedDemoPolls inserts two demo polls when the poll table is empty, so a
// fresh instance has something to show. Calling it on a populated database
// is a no-op.
func (s *Store) SeedDemoPolls() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM poll`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count polls: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		question string
		max      int
		options  []string
	}{
		{"What is your favorite color?", 1, []string{"Red", "Blue"}},
		{"What is your favorite country?", 2, []string{"USA", "Canada", "UK", "Australia"}},
	}

	for _, seed := range seeds {
		pollID, err := s.CreatePoll(seed.question, seed.max, seed.options, "")
		if err != nil {
			return fmt.Errorf("failed to seed poll %q: %w", seed.question, err)
		}
		slog.Info("seeded demo poll", "poll_id", pollID, "question", seed.question)
	}

	return nil
}
