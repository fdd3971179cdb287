// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polling-bee/models"
)

// CreatePoll creates a poll together with its options as one unit and
// returns the new poll ID. Polls are immutable once created; the voting
// path never touches the poll or option tables again.
func (s *Store) CreatePoll(question string, maxResponseOptions int, optionNames []string, createdBy string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question is required", ErrInvalidPoll)
	}
	if maxResponseOptions < 1 {
		return "", fmt.Errorf("%w: max_response_options must be positive", ErrInvalidPoll)
	}
	if len(optionNames) == 0 {
		return "", fmt.Errorf("%w: at least one option is required", ErrInvalidPoll)
	}
	for _, name := range optionNames {
		if strings.TrimSpace(name) == "" {
			return "", fmt.Errorf("%w: option names must be non-empty", ErrInvalidPoll)
		}
	}

	pollID := uuid.NewString()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, question, max_response_options, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, question, maxResponseOptions, createdBy, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, name := range optionNames {
		_, err = tx.Exec(`
			INSERT INTO option (id, poll_id, name, created_at)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), pollID, name, now)
		if err != nil {
			return "", fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit poll: %w", err)
	}

	return pollID, nil
}

// GetPoll returns the poll with live tallies plus the submission state of
// userID: whether they already voted and, if so, which options they picked.
func (s *Store) GetPoll(pollID, userID string) (*models.UserPollView, error) {
	poll, err := s.queryPoll(pollID)
	if err != nil {
		return nil, err
	}

	options, err := s.queryOptionResults(pollID)
	if err != nil {
		return nil, err
	}

	view := &models.UserPollView{
		Poll:              *poll,
		Options:           options,
		SelectedOptionIDs: []string{},
	}

	var submissionID string
	err = s.db.QueryRow(`
		SELECT id FROM submission WHERE poll_id = $1 AND user_id = $2
	`, pollID, userID).Scan(&submissionID)
	if err == sql.ErrNoRows {
		return view, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query submission: %w", err)
	}

	view.AlreadySubmitted = true

	rows, err := s.db.Query(`
		SELECT option_id FROM selection WHERE submission_id = $1 ORDER BY option_id
	`, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var optionID string
		if err := rows.Scan(&optionID); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		view.SelectedOptionIDs = append(view.SelectedOptionIDs, optionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read selections: %w", err)
	}

	return view, nil
}

// ListPolls returns all polls with their tallied options, ordered by
// creation time. A non-empty createdBy restricts the list to that creator.
func (s *Store) ListPolls(createdBy string) ([]models.PollWithResults, error) {
	query := `
		SELECT id, question, max_response_options, created_by, created_at
		FROM poll
		ORDER BY created_at, id
	`
	args := []interface{}{}
	if createdBy != "" {
		query = `
			SELECT id, question, max_response_options, created_by, created_at
			FROM poll
			WHERE created_by = $1
			ORDER BY created_at, id
		`
		args = append(args, createdBy)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question, &p.MaxResponseOptions, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	list := []models.PollWithResults{}
	for _, p := range polls {
		options, err := s.queryOptionResults(p.ID)
		if err != nil {
			return nil, err
		}
		list = append(list, models.PollWithResults{Poll: p, Options: options})
	}

	return list, nil
}

// GetResults returns the poll with live tallies and the total number of
// submissions. A poll with no submissions yet legitimately reports zero
// tallies and a zero count; a missing poll reports ErrPollNotFound.
func (s *Store) GetResults(pollID string) (*models.PollResults, error) {
	poll, err := s.queryPoll(pollID)
	if err != nil {
		return nil, err
	}

	options, err := s.queryOptionResults(pollID)
	if err != nil {
		return nil, err
	}

	var count int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM submission WHERE poll_id = $1
	`, pollID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	return &models.PollResults{
		Poll:            *poll,
		Options:         options,
		SubmissionCount: count,
	}, nil
}

func (s *Store) queryPoll(pollID string) (*models.Poll, error) {
	var p models.Poll
	err := s.db.QueryRow(`
		SELECT id, question, max_response_options, created_by, created_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&p.ID, &p.Question, &p.MaxResponseOptions, &p.CreatedBy, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	return &p, nil
}

// queryOptionResults is the tally model: one derived count per option,
// computed by counting selection rows. Because selections commit in the
// same transaction as their submission, a read here always reflects every
// accepted submission and never a partial one.
func (s *Store) queryOptionResults(pollID string) ([]models.OptionResult, error) {
	rows, err := s.db.Query(`
		SELECT o.id, o.poll_id, o.name, o.created_at, COUNT(sel.option_id)
		FROM option o
		LEFT JOIN selection sel ON sel.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.poll_id, o.name, o.created_at
		ORDER BY o.created_at, o.id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query option results: %w", err)
	}
	defer rows.Close()

	options := []models.OptionResult{}
	for rows.Next() {
		var opt models.OptionResult
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Name, &opt.CreatedAt, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option result: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read option results: %w", err)
	}

	return options, nil
}
