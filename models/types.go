// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreatePollRequest struct {
	Question           string   `json:"question"`
	MaxResponseOptions int      `json:"max_response_options"`
	Options            []string `json:"options"`
	CreatedBy          string   `json:"created_by,omitempty"`
}

type SubmitPollRequest struct {
	PollID    string   `json:"poll_id"`
	OptionIDs []string `json:"option_ids"`
}

// Response types

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
}

type SubmitPollResponse struct {
	Message string `json:"message"`
}

// Domain types

type Poll struct {
	ID                 string    `json:"id"`
	Question           string    `json:"question"`
	MaxResponseOptions int       `json:"max_response_options"`
	CreatedBy          string    `json:"created_by,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type Option struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionResult is an option together with its current tally. The tally is
// derived from selection rows at query time; it is never stored.
type OptionResult struct {
	Option
	Votes int `json:"votes"`
}

type PollWithResults struct {
	Poll    Poll           `json:"poll"`
	Options []OptionResult `json:"options"`
}

// UserPollView answers "what does this poll look like for this user":
// the poll, live tallies, and whether/how the user already voted.
type UserPollView struct {
	Poll              Poll           `json:"poll"`
	Options           []OptionResult `json:"options"`
	AlreadySubmitted  bool           `json:"already_submitted"`
	SelectedOptionIDs []string       `json:"selected_option_ids"`
}

type PollResults struct {
	Poll            Poll           `json:"poll"`
	Options         []OptionResult `json:"options"`
	SubmissionCount int            `json:"submission_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
