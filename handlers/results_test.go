// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/polling-bee/models"
	"github.com/danielhkuo/polling-bee/store"
	"github.com/danielhkuo/polling-bee/testutil"
)

func TestGetResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(store.New(conn))

	pollID := testutil.CreateTestPoll(t, conn, "Favorite color?", 1, "")
	red := testutil.AddTestOption(t, conn, pollID, "Red")
	blue := testutil.AddTestOption(t, conn, pollID, "Blue")

	emptyPollID := testutil.CreateTestPoll(t, conn, "Unvoted", 1, "")
	testutil.AddTestOption(t, conn, emptyPollID, "Only")

	testutil.CreateTestSubmission(t, conn, pollID, "user1", red)
	testutil.CreateTestSubmission(t, conn, pollID, "user2", red)
	testutil.CreateTestSubmission(t, conn, pollID, "user3", blue)

	tests := []struct {
		name           string
		pollID         string
		expectedStatus int
		checkResponse  func(t *testing.T, results *models.PollResults)
	}{
		{
			name:           "poll with submissions",
			pollID:         pollID,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, results *models.PollResults) {
				if results.SubmissionCount != 3 {
					t.Errorf("Expected 3 submissions, got %d", results.SubmissionCount)
				}

				votes := map[string]int{}
				for _, opt := range results.Options {
					votes[opt.Name] = opt.Votes
				}
				if votes["Red"] != 2 || votes["Blue"] != 1 {
					t.Errorf("Expected Red=2 Blue=1, got Red=%d Blue=%d", votes["Red"], votes["Blue"])
				}
			},
		},
		{
			name:           "poll with zero submissions",
			pollID:         emptyPollID,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, results *models.PollResults) {
				if results.SubmissionCount != 0 {
					t.Errorf("Expected 0 submissions, got %d", results.SubmissionCount)
				}
				if len(results.Options) != 1 || results.Options[0].Votes != 0 {
					t.Errorf("Expected one option with 0 votes, got %+v", results.Options)
				}
			},
		},
		{
			name:           "poll not found",
			pollID:         "no-such-poll",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/getResults/"+tt.pollID, nil)
			req.SetPathValue("pollId", tt.pollID)
			w := httptest.NewRecorder()

			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil {
				var results models.PollResults
				testutil.AssertJSON(t, w, &results)
				tt.checkResponse(t, &results)
			}
		})
	}
}
