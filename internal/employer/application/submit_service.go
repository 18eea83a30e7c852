package application

import (
	"context"
	"strings"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
)

// User-facing messages for a failed store write. Raw backend error text never
// reaches the caller; it is classified into one of these three.
const (
	MsgDuplicateSubmission = "This job has already been submitted. Please contact us if you need to make changes."
	MsgNetworkFailure      = "Network error. Please check your connection and try again."
	MsgSubmitFailure       = "Failed to submit job. Please try again."
)

// StoreWriteError wraps a record-store failure with the message the caller
// may see.
type StoreWriteError struct {
	Message string
	cause   error
}

func (e *StoreWriteError) Error() string { return e.Message }
func (e *StoreWriteError) Unwrap() error { return e.cause }

type submitService struct {
	repo SubmissionRepository
}

// NewSubmitService builds the employer submission write use-case on top of a
// submission repository.
func NewSubmitService(repo SubmissionRepository) SubmitService {
	return &submitService{repo: repo}
}

// Submit persists one pending submission and returns the store-generated id.
// A failed insert is returned as a StoreWriteError; no retry happens here.
func (s *submitService) Submit(ctx context.Context, submission domain.Submission) (string, error) {
	if submission.Status == "" {
		submission.Status = domain.StatusPending
	}

	id, err := s.repo.Insert(ctx, submission)
	if err != nil {
		return "", &StoreWriteError{Message: classifyStoreError(err), cause: err}
	}
	return id, nil
}

// classifyStoreError pattern-matches the store's error text for category
// hints, the same way the site always has: "unique"/duplicate-key failures
// mean the posting was already submitted, "network" means connectivity.
func classifyStoreError(err error) string {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "unique") || strings.Contains(text, "duplicate key"):
		return MsgDuplicateSubmission
	case strings.Contains(text, "network"):
		return MsgNetworkFailure
	default:
		return MsgSubmitFailure
	}
}
