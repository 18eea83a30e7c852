package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
)

type fakeRepo struct {
	id       string
	err      error
	inserted []domain.Submission
}

func (r *fakeRepo) Insert(_ context.Context, submission domain.Submission) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.inserted = append(r.inserted, submission)
	return r.id, nil
}

func validSubmission() domain.Submission {
	return domain.Submission{
		Company:     "Cafe De Sigaar",
		ContactName: "Jan de Vries",
		Email:       "jan@example.com",
		JobTitle:    "Barista",
		Description: "Serve coffee and keep the terrace running through the afternoon rush.",
		City:        "Groningen",
		Region:      "groningen",
	}
}

func TestSubmitReturnsGeneratedID(t *testing.T) {
	repo := &fakeRepo{id: "66b2f0a1c3d4e5f601234567"}
	service := NewSubmitService(repo)

	id, err := service.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	assert.Equal(t, "66b2f0a1c3d4e5f601234567", id)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, domain.StatusPending, repo.inserted[0].Status, "status defaults to pending at the write boundary")
}

func TestSubmitKeepsExplicitStatus(t *testing.T) {
	repo := &fakeRepo{id: "abc"}
	service := NewSubmitService(repo)

	submission := validSubmission()
	submission.Status = domain.StatusPending

	_, err := service.Submit(context.Background(), submission)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, repo.inserted[0].Status)
}

func TestSubmitMapsStoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantMsg  string
	}{
		{
			name:     "unique constraint",
			storeErr: errors.New(`insert failed: violates unique constraint "employer_job_submissions_key"`),
			wantMsg:  MsgDuplicateSubmission,
		},
		{
			name:     "mongo duplicate key",
			storeErr: errors.New("E11000 duplicate key error collection: studentjobs.employer_job_submissions"),
			wantMsg:  MsgDuplicateSubmission,
		},
		{
			name:     "network failure",
			storeErr: errors.New("network timeout while dialing mongo:27017"),
			wantMsg:  MsgNetworkFailure,
		},
		{
			name:     "anything else",
			storeErr: errors.New("document validation failed"),
			wantMsg:  MsgSubmitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSubmitService(&fakeRepo{err: tt.storeErr})

			_, err := service.Submit(context.Background(), validSubmission())

			var storeErr *StoreWriteError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, tt.wantMsg, storeErr.Message)
			assert.ErrorIs(t, err, tt.storeErr, "the raw cause stays wrapped for logging")
		})
	}
}
