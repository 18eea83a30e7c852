package application

import (
	"context"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
)

// SubmissionRepository is the port to the record store holding employer
// submissions. Insert persists one record and returns its generated id.
type SubmissionRepository interface {
	Insert(ctx context.Context, submission domain.Submission) (string, error)
}

// LogoUpload carries one logo image towards the blob store.
type LogoUpload struct {
	Data        []byte
	Filename    string
	ContentType string
	Company     string
}

// LogoStore is the port to blob storage for uploaded logos. Upload stores the
// bytes under a company-derived path and returns a publicly resolvable URL.
type LogoStore interface {
	Upload(ctx context.Context, upload LogoUpload) (string, error)
}

// Notifier sends the two post-submission emails. Both are advisory: callers
// fire them after the store write and only log failures.
type Notifier interface {
	NotifyStaff(ctx context.Context, submission domain.Submission, id string) error
	ConfirmEmployer(ctx context.Context, submission domain.Submission, id string) error
}

// SubmitService is the write use-case for employer submissions.
type SubmitService interface {
	Submit(ctx context.Context, submission domain.Submission) (string, error)
}
