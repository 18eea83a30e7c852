package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
)

// SubmissionRepository persists employer submissions in MongoDB.
type SubmissionRepository struct {
	submissions *mongo.Collection
}

// NewSubmissionRepository binds the repository to the submission collection.
func NewSubmissionRepository(db *mongo.Database, collection string) *SubmissionRepository {
	return &SubmissionRepository{submissions: db.Collection(collection)}
}

// Insert writes one submission and returns the generated id. The creation
// timestamp is assigned here, at the store boundary.
func (r *SubmissionRepository) Insert(ctx context.Context, submission domain.Submission) (string, error) {
	doc := SubmissionDocument{
		ID:              primitive.NewObjectID(),
		Company:         submission.Company,
		ContactName:     submission.ContactName,
		Email:           submission.Email,
		Phone:           submission.Phone,
		JobTitle:        submission.JobTitle,
		EmploymentType:  submission.EmploymentType,
		Category:        submission.Category,
		City:            submission.City,
		Area:            submission.Area,
		Region:          submission.Region,
		BaseSalaryMin:   submission.BaseSalaryMin,
		BaseSalaryMax:   submission.BaseSalaryMax,
		Description:     submission.Description,
		EnglishFriendly: submission.EnglishFriendly,
		ExternalURL:     submission.ExternalURL,
		LogoURL:         submission.LogoURL,
		LogoAlt:         submission.LogoAlt,
		Plan:            submission.Plan,
		PlanPriceEUR:    submission.PlanPriceEUR,
		Status:          submission.Status,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := r.submissions.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}
