package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionDocument is the Mongo schema of one employer job submission.
// Optional fields are omitted entirely when absent so the review tooling can
// treat presence as meaningful; they are never stored as empty strings.
type SubmissionDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Company         string             `bson:"company"`
	ContactName     string             `bson:"contact_name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone,omitempty"`
	JobTitle        string             `bson:"job_title"`
	EmploymentType  string             `bson:"employment_type"`
	Category        string             `bson:"category"`
	City            string             `bson:"city"`
	Area            string             `bson:"area,omitempty"`
	Region          string             `bson:"region"`
	BaseSalaryMin   *float64           `bson:"base_salary_min,omitempty"`
	BaseSalaryMax   *float64           `bson:"base_salary_max,omitempty"`
	Description     string             `bson:"description"`
	EnglishFriendly bool               `bson:"english_friendly"`
	ExternalURL     string             `bson:"external_url,omitempty"`
	LogoURL         string             `bson:"logo_url,omitempty"`
	LogoAlt         string             `bson:"logo_alt,omitempty"`
	Plan            string             `bson:"plan,omitempty"`
	PlanPriceEUR    string             `bson:"plan_price_eur,omitempty"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
}
