package domain

// Submission is one employer job posting captured through the public form.
// It is owned by the write path until persisted; after the store insert the
// record belongs to the review workflow and is never mutated in-process.
type Submission struct {
	Company         string
	ContactName     string
	Email           string
	Phone           string
	JobTitle        string
	Description     string
	EmploymentType  string
	Category        string
	City            string
	Area            string
	Region          string
	BaseSalaryMin   *float64
	BaseSalaryMax   *float64
	EnglishFriendly bool
	ExternalURL     string
	LogoURL         string
	LogoAlt         string
	Plan            string
	PlanPriceEUR    string
	Status          string
}

// StatusPending is the initial lifecycle state of every submission. Later
// transitions (reviewed/published/rejected) happen in the review tooling,
// outside this service.
const StatusPending = "pending"

// Defaults applied by the assembler when the form leaves a field empty.
const (
	DefaultEmploymentType = "PART_TIME"
	DefaultCategory       = "hospitality"
	DefaultPlan           = "basic"
)
