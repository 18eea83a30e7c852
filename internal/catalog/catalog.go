package catalog

// The job catalog is hand-curated, read-only data. It is assembled once at
// package initialisation and never mutated afterwards, so it is safe for any
// number of concurrent readers without locking.

// Employment enumerates the schema.org-style employment types used on listings.
type Employment string

const (
	PartTime   Employment = "PART_TIME"
	FullTime   Employment = "FULL_TIME"
	Contractor Employment = "CONTRACTOR"
	Temporary  Employment = "TEMPORARY"
	Intern     Employment = "INTERN"
	Volunteer  Employment = "VOLUNTEER"
)

// Category is a site taxonomy code for a listing.
type Category string

const (
	CategoryHospitality Category = "hospitality"
	CategoryRetail      Category = "retail"
	CategoryDelivery    Category = "delivery"
	CategoryLogistics   Category = "logistics"
	CategoryTutoring    Category = "tutoring"
	CategoryEvents      Category = "events"
	CategorySales       Category = "sales"
	CategoryFieldwork   Category = "fieldwork"
)

// JobRecord is one published listing. ShortDescription is derived from the
// pay amounts and DescriptionHTML when the catalog is built; it is never
// authored by hand.
type JobRecord struct {
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	OrgName          string     `json:"orgName"`
	DescriptionHTML  string     `json:"descriptionHtml"`
	ShortDescription string     `json:"shortDescription"`
	EmploymentType   Employment `json:"employmentType"`
	BaseSalaryMin    *float64   `json:"baseSalaryMin,omitempty"`
	BaseSalaryMax    *float64   `json:"baseSalaryMax,omitempty"`
	Currency         string     `json:"currency,omitempty"`
	PayUnit          string     `json:"payUnit,omitempty"`
	AddressLocality  string     `json:"addressLocality"`
	AddressRegion    string     `json:"addressRegion,omitempty"`
	PostalCode       string     `json:"postalCode,omitempty"`
	StreetAddress    string     `json:"streetAddress,omitempty"`
	Area             string     `json:"area,omitempty"`
	EnglishFriendly  bool       `json:"englishFriendly,omitempty"`
	DUO              bool       `json:"duo,omitempty"`
	WorkHours        string     `json:"workHours,omitempty"`
	DatePosted       string     `json:"datePosted"`
	ValidThrough     string     `json:"validThrough,omitempty"`
	Categories       []Category `json:"categories"`
	Featured         bool       `json:"featured,omitempty"`
	ExternalURL      string     `json:"externalUrl,omitempty"`

	// Per-gig / per-sale pay. Numeric amounts win; the text variants are
	// free-form fallbacks for amounts that do not reduce to one number.
	PerGigAmount      *float64 `json:"perGigAmount,omitempty"`
	PerSaleAmount     *float64 `json:"perSaleAmount,omitempty"`
	PerGigAmountText  string   `json:"perGigAmountText,omitempty"`
	PerSaleAmountText string   `json:"perSaleAmountText,omitempty"`

	LogoURL string `json:"logoUrl,omitempty"`
	LogoAlt string `json:"logoAlt,omitempty"`
}

// Catalog holds the published listings with their derived fields populated.
type Catalog struct {
	jobs   []JobRecord
	bySlug map[string]int
}

// New builds a catalog from raw records, computing ShortDescription for each.
func New(raw []JobRecord) *Catalog {
	jobs := make([]JobRecord, len(raw))
	bySlug := make(map[string]int, len(raw))
	for i, job := range raw {
		job.ShortDescription = buildShortDescription(job)
		jobs[i] = job
		bySlug[job.Slug] = i
	}
	return &Catalog{jobs: jobs, bySlug: bySlug}
}

// Default returns the site's curated catalog.
func Default() *Catalog {
	return New(rawJobs)
}

// All returns every listing in authored order.
func (c *Catalog) All() []JobRecord {
	return append([]JobRecord(nil), c.jobs...)
}

// BySlug looks a listing up by its unique slug.
func (c *Catalog) BySlug(slug string) (JobRecord, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return JobRecord{}, false
	}
	return c.jobs[i], true
}

// Featured returns the listings pinned to the top of the site.
func (c *Catalog) Featured() []JobRecord {
	out := make([]JobRecord, 0, len(c.jobs))
	for _, job := range c.jobs {
		if job.Featured {
			out = append(out, job)
		}
	}
	return out
}

// ByCategory returns the listings tagged with the given category code.
func (c *Catalog) ByCategory(category Category) []JobRecord {
	out := make([]JobRecord, 0, len(c.jobs))
	for _, job := range c.jobs {
		for _, cat := range job.Categories {
			if cat == category {
				out = append(out, job)
				break
			}
		}
	}
	return out
}

// Len reports the number of listings.
func (c *Catalog) Len() int {
	return len(c.jobs)
}

func floatPtr(v float64) *float64 { return &v }
