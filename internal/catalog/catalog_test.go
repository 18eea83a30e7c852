package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotZero(t, c.Len())

	seen := make(map[string]struct{}, c.Len())
	for _, job := range c.All() {
		assert.NotEmpty(t, job.Slug)
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.OrgName)
		assert.NotEmpty(t, job.ShortDescription, "derived summary must be computed for %s", job.Slug)
		assert.Equal(t, "Groningen", job.AddressLocality)
		assert.NotEmpty(t, job.Categories)

		_, dup := seen[job.Slug]
		assert.False(t, dup, "duplicate slug %s", job.Slug)
		seen[job.Slug] = struct{}{}
	}
}

func TestBySlug(t *testing.T) {
	c := Default()

	job, ok := c.BySlug("domakin-viewing-agent-groningen")
	require.True(t, ok)
	assert.Equal(t, "Domakin", job.OrgName)
	require.NotNil(t, job.PerGigAmount)
	assert.Equal(t, 20.0, *job.PerGigAmount)
	assert.Contains(t, job.ShortDescription, "€20 per gig — ")

	_, ok = c.BySlug("no-such-job")
	assert.False(t, ok)
}

func TestFeatured(t *testing.T) {
	c := Default()

	featured := c.Featured()
	require.NotEmpty(t, featured)
	for _, job := range featured {
		assert.True(t, job.Featured)
	}
	assert.Less(t, len(featured), c.Len())
}

func TestByCategory(t *testing.T) {
	c := Default()

	delivery := c.ByCategory(CategoryDelivery)
	require.NotEmpty(t, delivery)
	for _, job := range delivery {
		assert.Contains(t, job.Categories, CategoryDelivery)
	}

	assert.Empty(t, c.ByCategory(Category("gardening")))
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()

	jobs := c.All()
	original := jobs[0].Title
	jobs[0].Title = "mutated"

	again, _ := c.BySlug(jobs[0].Slug)
	assert.Equal(t, original, again.Title)
}
