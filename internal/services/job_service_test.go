package services

import (
	"testing"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJobService(t *testing.T) (JobService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewJobService(repositories.NewJobRepository(db), repositories.NewCompanyRepository(db))
	return svc, db
}

func seedJobForFilters(t *testing.T, db *gorm.DB, location, jobType string, active bool) {
	t.Helper()
	job := &models.Job{
		Title:       "Listing",
		Company:     "Acme",
		Location:    location,
		Description: "Test listing",
		Type:        jobType,
		IsActive:    active,
	}
	require.NoError(t, db.Create(job).Error)
}

func TestGetJobLocations_DistinctActiveSorted(t *testing.T) {
	svc, db := newJobService(t)

	seedJobForFilters(t, db, "Remote", "Full-time", true)
	seedJobForFilters(t, db, "Berlin", "Part-time", true)
	seedJobForFilters(t, db, "Berlin", "Contract", true)
	seedJobForFilters(t, db, "Oslo", "Full-time", false)

	locations, err := svc.GetJobLocations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Berlin", "Remote"}, locations, "deduplicated, sorted, inactive excluded")
}

func TestGetJobTypes_DistinctActiveSorted(t *testing.T) {
	svc, db := newJobService(t)

	seedJobForFilters(t, db, "Remote", "Full-time", true)
	seedJobForFilters(t, db, "Berlin", "Full-time", true)
	seedJobForFilters(t, db, "Berlin", "Contract", true)
	seedJobForFilters(t, db, "Oslo", "Freelance", false)

	types, err := svc.GetJobTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"Contract", "Full-time"}, types)
}
