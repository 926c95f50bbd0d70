package services

import (
	"net/http"
	"testing"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(t *testing.T) (StatsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewStatsService(repositories.NewStatsRepository(db), repositories.NewMetricRepository(db))
	return svc, db
}

func TestNormalizePlatform(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"web", "Web"},
		{"Web", "Web"},
		{"android", "Android"},
		{"ANDROID", "Android"},
		{"ios", "Apple"},
		{"apple", "Apple"},
		{" Apple ", "Apple"},
		{"", "Unknown"},
		{"smartfridge", "Unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePlatform(tc.in), "input %q", tc.in)
	}
}

func TestTrackVisit_StoresNormalizedPlatform(t *testing.T) {
	svc, db := newStatsService(t)

	require.NoError(t, svc.TrackVisit("ios"))
	require.NoError(t, svc.TrackVisit("somethingelse"))

	var metrics []models.AppMetric
	require.NoError(t, db.Order("id ASC").Find(&metrics).Error)
	require.Len(t, metrics, 2)
	assert.Equal(t, models.MetricTypeVisit, metrics[0].MetricType)
	assert.Equal(t, "Apple", metrics[0].Platform)
	assert.Equal(t, "Unknown", metrics[1].Platform)
}

func TestTrackDownload_RequiresStorePlatform(t *testing.T) {
	svc, db := newStatsService(t)

	require.NoError(t, svc.TrackDownload("apple"))
	require.NoError(t, svc.TrackDownload("Android"))
	assertHTTPCode(t, svc.TrackDownload("web"), http.StatusBadRequest)
	assertHTTPCode(t, svc.TrackDownload(""), http.StatusBadRequest)

	var count int64
	require.NoError(t, db.Model(&models.AppMetric{}).
		Where("metric_type = ?", models.MetricTypeDownload).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetPlatformStats(t *testing.T) {
	svc, db := newStatsService(t)

	company := createCompany(t, db, "Acme")
	createWorker(t, db, "Alice", "alice@example.com")
	createWorker(t, db, "Bob", "bob@example.com")
	createEmployer(t, db, "emma@example.com", company.ID)
	createJob(t, db, "Backend Engineer", &company.ID)
	inactive := createJob(t, db, "Old Role", &company.ID)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	stats, err := svc.GetPlatformStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	assert.Equal(t, int64(2), stats.TotalCandidates)
	assert.Equal(t, int64(1), stats.TotalCompanies)
}

func TestBucketByMonth_ZeroFillsRange(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	times := []time.Time{
		time.Date(2026, time.January, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 20, 8, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	buckets := BucketByMonth(times, from, now)
	require.Len(t, buckets, 6)
	assert.Equal(t, 2026, buckets[0].Year)
	assert.Equal(t, 1, buckets[0].Month)
	assert.Equal(t, int64(2), buckets[0].Count)
	assert.Equal(t, int64(0), buckets[1].Count)
	assert.Equal(t, int64(1), buckets[3].Count)
	assert.Equal(t, int64(0), buckets[5].Count)
}

func TestBucketByDay_ZeroFillsRange(t *testing.T) {
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 5, 23, 0, 0, 0, time.UTC)

	times := []time.Time{
		time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 3, 21, 0, 0, 0, time.UTC),
	}

	buckets := BucketByDay(times, from, to)
	require.Len(t, buckets, 5)
	assert.Equal(t, "2026-03-01", buckets[0].Date)
	assert.Equal(t, int64(1), buckets[0].Count)
	assert.Equal(t, int64(0), buckets[1].Count)
	assert.Equal(t, int64(2), buckets[2].Count)
	assert.Equal(t, "2026-03-05", buckets[4].Date)
}

func TestGetTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", GetTimeAgo(now.Add(-30*time.Second)))
	assert.Equal(t, "1 minute ago", GetTimeAgo(now.Add(-90*time.Second)))
	assert.Equal(t, "5 minutes ago", GetTimeAgo(now.Add(-5*time.Minute)))
	assert.Equal(t, "1 hour ago", GetTimeAgo(now.Add(-90*time.Minute)))
	assert.Equal(t, "3 hours ago", GetTimeAgo(now.Add(-3*time.Hour)))
	assert.Equal(t, "1 day ago", GetTimeAgo(now.Add(-25*time.Hour)))
	assert.Equal(t, "4 days ago", GetTimeAgo(now.Add(-4*24*time.Hour)))
}

func TestGetRecentActivity_NewestFirst(t *testing.T) {
	svc, db := newStatsService(t)

	company := createCompany(t, db, "Acme")
	createWorker(t, db, "Alice", "alice@example.com")
	createEmployer(t, db, "emma@example.com", company.ID)
	createJob(t, db, "Backend Engineer", &company.ID)

	items, err := svc.GetRecentActivity()
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].OccurredAt.Before(items[i].OccurredAt))
	}

	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	assert.Contains(t, titles, "New job posted")
	assert.Contains(t, titles, "New candidate joined")
	assert.Contains(t, titles, "New employer joined")
	assert.Contains(t, titles, "New company registered")
}

func TestGetDashboardStats_Smoke(t *testing.T) {
	svc, db := newStatsService(t)

	company := createCompany(t, db, "Acme")
	worker := createWorker(t, db, "Alice", "alice@example.com")
	createEmployer(t, db, "emma@example.com", company.ID)
	job := createJob(t, db, "Backend Engineer", &company.ID)
	require.NoError(t, db.Create(&models.Application{
		JobID:    job.ID,
		WorkerID: worker.ID,
		Status:   models.ApplicationStatusPending,
	}).Error)
	require.NoError(t, svc.TrackVisit("web"))
	require.NoError(t, svc.TrackDownload("apple"))

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalWorkers)
	assert.Equal(t, int64(1), stats.TotalEmployers)
	assert.Equal(t, int64(1), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	assert.Equal(t, int64(1), stats.TotalApplications)
	assert.Equal(t, int64(1), stats.PendingApplications)
	assert.Equal(t, int64(1), stats.TotalCompanies)
	assert.Equal(t, int64(1), stats.TotalVisits)
	assert.Equal(t, int64(1), stats.VisitsToday)
	assert.Equal(t, int64(1), stats.AppleDownloads)
	assert.Equal(t, int64(0), stats.AndroidDownloads)

	assert.Len(t, stats.MonthlyJobStats, 6)
	assert.Len(t, stats.MonthlyUserStats, 6)
	assert.Len(t, stats.DailyVisitStats, 30)
	require.NotEmpty(t, stats.RecentJobs)
	assert.Equal(t, job.ID, stats.RecentJobs[0].ID)
	require.NotEmpty(t, stats.JobTypeStats)
	assert.Equal(t, int64(1), stats.JobTypeStats[0].Count)
}
