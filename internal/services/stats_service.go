package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

type StatsService interface {
	GetPlatformStats() (*dto.PlatformStats, error)
	GetRecentActivity() ([]*dto.ActivityItem, error)
	TrackVisit(platform string) error
	TrackDownload(platform string) error
	GetDashboardStats() (*dto.DashboardStats, error)
}

type statsService struct {
	statsRepo  repositories.StatsRepository
	metricRepo repositories.MetricRepository
}

func NewStatsService(statsRepo repositories.StatsRepository, metricRepo repositories.MetricRepository) StatsService {
	return &statsService{statsRepo: statsRepo, metricRepo: metricRepo}
}

func (s *statsService) GetPlatformStats() (*dto.PlatformStats, error) {
	activeJobs, err := s.statsRepo.CountJobs(true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	workers, err := s.statsRepo.CountActiveWorkers()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	companies, err := s.statsRepo.CountActiveCompanies()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PlatformStats{
		ActiveJobs:      activeJobs,
		TotalCandidates: workers,
		TotalCompanies:  companies,
	}, nil
}

func (s *statsService) GetRecentActivity() ([]*dto.ActivityItem, error) {
	since := time.Now().UTC().AddDate(0, 0, -7)

	var items []*dto.ActivityItem

	jobs, err := s.statsRepo.JobsSince(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range jobs {
		j := &jobs[i]
		items = append(items, &dto.ActivityItem{
			Kind:        "job",
			Title:       "New job posted",
			Description: fmt.Sprintf("%s at %s", j.Title, j.Company),
			Time:        GetTimeAgo(j.CreatedAt),
			OccurredAt:  j.CreatedAt,
		})
	}

	users, err := s.statsRepo.RecentUsers(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range users {
		u := &users[i]
		kind := "user"
		title := "New candidate joined"
		if u.UserType == models.UserTypeEmployer {
			title = "New employer joined"
		}
		items = append(items, &dto.ActivityItem{
			Kind:        kind,
			Title:       title,
			Description: u.FullName(),
			Time:        GetTimeAgo(u.CreatedAt),
			OccurredAt:  u.CreatedAt,
		})
	}

	companies, err := s.statsRepo.RecentCompanies(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range companies {
		c := &companies[i]
		items = append(items, &dto.ActivityItem{
			Kind:        "company",
			Title:       "New company registered",
			Description: c.Name,
			Time:        GetTimeAgo(c.CreatedAt),
			OccurredAt:  c.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	return items, nil
}

func (s *statsService) TrackVisit(platform string) error {
	metric := &models.AppMetric{
		MetricType: models.MetricTypeVisit,
		Platform:   NormalizePlatform(platform),
	}
	if err := s.metricRepo.Create(metric); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *statsService) TrackDownload(platform string) error {
	normalized := NormalizePlatform(platform)
	if normalized != "Apple" && normalized != "Android" {
		return apperrors.NewBadRequestError("download platform must be Apple or Android")
	}
	metric := &models.AppMetric{
		MetricType: models.MetricTypeDownload,
		Platform:   normalized,
	}
	if err := s.metricRepo.Create(metric); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *statsService) GetDashboardStats() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	now := time.Now().UTC()

	var err error
	if stats.TotalWorkers, err = s.statsRepo.CountUsersByType(models.UserTypeWorker); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalEmployers, err = s.statsRepo.CountUsersByType(models.UserTypeEmployer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalJobs, err = s.statsRepo.CountJobs(false); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveJobs, err = s.statsRepo.CountJobs(true); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalApplications, err = s.statsRepo.CountApplications(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingApplications, err = s.statsRepo.CountApplicationsByStatus(models.ApplicationStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCompanies, err = s.statsRepo.CountCompanies(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalMessages, err = s.statsRepo.CountMessages(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalNotifications, err = s.statsRepo.CountNotifications(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalAds, err = s.statsRepo.CountAdvertisements(false); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveAds, err = s.statsRepo.CountAdvertisements(true); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if stats.TotalVisits, err = s.metricRepo.CountByType(models.MetricTypeVisit); err != nil {
		return nil, apperrors.InternalError(err)
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if stats.VisitsToday, err = s.metricRepo.CountByTypeSince(models.MetricTypeVisit, startOfDay); err != nil {
		return nil, apperrors.InternalError(err)
	}
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if stats.VisitsThisMonth, err = s.metricRepo.CountByTypeSince(models.MetricTypeVisit, startOfMonth); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.AppleDownloads, err = s.metricRepo.CountDownloadsByPlatform("Apple", "iOS"); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.AndroidDownloads, err = s.metricRepo.CountDownloadsByPlatform("Android"); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recentJobs, err := s.statsRepo.RecentJobs(5)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range recentJobs {
		stats.RecentJobs = append(stats.RecentJobs, buildJobResponse(&recentJobs[i]))
	}

	recentApplications, err := s.statsRepo.RecentApplications(5)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.RecentApplications = buildApplicationResponses(recentApplications)

	jobTypes, err := s.statsRepo.GroupJobsByType()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.JobTypeStats = toGroupBuckets(jobTypes)

	appStatuses, err := s.statsRepo.GroupApplicationsByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.ApplicationStatusStats = toGroupBuckets(appStatuses)

	sixMonthsAgo := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)

	jobTimes, err := s.statsRepo.JobCreationTimes(sixMonthsAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.MonthlyJobStats = BucketByMonth(jobTimes, sixMonthsAgo, now)

	userTimes, err := s.statsRepo.UserCreationTimes(sixMonthsAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.MonthlyUserStats = BucketByMonth(userTimes, sixMonthsAgo, now)

	applicationTimes, err := s.statsRepo.ApplicationCreationTimes(sixMonthsAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.MonthlyApplicationStats = BucketByMonth(applicationTimes, sixMonthsAgo, now)

	thirtyDaysAgo := startOfDay.AddDate(0, 0, -29)
	visitTimes, err := s.metricRepo.FindCreationTimes(models.MetricTypeVisit, thirtyDaysAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.DailyVisitStats = BucketByDay(visitTimes, thirtyDaysAgo, now)

	return stats, nil
}

// NormalizePlatform canonicalizes client-reported platform names. "ios" and
// "apple" both map to Apple; anything outside the known set becomes Unknown.
func NormalizePlatform(platform string) string {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "web":
		return "Web"
	case "android":
		return "Android"
	case "ios", "apple":
		return "Apple"
	default:
		return "Unknown"
	}
}

// BucketByMonth counts timestamps per calendar month over [from, to],
// emitting every month in the range even when its count is zero.
func BucketByMonth(times []time.Time, from, to time.Time) []dto.MonthBucket {
	counts := make(map[string]int64)
	for _, t := range times {
		t = t.UTC()
		counts[fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))]++
	}

	var buckets []dto.MonthBucket
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		key := fmt.Sprintf("%04d-%02d", cursor.Year(), int(cursor.Month()))
		buckets = append(buckets, dto.MonthBucket{
			Year:  cursor.Year(),
			Month: int(cursor.Month()),
			Count: counts[key],
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return buckets
}

// BucketByDay counts timestamps per calendar day over [from, to], emitting
// every day in the range even when its count is zero.
func BucketByDay(times []time.Time, from, to time.Time) []dto.DayBucket {
	counts := make(map[string]int64)
	for _, t := range times {
		counts[t.UTC().Format("2006-01-02")]++
	}

	var buckets []dto.DayBucket
	cursor := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		key := cursor.Format("2006-01-02")
		buckets = append(buckets, dto.DayBucket{Date: key, Count: counts[key]})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return buckets
}

// GetTimeAgo humanizes how long ago a timestamp occurred.
func GetTimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}

func toGroupBuckets(groups []repositories.GroupCount) []dto.GroupBucket {
	buckets := make([]dto.GroupBucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, dto.GroupBucket{Key: g.Key, Count: g.Count})
	}
	return buckets
}
