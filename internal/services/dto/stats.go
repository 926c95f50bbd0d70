package dto

import "time"

// PlatformStats is the public landing-page rollup.
type PlatformStats struct {
	ActiveJobs      int64 `json:"activeJobs"`
	TotalCandidates int64 `json:"totalCandidates"`
	TotalCompanies  int64 `json:"totalCompanies"`
}

type TrackMetricRequest struct {
	Platform string `json:"platform"`
}

// ActivityItem is one entry of the recent-activity feed.
type ActivityItem struct {
	Kind        string    `json:"kind"` // job, user, company, application
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Time        string    `json:"time"` // humanized, e.g. "2 hours ago"
	OccurredAt  time.Time `json:"occurredAt"`
}

// MonthBucket is one month of a time series.
type MonthBucket struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// DayBucket is one day of a time series.
type DayBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type GroupBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	TotalWorkers        int64 `json:"totalWorkers"`
	TotalEmployers      int64 `json:"totalEmployers"`
	TotalJobs           int64 `json:"totalJobs"`
	ActiveJobs          int64 `json:"activeJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	PendingApplications int64 `json:"pendingApplications"`
	TotalCompanies      int64 `json:"totalCompanies"`
	TotalMessages       int64 `json:"totalMessages"`
	TotalNotifications  int64 `json:"totalNotifications"`
	TotalAds            int64 `json:"totalAds"`
	ActiveAds           int64 `json:"activeAds"`

	TotalVisits      int64 `json:"totalVisits"`
	VisitsToday      int64 `json:"visitsToday"`
	VisitsThisMonth  int64 `json:"visitsThisMonth"`
	AppleDownloads   int64 `json:"appleDownloads"`
	AndroidDownloads int64 `json:"androidDownloads"`

	RecentJobs         []*JobResponse         `json:"recentJobs"`
	RecentApplications []*ApplicationResponse `json:"recentApplications"`

	JobTypeStats           []GroupBucket `json:"jobTypeStats"`
	ApplicationStatusStats []GroupBucket `json:"applicationStatusStats"`

	MonthlyJobStats         []MonthBucket `json:"monthlyJobStats"`
	MonthlyUserStats        []MonthBucket `json:"monthlyUserStats"`
	MonthlyApplicationStats []MonthBucket `json:"monthlyApplicationStats"`
	DailyVisitStats         []DayBucket   `json:"dailyVisitStats"`
}
