package models

import "strings"

type UserType string
type ApplicationStatus string
type AdPlatform string
type MetricType string

const (
	UserTypeWorker   UserType = "Worker"
	UserTypeEmployer UserType = "Employer"
)

// Application statuses the platform knows templates for. The column stays a
// permissive string: clients have historically sent values outside this set
// and those are stored as-is.
const (
	ApplicationStatusPending      ApplicationStatus = "Pending"
	ApplicationStatusReviewing    ApplicationStatus = "Reviewing"
	ApplicationStatusShortlisted  ApplicationStatus = "Shortlisted"
	ApplicationStatusInterviewing ApplicationStatus = "Interviewing"
	ApplicationStatusOffer        ApplicationStatus = "Offer"
	ApplicationStatusAccepted     ApplicationStatus = "Accepted"
	ApplicationStatusRejected     ApplicationStatus = "Rejected"
)

const (
	AdPlatformMobile AdPlatform = "Mobile"
	AdPlatformWeb    AdPlatform = "Web"
	AdPlatformBoth   AdPlatform = "Both"
)

const (
	MetricTypeVisit    MetricType = "Visit"
	MetricTypeDownload MetricType = "Download"
)

var knownApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewing,
	ApplicationStatusOffer,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// ParseApplicationStatus maps a raw status string onto a known constant,
// case-insensitively. Unknown values pass through verbatim so existing
// free-text statuses keep working.
func ParseApplicationStatus(raw string) ApplicationStatus {
	for _, known := range knownApplicationStatuses {
		if strings.EqualFold(raw, string(known)) {
			return known
		}
	}
	return ApplicationStatus(raw)
}

// Known reports whether the status is one of the canonical constants.
func (s ApplicationStatus) Known() bool {
	for _, known := range knownApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}
