package models

import "time"

// Advertisement is scheduled promotional content with placement and
// targeting filters plus raw view/click counters.
type Advertisement struct {
	BaseModel
	Title       string  `gorm:"size:200;not null" json:"title"`
	Description string  `gorm:"size:1000" json:"description"`
	Type        string  `gorm:"size:20" json:"type"` // Image, Video
	FileURL     string  `gorm:"size:500" json:"fileUrl"`
	FileName    *string `gorm:"size:100" json:"fileName"`

	// Defaults are applied by the service before create. Column defaults
	// would silently overwrite explicit false/zero values on insert.
	Platform  AdPlatform `gorm:"size:50" json:"platform"`  // Mobile, Web, Both
	Placement string     `gorm:"size:30" json:"placement"` // Popup, PinnedFade
	Position  string     `gorm:"size:20" json:"position"`

	FadeDurationSeconds int  `json:"fadeDurationSeconds"`
	IsDismissible       bool `json:"isDismissible"`

	TargetURL    *string `gorm:"size:500" json:"targetUrl"`
	BusinessName *string `gorm:"size:100" json:"businessName"`

	DisplayOrder int        `json:"displayOrder"`
	IsActive     bool       `json:"isActive"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`

	// Raw counters. Repeated calls from the same viewer keep incrementing;
	// there is no deduplication.
	ViewCount  int `json:"viewCount"`
	ClickCount int `json:"clickCount"`

	CreatedBy string `gorm:"size:100" json:"createdBy"`
}

// AppMetric is a single tracked visit or download event.
type AppMetric struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	MetricType MetricType `gorm:"size:30;not null;index" json:"metricType"` // Visit, Download
	Platform   string     `gorm:"size:30" json:"platform"`                  // Web, Android, Apple, Unknown
	CreatedAt  time.Time  `json:"createdDate"`
}
