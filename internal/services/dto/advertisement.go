package dto

import "time"

// CreateAdvertisementRequest comes in as multipart form data; the media
// file itself is handled by the handler and passed to the service as a
// stored URL.
type CreateAdvertisementRequest struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"max=1000"`

	Platform  string `form:"platform" validate:"omitempty,max=50"`
	Placement string `form:"placement" validate:"omitempty,max=30"`
	Position  string `form:"position" validate:"omitempty,max=20"`

	FadeDurationSeconds *int  `form:"fadeDurationSeconds"`
	IsDismissible       *bool `form:"isDismissible"`

	TargetURL    *string `form:"targetUrl" validate:"omitempty,max=500"`
	BusinessName *string `form:"businessName" validate:"omitempty,max=100"`

	DisplayOrder *int       `form:"displayOrder"`
	IsActive     *bool      `form:"isActive"`
	StartDate    *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate      *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`

	CreatedBy string `form:"createdBy" validate:"omitempty,max=100"`
}

type UpdateAdvertisementRequest struct {
	Title       *string `form:"title" validate:"omitempty,max=200"`
	Description *string `form:"description" validate:"omitempty,max=1000"`

	Platform  *string `form:"platform" validate:"omitempty,max=50"`
	Placement *string `form:"placement" validate:"omitempty,max=30"`
	Position  *string `form:"position" validate:"omitempty,max=20"`

	FadeDurationSeconds *int  `form:"fadeDurationSeconds"`
	IsDismissible       *bool `form:"isDismissible"`

	TargetURL    *string `form:"targetUrl" validate:"omitempty,max=500"`
	BusinessName *string `form:"businessName" validate:"omitempty,max=100"`

	DisplayOrder *int       `form:"displayOrder"`
	IsActive     *bool      `form:"isActive"`
	StartDate    *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate      *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
}

// AdSearchRequest is the delivery-side query.
type AdSearchRequest struct {
	Platform   string `form:"platform"`
	Placement  string `form:"placement"`
	ActiveOnly bool   `form:"activeOnly"`
}

// StoredMedia describes an uploaded ad asset after it has been written to
// storage.
type StoredMedia struct {
	Type     string // Image or Video
	FileURL  string
	FileName string
}
