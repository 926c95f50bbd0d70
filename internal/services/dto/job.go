package dto

import "time"

type CreateJobRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Company         string  `json:"company" validate:"required,max=100"`
	Location        string  `json:"location" validate:"required,max=100"`
	Description     string  `json:"description" validate:"required,max=2000"`
	Salary          string  `json:"salary" validate:"max=50"`
	Type            string  `json:"type" validate:"required,max=20"`
	Industry        *string `json:"industry" validate:"omitempty,max=50"`
	ExperienceLevel *string `json:"experienceLevel" validate:"omitempty,max=20"`
	IsRemote        bool    `json:"isRemote"`
	IsUrgentlyHiring bool   `json:"isUrgentlyHiring"`
	IsSeasonal      bool    `json:"isSeasonal"`
	CompanyID       *string `json:"companyId"`
}

type UpdateJobRequest struct {
	Title           *string `json:"title" validate:"omitempty,max=200"`
	Location        *string `json:"location" validate:"omitempty,max=100"`
	Description     *string `json:"description" validate:"omitempty,max=2000"`
	Salary          *string `json:"salary" validate:"omitempty,max=50"`
	Type            *string `json:"type" validate:"omitempty,max=20"`
	Industry        *string `json:"industry" validate:"omitempty,max=50"`
	ExperienceLevel *string `json:"experienceLevel" validate:"omitempty,max=20"`
	IsRemote        *bool   `json:"isRemote"`
	IsUrgentlyHiring *bool  `json:"isUrgentlyHiring"`
	IsSeasonal      *bool   `json:"isSeasonal"`
	IsActive        *bool   `json:"isActive"`
}

type JobResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Salary          string    `json:"salary"`
	Type            string    `json:"type"`
	Industry        *string   `json:"industry"`
	ExperienceLevel *string   `json:"experienceLevel"`
	IsRemote        bool      `json:"isRemote"`
	IsUrgentlyHiring bool     `json:"isUrgentlyHiring"`
	IsSeasonal      bool      `json:"isSeasonal"`
	IsActive        bool      `json:"isActive"`
	CompanyID       *string   `json:"companyId"`
	PostedDate      time.Time `json:"postedDate"`
	UpdatedDate     time.Time `json:"updatedDate"`
}

type JobListResponse struct {
	Jobs     []*JobResponse `json:"jobs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
