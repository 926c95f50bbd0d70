package dto

import "time"

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	Skills    string `json:"skills"`
	Title     string `json:"title"`
	UserType  string `json:"userType"`

	ResumeURL              *string `json:"resumeUrl"`
	DesiredJobTitle        *string `json:"desiredJobTitle"`
	DesiredLocation        *string `json:"desiredLocation"`
	DesiredSalaryRange     *string `json:"desiredSalaryRange"`
	DesiredJobType         *string `json:"desiredJobType"`
	DesiredExperienceLevel *string `json:"desiredExperienceLevel"`
	OpenToRemote           bool    `json:"openToRemote"`
	PreferredIndustries    *string `json:"preferredIndustries"`

	IsActive    bool      `json:"isActive"`
	IsAdmin     bool      `json:"isAdmin"`
	CompanyID   *string   `json:"companyId"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Location  *string `json:"location" validate:"omitempty,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=1000"`
	Skills    *string `json:"skills" validate:"omitempty,max=500"`
	Title     *string `json:"title" validate:"omitempty,max=100"`

	DesiredJobTitle        *string `json:"desiredJobTitle" validate:"omitempty,max=100"`
	DesiredLocation        *string `json:"desiredLocation" validate:"omitempty,max=200"`
	DesiredSalaryRange     *string `json:"desiredSalaryRange" validate:"omitempty,max=50"`
	DesiredJobType         *string `json:"desiredJobType" validate:"omitempty,max=50"`
	DesiredExperienceLevel *string `json:"desiredExperienceLevel" validate:"omitempty,max=50"`
	OpenToRemote           *bool   `json:"openToRemote"`
	PreferredIndustries    *string `json:"preferredIndustries" validate:"omitempty,max=200"`
}

type UserListResponse struct {
	Users    []*UserResponse `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}
