package models

type User struct {
	BaseModel
	FirstName    string   `gorm:"size:50;not null" json:"firstName"`
	LastName     string   `gorm:"size:50;not null" json:"lastName"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string   `gorm:"size:20" json:"phone"`
	Location     string   `gorm:"size:100" json:"location"`
	Bio          string   `gorm:"size:1000" json:"bio"`
	Skills       string   `gorm:"size:500" json:"skills"`
	Title        string   `gorm:"size:100" json:"title"`
	UserType     UserType `gorm:"size:10" json:"userType"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`

	// Worker-specific fields
	ResumeURL              *string `gorm:"size:500" json:"resumeUrl"`
	DesiredJobTitle        *string `gorm:"size:100" json:"desiredJobTitle"`
	DesiredLocation        *string `gorm:"size:200" json:"desiredLocation"`
	DesiredSalaryRange     *string `gorm:"size:50" json:"desiredSalaryRange"`
	DesiredJobType         *string `gorm:"size:50" json:"desiredJobType"`         // Full-time, Part-time, Contract, Freelance
	DesiredExperienceLevel *string `gorm:"size:50" json:"desiredExperienceLevel"` // Entry, Mid, Senior
	OpenToRemote           bool    `json:"openToRemote"`
	PreferredIndustries    *string `gorm:"size:200" json:"preferredIndustries"`

	// No column defaults on the flags: registration sets them, and a
	// default would override an explicit false on insert.
	IsActive bool `json:"isActive"`
	IsAdmin  bool `json:"isAdmin"`

	CompanyID *string  `gorm:"index" json:"companyId"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// FullName is the display name denormalized onto messages and applications.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
