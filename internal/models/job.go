package models

type Job struct {
	BaseModel
	Title            string  `gorm:"size:200;not null" json:"title"`
	Company          string  `gorm:"size:100;not null" json:"company"` // display name, denormalized
	Location         string  `gorm:"size:100;not null" json:"location"`
	Description      string  `gorm:"size:2000;not null" json:"description"`
	Salary           string  `gorm:"size:50" json:"salary"`
	Type             string  `gorm:"size:20;not null" json:"type"` // Full-time, Part-time, Contract, Freelance
	Industry         *string `gorm:"size:50" json:"industry"`
	ExperienceLevel  *string `gorm:"size:20" json:"experienceLevel"`
	IsRemote         bool    `json:"isRemote"`
	IsUrgentlyHiring bool    `json:"isUrgentlyHiring"`
	IsSeasonal       bool    `json:"isSeasonal"`
	IsActive         bool    `json:"isActive"`

	CompanyID *string  `gorm:"index" json:"companyId"`
	Owner     *Company `gorm:"foreignKey:CompanyID" json:"-"`
}
