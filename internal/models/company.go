package models

type Company struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Location    string `gorm:"size:100" json:"location"`
	Industry    string `gorm:"size:100" json:"industry"`
	Size        string `gorm:"size:20" json:"size"`
	Website     string `gorm:"size:200" json:"website"`
	Email       string `gorm:"size:100" json:"email"`
	IsActive    bool   `json:"isActive"`
}
