package app

import (
	"errors"

	"gigboard_backend/internal/auth"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

const demoEmployerEmail = "employer.test@example.com"

// SeedDemoEmployer creates the demo company and employer account used by
// the admin employer listing. Safe to call on every startup: when the
// account already exists nothing is written.
func SeedDemoEmployer(db *gorm.DB) error {
	var existing models.User
	err := db.First(&existing, "email = ?", demoEmployerEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var company models.Company
		err := tx.First(&company, "email = ?", demoEmployerEmail).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			company = models.Company{
				Name:        "Test Employer Company",
				Description: "Seeded company for the admin employer tab",
				Location:    "Remote",
				Industry:    "Technology",
				Size:        "10-50",
				Website:     "https://example.com",
				Email:       demoEmployerEmail,
				IsActive:    true,
			}
			if err := tx.Create(&company).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		hash, err := auth.HashPassword("password123")
		if err != nil {
			return err
		}

		user := models.User{
			FirstName:    "Test",
			LastName:     "Employer",
			Email:        demoEmployerEmail,
			Phone:        "555-0202",
			Location:     "Remote",
			Title:        "Hiring Manager",
			UserType:     models.UserTypeEmployer,
			CompanyID:    &company.ID,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		logger.Info("seeded demo employer account", "email", demoEmployerEmail)
		return nil
	})
}
