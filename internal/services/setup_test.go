package services

import (
	"mime/multipart"
	"sync"
	"testing"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/storage"
	"gigboard_backend/pkg/apperrors"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// assertHTTPCode checks that err is an AppError mapped to the given status.
func assertHTTPCode(t *testing.T, err error, want int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	require.Equal(t, want, appErr.HTTPCode)
}

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Message{},
		&models.Notification{},
		&models.Advertisement{},
		&models.AppMetric{},
	))
	return db
}

func createCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, Email: name + "@example.com", IsActive: true}
	require.NoError(t, db.Create(company).Error)
	return company
}

func createWorker(t *testing.T, db *gorm.DB, firstName, email string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    firstName,
		LastName:     "Worker",
		Email:        email,
		Phone:        "555-0100",
		Location:     "Remote",
		Skills:       "Go, SQL",
		Title:        "Engineer",
		UserType:     models.UserTypeWorker,
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createEmployer(t *testing.T, db *gorm.DB, email string, companyID string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    "Emma",
		LastName:     "Employer",
		Email:        email,
		UserType:     models.UserTypeEmployer,
		PasswordHash: "x",
		IsActive:     true,
		CompanyID:    &companyID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createJob(t *testing.T, db *gorm.DB, title string, companyID *string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Company:     "Acme",
		Location:    "Remote",
		Description: "Test listing",
		Type:        "Full-time",
		IsActive:    true,
		CompanyID:   companyID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// recordingNotifier captures every notification handed to it.
type recordingNotifier struct {
	mu       sync.Mutex
	received []*models.Notification
}

func (r *recordingNotifier) NotificationCreated(n *models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, n)
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

// memStorage is an in-memory Storage for tests. It never touches disk.
type memStorage struct {
	saved []string
}

func (m *memStorage) Save(file *multipart.FileHeader, subdir string) (*storage.StoredFile, error) {
	m.saved = append(m.saved, file.Filename)
	return &storage.StoredFile{
		URL:  "/uploads/" + subdir + "/" + file.Filename,
		Path: "/tmp/" + subdir + "/" + file.Filename,
	}, nil
}

func (m *memStorage) Delete(path string) error { return nil }
