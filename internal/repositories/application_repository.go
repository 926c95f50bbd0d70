package repositories

import (
	"errors"
	"strings"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and worker")
)

type ApplicationRepository interface {
	WithTx(tx *gorm.DB) ApplicationRepository

	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndWorker(jobID, workerID string) (*models.Application, error)
	FindByWorker(workerID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	FindAll() ([]models.Application, error)
	Update(application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) WithTx(tx *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: tx}
}

func (r *applicationRepository) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		// The (job_id, worker_id) unique index closes the window between
		// the duplicate pre-check and the insert.
		return ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJobAndWorker(jobID, workerID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "job_id = ? AND worker_id = ?", jobID, workerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByWorker(workerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindAll() ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) Update(application *models.Application) error {
	return r.db.Save(application).Error
}

// isUniqueViolation matches the drivers we run on: gorm's translated error,
// postgres 23505 and sqlite's constraint message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
