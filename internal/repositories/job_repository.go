package repositories

import (
	"errors"
	"strings"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobCriteria filters job listings.
type JobCriteria struct {
	Search     string `form:"search"`
	Location   string `form:"location"`
	Type       string `form:"type"`
	RemoteOnly bool   `form:"remoteOnly"`
	ActiveOnly bool   `form:"activeOnly"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

type JobRepository interface {
	WithTx(tx *gorm.DB) JobRepository

	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	Search(criteria JobCriteria) ([]models.Job, int64, error)

	// Distinct filter values across active jobs, feeding the search UI.
	DistinctLocations() ([]string, error)
	DistinctTypes() ([]string, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) WithTx(tx *gorm.DB) JobRepository {
	return &jobRepository{db: tx}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) DistinctLocations() ([]string, error) {
	return r.distinctColumn("location")
}

func (r *jobRepository) DistinctTypes() ([]string, error) {
	return r.distinctColumn("type")
}

func (r *jobRepository) distinctColumn(column string) ([]string, error) {
	var values []string
	err := r.db.Model(&models.Job{}).
		Where("is_active = ?", true).
		Distinct(column).
		Order(column + " ASC").
		Pluck(column, &values).Error
	return values, err
}

func (r *jobRepository) Search(criteria JobCriteria) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if criteria.Search != "" {
		pattern := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if criteria.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(criteria.Location)+"%")
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.RemoteOnly {
		query = query.Where("is_remote = ?", true)
	}
	if criteria.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&jobs).Error

	return jobs, total, err
}
