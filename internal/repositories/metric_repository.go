package repositories

import (
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

type MetricRepository interface {
	WithTx(tx *gorm.DB) MetricRepository

	Create(metric *models.AppMetric) error
	CountByType(metricType models.MetricType) (int64, error)
	CountByTypeSince(metricType models.MetricType, since time.Time) (int64, error)
	CountDownloadsByPlatform(platforms ...string) (int64, error)

	// FindCreationTimes returns the CreatedAt stamps of every metric of the
	// given type since the cutoff. The dashboard buckets them in Go, which
	// keeps the query portable across postgres and sqlite.
	FindCreationTimes(metricType models.MetricType, since time.Time) ([]time.Time, error)
}

type metricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

func (r *metricRepository) WithTx(tx *gorm.DB) MetricRepository {
	return &metricRepository{db: tx}
}

func (r *metricRepository) Create(metric *models.AppMetric) error {
	return r.db.Create(metric).Error
}

func (r *metricRepository) CountByType(metricType models.MetricType) (int64, error) {
	var count int64
	err := r.db.Model(&models.AppMetric{}).
		Where("metric_type = ?", metricType).
		Count(&count).Error
	return count, err
}

func (r *metricRepository) CountByTypeSince(metricType models.MetricType, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.AppMetric{}).
		Where("metric_type = ? AND created_at >= ?", metricType, since).
		Count(&count).Error
	return count, err
}

func (r *metricRepository) CountDownloadsByPlatform(platforms ...string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AppMetric{}).
		Where("metric_type = ? AND platform IN ?", models.MetricTypeDownload, platforms).
		Count(&count).Error
	return count, err
}

func (r *metricRepository) FindCreationTimes(metricType models.MetricType, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&models.AppMetric{}).
		Where("metric_type = ? AND created_at >= ?", metricType, since).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}
