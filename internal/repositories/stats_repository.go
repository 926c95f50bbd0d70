package repositories

import (
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

// GroupCount is one bucket of a group-by rollup.
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// StatsRepository serves the read-only dashboard rollups. All queries are
// plain counts or narrow scans; buckets that would need dialect-specific
// date functions are aggregated in Go instead.
type StatsRepository interface {
	CountUsersByType(userType models.UserType) (int64, error)
	CountActiveWorkers() (int64, error)
	CountActiveCompanies() (int64, error)

	CountJobs(activeOnly bool) (int64, error)
	CountApplications() (int64, error)
	CountApplicationsByStatus(status models.ApplicationStatus) (int64, error)
	CountCompanies() (int64, error)
	CountMessages() (int64, error)
	CountNotifications() (int64, error)
	CountAdvertisements(activeOnly bool) (int64, error)

	GroupJobsByType() ([]GroupCount, error)
	GroupApplicationsByStatus() ([]GroupCount, error)

	RecentJobs(limit int) ([]models.Job, error)
	RecentApplications(limit int) ([]models.Application, error)
	RecentUsers(since time.Time) ([]models.User, error)
	RecentCompanies(since time.Time) ([]models.Company, error)
	JobsSince(since time.Time) ([]models.Job, error)

	JobCreationTimes(since time.Time) ([]time.Time, error)
	UserCreationTimes(since time.Time) ([]time.Time, error)
	ApplicationCreationTimes(since time.Time) ([]time.Time, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsersByType(userType models.UserType) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("user_type = ?", userType).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActiveWorkers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("is_active = ? AND user_type = ?", true, models.UserTypeWorker).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActiveCompanies() (int64, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountJobs(activeOnly bool) (int64, error) {
	query := r.db.Model(&models.Job{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *statsRepository) CountApplications() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountApplicationsByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountCompanies() (int64, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountMessages() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountNotifications() (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountAdvertisements(activeOnly bool) (int64, error) {
	query := r.db.Model(&models.Advertisement{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *statsRepository) GroupJobsByType() ([]GroupCount, error) {
	var groups []GroupCount
	err := r.db.Model(&models.Job{}).
		Select("type AS key, COUNT(*) AS count").
		Group("type").
		Scan(&groups).Error
	return groups, err
}

func (r *statsRepository) GroupApplicationsByStatus() ([]GroupCount, error) {
	var groups []GroupCount
	err := r.db.Model(&models.Application{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&groups).Error
	return groups, err
}

func (r *statsRepository) RecentJobs(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (r *statsRepository) RecentApplications(limit int) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Order("created_at DESC").Limit(limit).Find(&applications).Error
	return applications, err
}

func (r *statsRepository) RecentUsers(since time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("created_at >= ?", since).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *statsRepository) RecentCompanies(since time.Time) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Where("created_at >= ?", since).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *statsRepository) JobsSince(since time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("created_at >= ?", since).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *statsRepository) JobCreationTimes(since time.Time) ([]time.Time, error) {
	return r.creationTimes(&models.Job{}, since)
}

func (r *statsRepository) UserCreationTimes(since time.Time) ([]time.Time, error) {
	return r.creationTimes(&models.User{}, since)
}

func (r *statsRepository) ApplicationCreationTimes(since time.Time) ([]time.Time, error) {
	return r.creationTimes(&models.Application{}, since)
}

func (r *statsRepository) creationTimes(model interface{}, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(model).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}
