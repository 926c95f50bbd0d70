package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationCriteria filters a user's notification listing.
type NotificationCriteria struct {
	UnreadOnly bool `form:"unreadOnly"`
	Limit      int  `form:"limit"`
}

type NotificationRepository interface {
	WithTx(tx *gorm.DB) NotificationRepository

	Create(notification *models.Notification) error
	CreateBulk(notifications []*models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, error)
	GetUnreadCount(userID string) (int64, error)

	MarkAsRead(id string, readAt time.Time) error
	MarkAllAsRead(userID string, readAt time.Time) error

	Delete(id string) error
	// DeleteRead removes only notifications the user has already read.
	// Unread alerts survive a clear.
	DeleteRead(userID string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) WithTx(tx *gorm.DB) NotificationRepository {
	return &notificationRepository{db: tx}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) CreateBulk(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.CreateInBatches(notifications, 100).Error
}

func (r *notificationRepository) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, error) {
	query := r.db.Where("user_id = ?", userID)

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 50
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead is a one-way transition; re-marking keeps the original ReadDate.
func (r *notificationRepository) MarkAsRead(id string, readAt time.Time) error {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}

	if notification.IsRead {
		return nil
	}

	return r.db.Model(&notification).Updates(map[string]interface{}{
		"is_read":   true,
		"read_date": readAt,
	}).Error
}

func (r *notificationRepository) MarkAllAsRead(userID string, readAt time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read":   true,
			"read_date": readAt,
		}).Error
}

func (r *notificationRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) DeleteRead(userID string) error {
	return r.db.Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&models.Notification{}).Error
}
