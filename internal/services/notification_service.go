package services

import (
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"
)

// Notifier receives every freshly committed notification. Implementations
// may forward it out-of-band (email); delivery failures never affect the
// request that created the notification.
type Notifier interface {
	NotificationCreated(notification *models.Notification)
}

// NoopNotifier drops everything. Used when no SMTP is configured and in
// tests.
type NoopNotifier struct{}

func (NoopNotifier) NotificationCreated(*models.Notification) {}

type NotificationService interface {
	GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	GetUnreadCount(userID string) (int64, error)
	MarkAsRead(notificationID string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(notificationID string) error
	// ClearRead deletes the user's read notifications; unread rows survive.
	ClearRead(userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindUserNotifications(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkAsRead(notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(notificationID, time.Now().UTC()); err != nil {
		return translateNotificationErr(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID, time.Now().UTC()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) DeleteNotification(notificationID string) error {
	if err := s.notificationRepo.Delete(notificationID); err != nil {
		return translateNotificationErr(err)
	}
	return nil
}

func (s *notificationService) ClearRead(userID string) error {
	if err := s.notificationRepo.DeleteRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		IsRead:      n.IsRead,
		CreatedDate: n.CreatedAt,
		ReadDate:    n.ReadDate,
		RelatedID:   n.RelatedID,
		JobID:       n.JobID,
		JobTitle:    n.JobTitle,
		Data:        n.Data,
	}
}

func translateNotificationErr(err error) error {
	if apperrors.Is(err, repositories.ErrNotificationNotFound) {
		return apperrors.NotificationNotFound()
	}
	return apperrors.InternalError(err)
}
