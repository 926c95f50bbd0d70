package services

import (
	"net/http"
	"testing"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedNotification(t *testing.T, db *gorm.DB, userID string, read bool) *models.Notification {
	t.Helper()
	n := &models.Notification{
		UserID: userID,
		Type:   models.NotificationTypeNewMessage,
		Title:  "You have a new message",
		IsRead: read,
	}
	if read {
		readAt := time.Now().UTC()
		n.ReadDate = &readAt
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestGetUserNotifications_UnreadOnlyAndCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", true)
	seedNotification(t, db, "user-2", false)

	all, err := svc.GetUserNotifications("user-1", repositories.NotificationCriteria{})
	require.NoError(t, err)
	assert.Len(t, all.Notifications, 3)
	assert.Equal(t, int64(2), all.UnreadCount)

	unread, err := svc.GetUserNotifications("user-1", repositories.NotificationCriteria{UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, unread.Notifications, 2)
	for _, n := range unread.Notifications {
		assert.False(t, n.IsRead)
	}
}

func TestMarkAsRead_OneWayAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	n := seedNotification(t, db, "user-1", false)
	require.NoError(t, svc.MarkAsRead(n.ID))

	var first models.Notification
	require.NoError(t, db.First(&first, "id = ?", n.ID).Error)
	require.True(t, first.IsRead)
	require.NotNil(t, first.ReadDate)
	firstReadDate := *first.ReadDate

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.MarkAsRead(n.ID))

	var second models.Notification
	require.NoError(t, db.First(&second, "id = ?", n.ID).Error)
	require.NotNil(t, second.ReadDate)
	assert.True(t, firstReadDate.Equal(*second.ReadDate))
}

func TestMarkAsRead_UnknownNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	assertHTTPCode(t, svc.MarkAsRead("missing"), http.StatusNotFound)
}

func TestMarkAllAsRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", false)
	other := seedNotification(t, db, "user-2", false)

	require.NoError(t, svc.MarkAllAsRead("user-1"))

	count, err := svc.GetUnreadCount("user-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	var untouched models.Notification
	require.NoError(t, db.First(&untouched, "id = ?", other.ID).Error)
	assert.False(t, untouched.IsRead, "other users' notifications stay unread")
}

func TestClearRead_LeavesUnreadRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	unread := seedNotification(t, db, "user-1", false)
	seedNotification(t, db, "user-1", true)
	seedNotification(t, db, "user-1", true)

	require.NoError(t, svc.ClearRead("user-1"))

	var remaining []models.Notification
	require.NoError(t, db.Where("user_id = ?", "user-1").Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, unread.ID, remaining[0].ID)
	assert.False(t, remaining[0].IsRead)
}

func TestDeleteNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	n := seedNotification(t, db, "user-1", false)
	require.NoError(t, svc.DeleteNotification(n.ID))
	assertHTTPCode(t, svc.DeleteNotification(n.ID), http.StatusNotFound)
}
