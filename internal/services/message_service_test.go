package services

import (
	"encoding/json"
	"testing"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageService(t *testing.T, db *gorm.DB, notifier Notifier) MessageService {
	t.Helper()
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return NewMessageService(
		db,
		repositories.NewMessageRepository(db),
		repositories.NewNotificationRepository(db),
		repositories.NewJobRepository(db),
		notifier,
	)
}

func sendRequest(senderID, receiverID string) *dto.SendMessageRequest {
	return &dto.SendMessageRequest{
		SenderID:     senderID,
		SenderName:   "Alice Worker",
		SenderType:   "Worker",
		ReceiverID:   receiverID,
		ReceiverName: "Emma Employer",
		ReceiverType: "Employer",
		Content:      "Hello, is the position still open?",
	}
}

func TestSendMessage_DerivesConversationIDAndNotifiesReceiver(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := newMessageService(t, db, notifier)

	resp, err := svc.SendMessage(sendRequest("worker-1", "employer-1"))
	require.NoError(t, err)

	assert.Equal(t, "employer-1_worker-1", resp.ConversationID)
	assert.False(t, resp.IsRead)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "employer-1", notifications[0].UserID)
	assert.Equal(t, models.NotificationTypeNewMessage, notifications[0].Type)
	assert.Equal(t, "You have a new message", notifications[0].Title)
	require.NotNil(t, notifications[0].Message)
	assert.Equal(t, "Alice Worker sent you a message", *notifications[0].Message)
	assert.Equal(t, 1, notifier.count())

	var payload map[string]string
	require.NoError(t, json.Unmarshal(notifications[0].Data, &payload))
	assert.Equal(t, "employer-1_worker-1", payload["conversationId"])
	assert.Equal(t, resp.ID, payload["messageId"])
	assert.Equal(t, "worker-1", payload["senderId"])
}

func TestSendMessage_TrustsCallerConversationID(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)

	custom := "legacy-thread-42"
	req := sendRequest("worker-1", "employer-1")
	req.ConversationID = &custom

	resp, err := svc.SendMessage(req)
	require.NoError(t, err)
	assert.Equal(t, custom, resp.ConversationID)
}

func TestSendMessage_JobReferenceEnrichesNotification(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)
	job := createJob(t, db, "Backend Engineer", nil)

	req := sendRequest("worker-1", "employer-1")
	req.JobID = &job.ID

	resp, err := svc.SendMessage(req)
	require.NoError(t, err)
	assert.Equal(t, "employer-1_worker-1_job_"+job.ID, resp.ConversationID)

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	require.NotNil(t, notification.Message)
	assert.Equal(t, "Alice Worker sent you a message about Backend Engineer", *notification.Message)
	require.NotNil(t, notification.JobTitle)
	assert.Equal(t, "Backend Engineer", *notification.JobTitle)
}

func TestMarkMessageAsRead_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)

	resp, err := svc.SendMessage(sendRequest("worker-1", "employer-1"))
	require.NoError(t, err)

	require.NoError(t, svc.MarkMessageAsRead(resp.ID))

	var first models.Message
	require.NoError(t, db.First(&first, "id = ?", resp.ID).Error)
	require.True(t, first.IsRead)
	require.NotNil(t, first.ReadDate)
	firstReadDate := *first.ReadDate

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.MarkMessageAsRead(resp.ID))

	var second models.Message
	require.NoError(t, db.First(&second, "id = ?", resp.ID).Error)
	require.NotNil(t, second.ReadDate)
	assert.True(t, firstReadDate.Equal(*second.ReadDate), "re-marking must not move ReadDate")
}

func TestMarkMessageAsRead_UnknownMessage(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)

	err := svc.MarkMessageAsRead("missing")
	assertHTTPCode(t, err, 404)
}

func TestGetUserConversations_AggregatesThreads(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)

	// Two unread messages from employer-1, then a newer thread with
	// employer-2 where the worker spoke last.
	reqOne := sendRequest("employer-1", "worker-1")
	reqOne.SenderName, reqOne.SenderType = "Emma Employer", "Employer"
	reqOne.ReceiverName, reqOne.ReceiverType = "Alice Worker", "Worker"
	_, err := svc.SendMessage(reqOne)
	require.NoError(t, err)
	_, err = svc.SendMessage(reqOne)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	reqTwo := sendRequest("worker-1", "employer-2")
	_, err = svc.SendMessage(reqTwo)
	require.NoError(t, err)

	summaries, err := svc.GetUserConversations("worker-1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest thread first
	newest := summaries[0]
	assert.Equal(t, "employer-2", newest.OtherParticipantID)
	assert.Equal(t, 0, newest.UnreadCount)
	assert.False(t, newest.HasUnreadMessages)

	older := summaries[1]
	assert.Equal(t, "employer-1", older.OtherParticipantID)
	assert.Equal(t, "Emma Employer", older.OtherParticipantName)
	assert.Equal(t, 2, older.UnreadCount)
	assert.True(t, older.HasUnreadMessages)
}

func TestMarkConversationAsRead_OnlyTouchesReceiverSide(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)

	// worker-1 and employer-1 both send in the same thread
	_, err := svc.SendMessage(sendRequest("worker-1", "employer-1"))
	require.NoError(t, err)

	back := sendRequest("employer-1", "worker-1")
	resp, err := svc.SendMessage(back)
	require.NoError(t, err)
	conversationID := resp.ConversationID

	require.NoError(t, svc.MarkConversationAsRead(conversationID, "worker-1"))

	var messages []models.Message
	require.NoError(t, db.Order("sent_date ASC").Find(&messages).Error)
	require.Len(t, messages, 2)
	for _, m := range messages {
		if m.ReceiverID == "worker-1" {
			assert.True(t, m.IsRead)
			assert.NotNil(t, m.ReadDate)
		} else {
			assert.False(t, m.IsRead, "the other side's unread messages must survive")
			assert.Nil(t, m.ReadDate)
		}
	}
}

func TestGetConversationMessages_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db, nil)

	req := sendRequest("worker-1", "employer-1")
	for i := 0; i < 3; i++ {
		_, err := svc.SendMessage(req)
		require.NoError(t, err)
	}

	page, err := svc.GetConversationMessages("employer-1_worker-1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Messages, 2)
}
