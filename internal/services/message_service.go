package services

import (
	"fmt"
	"sort"
	"time"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/services/dto"
	"gigboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MessageService interface {
	SendMessage(req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetMessage(messageID string) (*dto.MessageResponse, error)
	GetConversationMessages(conversationID string, page, pageSize int) (*dto.ConversationMessagesResponse, error)
	GetUserConversations(userID string) ([]*dto.ConversationSummary, error)
	MarkMessageAsRead(messageID string) error
	MarkConversationAsRead(conversationID, userID string) error
	DeleteMessage(messageID string) error
}

type messageService struct {
	db               *gorm.DB
	messageRepo      repositories.MessageRepository
	notificationRepo repositories.NotificationRepository
	jobRepo          repositories.JobRepository
	notifier         Notifier
}

func NewMessageService(
	db *gorm.DB,
	messageRepo repositories.MessageRepository,
	notificationRepo repositories.NotificationRepository,
	jobRepo repositories.JobRepository,
	notifier Notifier,
) MessageService {
	return &messageService{
		db:               db,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		jobRepo:          jobRepo,
		notifier:         notifier,
	}
}

// SendMessage persists the message and the receiver's notification in one
// transaction: either both rows land or neither does.
func (s *messageService) SendMessage(req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	conversationID := ""
	if req.ConversationID != nil && *req.ConversationID != "" {
		conversationID = *req.ConversationID
	} else {
		conversationID = DeriveConversationID(req.SenderID, req.ReceiverID, req.JobID)
	}

	message := &models.Message{
		SenderID:       req.SenderID,
		SenderName:     req.SenderName,
		SenderType:     models.UserType(req.SenderType),
		ReceiverID:     req.ReceiverID,
		ReceiverName:   req.ReceiverName,
		ReceiverType:   models.UserType(req.ReceiverType),
		Subject:        req.Subject,
		Content:        req.Content,
		JobID:          req.JobID,
		ConversationID: conversationID,
	}

	// One job lookup feeds both the notification body and the denormalized
	// job title. A missing job is not an error.
	notificationMessage := fmt.Sprintf("%s sent you a message", req.SenderName)
	var jobTitle *string
	if req.JobID != nil && *req.JobID != "" {
		if job, err := s.jobRepo.FindByID(*req.JobID); err == nil {
			jobTitle = &job.Title
			notificationMessage = fmt.Sprintf("%s sent you a message about %s", req.SenderName, job.Title)
		}
	}

	var notification *models.Notification
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.messageRepo.WithTx(tx).Create(message); err != nil {
			return err
		}

		notification = &models.Notification{
			UserID:    req.ReceiverID,
			Type:      models.NotificationTypeNewMessage,
			Title:     "You have a new message",
			Message:   &notificationMessage,
			RelatedID: &message.ID,
			JobID:     req.JobID,
			JobTitle:  jobTitle,
			Data: models.NotificationData(map[string]string{
				"conversationId": conversationID,
				"messageId":      message.ID,
				"senderId":       req.SenderID,
			}),
		}
		return s.notificationRepo.WithTx(tx).Create(notification)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.NotificationCreated(notification)

	return buildMessageResponse(message), nil
}

func (s *messageService) GetMessage(messageID string) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return nil, translateMessageErr(err)
	}
	return buildMessageResponse(message), nil
}

func (s *messageService) GetConversationMessages(conversationID string, page, pageSize int) (*dto.ConversationMessagesResponse, error) {
	messages, total, err := s.messageRepo.FindConversationMessages(conversationID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, buildMessageResponse(&messages[i]))
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	return &dto.ConversationMessagesResponse{
		Messages: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetUserConversations collapses the user's messages into one summary row
// per conversation, newest thread first.
func (s *messageService) GetUserConversations(userID string) ([]*dto.ConversationSummary, error) {
	messages, err := s.messageRepo.FindUserMessages(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	type aggregate struct {
		last        *models.Message
		unreadCount int
	}

	byConversation := make(map[string]*aggregate)
	for i := range messages {
		m := &messages[i]
		agg, ok := byConversation[m.ConversationID]
		if !ok {
			agg = &aggregate{}
			byConversation[m.ConversationID] = agg
		}
		if agg.last == nil || m.SentDate.After(agg.last.SentDate) {
			agg.last = m
		}
		if m.ReceiverID == userID && !m.IsRead {
			agg.unreadCount++
		}
	}

	summaries := make([]*dto.ConversationSummary, 0, len(byConversation))
	for conversationID, agg := range byConversation {
		last := agg.last

		summary := &dto.ConversationSummary{
			ConversationID:     conversationID,
			JobID:              last.JobID,
			LastMessageContent: last.Content,
			LastMessageDate:    last.SentDate,
			HasUnreadMessages:  agg.unreadCount > 0,
			UnreadCount:        agg.unreadCount,
		}

		// The "other" side of the thread, relative to the requesting user
		if last.SenderID == userID {
			summary.OtherParticipantID = last.ReceiverID
			summary.OtherParticipantName = last.ReceiverName
			summary.OtherParticipantType = string(last.ReceiverType)
		} else {
			summary.OtherParticipantID = last.SenderID
			summary.OtherParticipantName = last.SenderName
			summary.OtherParticipantType = string(last.SenderType)
		}

		// Deleted jobs resolve to a missing title, never a failure
		if last.JobID != nil && *last.JobID != "" {
			if job, err := s.jobRepo.FindByID(*last.JobID); err == nil {
				summary.JobTitle = &job.Title
			}
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessageDate.After(summaries[j].LastMessageDate)
	})

	return summaries, nil
}

func (s *messageService) MarkMessageAsRead(messageID string) error {
	if err := s.messageRepo.MarkAsRead(messageID, time.Now().UTC()); err != nil {
		return translateMessageErr(err)
	}
	return nil
}

func (s *messageService) MarkConversationAsRead(conversationID, userID string) error {
	if err := s.messageRepo.MarkConversationAsRead(conversationID, userID, time.Now().UTC()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *messageService) DeleteMessage(messageID string) error {
	if err := s.messageRepo.Delete(messageID); err != nil {
		return translateMessageErr(err)
	}
	return nil
}

func buildMessageResponse(m *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:             m.ID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		SenderType:     string(m.SenderType),
		ReceiverID:     m.ReceiverID,
		ReceiverName:   m.ReceiverName,
		ReceiverType:   string(m.ReceiverType),
		Subject:        m.Subject,
		Content:        m.Content,
		IsRead:         m.IsRead,
		SentDate:       m.SentDate,
		ReadDate:       m.ReadDate,
		JobID:          m.JobID,
		ConversationID: m.ConversationID,
	}
}

func translateMessageErr(err error) error {
	if apperrors.Is(err, repositories.ErrMessageNotFound) {
		return apperrors.MessageNotFound()
	}
	return apperrors.InternalError(err)
}
