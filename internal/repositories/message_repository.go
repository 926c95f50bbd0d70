package repositories

import (
	"errors"
	"time"

	"gigboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	WithTx(tx *gorm.DB) MessageRepository

	Create(message *models.Message) error
	FindByID(id string) (*models.Message, error)

	// FindConversationMessages returns one page of a thread, oldest first.
	FindConversationMessages(conversationID string, page, pageSize int) ([]models.Message, int64, error)

	// FindUserMessages returns every message the user participates in,
	// as sender or receiver. Feeds the conversation aggregation.
	FindUserMessages(userID string) ([]models.Message, error)

	MarkAsRead(id string, readAt time.Time) error
	MarkConversationAsRead(conversationID, userID string, readAt time.Time) error
	Delete(id string) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) WithTx(tx *gorm.DB) MessageRepository {
	return &messageRepository{db: tx}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindConversationMessages(conversationID string, page, pageSize int) ([]models.Message, int64, error) {
	query := r.db.Model(&models.Message{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	var messages []models.Message
	err := query.Order("sent_date ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&messages).Error

	return messages, total, err
}

func (r *messageRepository) FindUserMessages(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_date ASC").
		Find(&messages).Error
	return messages, err
}

// MarkAsRead is idempotent: an already-read message keeps its original
// ReadDate.
func (r *messageRepository) MarkAsRead(id string, readAt time.Time) error {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}

	if message.IsRead {
		return nil
	}

	return r.db.Model(&message).Updates(map[string]interface{}{
		"is_read":   true,
		"read_date": readAt,
	}).Error
}

func (r *messageRepository) MarkConversationAsRead(conversationID, userID string, readAt time.Time) error {
	return r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, userID, false).
		Updates(map[string]interface{}{
			"is_read":   true,
			"read_date": readAt,
		}).Error
}

func (r *messageRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
