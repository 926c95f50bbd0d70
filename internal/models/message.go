package models

import "time"

// Message is a direct message between two parties. Sender and receiver
// name/type are denormalized at send time. ConversationID groups a thread
// and is never recomputed after creation.
type Message struct {
	BaseModel
	SenderID     string   `gorm:"size:100;not null;index" json:"senderId"`
	SenderName   string   `gorm:"size:100;not null" json:"senderName"`
	SenderType   UserType `gorm:"size:20;not null" json:"senderType"`
	ReceiverID   string   `gorm:"size:100;not null;index" json:"receiverId"`
	ReceiverName string   `gorm:"size:100;not null" json:"receiverName"`
	ReceiverType UserType `gorm:"size:20;not null" json:"receiverType"`

	Subject *string `gorm:"size:200" json:"subject"`
	Content string  `gorm:"size:2000;not null" json:"content"`

	IsRead   bool       `gorm:"default:false" json:"isRead"`
	SentDate time.Time  `gorm:"autoCreateTime" json:"sentDate"`
	ReadDate *time.Time `json:"readDate"`

	// Optional job reference; the job may be deleted later.
	JobID *string `gorm:"index" json:"jobId"`
	Job   *Job    `gorm:"foreignKey:JobID" json:"-"`

	ConversationID string `gorm:"size:100;not null;index" json:"conversationId"`
}
