package dto

import "time"

type SendMessageRequest struct {
	SenderID     string `json:"senderId" validate:"required,max=100"`
	SenderName   string `json:"senderName" validate:"required,max=100"`
	SenderType   string `json:"senderType" validate:"required,usertype"`
	ReceiverID   string `json:"receiverId" validate:"required,max=100"`
	ReceiverName string `json:"receiverName" validate:"required,max=100"`
	ReceiverType string `json:"receiverType" validate:"required,usertype"`

	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Content string  `json:"content" validate:"required,max=2000"`

	JobID *string `json:"jobId"`

	// Optional caller-supplied thread id. Trusted as-is when present; the
	// server derives one only when this is empty.
	ConversationID *string `json:"conversationId" validate:"omitempty,max=100"`
}

type MessageResponse struct {
	ID             string     `json:"id"`
	SenderID       string     `json:"senderId"`
	SenderName     string     `json:"senderName"`
	SenderType     string     `json:"senderType"`
	ReceiverID     string     `json:"receiverId"`
	ReceiverName   string     `json:"receiverName"`
	ReceiverType   string     `json:"receiverType"`
	Subject        *string    `json:"subject"`
	Content        string     `json:"content"`
	IsRead         bool       `json:"isRead"`
	SentDate       time.Time  `json:"sentDate"`
	ReadDate       *time.Time `json:"readDate"`
	JobID          *string    `json:"jobId"`
	ConversationID string     `json:"conversationId"`
}

type ConversationMessagesResponse struct {
	Messages []*MessageResponse `json:"messages"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// ConversationSummary is one row of the per-user conversation listing.
type ConversationSummary struct {
	ConversationID       string    `json:"conversationId"`
	OtherParticipantID   string    `json:"otherParticipantId"`
	OtherParticipantName string    `json:"otherParticipantName"`
	OtherParticipantType string    `json:"otherParticipantType"`
	JobID                *string   `json:"jobId"`
	JobTitle             *string   `json:"jobTitle"`
	LastMessageContent   string    `json:"lastMessageContent"`
	LastMessageDate      time.Time `json:"lastMessageDate"`
	HasUnreadMessages    bool      `json:"hasUnreadMessages"`
	UnreadCount          int       `json:"unreadCount"`
}
