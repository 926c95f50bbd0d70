package dto

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     *string        `json:"message"`
	IsRead      bool           `json:"isRead"`
	CreatedDate time.Time      `json:"createdDate"`
	ReadDate    *time.Time     `json:"readDate"`
	RelatedID   *string        `json:"relatedId"`
	JobID       *string        `json:"jobId"`
	JobTitle    *string        `json:"jobTitle"`
	Data        datatypes.JSON `json:"data,omitempty"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}
