package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Notification types generated by the system.
const (
	NotificationTypeNewMessage        = "NewMessage"
	NotificationTypeNewApplication    = "NewApplication"
	NotificationTypeApplicationStatus = "ApplicationStatusUpdate"
)

// Notification is a per-user alert created as a side effect of message and
// application events. Rows are immutable except IsRead/ReadDate.
type Notification struct {
	BaseModel
	UserID  string  `gorm:"size:100;not null;index" json:"userId"`
	Type    string  `gorm:"size:50;not null" json:"type"`
	Title   string  `gorm:"size:500;not null" json:"title"`
	Message *string `gorm:"size:1000" json:"message"`

	IsRead   bool       `gorm:"default:false" json:"isRead"`
	ReadDate *time.Time `json:"readDate"`

	// Optional references back to the triggering entity
	RelatedID *string `json:"relatedId"` // message or application id
	JobID     *string `json:"jobId"`
	JobTitle  *string `gorm:"size:200" json:"jobTitle"`

	// Free-form payload for clients, e.g. {"conversationId": "..."}
	Data datatypes.JSON `json:"data,omitempty"`
}

// NotificationData marshals a client payload for the Data column.
func NotificationData(payload map[string]string) datatypes.JSON {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
