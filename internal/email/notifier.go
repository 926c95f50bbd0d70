package email

import (
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
)

// Notifier emails users a copy of each in-app notification. It runs off the
// request path; a failed send is logged and dropped, never surfaced to the
// caller that created the notification.
type Notifier struct {
	sender   Sender
	userRepo repositories.UserRepository
}

func NewNotifier(sender Sender, userRepo repositories.UserRepository) *Notifier {
	return &Notifier{sender: sender, userRepo: userRepo}
}

func (n *Notifier) NotificationCreated(notification *models.Notification) {
	go n.deliver(notification)
}

func (n *Notifier) deliver(notification *models.Notification) {
	user, err := n.userRepo.FindByID(notification.UserID)
	if err != nil {
		logger.Warn("email copy skipped, recipient lookup failed",
			"userId", notification.UserID, "error", err)
		return
	}

	body := notification.Title
	if notification.Message != nil && *notification.Message != "" {
		body = *notification.Message
	}

	if err := n.sender.Send(user.Email, notification.Title, body); err != nil {
		logger.Warn("email copy delivery failed",
			"userId", user.ID, "error", err)
	}
}
