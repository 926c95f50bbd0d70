package handlers

import (
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/validator"
)

// AppHandlers bundles every handler in the application.
type AppHandlers struct {
	Auth          *AuthHandler
	Worker        *WorkerHandler
	Job           *JobHandler
	Application   *ApplicationHandler
	Message       *MessageHandler
	Notification  *NotificationHandler
	Advertisement *AdvertisementHandler
	Stats         *StatsHandler
	Admin         *AdminHandler
	Health        *HealthHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:          NewAuthHandler(base, container.Auth),
		Worker:        NewWorkerHandler(base, container.User),
		Job:           NewJobHandler(base, container.Job),
		Application:   NewApplicationHandler(base, container.Application),
		Message:       NewMessageHandler(base, container.Message),
		Notification:  NewNotificationHandler(base, container.Notification),
		Advertisement: NewAdvertisementHandler(base, container.Advertisement),
		Stats:         NewStatsHandler(base, container.Stats),
		Admin:         NewAdminHandler(base, container.Stats, container.User),
		Health:        NewHealthHandler(base),
	}
}
