package services

import (
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared database handle.
type ServiceContainer struct {
	Auth          AuthService
	User          UserService
	Job           JobService
	Application   ApplicationService
	Message       MessageService
	Notification  NotificationService
	Advertisement AdvertisementService
	Stats         StatsService
}

func NewServiceContainer(db *gorm.DB, store storage.Storage, notifier Notifier) *ServiceContainer {
	if notifier == nil {
		notifier = NoopNotifier{}
	}

	userRepo := repositories.NewUserRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	adRepo := repositories.NewAdvertisementRepository(db)
	metricRepo := repositories.NewMetricRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	return &ServiceContainer{
		Auth:          NewAuthService(db, userRepo, companyRepo),
		User:          NewUserService(userRepo, store),
		Job:           NewJobService(jobRepo, companyRepo),
		Application:   NewApplicationService(db, applicationRepo, jobRepo, userRepo, notificationRepo, notifier),
		Message:       NewMessageService(db, messageRepo, notificationRepo, jobRepo, notifier),
		Notification:  NewNotificationService(notificationRepo),
		Advertisement: NewAdvertisementService(adRepo, store),
		Stats:         NewStatsService(statsRepo, metricRepo),
	}
}
