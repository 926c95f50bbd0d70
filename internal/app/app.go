package app

import (
	"fmt"

	"gigboard_backend/internal/config"
	"gigboard_backend/internal/email"
	"gigboard_backend/internal/handlers"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/routes"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/storage"
	"gigboard_backend/internal/validator"
	"gigboard_backend/pkg/apperrors"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires the whole application together and blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	if err := SeedDemoEmployer(db); err != nil {
		return fmt.Errorf("seed demo employer: %w", err)
	}

	store := storage.NewLocalStorage(cfg.Upload.BasePath, cfg.Upload.BaseURL, cfg.Upload.MaxSize)

	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.Email.SMTPHost != "" && cfg.Email.FromEmail != "" {
		sender := email.NewSMTPSender(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		notifier = email.NewNotifier(sender, repositories.NewUserRepository(db))
		logger.Info("email notification copies enabled", "host", cfg.Email.SMTPHost)
	}

	container := services.NewServiceContainer(db, store, notifier)

	appHandlers := handlers.NewAppHandlers(container, validator.New())
	router := routes.SetupRouter(cfg, db, appHandlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// openDatabase connects to postgres when a DSN is configured and falls back
// to a local sqlite file otherwise.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.DSN != "" {
		logger.Info("connecting to postgres")
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	}

	logger.Info("no database url configured, using sqlite", "path", cfg.Database.SQLitePath)
	return gorm.Open(sqlite.Open(cfg.Database.SQLitePath), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Message{},
		&models.Notification{},
		&models.Advertisement{},
		&models.AppMetric{},
	)
}
