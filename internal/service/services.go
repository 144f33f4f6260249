package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	taskService := NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, logger))

	return &Services{
		AuthService:    authService,
		TaskService:    taskService,
		AppInfoService: appInfoService,
	}, nil
}
