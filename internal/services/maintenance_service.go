package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// MaintenanceRepository is the interface that wraps store-wide maintenance operations
type MaintenanceRepository interface {
	// DeleteAllTraineeData removes sessions, attempts, progress and weak items atomically.
	DeleteAllTraineeData(ctx context.Context) error
}

type maintenanceService struct {
	repo   MaintenanceRepository
	logger *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(repo MaintenanceRepository, logger *zap.Logger) *maintenanceService {
	return &maintenanceService{
		repo:   repo,
		logger: logger,
	}
}

// ResetAll deletes every trace of the trainee's practice. The drink catalog is kept.
func (s *maintenanceService) ResetAll(ctx context.Context) error {
	if err := s.repo.DeleteAllTraineeData(ctx); err != nil {
		s.logger.Error("failed to reset trainee data", zap.Error(err))
		return fmt.Errorf("failed to reset data: %w", err)
	}

	s.logger.Warn("all trainee data deleted")
	return nil
}

