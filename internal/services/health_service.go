package services

import (
	"context"

	"annapurna/internal/models/db_models"
	"annapurna/internal/models/request_models"
	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

type HealthServiceInterface interface {
	LogEntry(ctx context.Context, userID string, req request_models.CreateHealthLogRequest) (*db_models.HealthLog, error)
	ListEntries(ctx context.Context, userID string) ([]db_models.HealthLog, error)
}

type HealthService struct {
	logs repositories.HealthLogRepository
}

func NewHealthService(logs repositories.HealthLogRepository) HealthServiceInterface {
	return &HealthService{logs: logs}
}

func (s *HealthService) LogEntry(ctx context.Context, userID string, req request_models.CreateHealthLogRequest) (*db_models.HealthLog, error) {
	entry := &db_models.HealthLog{
		UserID:   userID,
		Date:     req.Date,
		Weight:   req.Weight,
		Sleep:    req.Sleep,
		Water:    req.Water,
		Mood:     req.Mood,
		Symptoms: req.Symptoms,
		Notes:    req.Notes,
	}
	if err := s.logs.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (s *HealthService) ListEntries(ctx context.Context, userID string) ([]db_models.HealthLog, error) {
	entries, err := s.logs.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}
