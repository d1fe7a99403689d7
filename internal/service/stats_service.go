package service

import (
	"context"

	"socialnet/internal/repository"
)

type StatsService interface {
	GetStats(ctx context.Context) (*repository.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (t *statsService) GetStats(ctx context.Context) (*repository.Stats, error) {
	return t.statsRepo.GetStats(ctx)
}
