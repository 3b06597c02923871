package service

import (
	"context"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// StatsService serves the fixed dashboard aggregates.
type StatsService struct {
	stats domain.DashboardStats
}

func NewStatsService(stats domain.DashboardStats) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) Dashboard(_ context.Context) (*domain.DashboardStats, error) {
	clone := s.stats
	return &clone, nil
}
