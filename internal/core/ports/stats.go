package ports

import (
	"context"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
