package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/models"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

// StatsSource yields platform statistics. Tests and demos can plug in fixed values.
type StatsSource interface {
	Stats(ctx context.Context) (models.PlatformStats, error)
}

// StatsSourceFunc adapts a function to StatsSource.
type StatsSourceFunc func(ctx context.Context) (models.PlatformStats, error)

// Stats implements StatsSource.
func (f StatsSourceFunc) Stats(ctx context.Context) (models.PlatformStats, error) {
	return f(ctx)
}

type userCounter interface {
	Count(ctx context.Context) (int, error)
}

type swapStatusCounter interface {
	CountByStatus(ctx context.Context) (map[models.SwapStatus]int, error)
}

// StatsService computes statistics from the live stores and mirrors them into metrics.
type StatsService struct {
	users   userCounter
	swaps   swapStatusCounter
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewStatsService constructs a StatsService.
func NewStatsService(users userCounter, swaps swapStatusCounter, metrics *MetricsService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{users: users, swaps: swaps, metrics: metrics, logger: logger, now: time.Now}
}

// Stats implements StatsSource.
func (s *StatsService) Stats(ctx context.Context) (models.PlatformStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return models.PlatformStats{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count users")
	}
	counts, err := s.swaps.CountByStatus(ctx)
	if err != nil {
		return models.PlatformStats{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count swap requests")
	}

	stats := models.PlatformStats{
		TotalUsers:      total,
		ActiveSwaps:     counts[models.SwapStatusAccepted],
		PendingRequests: counts[models.SwapStatusPending],
		CompletedSwaps:  counts[models.SwapStatusCompleted],
		RejectedSwaps:   counts[models.SwapStatusRejected],
		GeneratedAt:     s.now().UTC(),
	}
	s.metrics.PublishStats(stats)
	return stats, nil
}
