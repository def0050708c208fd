package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	"github.com/noah-isme/skillswap/internal/repository"
	"github.com/noah-isme/skillswap/internal/seed"
)

type dtoCreate = dto.CreateSwapRequest

// steppingClock advances by step on every call.
type steppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

func newSteppingClock(step time.Duration) *steppingClock {
	return &steppingClock{next: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), step: step}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}

func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("swap-%d", n)
	}
}

type testEnv struct {
	users    *repository.UserRepository
	swapRepo *repository.SwapRequestRepository
	metrics  *MetricsService
	userSvc  *UserService
	swapSvc  *SwapService
	matchSvc *MatchService
	stats    *StatsService
	reports  *ReportService
	catalog  *SkillCatalogService
	session  *Session
	clock    *steppingClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users, err := repository.NewUserRepository(seed.Users())
	require.NoError(t, err)

	validate := validator.New()
	logger := zap.NewNop()
	clock := newSteppingClock(time.Second)
	metrics := NewMetricsService()
	swapRepo := repository.NewSwapRequestRepository()

	userSvc := NewUserService(users, validate, logger)
	swapSvc := NewSwapService(swapRepo, validate, logger,
		WithSwapClock(clock.Now),
		WithSwapIDGenerator(sequentialIDs()),
		WithSwapMetrics(metrics),
	)
	matchSvc := NewMatchService(users, metrics, logger, 3)
	stats := NewStatsService(users, swapRepo, metrics, logger)
	reports := NewReportService(ReportServiceParams{Stats: stats, Users: users, Swaps: swapRepo, Validator: validate, Logger: logger})
	catalogRepo, err := repository.NewSkillCatalogRepository(seed.CatalogSkills())
	require.NoError(t, err)
	catalog := NewSkillCatalogService(catalogRepo, validate, logger)
	session := NewSession(SessionParams{
		Users:     userSvc,
		Auth:      NewAuthService(userSvc, validate, logger, 0),
		Swaps:     swapSvc,
		Matches:   matchSvc,
		Stats:     stats,
		Reports:   reports,
		Catalog:   catalog,
		Validator: validate,
		Logger:    logger,
	})

	return &testEnv{
		users:    users,
		swapRepo: swapRepo,
		metrics:  metrics,
		userSvc:  userSvc,
		swapSvc:  swapSvc,
		matchSvc: matchSvc,
		stats:    stats,
		reports:  reports,
		catalog:  catalog,
		session:  session,
		clock:    clock,
	}
}

func (e *testEnv) user(t *testing.T, id string) models.User {
	t.Helper()
	u, err := e.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	return *u
}

// reactForGuitar builds Sarah's (1) offer of React for Marcus's (2) Guitar.
func (e *testEnv) reactForGuitar(t *testing.T) dto.CreateSwapRequest {
	t.Helper()
	sarah := e.user(t, "1")
	marcus := e.user(t, "2")
	return dto.CreateSwapRequest{
		FromUserID:     sarah.ID,
		ToUserID:       marcus.ID,
		FromUser:       sarah,
		ToUser:         marcus,
		OfferedSkill:   sarah.OfferedSkills[0],
		RequestedSkill: marcus.OfferedSkills[0],
		Message:        "Hi Marcus! React for Guitar?",
	}
}
