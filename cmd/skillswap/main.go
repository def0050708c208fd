package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	"github.com/noah-isme/skillswap/internal/repository"
	"github.com/noah-isme/skillswap/internal/seed"
	"github.com/noah-isme/skillswap/internal/service"
	"github.com/noah-isme/skillswap/pkg/config"
	"github.com/noah-isme/skillswap/pkg/logger"
	"github.com/noah-isme/skillswap/pkg/storage"
)

const demoPassword = "demo"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logr)
	stop()
	if err != nil {
		logr.Error("skillswap demo failed", zap.Error(err))
	}
	_ = logr.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	users, err := repository.NewUserRepository(seed.Users())
	if err != nil {
		return err
	}
	swaps := repository.NewSwapRequestRepository()

	validate := validator.New()
	metrics := service.NewMetricsService()
	userSvc := service.NewUserService(users, validate, logger.Named(logr, "users"))
	swapSvc := service.NewSwapService(swaps, validate, logger.Named(logr, "swaps"), service.WithSwapMetrics(metrics))
	matchSvc := service.NewMatchService(users, metrics, logger.Named(logr, "matches"), cfg.Matching.Limit)
	statsSvc := service.NewStatsService(users, swaps, metrics, logger.Named(logr, "stats"))
	reportSvc := service.NewReportService(service.ReportServiceParams{
		Stats:     statsSvc,
		Users:     users,
		Swaps:     swaps,
		Validator: validate,
		Logger:    logger.Named(logr, "reports"),
	})
	catalogRepo, err := repository.NewSkillCatalogRepository(seed.CatalogSkills())
	if err != nil {
		return err
	}
	catalogSvc := service.NewSkillCatalogService(catalogRepo, validate, logger.Named(logr, "catalog"))
	session := service.NewSession(service.SessionParams{
		Users:      userSvc,
		Auth:       service.NewAuthService(userSvc, validate, logger.Named(logr, "auth"), cfg.Session.LoginDelay),
		Swaps:      swapSvc,
		Matches:    matchSvc,
		Stats:      statsSvc,
		Reports:    reportSvc,
		Catalog:    catalogSvc,
		Validator:  validate,
		AdminEmail: cfg.Session.AdminEmail,
		Logger:     logger.Named(logr, "session"),
	})

	me, err := session.Login(ctx, dto.LoginRequest{Email: cfg.Session.DemoLoginEmail, Password: demoPassword})
	if err != nil {
		return err
	}

	matches, err := session.FindMatches(ctx)
	if err != nil {
		return err
	}
	for _, m := range matches {
		logr.Info("match found",
			zap.String("candidate", m.CandidateName),
			zap.String("skill", m.MatchingSkillName),
		)
	}

	if len(matches) > 0 && len(me.OfferedSkills) > 0 {
		if err := walkSwap(ctx, session, *me, matches[0]); err != nil {
			return err
		}
	}

	if _, err := session.Login(ctx, dto.LoginRequest{Email: cfg.Session.AdminEmail, Password: demoPassword}); err != nil {
		return err
	}
	stats, err := session.AdminStats(ctx)
	if err != nil {
		return err
	}
	logr.Info("platform stats",
		zap.Int("total_users", stats.TotalUsers),
		zap.Int("active_swaps", stats.ActiveSwaps),
		zap.Int("pending_requests", stats.PendingRequests),
		zap.Int("completed_swaps", stats.CompletedSwaps),
		zap.Int("rejected_swaps", stats.RejectedSwaps),
	)
	catalog, err := session.AdminSkillStats(ctx)
	if err != nil {
		return err
	}
	logr.Info("skill catalog",
		zap.Int("total_skills", catalog.TotalSkills),
		zap.Int("active_skills", catalog.ActiveSkills),
		zap.Int("categories", catalog.Categories),
	)
	snap := metrics.Snapshot()
	logr.Info("metrics snapshot",
		zap.Uint64("swap_requests_created", snap.SwapRequestsCreated),
		zap.Uint64("swap_transitions", snap.SwapTransitions),
		zap.Uint64("match_lookups", snap.MatchLookups),
	)

	if cfg.Reports.Enabled {
		return writeReports(ctx, session, cfg.Reports, logr)
	}
	return nil
}

// walkSwap proposes a swap to the first match and plays it through acceptance and completion.
func walkSwap(ctx context.Context, session *service.Session, me models.User, match models.Match) error {
	swap, err := session.ProposeSwap(ctx, dto.ProposeSwapRequest{
		ToUserID:         match.CandidateID,
		OfferedSkillID:   me.OfferedSkills[0].ID,
		RequestedSkillID: match.MatchingSkillID,
	})
	if err != nil {
		return err
	}

	partner, err := session.GetUserByID(ctx, match.CandidateID)
	if err != nil {
		return err
	}
	if _, err := session.Login(ctx, dto.LoginRequest{Email: partner.Email, Password: demoPassword}); err != nil {
		return err
	}
	if _, err := session.AcceptSwap(ctx, swap.ID); err != nil {
		return err
	}
	_, err = session.CompleteSwap(ctx, swap.ID)
	return err
}

func writeReports(ctx context.Context, session *service.Session, cfg config.ReportsConfig, logr *zap.Logger) error {
	archive, err := storage.NewReportArchive(cfg.Dir)
	if err != nil {
		return err
	}
	pruned, err := archive.Prune(cfg.Retention)
	if err != nil {
		logr.Warn("failed to prune old reports", zap.Error(err))
	} else if len(pruned) > 0 {
		logr.Info("old reports pruned", zap.Strings("files", pruned))
	}

	batch := service.NewReportBatch(session, archive, service.ReportBatchConfig{
		Workers:    cfg.Workers,
		MaxRetries: 1,
	}, logger.Named(logr, "reports"))
	paths, err := batch.Run(ctx, models.ReportFormat(cfg.Format),
		models.ReportTypeUsers, models.ReportTypeSwaps, models.ReportTypeSummary)
	if err != nil {
		return err
	}
	logr.Info("reports written", zap.Strings("paths", paths))
	return nil
}
