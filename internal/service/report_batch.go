package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	"github.com/noah-isme/skillswap/pkg/jobs"
)

type adminReporter interface {
	AdminReport(ctx context.Context, req dto.ReportRequest) (*models.Report, error)
}

type reportSaver interface {
	Save(name string, data []byte) (string, error)
}

// ReportBatchConfig sizes the worker pool behind a batch run.
type ReportBatchConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// ReportBatch renders several admin reports on a job queue and archives each one.
type ReportBatch struct {
	reports adminReporter
	archive reportSaver
	cfg     ReportBatchConfig
	logger  *zap.Logger
}

// NewReportBatch constructs a batch runner.
func NewReportBatch(reports adminReporter, archive reportSaver, cfg ReportBatchConfig, logger *zap.Logger) *ReportBatch {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	return &ReportBatch{reports: reports, archive: archive, cfg: cfg, logger: logger}
}

type reportOutcome struct {
	kind models.ReportType
	path string
	err  error
}

// Run renders every requested report type in format and returns the archived paths in request order.
// It stops the queue and returns ctx.Err() when ctx ends first. The first failure in request order wins.
func (b *ReportBatch) Run(ctx context.Context, format models.ReportFormat, kinds ...models.ReportType) ([]string, error) {
	kinds = uniqueReportTypes(kinds)
	if len(kinds) == 0 {
		return []string{}, nil
	}

	outcomes := make(chan reportOutcome, len(kinds))
	queue := jobs.NewQueue("reports", func(ctx context.Context, job jobs.Job) error {
		req := job.Payload.(dto.ReportRequest)
		report, err := b.reports.AdminReport(ctx, req)
		if err != nil {
			return err
		}
		path, err := b.archive.Save(report.Filename, report.Data)
		if err != nil {
			return err
		}
		b.logger.Info("report archived", zap.String("path", path), zap.String("content_type", report.ContentType))
		outcomes <- reportOutcome{kind: req.Type, path: path}
		return nil
	}, jobs.QueueConfig{
		Workers:    b.cfg.Workers,
		BufferSize: len(kinds),
		MaxRetries: b.cfg.MaxRetries,
		RetryDelay: b.cfg.RetryDelay,
		Logger:     b.logger,
		OnGiveUp: func(job jobs.Job, err error) {
			outcomes <- reportOutcome{kind: models.ReportType(job.Kind), err: err}
		},
	})
	queue.Start(ctx)
	defer queue.Stop()

	for _, kind := range kinds {
		job := jobs.Job{
			ID:      fmt.Sprintf("%s-%s", kind, format),
			Kind:    string(kind),
			Payload: dto.ReportRequest{Type: kind, Format: format},
		}
		if err := queue.Enqueue(job); err != nil {
			return nil, err
		}
	}

	results := make(map[models.ReportType]reportOutcome, len(kinds))
	for len(results) < len(kinds) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case outcome := <-outcomes:
			results[outcome.kind] = outcome
		}
	}

	paths := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		outcome := results[kind]
		if outcome.err != nil {
			return nil, outcome.err
		}
		paths = append(paths, outcome.path)
	}
	return paths, nil
}

func uniqueReportTypes(kinds []models.ReportType) []models.ReportType {
	seen := make(map[models.ReportType]struct{}, len(kinds))
	out := make([]models.ReportType, 0, len(kinds))
	for _, kind := range kinds {
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		out = append(out, kind)
	}
	return out
}
