package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
	"github.com/noah-isme/skillswap/pkg/export"
)

type swapLister interface {
	List(ctx context.Context, filter models.SwapRequestFilter) ([]models.SwapRequest, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
	ContentType() string
}

// ReportService renders admin exports of the directory, the swap log and platform totals.
type ReportService struct {
	stats     StatsSource
	users     userLister
	swaps     swapLister
	renderers map[models.ReportFormat]datasetRenderer
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// ReportServiceParams groups constructor dependencies.
type ReportServiceParams struct {
	Stats     StatsSource
	Users     userLister
	Swaps     swapLister
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewReportService wires CSV and PDF renderers.
func NewReportService(params ReportServiceParams) *ReportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	return &ReportService{
		stats: params.Stats,
		users: params.Users,
		swaps: params.Swaps,
		renderers: map[models.ReportFormat]datasetRenderer{
			models.ReportFormatCSV: export.NewCSVExporter(),
			models.ReportFormatPDF: export.NewPDFExporter(),
		},
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate builds the requested dataset and renders it.
func (s *ReportService) Generate(ctx context.Context, req dto.ReportRequest) (*models.Report, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, "invalid report request")
	}

	var (
		data export.Dataset
		err  error
	)
	switch req.Type {
	case models.ReportTypeUsers:
		data, err = s.usersDataset(ctx)
	case models.ReportTypeSwaps:
		data, err = s.swapsDataset(ctx)
	default:
		data, err = s.summaryDataset(ctx)
	}
	if err != nil {
		return nil, err
	}

	renderer := s.renderers[req.Format]
	payload, err := renderer.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render report")
	}

	now := s.now().UTC()
	report := &models.Report{
		Filename:    fmt.Sprintf("%s-report-%s.%s", req.Type, now.Format("20060102-150405"), req.Format),
		ContentType: renderer.ContentType(),
		Data:        payload,
	}
	s.logger.Info("report generated",
		zap.String("type", string(req.Type)),
		zap.String("format", string(req.Format)),
		zap.Int("bytes", len(payload)),
	)
	return report, nil
}

func (s *ReportService) usersDataset(ctx context.Context) (export.Dataset, error) {
	users, err := s.users.List(ctx, models.UserFilter{})
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load users")
	}
	data := export.Dataset{
		Title:   "Users",
		Headers: []string{"ID", "Name", "Email", "Location", "Rating", "Reviews", "Offered", "Wanted"},
	}
	for _, u := range users {
		data.Rows = append(data.Rows, map[string]string{
			"ID":       u.ID,
			"Name":     u.Name,
			"Email":    u.Email,
			"Location": u.Location,
			"Rating":   strconv.FormatFloat(u.Rating, 'f', 1, 64),
			"Reviews":  strconv.Itoa(u.ReviewCount),
			"Offered":  joinSkillNames(u.OfferedSkills),
			"Wanted":   joinSkillNames(u.WantedSkills),
		})
	}
	return data, nil
}

func (s *ReportService) swapsDataset(ctx context.Context) (export.Dataset, error) {
	swaps, err := s.swaps.List(ctx, models.SwapRequestFilter{})
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load swap requests")
	}
	data := export.Dataset{
		Title:   "Swap requests",
		Headers: []string{"ID", "From", "To", "Offered", "Requested", "Status", "Created", "Updated"},
	}
	for _, swap := range swaps {
		data.Rows = append(data.Rows, map[string]string{
			"ID":        swap.ID,
			"From":      swap.FromUser.Name,
			"To":        swap.ToUser.Name,
			"Offered":   swap.OfferedSkill.Name,
			"Requested": swap.RequestedSkill.Name,
			"Status":    string(swap.Status),
			"Created":   swap.CreatedAt.Format(time.RFC3339),
			"Updated":   swap.UpdatedAt.Format(time.RFC3339),
		})
	}
	return data, nil
}

func (s *ReportService) summaryDataset(ctx context.Context) (export.Dataset, error) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	rows := [][2]string{
		{"Total users", strconv.Itoa(stats.TotalUsers)},
		{"Active swaps", strconv.Itoa(stats.ActiveSwaps)},
		{"Pending requests", strconv.Itoa(stats.PendingRequests)},
		{"Completed swaps", strconv.Itoa(stats.CompletedSwaps)},
		{"Rejected swaps", strconv.Itoa(stats.RejectedSwaps)},
		{"Generated at", stats.GeneratedAt.Format(time.RFC3339)},
	}
	data := export.Dataset{Title: "Platform summary", Headers: []string{"Metric", "Value"}}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{"Metric": row[0], "Value": row[1]})
	}
	return data, nil
}

func joinSkillNames(skills models.SkillSet) string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return strings.Join(names, "; ")
}
