package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	"github.com/noah-isme/skillswap/internal/repository"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

type swapStore interface {
	Create(ctx context.Context, req *models.SwapRequest) error
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	List(ctx context.Context, filter models.SwapRequestFilter) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, params repository.UpdateSwapStatusParams) error
}

// SwapService owns the swap request lifecycle.
type SwapService struct {
	repo      swapStore
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// SwapServiceOption configures the service.
type SwapServiceOption func(*SwapService)

// WithSwapClock overrides the time source.
func WithSwapClock(now func() time.Time) SwapServiceOption {
	return func(s *SwapService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSwapIDGenerator overrides request id generation.
func WithSwapIDGenerator(fn func() string) SwapServiceOption {
	return func(s *SwapService) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithSwapMetrics attaches instrumentation.
func WithSwapMetrics(metrics *MetricsService) SwapServiceOption {
	return func(s *SwapService) {
		s.metrics = metrics
	}
}

// NewSwapService constructs the service with defaults.
func NewSwapService(repo swapStore, validate *validator.Validate, logger *zap.Logger, opts ...SwapServiceOption) *SwapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	svc := &SwapService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// Create stores a new pending request after checking both parties own the skills involved.
func (s *SwapService) Create(ctx context.Context, req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, "invalid swap request payload")
	}
	if req.FromUser.ID != req.FromUserID || req.ToUser.ID != req.ToUserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "user snapshots do not match user ids")
	}
	offered, ok := req.FromUser.OfferedSkills.FindByID(req.OfferedSkill.ID)
	if !ok || offered != req.OfferedSkill {
		return nil, appErrors.Clone(appErrors.ErrValidation, "offered skill is not offered by the requesting user")
	}
	requested, ok := req.ToUser.OfferedSkills.FindByID(req.RequestedSkill.ID)
	if !ok || requested != req.RequestedSkill {
		return nil, appErrors.Clone(appErrors.ErrValidation, "requested skill is not offered by the recipient")
	}

	now := s.now().UTC()
	swap := &models.SwapRequest{
		ID:             s.newID(),
		FromUserID:     req.FromUserID,
		ToUserID:       req.ToUserID,
		FromUser:       req.FromUser.Clone(),
		ToUser:         req.ToUser.Clone(),
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Message:        req.Message,
		Status:         models.SwapStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, swap); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, appErrors.WrapAs(appErrors.ErrConflict, err, "swap request id already in use")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create swap request")
	}

	s.metrics.RecordSwapCreated()
	s.logger.Info("swap request created",
		zap.String("swap_id", swap.ID),
		zap.String("from_user_id", swap.FromUserID),
		zap.String("to_user_id", swap.ToUserID),
		zap.String("offered_skill", swap.OfferedSkill.Name),
		zap.String("requested_skill", swap.RequestedSkill.Name),
	)
	return swap, nil
}

// UpdateStatus moves a request along its lifecycle. Terminal requests never move again.
func (s *SwapService) UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	if err := s.validator.Struct(dto.UpdateSwapStatusRequest{Status: status}); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, "status must be accepted, rejected or completed")
	}

	swap, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !swap.Status.CanTransitionTo(status) {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition, fmt.Sprintf("cannot move swap request from %s to %s", swap.Status, status))
	}

	updatedAt := s.nextTimestamp(swap.UpdatedAt)
	err = s.repo.UpdateStatus(ctx, repository.UpdateSwapStatusParams{
		ID:        swap.ID,
		From:      swap.Status,
		To:        status,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "swap request not found")
		case errors.Is(err, repository.ErrStatusChanged):
			return nil, appErrors.WrapAs(appErrors.ErrConflict, err, "swap request already processed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update swap request")
	}

	previous := swap.Status
	swap.Status = status
	swap.UpdatedAt = updatedAt

	s.metrics.RecordSwapTransition(status)
	s.logger.Info("swap request transitioned",
		zap.String("swap_id", swap.ID),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(status)),
	)
	return swap, nil
}

// Get returns a request by ID.
func (s *SwapService) Get(ctx context.Context, id string) (*models.SwapRequest, error) {
	swap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "swap request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load swap request")
	}
	return swap, nil
}

// List returns requests matching the filter in creation order.
func (s *SwapService) List(ctx context.Context, filter models.SwapRequestFilter) ([]models.SwapRequest, error) {
	swaps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list swap requests")
	}
	return swaps, nil
}

// Board groups a user's requests into received, sent, active and history lanes.
// History includes rejected requests alongside completed ones.
func (s *SwapService) Board(ctx context.Context, userID string) (*dto.SwapBoard, error) {
	swaps, err := s.List(ctx, models.SwapRequestFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	board := &dto.SwapBoard{
		Received: []models.SwapRequest{},
		Sent:     []models.SwapRequest{},
		Active:   []models.SwapRequest{},
		History:  []models.SwapRequest{},
	}
	for _, swap := range swaps {
		if swap.ToUserID == userID && swap.Status == models.SwapStatusPending {
			board.Received = append(board.Received, swap)
		}
		if swap.FromUserID == userID {
			board.Sent = append(board.Sent, swap)
		}
		switch {
		case swap.Status == models.SwapStatusAccepted:
			board.Active = append(board.Active, swap)
		case swap.Status.Terminal():
			board.History = append(board.History, swap)
		}
	}
	return board, nil
}

// nextTimestamp keeps UpdatedAt strictly increasing even when the clock does not advance.
func (s *SwapService) nextTimestamp(previous time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(previous) {
		now = previous.Add(time.Microsecond)
	}
	return now
}
