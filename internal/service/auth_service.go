package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

type userByEmailFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService resolves a login form to a directory user. Passwords are required but not verified.
type AuthService struct {
	users     userByEmailFinder
	validator *validator.Validate
	logger    *zap.Logger
	delay     time.Duration
}

// NewAuthService constructs the service. delay simulates backend latency before the lookup.
func NewAuthService(users userByEmailFinder, validate *validator.Validate, logger *zap.Logger, delay time.Duration) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if delay < 0 {
		delay = 0
	}
	return &AuthService{users: users, validator: validate, logger: logger, delay: delay}
}

// Login waits out the configured delay, honouring cancellation, then looks the user up by email.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, "email and password are required")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			s.logger.Warn("login failed", zap.String("reason", "unknown email"))
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, nil
}
