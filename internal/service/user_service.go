package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/models"
	"github.com/noah-isme/skillswap/internal/repository"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user models.User) error
	Count(ctx context.Context) (int, error)
}

// UserService handles directory lookups and profile edits.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// List returns the directory, optionally filtered by a free-text search.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list users")
	}
	return users, nil
}

// Search matches name, location and skill names case-insensitively. An empty query returns everyone.
func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.List(ctx, models.UserFilter{Search: query})
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	return user, nil
}

// GetByEmail returns a user by login email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}
	return user, nil
}

// Update replaces the profile with the same ID.
func (s *UserService) Update(ctx context.Context, user models.User) (*models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if err := s.validator.Struct(user); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, "invalid user profile")
	}
	if user.OfferedSkills.HasDuplicateIDs() || user.WantedSkills.HasDuplicateIDs() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "skills must be unique by id")
	}

	if err := s.repo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		case errors.Is(err, repository.ErrConflict):
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update user")
	}

	s.logger.Info("user profile updated", zap.String("user_id", user.ID))
	updated := user.Clone()
	return &updated, nil
}

// Count returns the directory size.
func (s *UserService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count users")
	}
	return count, nil
}
