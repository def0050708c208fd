package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	"github.com/noah-isme/skillswap/internal/repository"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

type skillCatalogStore interface {
	List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogSkill, error)
	FindByID(ctx context.Context, id string) (*models.CatalogSkill, error)
	Create(ctx context.Context, skill models.CatalogSkill) error
	Update(ctx context.Context, skill models.CatalogSkill) error
	ToggleActive(ctx context.Context, id string) (*models.CatalogSkill, error)
	Delete(ctx context.Context, id string) error
}

// SkillCatalogService manages the admin-curated list of platform skills.
type SkillCatalogService struct {
	repo      skillCatalogStore
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewSkillCatalogService constructs the service.
func NewSkillCatalogService(repo skillCatalogStore, validate *validator.Validate, logger *zap.Logger) *SkillCatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SkillCatalogService{repo: repo, validator: validate, logger: logger, newID: uuid.NewString}
}

// List returns skills in the category (or all) whose name or description contains the search text.
func (s *SkillCatalogService) List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogSkill, error) {
	skills, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list catalog skills")
	}
	return skills, nil
}

// Add creates an active skill with zeroed usage figures.
func (s *SkillCatalogService) Add(ctx context.Context, req dto.CatalogSkillRequest) (*models.CatalogSkill, error) {
	if err := s.validateRequest(&req); err != nil {
		return nil, err
	}
	skill := models.CatalogSkill{
		ID:          s.newID(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, appErrors.WrapAs(appErrors.ErrConflict, err, "catalog skill id already in use")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to add catalog skill")
	}
	s.logger.Info("catalog skill added", zap.String("skill_id", skill.ID), zap.String("name", skill.Name))
	return &skill, nil
}

// Update edits name, category and description, leaving usage figures and status alone.
func (s *SkillCatalogService) Update(ctx context.Context, id string, req dto.CatalogSkillRequest) (*models.CatalogSkill, error) {
	if err := s.validateRequest(&req); err != nil {
		return nil, err
	}
	skill, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	skill.Name = req.Name
	skill.Category = req.Category
	skill.Description = req.Description
	if err := s.repo.Update(ctx, *skill); err != nil {
		return nil, s.translate(err, "failed to update catalog skill")
	}
	s.logger.Info("catalog skill updated", zap.String("skill_id", skill.ID))
	return skill, nil
}

// ToggleActive enables a disabled skill or disables an enabled one.
func (s *SkillCatalogService) ToggleActive(ctx context.Context, id string) (*models.CatalogSkill, error) {
	skill, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, s.translate(err, "failed to toggle catalog skill")
	}
	s.logger.Info("catalog skill toggled", zap.String("skill_id", skill.ID), zap.Bool("active", skill.Active))
	return skill, nil
}

// Delete removes a skill from the catalog.
func (s *SkillCatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "failed to delete catalog skill")
	}
	s.logger.Info("catalog skill deleted", zap.String("skill_id", id))
	return nil
}

// Stats counts total and active skills, the available categories and the summed user counts.
func (s *SkillCatalogService) Stats(ctx context.Context) (models.CatalogStats, error) {
	skills, err := s.List(ctx, models.CatalogFilter{})
	if err != nil {
		return models.CatalogStats{}, err
	}
	stats := models.CatalogStats{TotalSkills: len(skills), Categories: len(models.CatalogCategories)}
	for _, skill := range skills {
		if skill.Active {
			stats.ActiveSkills++
		}
		stats.TotalUsers += skill.UserCount
	}
	return stats, nil
}

func (s *SkillCatalogService) validateRequest(req *dto.CatalogSkillRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.WrapAs(appErrors.ErrValidation, err, "please fill in all required fields")
	}
	if !models.ValidCatalogCategory(req.Category) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown skill category")
	}
	return nil
}

func (s *SkillCatalogService) get(ctx context.Context, id string) (*models.CatalogSkill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "failed to load catalog skill")
	}
	return skill, nil
}

func (s *SkillCatalogService) translate(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "catalog skill not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, message)
}
