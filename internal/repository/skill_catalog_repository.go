package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/skillswap/internal/models"
)

// SkillCatalogRepository keeps platform skills in insertion order.
type SkillCatalogRepository struct {
	mu     sync.RWMutex
	skills []models.CatalogSkill
}

// NewSkillCatalogRepository seeds the catalog, rejecting duplicate IDs.
func NewSkillCatalogRepository(seed []models.CatalogSkill) (*SkillCatalogRepository, error) {
	r := &SkillCatalogRepository{}
	for _, skill := range seed {
		if err := r.Create(context.Background(), skill); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// List returns skills matching the filter.
func (r *SkillCatalogRepository) List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogSkill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.CatalogSkill, 0, len(r.skills))
	for _, skill := range r.skills {
		if filter.Matches(skill) {
			result = append(result, skill)
		}
	}
	return result, nil
}

// FindByID returns the skill with the given ID.
func (r *SkillCatalogRepository) FindByID(ctx context.Context, id string) (*models.CatalogSkill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	skill := r.skills[idx]
	return &skill, nil
}

// Create appends a skill.
func (r *SkillCatalogRepository) Create(ctx context.Context, skill models.CatalogSkill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(skill.ID) >= 0 {
		return ErrConflict
	}
	r.skills = append(r.skills, skill)
	return nil
}

// Update replaces the skill with the same ID.
func (r *SkillCatalogRepository) Update(ctx context.Context, skill models.CatalogSkill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(skill.ID)
	if idx < 0 {
		return ErrNotFound
	}
	r.skills[idx] = skill
	return nil
}

// ToggleActive flips the active flag and returns the updated skill.
func (r *SkillCatalogRepository) ToggleActive(ctx context.Context, id string) (*models.CatalogSkill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	r.skills[idx].Active = !r.skills[idx].Active
	skill := r.skills[idx]
	return &skill, nil
}

// Delete removes the skill with the given ID.
func (r *SkillCatalogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.skills = append(r.skills[:idx], r.skills[idx+1:]...)
	return nil
}

func (r *SkillCatalogRepository) indexOf(id string) int {
	for i, skill := range r.skills {
		if skill.ID == id {
			return i
		}
	}
	return -1
}
