package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

func TestSkillCatalogServiceAdd(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.newID = func() string { return "catalog-5" }
	ctx := context.Background()

	skill, err := env.catalog.Add(ctx, dto.CatalogSkillRequest{Name: " Kotlin ", Category: "Mobile", Description: "Android apps"})
	require.NoError(t, err)
	assert.Equal(t, models.CatalogSkill{ID: "catalog-5", Name: "Kotlin", Category: "Mobile", Description: "Android apps", Active: true}, *skill)

	stats, err := env.catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CatalogStats{TotalSkills: 5, ActiveSkills: 4, Categories: 6, TotalUsers: 677}, stats)
}

func TestSkillCatalogServiceAddValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := map[string]dto.CatalogSkillRequest{
		"missing name":     {Category: "Mobile"},
		"blank name":       {Name: "   ", Category: "Mobile"},
		"missing category": {Name: "Kotlin"},
		"unknown category": {Name: "Kotlin", Category: "Cooking"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.catalog.Add(ctx, req)
			assert.True(t, errors.Is(err, appErrors.ErrValidation), err)
		})
	}

	all, err := env.catalog.List(ctx, models.CatalogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSkillCatalogServiceUpdateToggleDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	updated, err := env.catalog.Update(ctx, "3", dto.CatalogSkillRequest{Name: "Python", Category: "Data Science", Description: "Pandas and notebooks"})
	require.NoError(t, err)
	assert.Equal(t, "Python", updated.Name)
	assert.Equal(t, 198, updated.UserCount)
	assert.True(t, updated.Active)

	toggled, err := env.catalog.ToggleActive(ctx, "4")
	require.NoError(t, err)
	assert.True(t, toggled.Active)

	require.NoError(t, env.catalog.Delete(ctx, "1"))
	assert.True(t, errors.Is(env.catalog.Delete(ctx, "1"), appErrors.ErrNotFound))

	_, err = env.catalog.Update(ctx, "1", dto.CatalogSkillRequest{Name: "React", Category: "Frontend"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = env.catalog.ToggleActive(ctx, "1")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	stats, err := env.catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSkills)
	assert.Equal(t, 3, stats.ActiveSkills)
}

func TestSkillCatalogServiceList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	design, err := env.catalog.List(ctx, models.CatalogFilter{Search: "DESIGN"})
	require.NoError(t, err)
	require.Len(t, design, 1)
	assert.Equal(t, "2", design[0].ID)

	byDescription, err := env.catalog.List(ctx, models.CatalogFilter{Category: models.CatalogCategoryAll, Search: "automation"})
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "3", byDescription[0].ID)

	marketing, err := env.catalog.List(ctx, models.CatalogFilter{Category: "Marketing"})
	require.NoError(t, err)
	require.Len(t, marketing, 1)
	assert.False(t, marketing[0].Active)
}

func TestSessionSkillCatalogRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.session.AdminSkills(ctx, models.CatalogFilter{})
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	login(t, env, "emma.r@email.com")
	_, err = env.session.AdminAddSkill(ctx, dto.CatalogSkillRequest{Name: "Swift", Category: "Mobile"})
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))
	assert.True(t, errors.Is(env.session.AdminDeleteSkill(ctx, "1"), appErrors.ErrForbidden))

	login(t, env, "admin@skillswap.com")
	added, err := env.session.AdminAddSkill(ctx, dto.CatalogSkillRequest{Name: "Swift", Category: "Mobile"})
	require.NoError(t, err)
	_, err = env.session.AdminUpdateSkill(ctx, added.ID, dto.CatalogSkillRequest{Name: "SwiftUI", Category: "Mobile"})
	require.NoError(t, err)
	toggled, err := env.session.AdminToggleSkill(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)
	require.NoError(t, env.session.AdminDeleteSkill(ctx, "4"))

	skills, err := env.session.AdminSkills(ctx, models.CatalogFilter{Search: "swift"})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "SwiftUI", skills[0].Name)

	stats, err := env.session.AdminSkillStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CatalogStats{TotalSkills: 4, ActiveSkills: 3, Categories: 6, TotalUsers: 588}, stats)
}
