package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skillswap/internal/models"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

func TestUserServiceGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.userSvc.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Emma Rodriguez", user.Name)

	_, err = env.userSvc.Get(ctx, "99")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = env.userSvc.GetByEmail(ctx, "nobody@email.com")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestUserServiceSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	everyone, err := env.userSvc.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, everyone, 5)

	photographers, err := env.userSvc.Search(ctx, "photo")
	require.NoError(t, err)
	ids := make([]string, 0, len(photographers))
	for _, u := range photographers {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"1", "4"}, ids)
}

func TestUserServiceUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "2")
	user.Availability = "Mornings"
	user.WantedSkills = append(user.WantedSkills, models.Skill{ID: "21", Name: "Spanish", Level: models.SkillLevelBeginner, Category: "Languages"})

	updated, err := env.userSvc.Update(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "Mornings", updated.Availability)

	stored := env.user(t, "2")
	assert.Len(t, stored.WantedSkills, 3)
}

func TestUserServiceUpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := map[string]func(u *models.User){
		"rating above five":   func(u *models.User) { u.Rating = 5.5 },
		"negative reviews":    func(u *models.User) { u.ReviewCount = -1 },
		"bad email":           func(u *models.User) { u.Email = "not-an-email" },
		"bad skill level":     func(u *models.User) { u.OfferedSkills[0].Level = "Guru" },
		"duplicate skill ids": func(u *models.User) { u.OfferedSkills[1].ID = u.OfferedSkills[0].ID },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			user := env.user(t, "2")
			mutate(&user)
			_, err := env.userSvc.Update(ctx, user)
			assert.True(t, errors.Is(err, appErrors.ErrValidation), err)
		})
	}

	missing := env.user(t, "2")
	missing.ID = "99"
	_, err := env.userSvc.Update(ctx, missing)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	taken := env.user(t, "2")
	taken.Email = "emma.r@email.com"
	_, err = env.userSvc.Update(ctx, taken)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}
