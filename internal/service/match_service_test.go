package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skillswap/internal/models"
)

func userOffering(id string, offered ...string) models.User {
	u := models.User{ID: id, Name: "user " + id}
	for i, name := range offered {
		u.OfferedSkills = append(u.OfferedSkills, models.Skill{ID: id + "-" + string(rune('a'+i)), Name: name, Level: models.SkillLevelExpert})
	}
	return u
}

func userWanting(id string, wanted ...string) models.User {
	u := models.User{ID: id, Name: "user " + id}
	for i, name := range wanted {
		u.WantedSkills = append(u.WantedSkills, models.Skill{ID: id + "-w" + string(rune('a'+i)), Name: name, Level: models.SkillLevelBeginner})
	}
	return u
}

func TestFindMatchesIsCaseInsensitiveAndKeepsCandidateCasing(t *testing.T) {
	current := userWanting("me", "Spanish")
	candidates := []models.User{
		userOffering("a", "French"),
		userOffering("b", "spanish"),
		userOffering("c", "Guitar"),
	}

	matches := FindMatches(current, candidates, 3)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].CandidateID)
	assert.Equal(t, "spanish", matches[0].MatchingSkillName)
	assert.Equal(t, models.MatchID("b", "b-a"), matches[0].ID)
}

func TestFindMatchesGuitarScenario(t *testing.T) {
	a := userWanting("A", "Guitar")
	b := userOffering("B", "Guitar", "Piano")

	matches := FindMatches(a, []models.User{b}, 3)
	require.Len(t, matches, 1)
	assert.Equal(t, "B", matches[0].CandidateID)
	assert.Equal(t, "Guitar", matches[0].MatchingSkillName)
}

func TestFindMatchesReportsFirstOfferedSkillInCandidateOrder(t *testing.T) {
	current := userWanting("me", "Piano", "Guitar")
	candidate := userOffering("x", "Drums", "GUITAR", "piano")

	matches := FindMatches(current, []models.User{candidate}, 3)
	require.Len(t, matches, 1)
	assert.Equal(t, "GUITAR", matches[0].MatchingSkillName)
}

func TestFindMatchesExcludesSelfAndCapsResults(t *testing.T) {
	current := userWanting("me", "Chess")
	current.OfferedSkills = models.SkillSet{{ID: "own", Name: "Chess"}}
	candidates := []models.User{current}
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		candidates = append(candidates, userOffering(id, "chess"))
	}

	matches := FindMatches(current, candidates, 3)
	require.Len(t, matches, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, matches[i].CandidateID)
		assert.NotEqual(t, current.ID, matches[i].CandidateID)
	}

	assert.Len(t, FindMatches(current, candidates, 0), DefaultMatchLimit)
	assert.Len(t, FindMatches(current, candidates, 10), 5)
}

func TestFindMatchesWithoutWantedSkills(t *testing.T) {
	assert.Empty(t, FindMatches(models.User{ID: "me"}, []models.User{userOffering("a", "Chess")}, 3))
}

func TestMatchServiceForSeedDirectory(t *testing.T) {
	env := newTestEnv(t)

	matches, err := env.matchSvc.ForUser(context.Background(), env.user(t, "1"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "4", matches[0].CandidateID)
	assert.Equal(t, "Photography", matches[0].MatchingSkillName)
	assert.Equal(t, "David Kim", matches[0].CandidateName)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.matchLookups))
}

type failingLister struct{ err error }

func (f failingLister) List(context.Context, models.UserFilter) ([]models.User, error) {
	return nil, f.err
}

func TestMatchServicePropagatesListErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewMatchService(failingLister{err: boom}, nil, nil, 0)

	_, err := svc.ForUser(context.Background(), userWanting("me", "Chess"))
	assert.ErrorIs(t, err, boom)
}
