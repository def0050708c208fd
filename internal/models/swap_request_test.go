package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to SwapStatus
		allowed  bool
	}{
		{SwapStatusPending, SwapStatusAccepted, true},
		{SwapStatusPending, SwapStatusRejected, true},
		{SwapStatusPending, SwapStatusCompleted, false},
		{SwapStatusAccepted, SwapStatusCompleted, true},
		{SwapStatusAccepted, SwapStatusPending, false},
		{SwapStatusAccepted, SwapStatusRejected, false},
		{SwapStatusAccepted, SwapStatusAccepted, false},
		{SwapStatusRejected, SwapStatusAccepted, false},
		{SwapStatusRejected, SwapStatusPending, false},
		{SwapStatusCompleted, SwapStatusAccepted, false},
		{SwapStatusCompleted, SwapStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, SwapStatusRejected.Terminal())
	assert.True(t, SwapStatusCompleted.Terminal())
	assert.False(t, SwapStatusAccepted.Terminal())
	assert.False(t, SwapStatus("cancelled").Valid())
}

func TestSwapRequestFilterMatches(t *testing.T) {
	req := SwapRequest{FromUserID: "1", ToUserID: "2", Status: SwapStatusPending}

	assert.True(t, SwapRequestFilter{}.Matches(req))
	assert.True(t, SwapRequestFilter{UserID: "2"}.Matches(req))
	assert.False(t, SwapRequestFilter{UserID: "3"}.Matches(req))
	assert.True(t, SwapRequestFilter{ToUserID: "2", Status: []SwapStatus{SwapStatusPending}}.Matches(req))
	assert.False(t, SwapRequestFilter{FromUserID: "2"}.Matches(req))
	assert.False(t, SwapRequestFilter{Status: []SwapStatus{SwapStatusAccepted, SwapStatusCompleted}}.Matches(req))
}

func TestSwapRequestCloneIsDeep(t *testing.T) {
	req := SwapRequest{
		FromUserID: "1",
		ToUserID:   "2",
		FromUser:   User{ID: "1", OfferedSkills: SkillSet{{ID: "s1", Name: "React"}}},
		ToUser:     User{ID: "2", OfferedSkills: SkillSet{{ID: "s2", Name: "Guitar"}}},
	}
	clone := req.Clone()
	clone.FromUser.OfferedSkills[0].Name = "Vue"

	assert.Equal(t, "React", req.FromUser.OfferedSkills[0].Name)
	assert.Equal(t, "Guitar", req.Counterpart("1").OfferedSkills[0].Name)
	assert.Equal(t, "1", req.Counterpart("2").ID)
}

func TestSkillSetHelpers(t *testing.T) {
	set := SkillSet{{ID: "1", Name: "Spanish"}, {ID: "2", Name: "Photography"}}

	skill, ok := set.FindByID("2")
	assert.True(t, ok)
	assert.Equal(t, "Photography", skill.Name)
	assert.False(t, set.Contains(Skill{ID: "9"}))
	assert.False(t, set.HasDuplicateIDs())
	assert.True(t, append(set, Skill{ID: "1"}).HasDuplicateIDs())
	assert.Contains(t, set.LowerNames(), "spanish")
	assert.Equal(t, "match-4-16", MatchID("4", "16"))
}
