package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/models"
)

// DefaultMatchLimit caps how many matches are surfaced at once.
const DefaultMatchLimit = 3

// FindMatches returns candidates offering at least one skill current wants, in candidate order.
// The reported skill is the candidate's first offered skill whose name equals a wanted name
// case-insensitively, with the candidate's casing. current itself is never included.
func FindMatches(current models.User, candidates []models.User, limit int) []models.Match {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	wanted := current.WantedSkills.LowerNames()
	if len(wanted) == 0 {
		return []models.Match{}
	}

	matches := make([]models.Match, 0, limit)
	for _, candidate := range candidates {
		if len(matches) == limit {
			break
		}
		if candidate.ID == current.ID {
			continue
		}
		for _, skill := range candidate.OfferedSkills {
			if _, ok := wanted[strings.ToLower(skill.Name)]; !ok {
				continue
			}
			matches = append(matches, models.Match{
				ID:                models.MatchID(candidate.ID, skill.ID),
				CandidateID:       candidate.ID,
				CandidateName:     candidate.Name,
				MatchingSkillID:   skill.ID,
				MatchingSkillName: skill.Name,
			})
			break
		}
	}
	return matches
}

type userLister interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// MatchService runs the match finder against the live directory.
type MatchService struct {
	users   userLister
	metrics *MetricsService
	logger  *zap.Logger
	limit   int
}

// NewMatchService constructs the service. A non-positive limit falls back to DefaultMatchLimit.
func NewMatchService(users userLister, metrics *MetricsService, logger *zap.Logger, limit int) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	return &MatchService{users: users, metrics: metrics, logger: logger, limit: limit}
}

// ForUser finds matches for user among everyone in the directory.
func (s *MatchService) ForUser(ctx context.Context, user models.User) ([]models.Match, error) {
	candidates, err := s.users.List(ctx, models.UserFilter{})
	if err != nil {
		return nil, err
	}
	matches := FindMatches(user, candidates, s.limit)
	s.metrics.ObserveMatchLookup(len(matches))
	s.logger.Debug("matches computed", zap.String("user_id", user.ID), zap.Int("count", len(matches)))
	return matches, nil
}
