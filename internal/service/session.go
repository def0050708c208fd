package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap/internal/dto"
	"github.com/noah-isme/skillswap/internal/models"
	appErrors "github.com/noah-isme/skillswap/pkg/errors"
)

// DefaultAdminEmail is the login that unlocks admin views.
const DefaultAdminEmail = "admin@skillswap.com"

// SessionParams groups constructor dependencies.
type SessionParams struct {
	Users      *UserService
	Auth       *AuthService
	Swaps      *SwapService
	Matches    *MatchService
	Stats      StatsSource
	Reports    *ReportService
	Catalog    *SkillCatalogService
	Validator  *validator.Validate
	AdminEmail string
	Logger     *zap.Logger
}

// Session holds the signed-in user and exposes the directory, swap store and match finder.
// It is constructed per application run and passed explicitly to consumers.
type Session struct {
	mu      sync.RWMutex
	current *models.User

	users      *UserService
	auth       *AuthService
	swaps      *SwapService
	matches    *MatchService
	stats      StatsSource
	reports    *ReportService
	catalog    *SkillCatalogService
	validator  *validator.Validate
	adminEmail string
	logger     *zap.Logger
}

// NewSession constructs a Session with nobody signed in.
func NewSession(params SessionParams) *Session {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	adminEmail := strings.ToLower(strings.TrimSpace(params.AdminEmail))
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	return &Session{
		users:      params.Users,
		auth:       params.Auth,
		swaps:      params.Swaps,
		matches:    params.Matches,
		stats:      params.Stats,
		reports:    params.Reports,
		catalog:    params.Catalog,
		validator:  validate,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// CurrentUser returns a copy of the signed-in user.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return s.current.Clone(), true
}

// SetCurrentUser signs user in, or signs out when user is nil. The user must exist in the directory.
func (s *Session) SetCurrentUser(ctx context.Context, user *models.User) error {
	if user == nil {
		s.Logout()
		return nil
	}
	stored, err := s.users.Get(ctx, user.ID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = stored
	s.mu.Unlock()
	return nil
}

// Login authenticates by email and makes the result the current user.
func (s *Session) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	user, err := s.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	clone := user.Clone()
	return &clone, nil
}

// Logout clears the current user.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.logger.Info("user logged out", zap.String("user_id", s.current.ID))
	}
	s.current = nil
}

// UpdateUser replaces a directory record and refreshes the current user when it is the same person.
func (s *Session) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if s.current != nil && s.current.ID == updated.ID {
		refreshed := updated.Clone()
		s.current = &refreshed
	}
	return updated, nil
}

// GetUserByID looks a user up in the directory.
func (s *Session) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.Get(ctx, id)
}

// Users returns the whole directory.
func (s *Session) Users(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx, models.UserFilter{})
}

// SearchUsers filters the directory by name, location or skill.
func (s *Session) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return s.users.Search(ctx, query)
}

// SwapRequests returns every stored request in creation order.
func (s *Session) SwapRequests(ctx context.Context) ([]models.SwapRequest, error) {
	return s.swaps.List(ctx, models.SwapRequestFilter{})
}

// CreateSwapRequest stores a fully specified request.
func (s *Session) CreateSwapRequest(ctx context.Context, req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	return s.swaps.Create(ctx, req)
}

// UpdateSwapRequest transitions a request without checking who is asking.
func (s *Session) UpdateSwapRequest(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	return s.swaps.UpdateStatus(ctx, id, status)
}

// FindMatches runs the match finder for the current user.
func (s *Session) FindMatches(ctx context.Context) ([]models.Match, error) {
	current, err := s.requireCurrent()
	if err != nil {
		return nil, err
	}
	return s.matches.ForUser(ctx, current)
}

// ProposeSwap sends a request from the current user, resolving both skills by ID.
func (s *Session) ProposeSwap(ctx context.Context, req dto.ProposeSwapRequest) (*models.SwapRequest, error) {
	current, err := s.requireCurrent()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, "please select both skills for the exchange")
	}
	if req.ToUserID == current.ID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cannot request a swap with yourself")
	}

	from, err := s.users.Get(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	to, err := s.users.Get(ctx, req.ToUserID)
	if err != nil {
		return nil, err
	}
	offered, ok := from.OfferedSkills.FindByID(req.OfferedSkillID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "selected skills not found")
	}
	requested, ok := to.OfferedSkills.FindByID(req.RequestedSkillID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "selected skills not found")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = fmt.Sprintf("Hi %s! I'd love to exchange skills with you.", to.Name)
	}

	return s.swaps.Create(ctx, dto.CreateSwapRequest{
		FromUserID:     from.ID,
		ToUserID:       to.ID,
		FromUser:       *from,
		ToUser:         *to,
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Message:        message,
	})
}

// AcceptSwap lets the recipient accept a pending request.
func (s *Session) AcceptSwap(ctx context.Context, id string) (*models.SwapRequest, error) {
	return s.decide(ctx, id, models.SwapStatusAccepted, func(swap *models.SwapRequest, userID string) bool {
		return swap.ToUserID == userID
	})
}

// RejectSwap lets the recipient decline a pending request.
func (s *Session) RejectSwap(ctx context.Context, id string) (*models.SwapRequest, error) {
	return s.decide(ctx, id, models.SwapStatusRejected, func(swap *models.SwapRequest, userID string) bool {
		return swap.ToUserID == userID
	})
}

// CompleteSwap lets either party mark an accepted swap as done.
func (s *Session) CompleteSwap(ctx context.Context, id string) (*models.SwapRequest, error) {
	return s.decide(ctx, id, models.SwapStatusCompleted, func(swap *models.SwapRequest, userID string) bool {
		return swap.Involves(userID)
	})
}

func (s *Session) decide(ctx context.Context, id string, status models.SwapStatus, allowed func(*models.SwapRequest, string) bool) (*models.SwapRequest, error) {
	current, err := s.requireCurrent()
	if err != nil {
		return nil, err
	}
	swap, err := s.swaps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowed(swap, current.ID) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("user may not mark this swap request %s", status))
	}
	return s.swaps.UpdateStatus(ctx, id, status)
}

// MySwaps returns the current user's swap board.
func (s *Session) MySwaps(ctx context.Context) (*dto.SwapBoard, error) {
	current, err := s.requireCurrent()
	if err != nil {
		return nil, err
	}
	return s.swaps.Board(ctx, current.ID)
}

// IsAdmin reports whether the current user holds the admin login.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && strings.EqualFold(s.current.Email, s.adminEmail)
}

// AdminStats returns platform totals for admins.
func (s *Session) AdminStats(ctx context.Context) (models.PlatformStats, error) {
	if err := s.requireAdmin(); err != nil {
		return models.PlatformStats{}, err
	}
	return s.stats.Stats(ctx)
}

// AdminReport renders an export for admins.
func (s *Session) AdminReport(ctx context.Context, req dto.ReportRequest) (*models.Report, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.reports.Generate(ctx, req)
}

// AdminSkills lists the platform skill catalog for admins.
func (s *Session) AdminSkills(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogSkill, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.catalog.List(ctx, filter)
}

// AdminAddSkill adds a platform skill.
func (s *Session) AdminAddSkill(ctx context.Context, req dto.CatalogSkillRequest) (*models.CatalogSkill, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.catalog.Add(ctx, req)
}

// AdminUpdateSkill edits a platform skill.
func (s *Session) AdminUpdateSkill(ctx context.Context, id string, req dto.CatalogSkillRequest) (*models.CatalogSkill, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.catalog.Update(ctx, id, req)
}

// AdminToggleSkill enables or disables a platform skill.
func (s *Session) AdminToggleSkill(ctx context.Context, id string) (*models.CatalogSkill, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.catalog.ToggleActive(ctx, id)
}

// AdminDeleteSkill removes a platform skill.
func (s *Session) AdminDeleteSkill(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return s.catalog.Delete(ctx, id)
}

// AdminSkillStats summarises the catalog.
func (s *Session) AdminSkillStats(ctx context.Context) (models.CatalogStats, error) {
	if err := s.requireAdmin(); err != nil {
		return models.CatalogStats{}, err
	}
	return s.catalog.Stats(ctx)
}

func (s *Session) requireCurrent() (models.User, error) {
	current, ok := s.CurrentUser()
	if !ok {
		return models.User{}, appErrors.Clone(appErrors.ErrUnauthorized, "no user is signed in")
	}
	return current, nil
}

func (s *Session) requireAdmin() error {
	if _, err := s.requireCurrent(); err != nil {
		return err
	}
	if !s.IsAdmin() {
		return appErrors.Clone(appErrors.ErrForbidden, "admin access required")
	}
	return nil
}
