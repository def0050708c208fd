package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/noah-isme/skillswap/internal/models"
)

// UserRepository is the in-memory user directory. Records keep insertion order.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserRepository constructs a directory seeded with the given users.
func NewUserRepository(seed []models.User) (*UserRepository, error) {
	r := &UserRepository{}
	for _, u := range seed {
		if err := r.Create(context.Background(), u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// List returns users matching the filter in directory order.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if query != "" && !userMatchesQuery(u, query) {
			continue
		}
		result = append(result, u.Clone())
	}
	return result, nil
}

// FindByID returns the user with the given ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	u := r.users[idx].Clone()
	return &u, nil
}

// FindByEmail returns the user with the given email, compared case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.TrimSpace(email)
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := u.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a user, rejecting duplicate IDs or emails.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(user.ID) >= 0 || r.emailTaken(user.Email, "") {
		return ErrConflict
	}
	r.users = append(r.users, user.Clone())
	return nil
}

// Update replaces the record with the same ID.
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(user.ID)
	if idx < 0 {
		return ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return ErrConflict
	}
	r.users[idx] = user.Clone()
	return nil
}

// Count returns the directory size.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *UserRepository) indexOf(id string) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (r *UserRepository) emailTaken(email, exceptID string) bool {
	for _, u := range r.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func userMatchesQuery(u models.User, query string) bool {
	if strings.Contains(strings.ToLower(u.Name), query) || strings.Contains(strings.ToLower(u.Location), query) {
		return true
	}
	for _, set := range []models.SkillSet{u.OfferedSkills, u.WantedSkills} {
		for _, skill := range set {
			if strings.Contains(strings.ToLower(skill.Name), query) {
				return true
			}
		}
	}
	return false
}
