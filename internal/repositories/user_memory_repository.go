package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"annapurna/internal/models/db_models"
	"annapurna/pkg/utils"
)

// InMemoryUserRepository is the ephemeral fallback backend used while
// the database is unreachable. Everything in it is lost on restart.
//
// The first account ever inserted is promoted to admin; that is what
// keeps a fresh fallback deployment administrable without a database.
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*db_models.User
	byID    map[string]*db_models.User
	nextID  int64
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byEmail: make(map[string]*db_models.User),
		byID:    make(map[string]*db_models.User),
		// Seeded from wall-clock once, then strictly monotonic, so two
		// inserts in the same millisecond cannot collide.
		nextID: time.Now().UnixMilli(),
	}
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

// Insert performs the duplicate check and the write under one lock, so
// concurrent signups with the same email cannot both succeed.
func (r *InMemoryUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return utils.ErrEmailAlreadyExists
	}

	if user.ID == "" {
		user.ID = strconv.FormatInt(r.nextID, 10)
		r.nextID++
	}
	if len(r.byEmail) == 0 {
		user.IsAdmin = true
	}
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := cloneUser(user)
	r.byEmail[stored.Email] = stored
	r.byID[stored.ID] = stored
	return nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return utils.ErrAccountNotFound
	}

	user.UpdatedAt = time.Now().Unix()
	stored := cloneUser(user)
	if existing.Email != stored.Email {
		delete(r.byEmail, existing.Email)
	}
	r.byEmail[stored.Email] = stored
	r.byID[stored.ID] = stored
	return nil
}

func (r *InMemoryUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byEmail)), nil
}

func (r *InMemoryUserRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]db_models.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

// cloneUser keeps stored records isolated from caller mutation; the
// maps are shared across every request goroutine.
func cloneUser(u *db_models.User) *db_models.User {
	cp := *u
	if u.Height != nil {
		h := *u.Height
		cp.Height = &h
	}
	if u.Weight != nil {
		w := *u.Weight
		cp.Weight = &w
	}
	return &cp
}
