package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawcare-service/internal/domain/auth"
)

type userRepo struct {
	opts options

	mu      sync.RWMutex
	byID    map[string]auth.User
	byEmail map[string]string // email (lowercase) -> id
}

func NewUserRepo(opts ...Option) auth.Repository {
	return &userRepo{
		opts:    buildOptions(opts),
		byID:    make(map[string]auth.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u auth.User) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	if strings.TrimSpace(u.ID) == "" {
		r.mu.Unlock()
		return errors.New("user id required")
	}
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, exists := r.byEmail[email]; exists {
		r.mu.Unlock()
		return errors.New("user already exists")
	}
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	r.mu.Unlock()

	r.opts.emit("users", u.ID, ChangeCreated)
	return nil
}

func (r *userRepo) Update(ctx context.Context, u auth.User) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	prev, exists := r.byID[u.ID]
	if !exists {
		r.mu.Unlock()
		return ErrNotFound
	}
	// El email es la llave de login: no cambia en updates de perfil.
	u.Email = prev.Email
	r.byID[u.ID] = u
	r.mu.Unlock()

	r.opts.emit("users", u.ID, ChangeUpdated)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return auth.User{}, ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return auth.User{}, ErrNotFound
	}
	return r.byID[id], nil
}
