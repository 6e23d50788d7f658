package user

import (
	"context"
	"sync"
	"time"

	"huerto-hogar/internal/domain"
	"huerto-hogar/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memoryRepo keeps users in a map keyed by normalized email. Used for
// local runs and tests; behavior mirrors the Postgres implementation.
type memoryRepo struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
	order   []string
}

// NewMemory returns an empty in-memory Repository.
func NewMemory() Repository {
	return &memoryRepo{byEmail: make(map[string]domain.User)}
}

func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	email := validate.NormalizeEmail(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	u.Email = email
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleCustomer
	}
	u.CreatedAt = time.Now().UTC()
	r.byEmail[email] = u
	r.order = append(r.order, email)
	out := u
	return &out, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[validate.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := u
	return &out, nil
}

func (r *memoryRepo) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *memoryRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[validate.NormalizeEmail(email)]
	return ok, nil
}

func (r *memoryRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.order))
	for _, email := range r.order {
		out = append(out, r.byEmail[email])
	}
	return out, nil
}
