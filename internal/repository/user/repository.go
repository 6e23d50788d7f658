package user

import (
	"context"

	"huerto-hogar/internal/domain"
)

// Repository is the user directory consumed by the login and registration
// flows. FindByCredentials returns domain.ErrNotFound both for unknown
// emails and for wrong passwords; Create returns domain.ErrAlreadyExists
// when the email is taken.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}
