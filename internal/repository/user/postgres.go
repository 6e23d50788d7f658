package user

import (
	"context"
	"errors"
	"io"
	"log"

	"huerto-hogar/internal/domain"
	"huerto-hogar/internal/validate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (email, password_hash, name, lastname, role, address, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text, email, password_hash, name, lastname, role, address, phone, created_at
`
	role := u.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	return r.scanUser(r.pool.QueryRow(
		ctx,
		q,
		validate.NormalizeEmail(u.Email),
		u.PasswordHash,
		u.Name,
		u.Lastname,
		role,
		u.Address,
		u.Phone,
	))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, email, password_hash, name, lastname, role, address, phone, created_at
FROM users
WHERE email = $1
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, validate.NormalizeEmail(email)))
}

func (r *postgresRepo) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *postgresRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, validate.NormalizeEmail(email)).Scan(&exists); err != nil {
		r.logger.Printf("user repo: exists email=%s error=%v", email, err)
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `
SELECT id::text, email, password_hash, name, lastname, role, address, phone, created_at
FROM users
ORDER BY created_at
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("user repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Lastname, &u.Role, &u.Address, &u.Phone, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("user repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Lastname, &u.Role, &u.Address, &u.Phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: scan error=%v", err)
		return nil, err
	}
	return &u, nil
}
