package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"donatehub/internal/domain"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(pool *pgxpool.Pool) *UserRepositoryPG {
	return &UserRepositoryPG{pool: pool}
}

// Create inserts a new user. A unique-violation on the email column maps to
// domain.ErrEmailTaken.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, first_name, last_name, email, password_hash, role,
  verified, logo, created_at)
VALUES ($1, $2, $3, lower($4), $5, $6, $7, $8, $9);
`, user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		string(user.Role), user.Verified, user.Logo, user.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrEmailTaken
	}
	return err
}

// GetByEmail fetches a user by email, matched case-insensitively.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `
SELECT id, first_name, last_name, email, password_hash, role, verified, logo, created_at
FROM users
WHERE email = lower($1);
`, email)
}

// GetByID fetches a user by id.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `
SELECT id, first_name, last_name, email, password_hash, role, verified, logo, created_at
FROM users
WHERE id = $1;
`, id)
}

func (r *UserRepositoryPG) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	var role string
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.FirstName, &u.LastName,
		&u.Email, &u.PasswordHash, &role, &u.Verified, &u.Logo, &u.CreatedAt)
	if err != nil {
		return nil, errNoRows(err)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
