package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrack/sales-service/internal/domain"
)

// AdminRepository is the credential store for console administrators. The
// token columns hold at most one live session per account; UpdateToken
// overwrites them wholesale, which is how revocation works.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminAccount) error
	GetByUsernameAndHash(ctx context.Context, username, passwordHash string) (*domain.AdminAccount, error)
	UpdateToken(ctx context.Context, id, token string, expiresAt time.Time) error
	GetByLiveToken(ctx context.Context, token string, now time.Time) (*domain.AdminAccount, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.AdminAccount) error {
	const query = `
        INSERT INTO admins (username, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		admin.Username,
		admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) GetByUsernameAndHash(ctx context.Context, username, passwordHash string) (*domain.AdminAccount, error) {
	const query = `
        SELECT id, username, password_hash, token, token_expires, created_at, updated_at
        FROM admins WHERE username=$1 AND password_hash=$2`

	var admin domain.AdminAccount
	if err := r.pool.QueryRow(ctx, query, username, passwordHash).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Token,
		&admin.TokenExpires,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) UpdateToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	const query = `
        UPDATE admins SET token=$1, token_expires=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, token, expiresAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) GetByLiveToken(ctx context.Context, token string, now time.Time) (*domain.AdminAccount, error) {
	const query = `
        SELECT id, username, password_hash, token, token_expires, created_at, updated_at
        FROM admins WHERE token=$1 AND token_expires > $2`

	var admin domain.AdminAccount
	if err := r.pool.QueryRow(ctx, query, token, now).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Token,
		&admin.TokenExpires,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
