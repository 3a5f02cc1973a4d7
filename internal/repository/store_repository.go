package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrack/sales-service/internal/domain"
)

// StoreRepository handles persistence for stores.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context) ([]domain.Store, error)
}

type storeRepository struct {
	pool *pgxpool.Pool
}

// NewStoreRepository instantiates the repository.
func NewStoreRepository(pool *pgxpool.Pool) StoreRepository {
	return &storeRepository{pool: pool}
}

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (name, region, active)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		store.Name,
		store.Region,
		store.Active,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
}

func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	const query = `
        UPDATE stores SET name=$1, region=$2, active=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		store.Name,
		store.Region,
		store.Active,
		store.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	const query = `
        SELECT id, name, region, active, created_at, updated_at
        FROM stores WHERE id=$1`

	var store domain.Store
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Region,
		&store.Active,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) List(ctx context.Context) ([]domain.Store, error) {
	const query = `
        SELECT id, name, region, active, created_at, updated_at
        FROM stores ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Store
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Region,
			&store.Active,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, store)
	}
	return result, rows.Err()
}
