package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrack/sales-service/internal/domain"
)

// StaffRepository is the staff directory: identity, display name, role code,
// and store memberships, keyed by id or by opaque tracking id.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	Update(ctx context.Context, staff *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.StaffMember, error)
	List(ctx context.Context, filter StaffFilter) ([]domain.StaffMember, error)
	GetStoreMemberships(ctx context.Context, staffID string) ([]domain.StoreMembership, error)
	ReplaceStoreMemberships(ctx context.Context, staffID string, storeIDs []string) error
}

// StaffFilter defines query params for staff listing.
type StaffFilter struct {
	RoleCode *int
	StoreID  *string
	Active   *bool
	Limit    int
	Offset   int
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff_members (tracking_id, name, role_code, active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.TrackingID,
		staff.Name,
		staff.RoleCode,
		staff.Active,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        UPDATE staff_members SET name=$1, role_code=$2, active=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Name,
		staff.RoleCode,
		staff.Active,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, tracking_id, name, role_code, active, created_at, updated_at
        FROM staff_members WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *staffRepository) GetByTrackingID(ctx context.Context, trackingID string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, tracking_id, name, role_code, active, created_at, updated_at
        FROM staff_members WHERE tracking_id=$1 AND active=TRUE`
	return r.scanOne(ctx, query, trackingID)
}

func (r *staffRepository) scanOne(ctx context.Context, query string, arg any) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.TrackingID,
		&staff.Name,
		&staff.RoleCode,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context, filter StaffFilter) ([]domain.StaffMember, error) {
	query := `
        SELECT s.id, s.tracking_id, s.name, s.role_code, s.active, s.created_at, s.updated_at
        FROM staff_members s`
	args := []any{}
	clauses := []string{}

	if filter.StoreID != nil {
		query += " JOIN staff_stores ss ON ss.staff_id = s.id"
		args = append(args, *filter.StoreID)
		clauses = append(clauses, fmt.Sprintf("ss.store_id=$%d", len(args)))
	}
	if filter.RoleCode != nil {
		args = append(args, *filter.RoleCode)
		clauses = append(clauses, fmt.Sprintf("s.role_code=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("s.active=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY s.created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffMember
	for rows.Next() {
		var staff domain.StaffMember
		if err := rows.Scan(
			&staff.ID,
			&staff.TrackingID,
			&staff.Name,
			&staff.RoleCode,
			&staff.Active,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) GetStoreMemberships(ctx context.Context, staffID string) ([]domain.StoreMembership, error) {
	const query = `
        SELECT st.id, st.name
        FROM staff_stores ss
        JOIN stores st ON st.id = ss.store_id
        WHERE ss.staff_id=$1
        ORDER BY st.name`

	rows, err := r.pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []domain.StoreMembership
	for rows.Next() {
		var m domain.StoreMembership
		if err := rows.Scan(&m.StoreID, &m.StoreName); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (r *staffRepository) ReplaceStoreMemberships(ctx context.Context, staffID string, storeIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM staff_stores WHERE staff_id=$1`, staffID); err != nil {
		return err
	}
	for _, storeID := range storeIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO staff_stores (staff_id, store_id) VALUES ($1, $2)`,
			staffID, storeID,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
