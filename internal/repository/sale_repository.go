package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrack/sales-service/internal/domain"
)

// SaleRepository records sales and serves the dashboard aggregates.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context, filter SaleFilter) ([]domain.Sale, error)
	StoreTotals(ctx context.Context, storeID string, from, to time.Time) (*domain.StoreTotals, error)
	StaffLeaderboard(ctx context.Context, storeID string, from, to time.Time) ([]domain.StaffTotal, error)
	DailySeries(ctx context.Context, storeID string, from, to time.Time) ([]domain.DailyTotal, error)
}

// SaleFilter narrows sale listings.
type SaleFilter struct {
	StoreID *string
	StaffID *string
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

type saleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository instantiates the repository.
func NewSaleRepository(pool *pgxpool.Pool) SaleRepository {
	return &saleRepository{pool: pool}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	const query = `
        INSERT INTO sales (receipt_no, store_id, staff_id, product_id, amount_cents, sold_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		sale.ReceiptNo,
		sale.StoreID,
		sale.StaffID,
		sale.ProductID,
		sale.AmountCent,
		sale.SoldAt,
	).Scan(&sale.ID, &sale.CreatedAt)
}

func (r *saleRepository) List(ctx context.Context, filter SaleFilter) ([]domain.Sale, error) {
	query := `
        SELECT id, receipt_no, store_id, staff_id, product_id, amount_cents, sold_at, created_at
        FROM sales`
	args := []any{}
	clauses := []string{}

	if filter.StoreID != nil {
		args = append(args, *filter.StoreID)
		clauses = append(clauses, fmt.Sprintf("store_id=$%d", len(args)))
	}
	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		clauses = append(clauses, fmt.Sprintf("staff_id=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("sold_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("sold_at < $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY sold_at DESC"
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

	var result []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.ReceiptNo,
			&sale.StoreID,
			&sale.StaffID,
			&sale.ProductID,
			&sale.AmountCent,
			&sale.SoldAt,
			&sale.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, sale)
	}
	return result, rows.Err()
}

func (r *saleRepository) StoreTotals(ctx context.Context, storeID string, from, to time.Time) (*domain.StoreTotals, error) {
	const query = `
        SELECT COALESCE(SUM(amount_cents), 0), COUNT(*)
        FROM sales WHERE store_id=$1 AND sold_at >= $2 AND sold_at < $3`

	totals := domain.StoreTotals{StoreID: storeID}
	if err := r.pool.QueryRow(ctx, query, storeID, from, to).Scan(
		&totals.AmountCent,
		&totals.SaleCount,
	); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *saleRepository) StaffLeaderboard(ctx context.Context, storeID string, from, to time.Time) ([]domain.StaffTotal, error) {
	const query = `
        SELECT s.staff_id, sm.name, SUM(s.amount_cents), COUNT(*)
        FROM sales s
        JOIN staff_members sm ON sm.id = s.staff_id
        WHERE s.store_id=$1 AND s.sold_at >= $2 AND s.sold_at < $3
        GROUP BY s.staff_id, sm.name
        ORDER BY SUM(s.amount_cents) DESC`

	rows, err := r.pool.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffTotal
	for rows.Next() {
		var row domain.StaffTotal
		if err := rows.Scan(&row.StaffID, &row.StaffName, &row.AmountCent, &row.SaleCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *saleRepository) DailySeries(ctx context.Context, storeID string, from, to time.Time) ([]domain.DailyTotal, error) {
	const query = `
        SELECT TO_CHAR(DATE_TRUNC('day', sold_at), 'YYYY-MM-DD'), SUM(amount_cents), COUNT(*)
        FROM sales WHERE store_id=$1 AND sold_at >= $2 AND sold_at < $3
        GROUP BY 1 ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DailyTotal
	for rows.Next() {
		var row domain.DailyTotal
		if err := rows.Scan(&row.Day, &row.AmountCent, &row.SaleCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
