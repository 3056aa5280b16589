package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type HoldRepository struct {
	pool *pgxpool.Pool
}

func NewHoldRepository(pool *pgxpool.Pool) *HoldRepository {
	return &HoldRepository{pool: pool}
}

func (r *HoldRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *HoldRepository) GetProductForUpdate(ctx context.Context, productID string) (domain.Product, error) {
	const query = `SELECT id, name, status FROM products WHERE id = $1 FOR UPDATE`
	var p domain.Product
	err := r.queryRow(ctx, query, productID).Scan(&p.ID, &p.Name, &p.Status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Product{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *HoldRepository) CreateHold(ctx context.Context, hold domain.Hold) error {
	const stmt = `
INSERT INTO product_holds (id, product_id, customer_name, customer_email, customer_phone, notes, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		hold.ID,
		hold.ProductID,
		hold.CustomerName,
		hold.CustomerEmail,
		hold.CustomerPhone,
		hold.Notes,
		hold.Status,
		hold.ExpiresAt,
		hold.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create hold: %w", err)
	}
	return nil
}

func (r *HoldRepository) GetHoldForUpdate(ctx context.Context, holdID string) (domain.Hold, error) {
	const query = `
SELECT id, product_id, customer_name, customer_email, COALESCE(customer_phone, ''),
       COALESCE(notes, ''), status, expires_at, created_at
FROM product_holds
WHERE id = $1
FOR UPDATE`

	var h domain.Hold
	err := r.queryRow(ctx, query, holdID).Scan(
		&h.ID, &h.ProductID, &h.CustomerName, &h.CustomerEmail, &h.CustomerPhone,
		&h.Notes, &h.Status, &h.ExpiresAt, &h.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Hold{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Hold{}, domain.ErrHoldNotFound
		}
		return domain.Hold{}, fmt.Errorf("get hold: %w", err)
	}
	return h, nil
}

func (r *HoldRepository) UpdateHoldStatus(ctx context.Context, holdID string, status domain.HoldStatus) error {
	const stmt = `UPDATE product_holds SET status = $2 WHERE id = $1`
	tag, err := r.exec(ctx, stmt, holdID, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update hold status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHoldNotFound
	}
	return nil
}

func (r *HoldRepository) UpdateProductStatus(ctx context.Context, productID string, status domain.ProductStatus) error {
	const stmt = `UPDATE products SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.exec(ctx, stmt, productID, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update product status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *HoldRepository) ListHolds(ctx context.Context, status domain.HoldStatus) ([]domain.Hold, error) {
	query := `
SELECT h.id, h.product_id, h.customer_name, h.customer_email, COALESCE(h.customer_phone, ''),
       COALESCE(h.notes, ''), h.status, h.expires_at, h.created_at, p.name
FROM product_holds h
JOIN products p ON p.id = h.product_id`
	var args []any
	if status != "" {
		query += ` WHERE h.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY h.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list holds: %w", err)
	}
	defer rows.Close()

	var holds []domain.Hold
	for rows.Next() {
		var h domain.Hold
		if err := rows.Scan(
			&h.ID, &h.ProductID, &h.CustomerName, &h.CustomerEmail, &h.CustomerPhone,
			&h.Notes, &h.Status, &h.ExpiresAt, &h.CreatedAt, &h.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan hold: %w", err)
		}
		holds = append(holds, h)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate holds: %w", rows.Err())
	}
	return holds, nil
}

func (r *HoldRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *HoldRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
