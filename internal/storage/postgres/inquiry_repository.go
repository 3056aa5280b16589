package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

func (r *InquiryRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *InquiryRepository) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	const query = `SELECT id, name, status FROM products WHERE id = $1`
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

func (r *InquiryRepository) CreateInquiry(ctx context.Context, inquiry domain.Inquiry) error {
	const stmt = `
INSERT INTO purchase_inquiries
	(id, product_id, customer_name, customer_email, customer_phone, inquiry_type,
	 offer_amount, shipping_zip, message, status, is_read, created_at)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12)`

	_, err := r.exec(ctx, stmt,
		inquiry.ID,
		inquiry.ProductID,
		inquiry.CustomerName,
		inquiry.CustomerEmail,
		inquiry.CustomerPhone,
		inquiry.Type,
		inquiry.OfferAmount,
		inquiry.ShippingZip,
		inquiry.Message,
		inquiry.Status,
		inquiry.IsRead,
		inquiry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepository) GetInquiryForUpdate(ctx context.Context, inquiryID string) (domain.Inquiry, error) {
	const query = `
SELECT id, product_id, customer_name, customer_email, COALESCE(customer_phone, ''),
       inquiry_type, offer_amount, COALESCE(shipping_zip, ''), COALESCE(message, ''),
       status, is_read, created_at
FROM purchase_inquiries
WHERE id = $1
FOR UPDATE`

	var q domain.Inquiry
	err := r.queryRow(ctx, query, inquiryID).Scan(
		&q.ID, &q.ProductID, &q.CustomerName, &q.CustomerEmail, &q.CustomerPhone,
		&q.Type, &q.OfferAmount, &q.ShippingZip, &q.Message,
		&q.Status, &q.IsRead, &q.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Inquiry{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Inquiry{}, domain.ErrInquiryNotFound
		}
		return domain.Inquiry{}, fmt.Errorf("get inquiry: %w", err)
	}
	return q, nil
}

func (r *InquiryRepository) UpdateInquiryStatus(ctx context.Context, inquiryID string, status domain.InquiryStatus) error {
	const stmt = `UPDATE purchase_inquiries SET status = $2 WHERE id = $1`
	tag, err := r.exec(ctx, stmt, inquiryID, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update inquiry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepository) MarkInquiryRead(ctx context.Context, inquiryID string) error {
	const stmt = `UPDATE purchase_inquiries SET is_read = TRUE WHERE id = $1`
	tag, err := r.exec(ctx, stmt, inquiryID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("mark inquiry read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepository) ListInquiries(ctx context.Context, filter domain.InquiryFilter) ([]domain.Inquiry, error) {
	query := `
SELECT q.id, q.product_id, q.customer_name, q.customer_email, COALESCE(q.customer_phone, ''),
       q.inquiry_type, q.offer_amount, COALESCE(q.shipping_zip, ''), COALESCE(q.message, ''),
       q.status, q.is_read, q.created_at, p.name
FROM purchase_inquiries q
JOIN products p ON p.id = q.product_id`

	var clauses []string
	var args []any
	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("q.inquiry_type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("q.status = $%d", len(args)))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += ` ORDER BY q.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		var q domain.Inquiry
		if err := rows.Scan(
			&q.ID, &q.ProductID, &q.CustomerName, &q.CustomerEmail, &q.CustomerPhone,
			&q.Type, &q.OfferAmount, &q.ShippingZip, &q.Message,
			&q.Status, &q.IsRead, &q.CreatedAt, &q.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, q)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate inquiries: %w", rows.Err())
	}
	return inquiries, nil
}

func (r *InquiryRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *InquiryRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
