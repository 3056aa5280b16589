package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type SpecSheetRepository struct {
	pool    *pgxpool.Pool
	catalog *CatalogRepository
}

func NewSpecSheetRepository(pool *pgxpool.Pool) *SpecSheetRepository {
	return &SpecSheetRepository{pool: pool, catalog: NewCatalogRepository(pool)}
}

func (r *SpecSheetRepository) GetProductDetail(ctx context.Context, productID string) (domain.Product, error) {
	return r.catalog.GetProductDetail(ctx, productID)
}

func (r *SpecSheetRepository) CreateSpecSheetDownload(ctx context.Context, d domain.SpecSheetDownload) error {
	const stmt = `
INSERT INTO spec_sheet_downloads (id, product_id, customer_name, customer_email, include_price, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		d.ID, d.ProductID, d.CustomerName, d.CustomerEmail, d.IncludePrice, d.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create spec sheet download: %w", err)
	}
	return nil
}
