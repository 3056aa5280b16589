package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type AdminRepository struct {
	pool    *pgxpool.Pool
	catalog *CatalogRepository
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool, catalog: NewCatalogRepository(pool)}
}

func (r *AdminRepository) CreateProduct(ctx context.Context, p domain.Product) error {
	const stmt = `
INSERT INTO products
	(id, name, slug, sku, short_description, long_description, price, status,
	 designer_id, maker_id, category_id, style_id, period_id, country_id,
	 year_created, product_dimensions, box_dimensions, materials, condition,
	 featured_image_url, created_at, updated_at)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8,
	$9, $10, $11, $12, $13, $14,
	NULLIF($15, ''), NULLIF($16, ''), NULLIF($17, ''), NULLIF($18, ''), NULLIF($19, ''),
	NULLIF($20, ''), $21, $22)`

	_, err := r.pool.Exec(ctx, stmt,
		p.ID, p.Name, p.Slug, p.SKU, p.ShortDescription, p.LongDescription, p.Price, p.Status,
		p.DesignerID, p.MakerID, p.CategoryID, p.StyleID, p.PeriodID, p.CountryID,
		p.YearCreated, p.ProductDimensions, p.BoxDimensions, p.Materials, p.Condition,
		p.FeaturedImageURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTaxonomyNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *AdminRepository) UpdateProduct(ctx context.Context, p domain.Product) error {
	const stmt = `
UPDATE products SET
	name = $2, slug = NULLIF($3, ''), sku = NULLIF($4, ''),
	short_description = NULLIF($5, ''), long_description = NULLIF($6, ''),
	price = $7, status = $8,
	designer_id = $9, maker_id = $10, category_id = $11,
	style_id = $12, period_id = $13, country_id = $14,
	year_created = NULLIF($15, ''), product_dimensions = NULLIF($16, ''),
	box_dimensions = NULLIF($17, ''), materials = NULLIF($18, ''),
	condition = NULLIF($19, ''), featured_image_url = NULLIF($20, ''),
	updated_at = $21
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		p.ID, p.Name, p.Slug, p.SKU, p.ShortDescription, p.LongDescription, p.Price, p.Status,
		p.DesignerID, p.MakerID, p.CategoryID, p.StyleID, p.PeriodID, p.CountryID,
		p.YearCreated, p.ProductDimensions, p.BoxDimensions, p.Materials, p.Condition,
		p.FeaturedImageURL, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTaxonomyNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *AdminRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		// Lifecycle rows are never deleted, so a product that has holds or
		// inquiries cannot be removed.
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotAvailable
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *AdminRepository) GetProductDetail(ctx context.Context, productID string) (domain.Product, error) {
	return r.catalog.GetProductDetail(ctx, productID)
}

func (r *AdminRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return r.catalog.ListProducts(ctx, filter)
}

func (r *AdminRepository) CreateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entry domain.TaxonomyEntry) error {
	table, err := taxonomyTable(kind)
	if err != nil {
		return err
	}

	stmt := fmt.Sprintf(`INSERT INTO %s (id, name, slug, created_at) VALUES ($1, $2, NULLIF($3, ''), $4)`, table)
	args := []any{entry.ID, entry.Name, entry.Slug, entry.CreatedAt}
	switch kind {
	case domain.TaxonomyCountries:
		stmt = `INSERT INTO countries (id, name, slug, code, created_at) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)`
		args = []any{entry.ID, entry.Name, entry.Slug, entry.Code, entry.CreatedAt}
	case domain.TaxonomyColors:
		stmt = `INSERT INTO colors (id, name, slug, hex_value, created_at) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)`
		args = []any{entry.ID, entry.Name, entry.Slug, entry.HexValue, entry.CreatedAt}
	}

	if _, err := r.pool.Exec(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxonomyNameTaken
		}
		return fmt.Errorf("create %s entry: %w", table, err)
	}
	return nil
}

func (r *AdminRepository) UpdateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entry domain.TaxonomyEntry) error {
	table, err := taxonomyTable(kind)
	if err != nil {
		return err
	}

	stmt := fmt.Sprintf(`UPDATE %s SET name = $2, slug = NULLIF($3, '') WHERE id = $1`, table)
	args := []any{entry.ID, entry.Name, entry.Slug}
	switch kind {
	case domain.TaxonomyCountries:
		stmt = `UPDATE countries SET name = $2, slug = NULLIF($3, ''), code = NULLIF($4, '') WHERE id = $1`
		args = []any{entry.ID, entry.Name, entry.Slug, entry.Code}
	case domain.TaxonomyColors:
		stmt = `UPDATE colors SET name = $2, slug = NULLIF($3, ''), hex_value = NULLIF($4, '') WHERE id = $1`
		args = []any{entry.ID, entry.Name, entry.Slug, entry.HexValue}
	}

	tag, err := r.pool.Exec(ctx, stmt, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxonomyNameTaken
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update %s entry: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaxonomyNotFound
	}
	return nil
}

func (r *AdminRepository) DeleteTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entryID string) error {
	table, err := taxonomyTable(kind)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), entryID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isForeignKeyViolation(err) {
			return domain.ErrTaxonomyInUse
		}
		return fmt.Errorf("delete %s entry: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaxonomyNotFound
	}
	return nil
}

func (r *AdminRepository) ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error) {
	return listTaxonomy(ctx, r.pool, kind)
}

func (r *AdminRepository) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM products),
	(SELECT COUNT(*) FROM product_holds WHERE status = 'pending'),
	(SELECT COUNT(*) FROM purchase_inquiries WHERE inquiry_type = 'offer' AND NOT is_read),
	(SELECT COUNT(*) FROM purchase_inquiries WHERE inquiry_type <> 'offer' AND NOT is_read)`

	var stats domain.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Products,
		&stats.PendingHolds,
		&stats.UnreadOffers,
		&stats.UnreadInquiries,
	)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
