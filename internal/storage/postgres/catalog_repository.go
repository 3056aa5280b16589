package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// CatalogRepository backs the public browse/detail reads. All queries join
// taxonomy names so the transport layer never fans out per row.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	where, args := buildProductFilter(filter)
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY p.created_at DESC`,
		productDetailColumns, productDetailJoins, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *CatalogRepository) GetProductDetail(ctx context.Context, productID string) (domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id = $1`, productDetailColumns, productDetailJoins)

	product, err := scanProductDetail(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Product{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product detail: %w", err)
	}

	if product.Images, err = r.listProductImages(ctx, product.ID); err != nil {
		return domain.Product{}, err
	}
	if product.Colors, err = r.listProductColors(ctx, product.ID); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// listProductImages returns the gallery for one product in display order.
func (r *CatalogRepository) listProductImages(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	const query = `
SELECT id, product_id, image_url, COALESCE(alt_text, ''), sort_order, created_at
FROM product_images
WHERE product_id = $1
ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	var images []domain.ProductImage
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		images = append(images, img)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate product images: %w", rows.Err())
	}
	return images, nil
}

func (r *CatalogRepository) listProductColors(ctx context.Context, productID string) ([]domain.TaxonomyEntry, error) {
	const query = `
SELECT c.id, c.name, COALESCE(c.slug, ''), COALESCE(c.hex_value, ''), c.created_at
FROM product_colors pc
JOIN colors c ON c.id = pc.color_id
WHERE pc.product_id = $1
ORDER BY c.name ASC`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product colors: %w", err)
	}
	defer rows.Close()

	var colors []domain.TaxonomyEntry
	for rows.Next() {
		var c domain.TaxonomyEntry
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.HexValue, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product color: %w", err)
		}
		colors = append(colors, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate product colors: %w", rows.Err())
	}
	return colors, nil
}

func (r *CatalogRepository) ListFeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.status = 'available' ORDER BY p.created_at DESC LIMIT $1`,
		productDetailColumns, productDetailJoins)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *CatalogRepository) ListSimilarProducts(ctx context.Context, productID string, categoryID *string, limit int) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id <> $1 AND p.status = 'available'`,
		productDetailColumns, productDetailJoins)
	args := []any{productID}
	if categoryID != nil {
		query += ` AND p.category_id = $2`
		args = append(args, *categoryID)
	}
	query += fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list similar products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *CatalogRepository) ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error) {
	return listTaxonomy(ctx, r.pool, kind)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		product, err := scanProductDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate products: %w", rows.Err())
	}
	return products, nil
}

func listTaxonomy(ctx context.Context, pool *pgxpool.Pool, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error) {
	table, err := taxonomyTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, name, COALESCE(slug, ''), created_at FROM %s ORDER BY name ASC`, table)
	switch kind {
	case domain.TaxonomyCountries:
		query = `SELECT id, name, COALESCE(slug, ''), COALESCE(code, ''), created_at FROM countries ORDER BY name ASC`
	case domain.TaxonomyColors:
		query = `SELECT id, name, COALESCE(slug, ''), COALESCE(hex_value, ''), created_at FROM colors ORDER BY name ASC`
	}

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var entries []domain.TaxonomyEntry
	for rows.Next() {
		var e domain.TaxonomyEntry
		switch kind {
		case domain.TaxonomyCountries:
			err = rows.Scan(&e.ID, &e.Name, &e.Slug, &e.Code, &e.CreatedAt)
		case domain.TaxonomyColors:
			err = rows.Scan(&e.ID, &e.Name, &e.Slug, &e.HexValue, &e.CreatedAt)
		default:
			err = rows.Scan(&e.ID, &e.Name, &e.Slug, &e.CreatedAt)
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, rows.Err())
	}
	return entries, nil
}
