package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

const collectionColumns = `
id, name, COALESCE(slug, ''), COALESCE(description, ''), COALESCE(cover_image_url, ''), created_at`

func (r *CatalogRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	query := fmt.Sprintf(`SELECT %s FROM collections ORDER BY name ASC`, collectionColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate collections: %w", rows.Err())
	}
	return collections, nil
}

func (r *CatalogRepository) GetCollectionBySlug(ctx context.Context, slug string) (domain.Collection, error) {
	query := fmt.Sprintf(`SELECT %s FROM collections WHERE slug = $1`, collectionColumns)

	c, err := scanCollection(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Collection{}, domain.ErrCollectionNotFound
		}
		return domain.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return c, nil
}

// ListCollectionProducts returns the collection's products in curated order.
func (r *CatalogRepository) ListCollectionProducts(ctx context.Context, collectionID string) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s
JOIN collection_products cp ON cp.product_id = p.id
WHERE cp.collection_id = $1
ORDER BY cp.sort_order ASC`, productDetailColumns, productDetailJoins)

	rows, err := r.pool.Query(ctx, query, collectionID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list collection products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func scanCollection(row pgx.Row) (domain.Collection, error) {
	var c domain.Collection
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CoverImageURL, &c.CreatedAt)
	return c, err
}
