package app

import (
	"context"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProductDetail(ctx context.Context, productID string) (domain.Product, error)
	ListFeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error)
	ListSimilarProducts(ctx context.Context, productID string, categoryID *string, limit int) ([]domain.Product, error)
	ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollectionBySlug(ctx context.Context, slug string) (domain.Collection, error)
	ListCollectionProducts(ctx context.Context, collectionID string) ([]domain.Product, error)
}

// CatalogService serves the public browse/detail surface. Everything here
// is read-only; the only state it manages is the optional product cache.
type CatalogService struct {
	repo  CatalogRepository
	cache ProductCache
}

const (
	featuredLimit = 8
	similarLimit  = 4
)

func NewCatalogService(repo CatalogRepository, opts ...CatalogServiceOption) *CatalogService {
	svc := &CatalogService{repo: repo}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CatalogServiceOption func(*CatalogService)

// WithProductCache wires the explicit-invalidation product cache. May be nil.
func WithProductCache(cache ProductCache) CatalogServiceOption {
	return func(s *CatalogService) {
		s.cache = cache
	}
}

// storefrontStatuses is what the public catalog shows when no status filter
// is given; inventory pieces stay back-of-house.
var storefrontStatuses = []domain.ProductStatus{
	domain.ProductStatusAvailable,
	domain.ProductStatusOnHold,
	domain.ProductStatusSold,
}

// ListProducts returns catalog products newest first.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if len(filter.Statuses) == 0 {
		filter.Statuses = storefrontStatuses
	}
	for _, status := range filter.Statuses {
		if !domain.ValidProductStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
	}
	return s.repo.ListProducts(ctx, filter)
}

// GetProduct returns one product with taxonomy names resolved, serving from
// the cache when possible.
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetProduct(ctx, productID); ok {
			return *cached, nil
		}
	}

	product, err := s.repo.GetProductDetail(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if s.cache != nil {
		s.cache.SetProduct(ctx, product)
	}
	return product, nil
}

// FeaturedProducts returns the newest available pieces for the landing page.
func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListFeaturedProducts(ctx, featuredLimit)
}

// SimilarProducts returns available pieces from the same category,
// excluding the product itself.
func (s *CatalogService) SimilarProducts(ctx context.Context, productID string) ([]domain.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSimilarProducts(ctx, productID, product.CategoryID, similarLimit)
}

// Collections returns every curated collection ordered by name.
func (s *CatalogService) Collections(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.ListCollections(ctx)
}

// Collection resolves a collection by slug along with its products in
// curated order.
func (s *CatalogService) Collection(ctx context.Context, slug string) (domain.Collection, []domain.Product, error) {
	collection, err := s.repo.GetCollectionBySlug(ctx, slug)
	if err != nil {
		return domain.Collection{}, nil, err
	}
	products, err := s.repo.ListCollectionProducts(ctx, collection.ID)
	if err != nil {
		return domain.Collection{}, nil, err
	}
	return collection, products, nil
}

// FilterOptions returns every taxonomy list ordered by name, keyed by kind.
func (s *CatalogService) FilterOptions(ctx context.Context) (map[domain.TaxonomyKind][]domain.TaxonomyEntry, error) {
	options := make(map[domain.TaxonomyKind][]domain.TaxonomyEntry, len(domain.TaxonomyKinds))
	for _, kind := range domain.TaxonomyKinds {
		entries, err := s.repo.ListTaxonomy(ctx, kind)
		if err != nil {
			return nil, err
		}
		options[kind] = entries
	}
	return options, nil
}
