package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

func TestHandleListProducts(t *testing.T) {
	t.Parallel()

	t.Run("passes filters through", func(t *testing.T) {
		svc := &stubCatalogService{products: []domain.Product{{ID: "prod-1", Name: "Credenza"}}}
		router := chi.NewRouter()
		router.Get("/products", HandleListProducts(svc))

		req := httptest.NewRequest(http.MethodGet, "/products?category_id=cat-1&color_id=color-1&search=walnut&status=available", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastFilter.CategoryID != "cat-1" {
			t.Fatalf("expected category filter, got %q", svc.lastFilter.CategoryID)
		}
		if svc.lastFilter.ColorID != "color-1" {
			t.Fatalf("expected color filter, got %q", svc.lastFilter.ColorID)
		}
		if svc.lastFilter.Search != "walnut" {
			t.Fatalf("expected search filter, got %q", svc.lastFilter.Search)
		}
		if len(svc.lastFilter.Statuses) != 1 || svc.lastFilter.Statuses[0] != domain.ProductStatusAvailable {
			t.Fatalf("expected single status filter, got %v", svc.lastFilter.Statuses)
		}
		if !strings.Contains(rec.Body.String(), `"name":"Credenza"`) {
			t.Fatalf("expected product in body, got %s", rec.Body.String())
		}
	})

	t.Run("invalid status becomes 400", func(t *testing.T) {
		svc := &stubCatalogService{err: domain.ErrInvalidStatus}
		router := chi.NewRouter()
		router.Get("/products", HandleListProducts(svc))

		req := httptest.NewRequest(http.MethodGet, "/products?status=archived", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHandleGetProduct(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		svc := &stubCatalogService{product: domain.Product{ID: "prod-1", Name: "Tulip Table"}}
		router := chi.NewRouter()
		router.Get("/products/{productID}", HandleGetProduct(svc))

		req := httptest.NewRequest(http.MethodGet, "/products/prod-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastProductID != "prod-1" {
			t.Fatalf("expected id from path, got %q", svc.lastProductID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubCatalogService{err: domain.ErrProductNotFound}
		router := chi.NewRouter()
		router.Get("/products/{productID}", HandleGetProduct(svc))

		req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"code":"product_not_found"`) {
			t.Fatalf("expected machine code, got %s", rec.Body.String())
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := &stubCatalogService{err: domain.ErrInvalidID}
		router := chi.NewRouter()
		router.Get("/products/{productID}", HandleGetProduct(svc))

		req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHandleFilterOptions(t *testing.T) {
	t.Parallel()

	svc := &stubCatalogService{
		options: map[domain.TaxonomyKind][]domain.TaxonomyEntry{
			domain.TaxonomyDesigners: {{ID: "d-1", Name: "Marcel Breuer"}},
			domain.TaxonomyCountries: {{ID: "c-1", Name: "Denmark", Code: "DK"}},
		},
	}
	router := chi.NewRouter()
	router.Get("/filters", HandleFilterOptions(svc))

	req := httptest.NewRequest(http.MethodGet, "/filters", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"designers"`) || !strings.Contains(body, "Marcel Breuer") {
		t.Fatalf("expected designers in body, got %s", body)
	}
	if !strings.Contains(body, `"code":"DK"`) {
		t.Fatalf("expected country code in body, got %s", body)
	}
}

func TestHandleGetCollection(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		svc := &stubCatalogService{
			collections: []domain.Collection{{ID: "col-1", Name: "Danish Modern", Slug: "danish-modern"}},
			products:    []domain.Product{{ID: "prod-1", Name: "Shell Chair"}},
		}
		router := chi.NewRouter()
		router.Get("/collections/{collectionSlug}", HandleGetCollection(svc))

		req := httptest.NewRequest(http.MethodGet, "/collections/danish-modern", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastSlug != "danish-modern" {
			t.Fatalf("expected slug from path, got %q", svc.lastSlug)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"name":"Danish Modern"`) {
			t.Fatalf("expected collection in body, got %s", body)
		}
		if !strings.Contains(body, `"products"`) || !strings.Contains(body, "Shell Chair") {
			t.Fatalf("expected products in body, got %s", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubCatalogService{err: domain.ErrCollectionNotFound}
		router := chi.NewRouter()
		router.Get("/collections/{collectionSlug}", HandleGetCollection(svc))

		req := httptest.NewRequest(http.MethodGet, "/collections/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"code":"collection_not_found"`) {
			t.Fatalf("expected machine code, got %s", rec.Body.String())
		}
	})
}

func TestHandleListCollections(t *testing.T) {
	t.Parallel()

	svc := &stubCatalogService{
		collections: []domain.Collection{
			{ID: "col-1", Name: "Danish Modern", Slug: "danish-modern"},
			{ID: "col-2", Name: "Postwar Lighting", Slug: "postwar-lighting"},
		},
	}
	router := chi.NewRouter()
	router.Get("/collections", HandleListCollections(svc))

	req := httptest.NewRequest(http.MethodGet, "/collections", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Danish Modern") || !strings.Contains(body, "Postwar Lighting") {
		t.Fatalf("expected both collections in body, got %s", body)
	}
}

type stubCatalogService struct {
	products    []domain.Product
	product     domain.Product
	options     map[domain.TaxonomyKind][]domain.TaxonomyEntry
	collections []domain.Collection
	err         error

	lastFilter    domain.ProductFilter
	lastProductID string
	lastSlug      string
}

func (s *stubCatalogService) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalogService) GetProduct(_ context.Context, productID string) (domain.Product, error) {
	s.lastProductID = productID
	if s.err != nil {
		return domain.Product{}, s.err
	}
	return s.product, nil
}

func (s *stubCatalogService) FeaturedProducts(_ context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalogService) SimilarProducts(_ context.Context, productID string) ([]domain.Product, error) {
	s.lastProductID = productID
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalogService) FilterOptions(_ context.Context) (map[domain.TaxonomyKind][]domain.TaxonomyEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.options, nil
}

func (s *stubCatalogService) Collections(_ context.Context) ([]domain.Collection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.collections, nil
}

func (s *stubCatalogService) Collection(_ context.Context, slug string) (domain.Collection, []domain.Product, error) {
	s.lastSlug = slug
	if s.err != nil {
		return domain.Collection{}, nil, s.err
	}
	if len(s.collections) == 0 {
		return domain.Collection{}, nil, domain.ErrCollectionNotFound
	}
	return s.collections[0], s.products, nil
}
