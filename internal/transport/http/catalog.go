package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// CatalogReader is the minimal interface needed for the public browse and
// detail pages.
type CatalogReader interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	SimilarProducts(ctx context.Context, productID string) ([]domain.Product, error)
	FilterOptions(ctx context.Context) (map[domain.TaxonomyKind][]domain.TaxonomyEntry, error)
	Collections(ctx context.Context) ([]domain.Collection, error)
	Collection(ctx context.Context, slug string) (domain.Collection, []domain.Product, error)
}

// HandleListProducts returns the catalog listing handler. Filters arrive
// as query parameters; an explicit status narrows the default storefront
// set to one status.
func HandleListProducts(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := domain.ProductFilter{
			DesignerID: q.Get("designer_id"),
			MakerID:    q.Get("maker_id"),
			CategoryID: q.Get("category_id"),
			StyleID:    q.Get("style_id"),
			PeriodID:   q.Get("period_id"),
			CountryID:  q.Get("country_id"),
			ColorID:    q.Get("color_id"),
			Search:     strings.TrimSpace(q.Get("search")),
		}
		if status := q.Get("status"); status != "" {
			filter.Statuses = []domain.ProductStatus{domain.ProductStatus(status)}
		}

		products, err := svc.ListProducts(r.Context(), filter)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponses(products))
	}
}

// HandleGetProduct returns the product detail handler.
func HandleGetProduct(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponse(product))
	}
}

// HandleFeaturedProducts returns the landing-page featured list handler.
func HandleFeaturedProducts(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.FeaturedProducts(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponses(products))
	}
}

// HandleSimilarProducts returns the "more like this" handler.
func HandleSimilarProducts(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.SimilarProducts(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponses(products))
	}
}

// HandleListCollections returns the curated collections handler.
func HandleListCollections(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections, err := svc.Collections(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCollectionResponses(collections))
	}
}

// HandleGetCollection returns the collection detail handler. The response
// carries the collection plus its products in curated order.
func HandleGetCollection(svc CatalogReader) http.HandlerFunc {
	type response struct {
		collectionResponse
		Products []productResponse `json:"products"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		collection, products, err := svc.Collection(r.Context(), chi.URLParam(r, "collectionSlug"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response{
			collectionResponse: toCollectionResponse(collection),
			Products:           toProductResponses(products),
		})
	}
}

// HandleFilterOptions returns every taxonomy list for the storefront
// filter panel, keyed by kind.
func HandleFilterOptions(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := svc.FilterOptions(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := make(map[string][]taxonomyResponse, len(options))
		for kind, entries := range options {
			resp[string(kind)] = toTaxonomyResponses(entries)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
