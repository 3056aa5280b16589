package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/app"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductEditor covers back-office product CRUD.
type ProductEditor interface {
	CreateProduct(ctx context.Context, in app.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, in app.ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

type productRequest struct {
	Name              string           `json:"name"`
	Slug              string           `json:"slug,omitempty"`
	SKU               string           `json:"sku,omitempty"`
	ShortDescription  string           `json:"short_description,omitempty"`
	LongDescription   string           `json:"long_description,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	Status            string           `json:"status,omitempty"`
	DesignerID        *string          `json:"designer_id,omitempty"`
	MakerID           *string          `json:"maker_id,omitempty"`
	CategoryID        *string          `json:"category_id,omitempty"`
	StyleID           *string          `json:"style_id,omitempty"`
	PeriodID          *string          `json:"period_id,omitempty"`
	CountryID         *string          `json:"country_id,omitempty"`
	YearCreated       string           `json:"year_created,omitempty"`
	ProductDimensions string           `json:"product_dimensions,omitempty"`
	BoxDimensions     string           `json:"box_dimensions,omitempty"`
	Materials         string           `json:"materials,omitempty"`
	Condition         string           `json:"condition,omitempty"`
	FeaturedImageURL  string           `json:"featured_image_url,omitempty"`
}

func (req productRequest) toInput() app.ProductInput {
	return app.ProductInput{
		Name:              req.Name,
		Slug:              req.Slug,
		SKU:               req.SKU,
		ShortDescription:  req.ShortDescription,
		LongDescription:   req.LongDescription,
		Price:             req.Price,
		Status:            domain.ProductStatus(req.Status),
		DesignerID:        req.DesignerID,
		MakerID:           req.MakerID,
		CategoryID:        req.CategoryID,
		StyleID:           req.StyleID,
		PeriodID:          req.PeriodID,
		CountryID:         req.CountryID,
		YearCreated:       req.YearCreated,
		ProductDimensions: req.ProductDimensions,
		BoxDimensions:     req.BoxDimensions,
		Materials:         req.Materials,
		Condition:         req.Condition,
		FeaturedImageURL:  req.FeaturedImageURL,
	}
}

// HandleAdminListProducts lists products across every status, including
// inventory items the storefront never shows.
func HandleAdminListProducts(svc ProductEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := domain.ProductFilter{
			CategoryID: q.Get("category_id"),
			DesignerID: q.Get("designer_id"),
			Search:     q.Get("search"),
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

func HandleAdminGetProduct(svc ProductEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponse(product))
	}
}

func HandleCreateProduct(svc ProductEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		product, err := svc.CreateProduct(r.Context(), req.toInput())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toProductResponse(product))
	}
}

func HandleUpdateProduct(svc ProductEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		product, err := svc.UpdateProduct(r.Context(), chi.URLParam(r, "productID"), req.toInput())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponse(product))
	}
}

func HandleDeleteProduct(svc ProductEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
