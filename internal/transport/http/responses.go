package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/shopspring/decimal"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type productResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Slug              string                 `json:"slug,omitempty"`
	SKU               string                 `json:"sku,omitempty"`
	ShortDescription  string                 `json:"short_description,omitempty"`
	LongDescription   string                 `json:"long_description,omitempty"`
	Price             *decimal.Decimal       `json:"price"`
	Status            string                 `json:"status"`
	DesignerID        *string                `json:"designer_id"`
	MakerID           *string                `json:"maker_id"`
	CategoryID        *string                `json:"category_id"`
	StyleID           *string                `json:"style_id"`
	PeriodID          *string                `json:"period_id"`
	CountryID         *string                `json:"country_id"`
	Designer          string                 `json:"designer,omitempty"`
	Maker             string                 `json:"maker,omitempty"`
	Category          string                 `json:"category,omitempty"`
	Style             string                 `json:"style,omitempty"`
	Period            string                 `json:"period,omitempty"`
	Country           string                 `json:"country,omitempty"`
	YearCreated       string                 `json:"year_created,omitempty"`
	ProductDimensions string                 `json:"product_dimensions,omitempty"`
	BoxDimensions     string                 `json:"box_dimensions,omitempty"`
	Materials         string                 `json:"materials,omitempty"`
	Condition         string                 `json:"condition,omitempty"`
	FeaturedImageURL  string                 `json:"featured_image_url,omitempty"`
	Images            []productImageResponse `json:"images,omitempty"`
	Colors            []taxonomyResponse     `json:"colors,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type productImageResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order"`
}

func toProductImageResponses(images []domain.ProductImage) []productImageResponse {
	if len(images) == 0 {
		return nil
	}
	out := make([]productImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, productImageResponse{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
		})
	}
	return out
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		SKU:               p.SKU,
		ShortDescription:  p.ShortDescription,
		LongDescription:   p.LongDescription,
		Price:             p.Price,
		Status:            string(p.Status),
		DesignerID:        p.DesignerID,
		MakerID:           p.MakerID,
		CategoryID:        p.CategoryID,
		StyleID:           p.StyleID,
		PeriodID:          p.PeriodID,
		CountryID:         p.CountryID,
		Designer:          p.DesignerName,
		Maker:             p.MakerName,
		Category:          p.CategoryName,
		Style:             p.StyleName,
		Period:            p.PeriodName,
		Country:           p.CountryName,
		YearCreated:       p.YearCreated,
		ProductDimensions: p.ProductDimensions,
		BoxDimensions:     p.BoxDimensions,
		Materials:         p.Materials,
		Condition:         p.Condition,
		FeaturedImageURL:  p.FeaturedImageURL,
		Images:            toProductImageResponses(p.Images),
		Colors:            toTaxonomyResponsesOrNil(p.Colors),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type holdResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name,omitempty"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func toHoldResponse(h domain.Hold) holdResponse {
	return holdResponse{
		ID:            h.ID,
		ProductID:     h.ProductID,
		ProductName:   h.ProductName,
		CustomerName:  h.CustomerName,
		CustomerEmail: h.CustomerEmail,
		CustomerPhone: h.CustomerPhone,
		Notes:         h.Notes,
		Status:        string(h.Status),
		ExpiresAt:     h.ExpiresAt,
		CreatedAt:     h.CreatedAt,
	}
}

func toHoldResponses(holds []domain.Hold) []holdResponse {
	out := make([]holdResponse, 0, len(holds))
	for _, h := range holds {
		out = append(out, toHoldResponse(h))
	}
	return out
}

type inquiryResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name,omitempty"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone,omitempty"`
	InquiryType   string           `json:"inquiry_type"`
	OfferAmount   *decimal.Decimal `json:"offer_amount,omitempty"`
	ShippingZip   string           `json:"shipping_zip,omitempty"`
	Message       string           `json:"message,omitempty"`
	Status        string           `json:"status"`
	IsRead        bool             `json:"is_read"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toInquiryResponse(q domain.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:            q.ID,
		ProductID:     q.ProductID,
		ProductName:   q.ProductName,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		CustomerPhone: q.CustomerPhone,
		InquiryType:   string(q.Type),
		OfferAmount:   q.OfferAmount,
		ShippingZip:   q.ShippingZip,
		Message:       q.Message,
		Status:        string(q.Status),
		IsRead:        q.IsRead,
		CreatedAt:     q.CreatedAt,
	}
}

func toInquiryResponses(inquiries []domain.Inquiry) []inquiryResponse {
	out := make([]inquiryResponse, 0, len(inquiries))
	for _, q := range inquiries {
		out = append(out, toInquiryResponse(q))
	}
	return out
}

type taxonomyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Code     string `json:"code,omitempty"`
	HexValue string `json:"hex_value,omitempty"`
}

func toTaxonomyResponse(e domain.TaxonomyEntry) taxonomyResponse {
	return taxonomyResponse{ID: e.ID, Name: e.Name, Slug: e.Slug, Code: e.Code, HexValue: e.HexValue}
}

func toTaxonomyResponses(entries []domain.TaxonomyEntry) []taxonomyResponse {
	out := make([]taxonomyResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toTaxonomyResponse(e))
	}
	return out
}

// toTaxonomyResponsesOrNil keeps empty taxonomy lists out of product detail
// payloads where the field is omitempty.
func toTaxonomyResponsesOrNil(entries []domain.TaxonomyEntry) []taxonomyResponse {
	if len(entries) == 0 {
		return nil
	}
	return toTaxonomyResponses(entries)
}

type collectionResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug,omitempty"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCollectionResponse(c domain.Collection) collectionResponse {
	return collectionResponse{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		CoverImageURL: c.CoverImageURL,
		CreatedAt:     c.CreatedAt,
	}
}

func toCollectionResponses(collections []domain.Collection) []collectionResponse {
	out := make([]collectionResponse, 0, len(collections))
	for _, c := range collections {
		out = append(out, toCollectionResponse(c))
	}
	return out
}
