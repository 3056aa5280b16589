package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusOnHold    ProductStatus = "on_hold"
	ProductStatusSold      ProductStatus = "sold"
	ProductStatusInventory ProductStatus = "inventory"
)

// ValidProductStatus reports whether s is one of the four known statuses.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusAvailable, ProductStatusOnHold, ProductStatusSold, ProductStatusInventory:
		return true
	}
	return false
}

// Product is a single curated piece. Taxonomy references are optional;
// a piece can be listed before it is fully attributed.
type Product struct {
	ID                string
	Name              string
	Slug              string
	SKU               string
	ShortDescription  string
	LongDescription   string
	Price             *decimal.Decimal
	Status            ProductStatus
	DesignerID        *string
	MakerID           *string
	CategoryID        *string
	StyleID           *string
	PeriodID          *string
	CountryID         *string
	YearCreated       string
	ProductDimensions string
	BoxDimensions     string
	Materials         string
	Condition         string
	FeaturedImageURL  string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Resolved taxonomy names, populated on detail reads.
	DesignerName string
	MakerName    string
	CategoryName string
	StyleName    string
	PeriodName   string
	CountryName  string

	// Gallery and assigned colors, populated on detail reads.
	Images []ProductImage
	Colors []TaxonomyEntry
}

// ProductImage is one gallery photo of a product, ordered by SortOrder.
type ProductImage struct {
	ID        string
	ProductID string
	ImageURL  string
	AltText   string
	SortOrder int
	CreatedAt time.Time
}

// ProductFilter narrows catalog listings. Zero values mean "no constraint".
type ProductFilter struct {
	DesignerID string
	MakerID    string
	CategoryID string
	StyleID    string
	PeriodID   string
	CountryID  string
	ColorID    string
	Search     string
	// Statuses defaults to the storefront set (available, on_hold, sold)
	// when empty; the admin listing passes all four.
	Statuses []ProductStatus
}
