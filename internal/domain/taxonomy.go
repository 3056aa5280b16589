package domain

import "time"

type TaxonomyKind string

const (
	TaxonomyDesigners  TaxonomyKind = "designers"
	TaxonomyMakers     TaxonomyKind = "makers"
	TaxonomyCategories TaxonomyKind = "categories"
	TaxonomyStyles     TaxonomyKind = "styles"
	TaxonomyPeriods    TaxonomyKind = "periods"
	TaxonomyCountries  TaxonomyKind = "countries"
	TaxonomyColors     TaxonomyKind = "colors"
)

// TaxonomyKinds lists every name-keyed classification table, in the order
// the storefront filter panel presents them.
var TaxonomyKinds = []TaxonomyKind{
	TaxonomyDesigners,
	TaxonomyMakers,
	TaxonomyCategories,
	TaxonomyStyles,
	TaxonomyPeriods,
	TaxonomyCountries,
	TaxonomyColors,
}

// ValidTaxonomyKind reports whether k names a known taxonomy table.
func ValidTaxonomyKind(k TaxonomyKind) bool {
	for _, kind := range TaxonomyKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// TaxonomyEntry is one row of a name-keyed lookup table. Code is only
// populated for countries, HexValue only for colors.
type TaxonomyEntry struct {
	ID        string
	Name      string
	Slug      string
	Code      string
	HexValue  string
	CreatedAt time.Time
}
