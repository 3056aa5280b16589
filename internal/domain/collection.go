package domain

import "time"

// Collection is a curated grouping of products, presented on the storefront
// landing page and browsable by slug.
type Collection struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	CoverImageURL string
	CreatedAt     time.Time
}
