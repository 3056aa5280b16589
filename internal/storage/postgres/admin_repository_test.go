package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestAdminRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewAdminRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("CreateProduct round trips optional fields", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		designerID := testutil.InsertTaxonomy(t, ctx, pool, domain.TaxonomyDesigners, "Hans Wegner")
		price := decimal.RequireFromString("2400.00")
		now := time.Now().UTC().Truncate(time.Millisecond)
		product := domain.Product{
			ID:          uuid.NewString(),
			Name:        "CH24 Wishbone Chair",
			SKU:         "W414-0042",
			Price:       &price,
			Status:      domain.ProductStatusAvailable,
			DesignerID:  &designerID,
			YearCreated: "1950",
			Condition:   "Excellent",
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := repo.CreateProduct(ctx, product); err != nil {
			t.Fatalf("create product: %v", err)
		}

		got, err := repo.GetProductDetail(ctx, product.ID)
		if err != nil {
			t.Fatalf("get product detail: %v", err)
		}
		if got.SKU != "W414-0042" || got.YearCreated != "1950" || got.Condition != "Excellent" {
			t.Fatalf("optional fields lost: %+v", got)
		}
		if got.DesignerName != "Hans Wegner" {
			t.Fatalf("expected designer resolved, got %q", got.DesignerName)
		}
		if got.Price == nil || !got.Price.Equal(price) {
			t.Fatalf("expected price %s, got %v", price, got.Price)
		}
		// Empty optionals are stored as NULL, not empty strings.
		var slug *string
		if err := pool.QueryRow(ctx, `SELECT slug FROM products WHERE id = $1`, product.ID).Scan(&slug); err != nil {
			t.Fatalf("read slug: %v", err)
		}
		if slug != nil {
			t.Fatalf("expected NULL slug, got %q", *slug)
		}
	})

	t.Run("CreateProduct rejects unknown taxonomy references", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		missing := uuid.NewString()
		product := domain.Product{
			ID:         uuid.NewString(),
			Name:       "Orphaned Piece",
			Status:     domain.ProductStatusAvailable,
			DesignerID: &missing,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := repo.CreateProduct(ctx, product); err != domain.ErrTaxonomyNotFound {
			t.Fatalf("expected ErrTaxonomyNotFound, got %v", err)
		}
	})

	t.Run("UpdateProduct maps missing rows", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		product := domain.Product{
			ID:        uuid.NewString(),
			Name:      "Ghost",
			Status:    domain.ProductStatusAvailable,
			UpdatedAt: time.Now(),
		}
		if err := repo.UpdateProduct(ctx, product); err != domain.ErrProductNotFound {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("DeleteProduct refuses products with lifecycle rows", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		productID := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Held Piece"})
		testutil.InsertHold(t, ctx, pool, productID, domain.Hold{
			CustomerName:  "June Carter",
			CustomerEmail: "june@example.com",
		})

		if err := repo.DeleteProduct(ctx, productID); err != domain.ErrProductNotAvailable {
			t.Fatalf("expected ErrProductNotAvailable, got %v", err)
		}

		bareID := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Bare Piece"})
		if err := repo.DeleteProduct(ctx, bareID); err != nil {
			t.Fatalf("delete bare product: %v", err)
		}
		if err := repo.DeleteProduct(ctx, bareID); err != domain.ErrProductNotFound {
			t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
		}
	})

	t.Run("CreateTaxonomy rejects duplicate names", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		entry := domain.TaxonomyEntry{ID: uuid.NewString(), Name: "Seating", CreatedAt: time.Now()}
		if err := repo.CreateTaxonomy(ctx, domain.TaxonomyCategories, entry); err != nil {
			t.Fatalf("create taxonomy: %v", err)
		}
		dup := domain.TaxonomyEntry{ID: uuid.NewString(), Name: "Seating", CreatedAt: time.Now()}
		if err := repo.CreateTaxonomy(ctx, domain.TaxonomyCategories, dup); err != domain.ErrTaxonomyNameTaken {
			t.Fatalf("expected ErrTaxonomyNameTaken, got %v", err)
		}
	})

	t.Run("CreateTaxonomy stores country codes", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		entry := domain.TaxonomyEntry{ID: uuid.NewString(), Name: "Denmark", Code: "DK", CreatedAt: time.Now()}
		if err := repo.CreateTaxonomy(ctx, domain.TaxonomyCountries, entry); err != nil {
			t.Fatalf("create country: %v", err)
		}

		countries, err := repo.ListTaxonomy(ctx, domain.TaxonomyCountries)
		if err != nil {
			t.Fatalf("list countries: %v", err)
		}
		if len(countries) != 1 || countries[0].Code != "DK" {
			t.Fatalf("expected code carried, got %+v", countries)
		}
	})

	t.Run("CreateTaxonomy stores color hex values", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		entry := domain.TaxonomyEntry{ID: uuid.NewString(), Name: "Walnut", HexValue: "#5d432c", CreatedAt: time.Now()}
		if err := repo.CreateTaxonomy(ctx, domain.TaxonomyColors, entry); err != nil {
			t.Fatalf("create color: %v", err)
		}

		colors, err := repo.ListTaxonomy(ctx, domain.TaxonomyColors)
		if err != nil {
			t.Fatalf("list colors: %v", err)
		}
		if len(colors) != 1 || colors[0].HexValue != "#5d432c" {
			t.Fatalf("expected hex carried, got %+v", colors)
		}

		entry.HexValue = "#4a3423"
		if err := repo.UpdateTaxonomy(ctx, domain.TaxonomyColors, entry); err != nil {
			t.Fatalf("update color: %v", err)
		}
		colors, err = repo.ListTaxonomy(ctx, domain.TaxonomyColors)
		if err != nil {
			t.Fatalf("list colors: %v", err)
		}
		if colors[0].HexValue != "#4a3423" {
			t.Fatalf("expected hex updated, got %+v", colors)
		}
	})

	t.Run("DeleteTaxonomy refuses referenced entries", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		categoryID := testutil.InsertTaxonomy(t, ctx, pool, domain.TaxonomyCategories, "Seating")
		testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Shell Chair", CategoryID: &categoryID})

		if err := repo.DeleteTaxonomy(ctx, domain.TaxonomyCategories, categoryID); err != domain.ErrTaxonomyInUse {
			t.Fatalf("expected ErrTaxonomyInUse, got %v", err)
		}

		unusedID := testutil.InsertTaxonomy(t, ctx, pool, domain.TaxonomyCategories, "Lighting")
		if err := repo.DeleteTaxonomy(ctx, domain.TaxonomyCategories, unusedID); err != nil {
			t.Fatalf("delete unused taxonomy: %v", err)
		}
		if err := repo.DeleteTaxonomy(ctx, domain.TaxonomyCategories, unusedID); err != domain.ErrTaxonomyNotFound {
			t.Fatalf("expected ErrTaxonomyNotFound, got %v", err)
		}
	})

	t.Run("GetDashboardStats counts inbox work", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		first := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "First"})
		second := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Second"})

		testutil.InsertHold(t, ctx, pool, first, domain.Hold{CustomerName: "A", CustomerEmail: "a@example.com"})
		testutil.InsertHold(t, ctx, pool, second, domain.Hold{
			CustomerName:  "B",
			CustomerEmail: "b@example.com",
			Status:        domain.HoldStatusDeclined,
		})

		amount := decimal.RequireFromString("900.00")
		testutil.InsertInquiry(t, ctx, pool, first, domain.Inquiry{
			CustomerName:  "C",
			CustomerEmail: "c@example.com",
			Type:          domain.InquiryTypeOffer,
			OfferAmount:   &amount,
		})
		testutil.InsertInquiry(t, ctx, pool, first, domain.Inquiry{
			CustomerName:  "D",
			CustomerEmail: "d@example.com",
			Type:          domain.InquiryTypeQuestion,
			Message:       "Is the finish original?",
		})
		testutil.InsertInquiry(t, ctx, pool, second, domain.Inquiry{
			CustomerName:  "E",
			CustomerEmail: "e@example.com",
			Type:          domain.InquiryTypeQuestion,
			Message:       "Already handled",
			IsRead:        true,
		})

		stats, err := repo.GetDashboardStats(ctx)
		if err != nil {
			t.Fatalf("dashboard stats: %v", err)
		}
		if stats.Products != 2 {
			t.Fatalf("expected 2 products, got %d", stats.Products)
		}
		if stats.PendingHolds != 1 {
			t.Fatalf("expected 1 pending hold, got %d", stats.PendingHolds)
		}
		if stats.UnreadOffers != 1 {
			t.Fatalf("expected 1 unread offer, got %d", stats.UnreadOffers)
		}
		if stats.UnreadInquiries != 1 {
			t.Fatalf("expected 1 unread inquiry, got %d", stats.UnreadInquiries)
		}
	})
}
