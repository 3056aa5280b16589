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

func TestInquiryRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewInquiryRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("CreateInquiry stores offers and maps missing products", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		productID := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Credenza"})
		amount := decimal.RequireFromString("1200.00")
		inquiry := domain.Inquiry{
			ID:            uuid.NewString(),
			ProductID:     productID,
			CustomerName:  "Ruth Asawa",
			CustomerEmail: "ruth@example.com",
			Type:          domain.InquiryTypeOffer,
			OfferAmount:   &amount,
			Status:        domain.InquiryStatusPending,
			CreatedAt:     time.Now(),
		}
		if err := repo.CreateInquiry(ctx, inquiry); err != nil {
			t.Fatalf("create inquiry: %v", err)
		}

		got, err := repo.GetInquiryForUpdate(ctx, inquiry.ID)
		if err != nil {
			t.Fatalf("get inquiry: %v", err)
		}
		if got.OfferAmount == nil || !got.OfferAmount.Equal(amount) {
			t.Fatalf("expected offer amount %s, got %v", amount, got.OfferAmount)
		}
		if got.CustomerPhone != "" || got.ShippingZip != "" {
			t.Fatalf("expected empty optionals, got %+v", got)
		}

		orphan := inquiry
		orphan.ID = uuid.NewString()
		orphan.ProductID = uuid.NewString()
		if err := repo.CreateInquiry(ctx, orphan); err != domain.ErrProductNotFound {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("UpdateInquiryStatus and MarkInquiryRead map missing rows", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		productID := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Credenza"})
		inquiryID := testutil.InsertInquiry(t, ctx, pool, productID, domain.Inquiry{
			CustomerName:  "Lee Krasner",
			CustomerEmail: "lee@example.com",
			Type:          domain.InquiryTypeQuestion,
			Message:       "Does it ship assembled?",
		})

		if err := repo.UpdateInquiryStatus(ctx, inquiryID, domain.InquiryStatusApproved); err != nil {
			t.Fatalf("update status: %v", err)
		}
		if err := repo.MarkInquiryRead(ctx, inquiryID); err != nil {
			t.Fatalf("mark read: %v", err)
		}

		got, err := repo.GetInquiryForUpdate(ctx, inquiryID)
		if err != nil {
			t.Fatalf("get inquiry: %v", err)
		}
		if got.Status != domain.InquiryStatusApproved || !got.IsRead {
			t.Fatalf("expected approved and read, got %+v", got)
		}

		missing := uuid.NewString()
		if err := repo.UpdateInquiryStatus(ctx, missing, domain.InquiryStatusDeclined); err != domain.ErrInquiryNotFound {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
		if err := repo.MarkInquiryRead(ctx, missing); err != domain.ErrInquiryNotFound {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("ListInquiries joins product names and filters", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		productID := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Tulip Table"})
		amount := decimal.RequireFromString("800.00")
		testutil.InsertInquiry(t, ctx, pool, productID, domain.Inquiry{
			CustomerName:  "A",
			CustomerEmail: "a@example.com",
			Type:          domain.InquiryTypeOffer,
			OfferAmount:   &amount,
		})
		testutil.InsertInquiry(t, ctx, pool, productID, domain.Inquiry{
			CustomerName:  "B",
			CustomerEmail: "b@example.com",
			Type:          domain.InquiryTypeQuestion,
			Message:       "Original base?",
			Status:        domain.InquiryStatusDeclined,
		})

		all, err := repo.ListInquiries(ctx, domain.InquiryFilter{})
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 inquiries, got %d", len(all))
		}
		for _, q := range all {
			if q.ProductName != "Tulip Table" {
				t.Fatalf("expected product name joined, got %q", q.ProductName)
			}
		}

		offers, err := repo.ListInquiries(ctx, domain.InquiryFilter{Type: domain.InquiryTypeOffer})
		if err != nil {
			t.Fatalf("list offers: %v", err)
		}
		if len(offers) != 1 || offers[0].Type != domain.InquiryTypeOffer {
			t.Fatalf("unexpected offers: %+v", offers)
		}

		declined, err := repo.ListInquiries(ctx, domain.InquiryFilter{Status: domain.InquiryStatusDeclined})
		if err != nil {
			t.Fatalf("list declined: %v", err)
		}
		if len(declined) != 1 || declined[0].CustomerName != "B" {
			t.Fatalf("unexpected declined: %+v", declined)
		}
	})

	t.Run("WithTx rolls back on error", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		productID := testutil.InsertProduct(t, ctx, pool, domain.Product{Name: "Credenza"})
		inquiryID := testutil.InsertInquiry(t, ctx, pool, productID, domain.Inquiry{
			CustomerName:  "C",
			CustomerEmail: "c@example.com",
			Type:          domain.InquiryTypeQuestion,
			Message:       "Still available?",
		})

		wantErr := context.Canceled
		err := repo.WithTx(ctx, func(ctx context.Context) error {
			if err := repo.UpdateInquiryStatus(ctx, inquiryID, domain.InquiryStatusApproved); err != nil {
				return err
			}
			return wantErr
		})
		if err != wantErr {
			t.Fatalf("expected callback error, got %v", err)
		}

		got, err := repo.GetInquiryForUpdate(ctx, inquiryID)
		if err != nil {
			t.Fatalf("get inquiry: %v", err)
		}
		if got.Status != domain.InquiryStatusPending {
			t.Fatalf("expected rollback to pending, got %s", got.Status)
		}
	})
}
