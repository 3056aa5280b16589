package app

import (
	"context"
	"strings"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/shopspring/decimal"
)

type InquiryRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	CreateInquiry(ctx context.Context, inquiry domain.Inquiry) error
	GetInquiryForUpdate(ctx context.Context, inquiryID string) (domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, inquiryID string, status domain.InquiryStatus) error
	MarkInquiryRead(ctx context.Context, inquiryID string) error
	ListInquiries(ctx context.Context, filter domain.InquiryFilter) ([]domain.Inquiry, error)
}

// InquiryService records customer questions, offers, and purchase requests,
// and runs their pending -> approved | declined review machine. Unlike
// holds, inquiry transitions never touch the product row; staff complete an
// approved sale out of band.
type InquiryService struct {
	repo       InquiryRepository
	clock      clock.Clock
	statsCache StatsCache
}

func NewInquiryService(repo InquiryRepository, clk clock.Clock, opts ...InquiryServiceOption) *InquiryService {
	svc := &InquiryService{
		repo:  repo,
		clock: clk,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type InquiryServiceOption func(*InquiryService)

// WithInquiryStatsCache wires the dashboard-counter cache. May be nil.
func WithInquiryStatsCache(stats StatsCache) InquiryServiceOption {
	return func(s *InquiryService) {
		s.statsCache = stats
	}
}

type SubmitInquiryInput struct {
	ProductID     string
	Type          domain.InquiryType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	OfferAmount   *decimal.Decimal
	ShippingZip   string
	Message       string
}

// Submit validates the intent-specific required fields and persists a
// pending inquiry. Nothing is written when validation fails.
func (s *InquiryService) Submit(ctx context.Context, in SubmitInquiryInput) (domain.Inquiry, error) {
	if err := validateContact(in.CustomerName, in.CustomerEmail); err != nil {
		return domain.Inquiry{}, err
	}

	switch in.Type {
	case domain.InquiryTypeQuestion:
		if strings.TrimSpace(in.Message) == "" {
			return domain.Inquiry{}, domain.ErrMessageRequired
		}
		in.OfferAmount = nil
		in.ShippingZip = ""
	case domain.InquiryTypeOffer:
		if in.OfferAmount == nil || !in.OfferAmount.IsPositive() {
			return domain.Inquiry{}, domain.ErrOfferAmountRequired
		}
		in.ShippingZip = ""
	case domain.InquiryTypePurchase:
		if strings.TrimSpace(in.ShippingZip) == "" {
			return domain.Inquiry{}, domain.ErrShippingZipRequired
		}
		in.OfferAmount = nil
	default:
		return domain.Inquiry{}, domain.ErrInvalidInquiryType
	}

	now := s.clock.Now()
	var result domain.Inquiry

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		product, err := s.repo.GetProduct(txCtx, in.ProductID)
		if err != nil {
			return err
		}
		// Questions and offers are welcome on sold pieces; a purchase
		// request is not.
		if in.Type == domain.InquiryTypePurchase && product.Status == domain.ProductStatusSold {
			return domain.ErrProductNotAvailable
		}

		inquiry := domain.Inquiry{
			ID:            newID(),
			ProductID:     in.ProductID,
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			CustomerPhone: in.CustomerPhone,
			Type:          in.Type,
			OfferAmount:   in.OfferAmount,
			ShippingZip:   in.ShippingZip,
			Message:       in.Message,
			Status:        domain.InquiryStatusPending,
			CreatedAt:     now,
		}
		if err := s.repo.CreateInquiry(txCtx, inquiry); err != nil {
			return err
		}
		result = inquiry
		return nil
	})
	if err != nil {
		return domain.Inquiry{}, err
	}

	s.invalidateStats(ctx)
	return result, nil
}

// Approve marks a pending inquiry approved. No product mutation.
func (s *InquiryService) Approve(ctx context.Context, inquiryID string) (domain.Inquiry, error) {
	return s.transition(ctx, inquiryID, domain.InquiryStatusApproved)
}

// Decline marks a pending inquiry declined. Terminal; no product mutation.
func (s *InquiryService) Decline(ctx context.Context, inquiryID string) (domain.Inquiry, error) {
	return s.transition(ctx, inquiryID, domain.InquiryStatusDeclined)
}

func (s *InquiryService) transition(ctx context.Context, inquiryID string, target domain.InquiryStatus) (domain.Inquiry, error) {
	var result domain.Inquiry

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		inquiry, err := s.repo.GetInquiryForUpdate(txCtx, inquiryID)
		if err != nil {
			return err
		}
		if inquiry.Status != domain.InquiryStatusPending {
			return domain.ErrInquiryNotPending
		}
		if err := s.repo.UpdateInquiryStatus(txCtx, inquiryID, target); err != nil {
			return err
		}
		inquiry.Status = target
		result = inquiry
		return nil
	})
	if err != nil {
		return domain.Inquiry{}, err
	}

	s.invalidateStats(ctx)
	return result, nil
}

// MarkRead flags an inquiry as read for the dashboard counters.
func (s *InquiryService) MarkRead(ctx context.Context, inquiryID string) error {
	if err := s.repo.MarkInquiryRead(ctx, inquiryID); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// ListInquiries returns inquiries newest first, optionally filtered by
// type and status.
func (s *InquiryService) ListInquiries(ctx context.Context, filter domain.InquiryFilter) ([]domain.Inquiry, error) {
	return s.repo.ListInquiries(ctx, filter)
}

func (s *InquiryService) invalidateStats(ctx context.Context) {
	if s.statsCache != nil {
		s.statsCache.InvalidateStats(ctx)
	}
}
