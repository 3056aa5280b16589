package app

import (
	"context"
	"time"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type HoldRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetProductForUpdate(ctx context.Context, productID string) (domain.Product, error)
	CreateHold(ctx context.Context, hold domain.Hold) error
	GetHoldForUpdate(ctx context.Context, holdID string) (domain.Hold, error)
	UpdateHoldStatus(ctx context.Context, holdID string, status domain.HoldStatus) error
	UpdateProductStatus(ctx context.Context, productID string, status domain.ProductStatus) error
	ListHolds(ctx context.Context, status domain.HoldStatus) ([]domain.Hold, error)
}

// HoldService owns the hold lifecycle: customer placement and the staff
// pending -> approved -> released machine, with pending -> declined as the
// alternative terminal branch. Approving and releasing also move the
// referenced product between available and on_hold; both writes happen in
// one transaction so the pair can never be half-applied.
type HoldService struct {
	repo         HoldRepository
	clock        clock.Clock
	holdTTL      time.Duration
	productCache ProductCache
	statsCache   StatsCache
}

// defaultHoldTTL matches the storefront promise: holds are valid for 5 days.
const defaultHoldTTL = 5 * 24 * time.Hour

func NewHoldService(repo HoldRepository, clk clock.Clock, opts ...HoldServiceOption) *HoldService {
	svc := &HoldService{
		repo:    repo,
		clock:   clk,
		holdTTL: defaultHoldTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type HoldServiceOption func(*HoldService)

// WithHoldTTL overrides the default validity window for new holds.
func WithHoldTTL(d time.Duration) HoldServiceOption {
	return func(s *HoldService) {
		if d > 0 {
			s.holdTTL = d
		}
	}
}

// WithHoldCaches wires the explicit-invalidation caches. Either may be nil.
func WithHoldCaches(products ProductCache, stats StatsCache) HoldServiceOption {
	return func(s *HoldService) {
		s.productCache = products
		s.statsCache = stats
	}
}

type PlaceHoldInput struct {
	ProductID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

// PlaceHold records a customer hold request as pending. Sold pieces cannot
// be held; anything else on the storefront can, including pieces already
// on hold (multiple pending holds may coexist and staff arbitrate).
func (s *HoldService) PlaceHold(ctx context.Context, in PlaceHoldInput) (domain.Hold, error) {
	if err := validateContact(in.CustomerName, in.CustomerEmail); err != nil {
		return domain.Hold{}, err
	}

	now := s.clock.Now()
	var result domain.Hold

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		product, err := s.repo.GetProductForUpdate(txCtx, in.ProductID)
		if err != nil {
			return err
		}
		if product.Status == domain.ProductStatusSold {
			return domain.ErrProductNotAvailable
		}

		hold := domain.Hold{
			ID:            newID(),
			ProductID:     in.ProductID,
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			CustomerPhone: in.CustomerPhone,
			Notes:         in.Notes,
			Status:        domain.HoldStatusPending,
			ExpiresAt:     now.Add(s.holdTTL),
			CreatedAt:     now,
		}
		if err := s.repo.CreateHold(txCtx, hold); err != nil {
			return err
		}
		result = hold
		return nil
	})
	if err != nil {
		return domain.Hold{}, err
	}

	s.invalidateStats(ctx)
	return result, nil
}

// Approve moves a pending hold to approved and the referenced product to
// on_hold in one transaction. The product id is re-derived from the hold
// row inside the transaction rather than trusted from the caller. A second
// approval for a product already on hold is rejected.
func (s *HoldService) Approve(ctx context.Context, holdID string) (domain.Hold, error) {
	var result domain.Hold

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		hold, err := s.repo.GetHoldForUpdate(txCtx, holdID)
		if err != nil {
			return err
		}
		if hold.Status != domain.HoldStatusPending {
			return domain.ErrHoldNotPending
		}

		product, err := s.repo.GetProductForUpdate(txCtx, hold.ProductID)
		if err != nil {
			return err
		}
		switch product.Status {
		case domain.ProductStatusAvailable:
		case domain.ProductStatusOnHold:
			return domain.ErrProductOnHold
		default:
			return domain.ErrProductNotAvailable
		}

		if err := s.repo.UpdateHoldStatus(txCtx, holdID, domain.HoldStatusApproved); err != nil {
			return err
		}
		if err := s.repo.UpdateProductStatus(txCtx, hold.ProductID, domain.ProductStatusOnHold); err != nil {
			return err
		}

		hold.Status = domain.HoldStatusApproved
		result = hold
		return nil
	})
	if err != nil {
		return domain.Hold{}, err
	}

	s.invalidateProduct(ctx, result.ProductID)
	s.invalidateStats(ctx)
	return result, nil
}

// Decline terminates a pending hold. The product is not touched.
func (s *HoldService) Decline(ctx context.Context, holdID string) (domain.Hold, error) {
	var result domain.Hold

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		hold, err := s.repo.GetHoldForUpdate(txCtx, holdID)
		if err != nil {
			return err
		}
		if hold.Status != domain.HoldStatusPending {
			return domain.ErrHoldNotPending
		}
		if err := s.repo.UpdateHoldStatus(txCtx, holdID, domain.HoldStatusDeclined); err != nil {
			return err
		}
		hold.Status = domain.HoldStatusDeclined
		result = hold
		return nil
	})
	if err != nil {
		return domain.Hold{}, err
	}

	s.invalidateStats(ctx)
	return result, nil
}

// Release ends an approved hold and returns the product to available,
// again as a single transaction.
func (s *HoldService) Release(ctx context.Context, holdID string) (domain.Hold, error) {
	var result domain.Hold

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		hold, err := s.repo.GetHoldForUpdate(txCtx, holdID)
		if err != nil {
			return err
		}
		if hold.Status != domain.HoldStatusApproved {
			return domain.ErrHoldNotApproved
		}
		if err := s.repo.UpdateHoldStatus(txCtx, holdID, domain.HoldStatusReleased); err != nil {
			return err
		}
		if err := s.repo.UpdateProductStatus(txCtx, hold.ProductID, domain.ProductStatusAvailable); err != nil {
			return err
		}
		hold.Status = domain.HoldStatusReleased
		result = hold
		return nil
	})
	if err != nil {
		return domain.Hold{}, err
	}

	s.invalidateProduct(ctx, result.ProductID)
	s.invalidateStats(ctx)
	return result, nil
}

// ListHolds returns holds newest first, optionally filtered by status.
func (s *HoldService) ListHolds(ctx context.Context, status domain.HoldStatus) ([]domain.Hold, error) {
	return s.repo.ListHolds(ctx, status)
}

func (s *HoldService) invalidateProduct(ctx context.Context, productID string) {
	if s.productCache != nil {
		s.productCache.InvalidateProduct(ctx, productID)
	}
}

func (s *HoldService) invalidateStats(ctx context.Context) {
	if s.statsCache != nil {
		s.statsCache.InvalidateStats(ctx)
	}
}
