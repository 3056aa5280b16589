package app

import (
	"context"
	"strings"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
	"github.com/shopspring/decimal"
)

type AdminRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	GetProductDetail(ctx context.Context, productID string) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	CreateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entry domain.TaxonomyEntry) error
	UpdateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entry domain.TaxonomyEntry) error
	DeleteTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entryID string) error
	ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error)
	GetDashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

// AdminService covers the back-office: product and taxonomy CRUD plus the
// dashboard counters. Lifecycle transitions live in HoldService and
// InquiryService, not here.
type AdminService struct {
	repo         AdminRepository
	clock        clock.Clock
	productCache ProductCache
	statsCache   StatsCache
}

func NewAdminService(repo AdminRepository, clk clock.Clock, opts ...AdminServiceOption) *AdminService {
	svc := &AdminService{
		repo:  repo,
		clock: clk,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type AdminServiceOption func(*AdminService)

// WithAdminCaches wires the explicit-invalidation caches. Either may be nil.
func WithAdminCaches(products ProductCache, stats StatsCache) AdminServiceOption {
	return func(s *AdminService) {
		s.productCache = products
		s.statsCache = stats
	}
}

// ProductInput carries every editable product field. Pointer taxonomy ids
// distinguish "unset" from a reference.
type ProductInput struct {
	Name              string
	Slug              string
	SKU               string
	ShortDescription  string
	LongDescription   string
	Price             *decimal.Decimal
	Status            domain.ProductStatus
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
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrProductNameRequired
	}
	if in.Status != "" && !domain.ValidProductStatus(in.Status) {
		return domain.ErrInvalidStatus
	}
	return nil
}

func (in ProductInput) apply(product *domain.Product) {
	product.Name = in.Name
	product.Slug = in.Slug
	product.SKU = in.SKU
	product.ShortDescription = in.ShortDescription
	product.LongDescription = in.LongDescription
	product.Price = in.Price
	product.DesignerID = in.DesignerID
	product.MakerID = in.MakerID
	product.CategoryID = in.CategoryID
	product.StyleID = in.StyleID
	product.PeriodID = in.PeriodID
	product.CountryID = in.CountryID
	product.YearCreated = in.YearCreated
	product.ProductDimensions = in.ProductDimensions
	product.BoxDimensions = in.BoxDimensions
	product.Materials = in.Materials
	product.Condition = in.Condition
	product.FeaturedImageURL = in.FeaturedImageURL
	if in.Status != "" {
		product.Status = in.Status
	}
}

func (s *AdminService) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	now := s.clock.Now()
	product := domain.Product{
		ID:        newID(),
		Status:    domain.ProductStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(&product)

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	s.invalidateStats(ctx)
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, productID string, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.GetProductDetail(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	in.apply(&product)
	product.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	s.invalidateProduct(ctx, productID)
	return product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.invalidateProduct(ctx, productID)
	s.invalidateStats(ctx)
	return nil
}

func (s *AdminService) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	return s.repo.GetProductDetail(ctx, productID)
}

// ListProducts returns every product regardless of status; the back office
// sees inventory pieces the storefront hides.
func (s *AdminService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if len(filter.Statuses) == 0 {
		filter.Statuses = []domain.ProductStatus{
			domain.ProductStatusAvailable,
			domain.ProductStatusOnHold,
			domain.ProductStatusSold,
			domain.ProductStatusInventory,
		}
	}
	return s.repo.ListProducts(ctx, filter)
}

type TaxonomyInput struct {
	Name     string
	Slug     string
	Code     string
	HexValue string
}

func (s *AdminService) CreateTaxonomyEntry(ctx context.Context, kind domain.TaxonomyKind, in TaxonomyInput) (domain.TaxonomyEntry, error) {
	if !domain.ValidTaxonomyKind(kind) {
		return domain.TaxonomyEntry{}, domain.ErrInvalidTaxonomyKind
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.TaxonomyEntry{}, domain.ErrNameRequired
	}

	entry := domain.TaxonomyEntry{
		ID:        newID(),
		Name:      in.Name,
		Slug:      in.Slug,
		Code:      in.Code,
		HexValue:  in.HexValue,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateTaxonomy(ctx, kind, entry); err != nil {
		return domain.TaxonomyEntry{}, err
	}
	return entry, nil
}

func (s *AdminService) UpdateTaxonomyEntry(ctx context.Context, kind domain.TaxonomyKind, entryID string, in TaxonomyInput) (domain.TaxonomyEntry, error) {
	if !domain.ValidTaxonomyKind(kind) {
		return domain.TaxonomyEntry{}, domain.ErrInvalidTaxonomyKind
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.TaxonomyEntry{}, domain.ErrNameRequired
	}

	entry := domain.TaxonomyEntry{
		ID:       entryID,
		Name:     in.Name,
		Slug:     in.Slug,
		Code:     in.Code,
		HexValue: in.HexValue,
	}
	if err := s.repo.UpdateTaxonomy(ctx, kind, entry); err != nil {
		return domain.TaxonomyEntry{}, err
	}
	return entry, nil
}

func (s *AdminService) DeleteTaxonomyEntry(ctx context.Context, kind domain.TaxonomyKind, entryID string) error {
	if !domain.ValidTaxonomyKind(kind) {
		return domain.ErrInvalidTaxonomyKind
	}
	return s.repo.DeleteTaxonomy(ctx, kind, entryID)
}

func (s *AdminService) ListTaxonomyEntries(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyEntry, error) {
	if !domain.ValidTaxonomyKind(kind) {
		return nil, domain.ErrInvalidTaxonomyKind
	}
	return s.repo.ListTaxonomy(ctx, kind)
}

// DashboardStats returns the admin landing-page counters, cached until the
// next relevant mutation invalidates them.
func (s *AdminService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if s.statsCache != nil {
		if cached, ok := s.statsCache.GetStats(ctx); ok {
			return *cached, nil
		}
	}

	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	if s.statsCache != nil {
		s.statsCache.SetStats(ctx, stats)
	}
	return stats, nil
}

func (s *AdminService) invalidateProduct(ctx context.Context, productID string) {
	if s.productCache != nil {
		s.productCache.InvalidateProduct(ctx, productID)
	}
}

func (s *AdminService) invalidateStats(ctx context.Context) {
	if s.statsCache != nil {
		s.statsCache.InvalidateStats(ctx)
	}
}
