package app

import (
	"context"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

type SpecSheetRepository interface {
	GetProductDetail(ctx context.Context, productID string) (domain.Product, error)
	CreateSpecSheetDownload(ctx context.Context, download domain.SpecSheetDownload) error
}

// SpecSheetRenderer turns a product into a printable PDF. Implemented by
// internal/pdf.
type SpecSheetRenderer interface {
	Render(product domain.Product, includePrice bool) ([]byte, error)
}

// SpecSheetService records who asked for a spec sheet and hands back the
// rendered PDF. The audit row is written before rendering; a render failure
// after a recorded request is acceptable, the reverse is not.
type SpecSheetService struct {
	repo     SpecSheetRepository
	renderer SpecSheetRenderer
	clock    clock.Clock
}

func NewSpecSheetService(repo SpecSheetRepository, renderer SpecSheetRenderer, clk clock.Clock) *SpecSheetService {
	return &SpecSheetService{
		repo:     repo,
		renderer: renderer,
		clock:    clk,
	}
}

type SpecSheetRequest struct {
	ProductID     string
	CustomerName  string
	CustomerEmail string
	IncludePrice  bool
}

type SpecSheetResult struct {
	Product domain.Product
	PDF     []byte
}

func (s *SpecSheetService) Generate(ctx context.Context, in SpecSheetRequest) (SpecSheetResult, error) {
	if err := validateContact(in.CustomerName, in.CustomerEmail); err != nil {
		return SpecSheetResult{}, err
	}

	product, err := s.repo.GetProductDetail(ctx, in.ProductID)
	if err != nil {
		return SpecSheetResult{}, err
	}

	download := domain.SpecSheetDownload{
		ID:            newID(),
		ProductID:     in.ProductID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		IncludePrice:  in.IncludePrice,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.repo.CreateSpecSheetDownload(ctx, download); err != nil {
		return SpecSheetResult{}, err
	}

	pdf, err := s.renderer.Render(product, in.IncludePrice)
	if err != nil {
		return SpecSheetResult{}, err
	}

	return SpecSheetResult{Product: product, PDF: pdf}, nil
}
