package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// ProductService handles catalog listings: vendor-side CRUD plus the public
// list and detail views.
type ProductService struct {
	products ports.ProductRepository
	vendors  ports.VendorRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, vendors ports.VendorRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, vendors: vendors, logger: logger}
}

// eligibleVendor resolves the caller's vendor profile and checks that it may
// manage listings.
func (s *ProductService) eligibleVendor(ctx context.Context, accountID string) (*domain.Vendor, error) {
	vendor, err := s.vendors.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, domain.ErrVendorNotEligible
	}
	if !vendor.IsApproved || !vendor.IsActive {
		return nil, domain.ErrVendorNotEligible
	}
	return vendor, nil
}

// Create adds a listing for the caller's vendor profile. The vendor must be
// approved and active.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.PriceCents <= 0 {
		return nil, domain.ErrInvalidInput
	}

	vendor, err := s.eligibleVendor(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		VendorID:    vendor.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		PriceCents:  input.PriceCents,
		Currency:    input.Currency,
		IsActive:    true,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("vendor_id", vendor.ID).Msg("product created")
	return created, nil
}

// Update mutates a listing owned by the caller.
func (s *ProductService) Update(ctx context.Context, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.PriceCents <= 0 {
		return nil, domain.ErrInvalidInput
	}

	vendor, err := s.eligibleVendor(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.VendorID != vendor.ID {
		return nil, domain.ErrForbidden
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.PriceCents = input.PriceCents
	product.Currency = input.Currency

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Deactivate soft-deletes a listing owned by the caller.
func (s *ProductService) Deactivate(ctx context.Context, accountID, productID string) error {
	vendor, err := s.eligibleVendor(ctx, accountID)
	if err != nil {
		return err
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.VendorID != vendor.ID {
		return domain.ErrForbidden
	}

	return s.products.SetActive(ctx, productID, false)
}

// Get returns a single active listing. Inactive listings are reported as
// absent.
func (s *ProductService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// List returns a page of active listings for the public catalog.
func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) (*ports.ProductPage, error) {
	filter.ActiveOnly = true
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ProductPage{
		Items:      items,
		Pagination: pageMeta(total, filter.Page, filter.Limit),
	}, nil
}
