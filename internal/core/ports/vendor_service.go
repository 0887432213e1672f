package ports

import (
	"context"

	"github.com/openmarket/marketplace-api/internal/core/domain"
)

// ApplyVendorInput carries a vendor application submitted by a vendor-role
// account.
type ApplyVendorInput struct {
	AccountID    string
	BusinessName string
	Category     string
}

// VendorService handles vendor onboarding and profile lookup.
type VendorService interface {
	Apply(ctx context.Context, input ApplyVendorInput) (*domain.Vendor, error)
	ProfileByAccount(ctx context.Context, accountID string) (*domain.Vendor, error)
	// PublicProfile returns the vendor only when it is approved and active.
	PublicProfile(ctx context.Context, vendorID string) (*domain.Vendor, error)
}

// CreateProductInput carries a new listing from an authenticated vendor
// account. AccountID identifies the caller, not the vendor profile.
type CreateProductInput struct {
	AccountID   string
	Name        string
	Description string
	Category    string
	PriceCents  int64
	Currency    string
}

// UpdateProductInput mutates an existing listing owned by the caller.
type UpdateProductInput struct {
	AccountID   string
	ProductID   string
	Name        string
	Description string
	Category    string
	PriceCents  int64
	Currency    string
}

// ProductPage is one page of the public catalog listing.
type ProductPage struct {
	Items      []domain.Product
	Pagination Pagination
}

// ProductService handles the catalog: vendor-side CRUD and the public list.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*domain.Product, error)
	Deactivate(ctx context.Context, accountID, productID string) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) (*ProductPage, error)
}
