package ports

import (
	"context"

	"github.com/openmarket/marketplace-api/internal/core/domain"
)

// Pagination describes the page metadata attached to list responses.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// AccountPage is one page of the admin user listing.
type AccountPage struct {
	Items      []domain.Account
	Pagination Pagination
}

// VendorPage is one page of the admin vendor listing.
type VendorPage struct {
	Items      []domain.Vendor
	Pagination Pagination
}

// BlockVendorResult reports the outcome of a vendor block/unblock, including
// how many products the cascade touched.
type BlockVendorResult struct {
	Vendor          *domain.Vendor
	ProductsUpdated int64
}

// AdminService exposes the administration surface: user listing, vendor
// listing, approval, and soft-blocking.
type AdminService interface {
	ListUsers(ctx context.Context, filter AccountFilter) (*AccountPage, error)
	ListVendors(ctx context.Context, filter VendorFilter) (*VendorPage, error)
	ApproveVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	BlockVendor(ctx context.Context, vendorID string, active bool) (*BlockVendorResult, error)
}
