package ports

import (
	"context"
	"time"

	"github.com/openmarket/marketplace-api/internal/core/domain"
)

// AccountFilter narrows and pages the admin user listing. Query matches name
// or email case-insensitively; an empty Role means all roles.
type AccountFilter struct {
	Role  string
	Query string
	Page  int
	Limit int
}

// AccountRepository persists marketplace accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, filter AccountFilter) ([]domain.Account, int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// VendorFilter narrows and pages the admin vendor listing.
// Status is one of domain.VendorStatus{Pending,Approved,All}.
type VendorFilter struct {
	Status string
	Page   int
	Limit  int
}

// VendorRepository persists vendor profiles.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	FindByID(ctx context.Context, id string) (*domain.Vendor, error)
	FindByAccountID(ctx context.Context, accountID string) (*domain.Vendor, error)
	List(ctx context.Context, filter VendorFilter) ([]domain.Vendor, int64, error)
	// Approve flips the approval flag. The operation is idempotent: approving
	// an already-approved vendor succeeds and leaves the record unchanged.
	Approve(ctx context.Context, id string) (*domain.Vendor, error)
	// SetActive flips the vendor active flag and cascades the same flag to
	// every product owned by the vendor in a single transaction. It returns
	// the number of products touched.
	SetActive(ctx context.Context, id string, active bool) (int64, error)
}

// ProductFilter narrows and pages the public catalog listing. Query matches
// the product name case-insensitively.
type ProductFilter struct {
	VendorID   string
	Category   string
	Query      string
	ActiveOnly bool
	Page       int
	Limit      int
}

// ProductRepository persists catalog listings.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	SetActive(ctx context.Context, id string, active bool) error
}

// AnalyticsRepository persists tracked events.
type AnalyticsRepository interface {
	Insert(ctx context.Context, event *domain.AnalyticsEvent) error
	// CountByTypeSince returns per-type event counts for events that occurred
	// at or after the given instant.
	CountByTypeSince(ctx context.Context, since time.Time) (map[string]int64, error)
}
