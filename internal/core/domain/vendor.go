package domain

import "time"

// Vendor statuses accepted by the admin vendor listing filter.
const (
	VendorStatusPending  = "pending"
	VendorStatusApproved = "approved"
	VendorStatusAll      = "all"
)

// Vendor is a business profile owned by a vendor-role account.
// IsApproved flips true only through admin approval; IsApproved never flips
// back. IsActive=false soft-blocks the vendor and every product it owns.
type Vendor struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	BusinessName string    `json:"business_name"`
	Category     string    `json:"category"`
	IsApproved   bool      `json:"is_approved"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Product is a catalog listing owned by a vendor. PriceCents stores the price
// in minor currency units.
type Product struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
