package handler

import (
	"time"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=user vendor"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type applyVendorRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Category     string `json:"category"`
}

type blockVendorRequest struct {
	IsActive bool `json:"is_active"`
}

type productRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Currency    string `json:"currency"    validate:"required,len=3"`
}

type trackEventRequest struct {
	Type     string `json:"type"      validate:"required,oneof=page_view product_view vendor_view search"`
	EntityID string `json:"entity_id"`
	Path     string `json:"path"`
}

// --- Response types ---
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type accountResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		IsVerified: a.IsVerified,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
	}
}

type loginResponse struct {
	Token string          `json:"token"`
	User  accountResponse `json:"user"`
}

type vendorResponse struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id,omitempty"`
	BusinessName string    `json:"business_name"`
	Category     string    `json:"category,omitempty"`
	IsApproved   bool      `json:"is_approved"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func toVendorResponse(v *domain.Vendor) vendorResponse {
	return vendorResponse{
		ID:           v.ID,
		AccountID:    v.AccountID,
		BusinessName: v.BusinessName,
		Category:     v.Category,
		IsApproved:   v.IsApproved,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
	}
}

type blockVendorResponse struct {
	Vendor          vendorResponse `json:"vendor"`
	ProductsUpdated int64          `json:"products_updated"`
}

type productResponse struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

type listResponse[T any] struct {
	Items      []T              `json:"items"`
	Pagination ports.Pagination `json:"pagination"`
}
