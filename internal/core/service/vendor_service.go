package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// VendorService handles vendor onboarding and profile lookup.
type VendorService struct {
	vendors ports.VendorRepository
	logger  zerolog.Logger
}

func NewVendorService(vendors ports.VendorRepository, logger zerolog.Logger) *VendorService {
	return &VendorService{vendors: vendors, logger: logger}
}

// Apply creates a pending vendor profile for the account. One profile per
// account.
func (s *VendorService) Apply(ctx context.Context, input ports.ApplyVendorInput) (*domain.Vendor, error) {
	if input.AccountID == "" || input.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}

	_, err := s.vendors.FindByAccountID(ctx, input.AccountID)
	if err == nil {
		return nil, domain.ErrVendorExists
	}
	if !errors.Is(err, domain.ErrVendorNotFound) {
		return nil, err
	}

	vendor := &domain.Vendor{
		AccountID:    input.AccountID,
		BusinessName: input.BusinessName,
		Category:     input.Category,
		IsApproved:   false,
		IsActive:     true,
	}

	created, err := s.vendors.Create(ctx, vendor)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("vendor_id", created.ID).Str("account_id", input.AccountID).Msg("vendor application submitted")
	return created, nil
}

// ProfileByAccount returns the vendor profile owned by the account.
func (s *VendorService) ProfileByAccount(ctx context.Context, accountID string) (*domain.Vendor, error) {
	return s.vendors.FindByAccountID(ctx, accountID)
}

// PublicProfile returns the vendor only when it is approved and active.
// Pending or blocked vendors are indistinguishable from absent ones.
func (s *VendorService) PublicProfile(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved || !vendor.IsActive {
		return nil, domain.ErrVendorNotFound
	}
	return vendor, nil
}
