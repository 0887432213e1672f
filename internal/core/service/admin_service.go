package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/api/metrics"
	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AdminService implements the administration surface: user listing, vendor
// listing, approval, and soft-blocking.
type AdminService struct {
	accounts ports.AccountRepository
	vendors  ports.VendorRepository
	logger   zerolog.Logger
}

func NewAdminService(accounts ports.AccountRepository, vendors ports.VendorRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{accounts: accounts, vendors: vendors, logger: logger}
}

// ListUsers returns a page of accounts, optionally filtered by role and by a
// case-insensitive name/email search.
func (s *AdminService) ListUsers(ctx context.Context, filter ports.AccountFilter) (*ports.AccountPage, error) {
	if filter.Role != "" && !domain.ValidRole(filter.Role) {
		return nil, domain.ErrInvalidInput
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.AccountPage{
		Items:      items,
		Pagination: pageMeta(total, filter.Page, filter.Limit),
	}, nil
}

// ListVendors returns a page of vendor profiles filtered by approval status.
func (s *AdminService) ListVendors(ctx context.Context, filter ports.VendorFilter) (*ports.VendorPage, error) {
	switch filter.Status {
	case "":
		filter.Status = domain.VendorStatusAll
	case domain.VendorStatusPending, domain.VendorStatusApproved, domain.VendorStatusAll:
	default:
		return nil, domain.ErrInvalidInput
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.vendors.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.VendorPage{
		Items:      items,
		Pagination: pageMeta(total, filter.Page, filter.Limit),
	}, nil
}

// ApproveVendor flips a vendor to approved. Approving an already-approved
// vendor is a no-op that still succeeds.
func (s *AdminService) ApproveVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendors.Approve(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	metrics.VendorApprovalsTotal.Inc()
	s.logger.Info().Str("vendor_id", vendor.ID).Msg("vendor approved")
	return vendor, nil
}

// BlockVendor sets the vendor active flag and cascades it to every product
// the vendor owns. Both mutations run in one transaction.
func (s *AdminService) BlockVendor(ctx context.Context, vendorID string, active bool) (*ports.BlockVendorResult, error) {
	updated, err := s.vendors.SetActive(ctx, vendorID, active)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	metrics.VendorBlocksTotal.WithLabelValues(activeLabel(active)).Inc()
	s.logger.Info().
		Str("vendor_id", vendorID).
		Bool("is_active", active).
		Int64("products_updated", updated).
		Msg("vendor active flag changed")

	return &ports.BlockVendorResult{Vendor: vendor, ProductsUpdated: updated}, nil
}

func activeLabel(active bool) string {
	if active {
		return "unblock"
	}
	return "block"
}

// normalizePage clamps page/limit to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// pageMeta computes the pagination block attached to list responses.
func pageMeta(total int64, page, limit int) ports.Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return ports.Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
