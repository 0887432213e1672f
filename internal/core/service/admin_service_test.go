package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

type stubVendorRepo struct {
	vendors  map[string]*domain.Vendor
	products map[string]int64 // vendor id -> owned product count
	nextID   int
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{
		vendors:  make(map[string]*domain.Vendor),
		products: make(map[string]int64),
	}
}

func cloneVendor(v *domain.Vendor) *domain.Vendor {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

func (r *stubVendorRepo) Create(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.AccountID == vendor.AccountID {
			return nil, domain.ErrVendorExists
		}
	}
	r.nextID++
	created := cloneVendor(vendor)
	created.ID = "ven_" + strconv.Itoa(r.nextID)
	r.vendors[created.ID] = cloneVendor(created)
	return created, nil
}

func (r *stubVendorRepo) FindByID(_ context.Context, id string) (*domain.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, domain.ErrVendorNotFound
	}
	return cloneVendor(v), nil
}

func (r *stubVendorRepo) FindByAccountID(_ context.Context, accountID string) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.AccountID == accountID {
			return cloneVendor(v), nil
		}
	}
	return nil, domain.ErrVendorNotFound
}

func (r *stubVendorRepo) List(_ context.Context, filter ports.VendorFilter) ([]domain.Vendor, int64, error) {
	var out []domain.Vendor
	for _, v := range r.vendors {
		switch filter.Status {
		case domain.VendorStatusPending:
			if v.IsApproved {
				continue
			}
		case domain.VendorStatusApproved:
			if !v.IsApproved {
				continue
			}
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVendorRepo) Approve(_ context.Context, id string) (*domain.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, domain.ErrVendorNotFound
	}
	v.IsApproved = true
	return cloneVendor(v), nil
}

func (r *stubVendorRepo) SetActive(_ context.Context, id string, active bool) (int64, error) {
	v, ok := r.vendors[id]
	if !ok {
		return 0, domain.ErrVendorNotFound
	}
	v.IsActive = active
	return r.products[id], nil
}

func (r *stubVendorRepo) seed(vendor domain.Vendor) *domain.Vendor {
	created, _ := r.Create(context.Background(), &vendor)
	return created
}

func newAdminService(accounts ports.AccountRepository, vendors ports.VendorRepository) *AdminService {
	return NewAdminService(accounts, vendors, zerolog.Nop())
}

func TestAdminService_ApproveVendor(t *testing.T) {
	repo := newStubVendorRepo()
	v := repo.seed(domain.Vendor{AccountID: "acc_1", BusinessName: "Acme", IsActive: true})
	svc := newAdminService(newStubAccountRepo(), repo)

	approved, err := svc.ApproveVendor(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if !approved.IsApproved {
		t.Fatalf("vendor not marked approved")
	}

	// Approving twice is a no-op, not an error.
	again, err := svc.ApproveVendor(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("second approve failed: %v", err)
	}
	if !again.IsApproved {
		t.Fatalf("vendor lost approval on second call")
	}
}

func TestAdminService_ApproveVendor_NotFound(t *testing.T) {
	svc := newAdminService(newStubAccountRepo(), newStubVendorRepo())

	if _, err := svc.ApproveVendor(context.Background(), "ven_missing"); err != domain.ErrVendorNotFound {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestAdminService_BlockVendor_Cascades(t *testing.T) {
	repo := newStubVendorRepo()
	v := repo.seed(domain.Vendor{AccountID: "acc_1", BusinessName: "Acme", IsApproved: true, IsActive: true})
	repo.products[v.ID] = 3
	svc := newAdminService(newStubAccountRepo(), repo)

	result, err := svc.BlockVendor(context.Background(), v.ID, false)
	if err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if result.Vendor.IsActive {
		t.Fatalf("vendor still active after block")
	}
	if result.ProductsUpdated != 3 {
		t.Fatalf("expected 3 products updated, got %d", result.ProductsUpdated)
	}

	// Unblock restores the flag.
	result, err = svc.BlockVendor(context.Background(), v.ID, true)
	if err != nil {
		t.Fatalf("unblock failed: %v", err)
	}
	if !result.Vendor.IsActive {
		t.Fatalf("vendor still inactive after unblock")
	}
}

func TestAdminService_ListVendors_InvalidStatus(t *testing.T) {
	svc := newAdminService(newStubAccountRepo(), newStubVendorRepo())

	if _, err := svc.ListVendors(context.Background(), ports.VendorFilter{Status: "rejected"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdminService_ListVendors_StatusFilter(t *testing.T) {
	repo := newStubVendorRepo()
	repo.seed(domain.Vendor{AccountID: "acc_1", BusinessName: "Pending Co"})
	repo.seed(domain.Vendor{AccountID: "acc_2", BusinessName: "Approved Co", IsApproved: true})
	svc := newAdminService(newStubAccountRepo(), repo)

	page, err := svc.ListVendors(context.Background(), ports.VendorFilter{Status: domain.VendorStatusPending})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].BusinessName != "Pending Co" {
		t.Fatalf("unexpected pending page: %+v", page.Items)
	}

	page, err = svc.ListVendors(context.Background(), ports.VendorFilter{Status: domain.VendorStatusApproved})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].BusinessName != "Approved Co" {
		t.Fatalf("unexpected approved page: %+v", page.Items)
	}
}

func TestAdminService_ListUsers_InvalidRole(t *testing.T) {
	svc := newAdminService(newStubAccountRepo(), newStubVendorRepo())

	if _, err := svc.ListUsers(context.Background(), ports.AccountFilter{Role: "superadmin"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPageMeta(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int
	}{
		{"exact", 40, 1, 20, 2},
		{"remainder", 41, 1, 20, 3},
		{"empty", 0, 1, 20, 0},
		{"single", 1, 1, 20, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := pageMeta(tc.total, tc.page, tc.limit)
			if meta.TotalPages != tc.totalPages {
				t.Fatalf("total=%d limit=%d: expected %d pages, got %d", tc.total, tc.limit, tc.totalPages, meta.TotalPages)
			}
		})
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, 0)
	if page != 1 || limit != defaultPageLimit {
		t.Fatalf("expected defaults, got page=%d limit=%d", page, limit)
	}
	_, limit = normalizePage(2, 500)
	if limit != maxPageLimit {
		t.Fatalf("expected limit clamp to %d, got %d", maxPageLimit, limit)
	}
}
