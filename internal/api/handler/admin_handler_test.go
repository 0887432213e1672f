package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/api/handler"
	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

type stubAdminService struct {
	accountPage *ports.AccountPage
	vendorPage  *ports.VendorPage
	approved    *domain.Vendor
	approveErr  error
	blockResult *ports.BlockVendorResult
	blockErr    error

	gotAccountFilter ports.AccountFilter
	gotBlockActive   bool
}

func (s *stubAdminService) ListUsers(_ context.Context, filter ports.AccountFilter) (*ports.AccountPage, error) {
	s.gotAccountFilter = filter
	return s.accountPage, nil
}

func (s *stubAdminService) ListVendors(_ context.Context, _ ports.VendorFilter) (*ports.VendorPage, error) {
	return s.vendorPage, nil
}

func (s *stubAdminService) ApproveVendor(_ context.Context, _ string) (*domain.Vendor, error) {
	return s.approved, s.approveErr
}

func (s *stubAdminService) BlockVendor(_ context.Context, _ string, active bool) (*ports.BlockVendorResult, error) {
	s.gotBlockActive = active
	return s.blockResult, s.blockErr
}

type stubAnalyticsService struct {
	summary    *ports.AnalyticsSummary
	summaryErr error
	gotDays    int
}

func (s *stubAnalyticsService) Process(_ context.Context, _ ports.TrackEventInput) error {
	return nil
}

func (s *stubAnalyticsService) Summary(_ context.Context, days int) (*ports.AnalyticsSummary, error) {
	s.gotDays = days
	return s.summary, s.summaryErr
}

// doParam runs one handler with a single :id path parameter.
func doParam(e *echo.Echo, h echo.HandlerFunc, method, target, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAdminHandler_ApproveVendor(t *testing.T) {
	e := newTestEcho()
	svc := &stubAdminService{approved: &domain.Vendor{
		ID:           "ven_1",
		BusinessName: "Acme",
		IsApproved:   true,
		IsActive:     true,
	}}
	h := handler.NewAdminHandler(svc, &stubAnalyticsService{})

	rec := doParam(e, h.ApproveVendor, http.MethodPost, "/api/v1/admin/vendors/ven_1/approve", "ven_1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["is_approved"] != true {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestAdminHandler_ApproveVendor_NotFound(t *testing.T) {
	e := newTestEcho()
	h := handler.NewAdminHandler(&stubAdminService{approveErr: domain.ErrVendorNotFound}, &stubAnalyticsService{})

	rec := doParam(e, h.ApproveVendor, http.MethodPost, "/api/v1/admin/vendors/ven_missing/approve", "ven_missing", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["error"] != "Vendor not found" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestAdminHandler_BlockVendor(t *testing.T) {
	e := newTestEcho()
	svc := &stubAdminService{blockResult: &ports.BlockVendorResult{
		Vendor:          &domain.Vendor{ID: "ven_1", BusinessName: "Acme", IsApproved: true, IsActive: false},
		ProductsUpdated: 5,
	}}
	h := handler.NewAdminHandler(svc, &stubAnalyticsService{})

	rec := doParam(e, h.BlockVendor, http.MethodPost, "/api/v1/admin/vendors/ven_1/block", "ven_1", `{"is_active":false}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotBlockActive {
		t.Fatalf("handler passed is_active=true for a block request")
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["products_updated"] != float64(5) {
		t.Fatalf("cascade count missing: %v", data)
	}
}

func TestAdminHandler_ListUsers_ForwardsFilter(t *testing.T) {
	e := newTestEcho()
	svc := &stubAdminService{accountPage: &ports.AccountPage{
		Items:      []domain.Account{{ID: "acc_1", Name: "Alice", Role: domain.RoleUser}},
		Pagination: ports.Pagination{Total: 1, Page: 2, Limit: 10, TotalPages: 1},
	}}
	h := handler.NewAdminHandler(svc, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?page=2&limit=10&role=user&query=ali", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListUsers(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotAccountFilter.Page != 2 || svc.gotAccountFilter.Limit != 10 {
		t.Fatalf("paging not forwarded: %+v", svc.gotAccountFilter)
	}
	if svc.gotAccountFilter.Role != domain.RoleUser || svc.gotAccountFilter.Query != "ali" {
		t.Fatalf("filters not forwarded: %+v", svc.gotAccountFilter)
	}

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	if pagination["total"] != float64(1) {
		t.Fatalf("pagination missing: %v", data)
	}
}

func TestAdminHandler_AnalyticsSummary(t *testing.T) {
	e := newTestEcho()
	analytics := &stubAnalyticsService{summary: &ports.AnalyticsSummary{
		Days:   30,
		Total:  12,
		ByType: map[string]int64{domain.EventPageView: 12},
	}}
	h := handler.NewAdminHandler(&stubAdminService{}, analytics)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics/summary?days=30", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.AnalyticsSummary(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if analytics.gotDays != 30 {
		t.Fatalf("days query not forwarded, got %d", analytics.gotDays)
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["total"] != float64(12) {
		t.Fatalf("unexpected summary: %v", data)
	}
}
