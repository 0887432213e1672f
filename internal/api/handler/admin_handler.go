package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// AdminHandler serves the admin-only administration surface.
type AdminHandler struct {
	admin     ports.AdminService
	analytics ports.AnalyticsService
}

func NewAdminHandler(admin ports.AdminService, analytics ports.AnalyticsService) *AdminHandler {
	return &AdminHandler{admin: admin, analytics: analytics}
}

// queryInt parses an integer query parameter, falling back on def.
func queryInt(c echo.Context, key string, def int) int {
	v := c.QueryParam(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ListUsers handles GET /api/v1/admin/users.
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "Page number"
// @Param        limit  query  int     false  "Page size"
// @Param        role   query  string  false  "Role filter"
// @Param        query  query  string  false  "Name/email search"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := h.admin.ListUsers(c.Request().Context(), ports.AccountFilter{
		Role:  c.QueryParam("role"),
		Query: c.QueryParam("query"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]accountResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toAccountResponse(&page.Items[i]))
	}
	return respond(c, http.StatusOK, listResponse[accountResponse]{
		Items:      items,
		Pagination: page.Pagination,
	}, "")
}

// ListVendors handles GET /api/v1/admin/vendors.
//
// @Summary      List vendor profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "pending, approved, or all"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/admin/vendors [get]
func (h *AdminHandler) ListVendors(c echo.Context) error {
	page, err := h.admin.ListVendors(c.Request().Context(), ports.VendorFilter{
		Status: c.QueryParam("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]vendorResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toVendorResponse(&page.Items[i]))
	}
	return respond(c, http.StatusOK, listResponse[vendorResponse]{
		Items:      items,
		Pagination: page.Pagination,
	}, "")
}

// ApproveVendor handles POST /api/v1/admin/vendors/:id/approve. Idempotent.
//
// @Summary      Approve a vendor
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Vendor id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/admin/vendors/{id}/approve [post]
func (h *AdminHandler) ApproveVendor(c echo.Context) error {
	vendor, err := h.admin.ApproveVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toVendorResponse(vendor), "Vendor approved")
}

// BlockVendor handles POST /api/v1/admin/vendors/:id/block. Setting
// is_active=false soft-blocks the vendor and deactivates all its products.
//
// @Summary      Block or unblock a vendor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "Vendor id"
// @Param        body  body  blockVendorRequest  true  "Target active state"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/admin/vendors/{id}/block [post]
func (h *AdminHandler) BlockVendor(c echo.Context) error {
	var req blockVendorRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.admin.BlockVendor(c.Request().Context(), c.Param("id"), req.IsActive)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, blockVendorResponse{
		Vendor:          toVendorResponse(result.Vendor),
		ProductsUpdated: result.ProductsUpdated,
	}, "Vendor status updated")
}

// AnalyticsSummary handles GET /api/v1/admin/analytics/summary.
//
// @Summary      Analytics summary
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        days  query  int  false  "Window size in days (default 7)"
// @Success      200  {object}  envelope
// @Router       /api/v1/admin/analytics/summary [get]
func (h *AdminHandler) AnalyticsSummary(c echo.Context) error {
	summary, err := h.analytics.Summary(c.Request().Context(), queryInt(c, "days", 7))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, summary, "")
}
