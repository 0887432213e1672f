package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// VendorHandler serves vendor onboarding and profile routes.
type VendorHandler struct {
	vendors ports.VendorService
}

func NewVendorHandler(vendors ports.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// Apply handles POST /api/v1/vendors/apply.
//
// @Summary      Submit a vendor application
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  applyVendorRequest  true  "Business details"
// @Success      201  {object}  envelope
// @Failure      409  {object}  envelope
// @Router       /api/v1/vendors/apply [post]
func (h *VendorHandler) Apply(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyVendorRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}

	vendor, err := h.vendors.Apply(c.Request().Context(), ports.ApplyVendorInput{
		AccountID:    accountID,
		BusinessName: req.BusinessName,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toVendorResponse(vendor), "Application submitted; pending approval")
}

// Me handles GET /api/v1/vendors/me.
//
// @Summary      Own vendor profile
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/vendors/me [get]
func (h *VendorHandler) Me(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	vendor, err := h.vendors.ProfileByAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toVendorResponse(vendor), "")
}

// Get handles GET /api/v1/vendors/:id — the public profile. Only approved,
// active vendors are visible; the account reference is withheld.
//
// @Summary      Public vendor profile
// @Tags         vendors
// @Produce      json
// @Param        id  path  string  true  "Vendor id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/vendors/{id} [get]
func (h *VendorHandler) Get(c echo.Context) error {
	vendor, err := h.vendors.PublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := toVendorResponse(vendor)
	resp.AccountID = ""
	return respond(c, http.StatusOK, resp, "")
}
