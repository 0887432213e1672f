package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// ProductHandler serves the catalog: public listing plus vendor-side CRUD.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/v1/products — the public catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Param        category  query  string  false  "Category filter"
// @Param        query     query  string  false  "Name search"
// @Success      200  {object}  envelope
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.products.List(c.Request().Context(), ports.ProductFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("query"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]productResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toProductResponse(&page.Items[i]))
	}
	return respond(c, http.StatusOK, listResponse[productResponse]{
		Items:      items,
		Pagination: page.Pagination,
	}, "")
}

// Get handles GET /api/v1/products/:id.
//
// @Summary      Product detail
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toProductResponse(product), "")
}

// Create handles POST /api/v1/products. The caller's vendor profile must be
// approved and active.
//
// @Summary      Create a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  productRequest  true  "Listing details"
// @Success      201  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), ports.CreateProductInput{
		AccountID:   accountID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toProductResponse(product), "Product created")
}

// Update handles PUT /api/v1/products/:id.
//
// @Summary      Update a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Product id"
// @Param        body  body  productRequest  true  "Listing details"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Update(c.Request().Context(), ports.UpdateProductInput{
		AccountID:   accountID,
		ProductID:   c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toProductResponse(product), "Product updated")
}

// Delete handles DELETE /api/v1/products/:id — a soft-deactivate, matching
// the vendor block cascade semantics.
//
// @Summary      Deactivate a product listing
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.products.Deactivate(c.Request().Context(), accountID, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Product deactivated")
}
