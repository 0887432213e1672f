package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// PlacesHandler proxies address autocomplete lookups.
type PlacesHandler struct {
	places ports.PlacesService
}

func NewPlacesHandler(places ports.PlacesService) *PlacesHandler {
	return &PlacesHandler{places: places}
}

// Autocomplete handles GET /api/v1/places/autocomplete.
//
// @Summary      Address autocomplete
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        input  query  string  true  "Partial address"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /api/v1/places/autocomplete [get]
func (h *PlacesHandler) Autocomplete(c echo.Context) error {
	input := c.QueryParam("input")
	if input == "" {
		return respondErr(c, http.StatusBadRequest, "input is required")
	}

	predictions, err := h.places.Autocomplete(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, predictions, "")
}
