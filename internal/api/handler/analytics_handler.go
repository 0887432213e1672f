package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// EventSink accepts events for asynchronous processing. Implemented by the
// queue dispatcher.
type EventSink interface {
	Enqueue(event ports.TrackEventInput)
}

// AnalyticsHandler accepts tracked events from clients.
type AnalyticsHandler struct {
	sink EventSink
}

func NewAnalyticsHandler(sink EventSink) *AnalyticsHandler {
	return &AnalyticsHandler{sink: sink}
}

// Track handles POST /api/v1/analytics/events. Events are accepted and
// processed off the request path; the actor is taken from claims when the
// caller is authenticated.
//
// @Summary      Track an analytics event
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body  trackEventRequest  true  "Event details"
// @Success      202  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /api/v1/analytics/events [post]
func (h *AnalyticsHandler) Track(c echo.Context) error {
	var req trackEventRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}

	actorID, _ := c.Get("account_id").(string)
	h.sink.Enqueue(ports.TrackEventInput{
		Type:     req.Type,
		ActorID:  actorID,
		EntityID: req.EntityID,
		Path:     req.Path,
	})
	return respond(c, http.StatusAccepted, nil, "Event accepted")
}
