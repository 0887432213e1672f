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

type stubEventSink struct {
	events []ports.TrackEventInput
}

func (s *stubEventSink) Enqueue(event ports.TrackEventInput) {
	s.events = append(s.events, event)
}

func TestAnalyticsHandler_Track(t *testing.T) {
	e := newTestEcho()
	sink := &stubEventSink{}
	h := handler.NewAnalyticsHandler(sink)

	rec := doJSON(e, h.Track, http.MethodPost, "/api/v1/analytics/events",
		`{"type":"product_view","entity_id":"prd_1","path":"/products/prd_1"}`)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(sink.events) != 1 {
		t.Fatalf("event not enqueued")
	}
	if sink.events[0].Type != domain.EventProductView || sink.events[0].EntityID != "prd_1" {
		t.Fatalf("unexpected event: %+v", sink.events[0])
	}
	// Anonymous caller: no actor attached.
	if sink.events[0].ActorID != "" {
		t.Fatalf("anonymous event carries an actor: %+v", sink.events[0])
	}
}

func TestAnalyticsHandler_Track_AuthenticatedActor(t *testing.T) {
	e := newTestEcho()
	sink := &stubEventSink{}
	h := handler.NewAnalyticsHandler(sink)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/events",
		strings.NewReader(`{"type":"page_view","path":"/"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account_id", "acc_7")

	if err := h.Track(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(sink.events) != 1 || sink.events[0].ActorID != "acc_7" {
		t.Fatalf("actor not taken from claims: %+v", sink.events)
	}
}

func TestAnalyticsHandler_Track_InvalidType(t *testing.T) {
	e := newTestEcho()
	sink := &stubEventSink{}
	h := handler.NewAnalyticsHandler(sink)

	rec := doJSON(e, h.Track, http.MethodPost, "/api/v1/analytics/events",
		`{"type":"rage_click"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(sink.events) != 0 {
		t.Fatalf("invalid event must not be enqueued")
	}
}

type stubPlacesService struct {
	predictions []ports.PlacePrediction
	err         error
	gotInput    string
}

func (s *stubPlacesService) Autocomplete(_ context.Context, input string) ([]ports.PlacePrediction, error) {
	s.gotInput = input
	return s.predictions, s.err
}

func TestPlacesHandler_Autocomplete(t *testing.T) {
	e := newTestEcho()
	svc := &stubPlacesService{predictions: []ports.PlacePrediction{
		{Description: "Springfield, IL, USA", PlaceID: "pl_1"},
	}}
	h := handler.NewPlacesHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/autocomplete?input=spring", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Autocomplete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotInput != "spring" {
		t.Fatalf("input not forwarded: %q", svc.gotInput)
	}
}

func TestPlacesHandler_Autocomplete_MissingInput(t *testing.T) {
	e := newTestEcho()
	h := handler.NewPlacesHandler(&stubPlacesService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/autocomplete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Autocomplete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPlacesHandler_Autocomplete_UpstreamFailure(t *testing.T) {
	e := newTestEcho()
	h := handler.NewPlacesHandler(&stubPlacesService{err: domain.ErrPlacesUpstream})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/autocomplete?input=spring", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Autocomplete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
