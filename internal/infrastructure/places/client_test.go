package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

func TestClient_Autocomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("input"); got != "spring" {
			t.Errorf("unexpected input param: %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("api key not forwarded: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"predictions": [
				{"description": "Springfield, IL, USA", "place_id": "pl_1"},
				{"description": "Springfield, MA, USA", "place_id": "pl_2"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key").WithBaseURL(srv.URL)

	result, err := client.Autocomplete(context.Background(), "spring")
	if err != nil {
		t.Fatalf("autocomplete failed: %v", err)
	}
	if result.Status != ports.PlacesStatusOK {
		t.Fatalf("unexpected status: %s", result.Status)
	}
	if len(result.Predictions) != 2 || result.Predictions[0].PlaceID != "pl_1" {
		t.Fatalf("unexpected predictions: %+v", result.Predictions)
	}
}

func TestClient_Autocomplete_StatusPassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))
	}))
	defer srv.Close()

	client := NewClient("test-key").WithBaseURL(srv.URL)

	// Upstream said 200 with a non-OK status; the client does not interpret it.
	result, err := client.Autocomplete(context.Background(), "spring")
	if err != nil {
		t.Fatalf("expected status passthrough, got error: %v", err)
	}
	if result.Status != "REQUEST_DENIED" {
		t.Fatalf("unexpected status: %s", result.Status)
	}
}

func TestClient_Autocomplete_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient("test-key").WithBaseURL(srv.URL)

	_, err := client.Autocomplete(context.Background(), "spring")
	if !errors.Is(err, domain.ErrPlacesUpstream) {
		t.Fatalf("expected ErrPlacesUpstream, got %v", err)
	}
}

func TestClient_Autocomplete_MissingKey(t *testing.T) {
	client := NewClient("")

	_, err := client.Autocomplete(context.Background(), "spring")
	if !errors.Is(err, domain.ErrPlacesUpstream) {
		t.Fatalf("expected ErrPlacesUpstream, got %v", err)
	}
}
