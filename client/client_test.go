package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace-api/api"
	"marketplace-api/services"
	"marketplace-api/storage"
	"marketplace-api/utils"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	catalog, err := storage.NewSeedCatalog()
	if err != nil {
		t.Fatalf("NewSeedCatalog: %v", err)
	}
	logger := utils.NewLogger()
	logger.SetOutput(io.Discard)

	srv, err := api.NewServer(services.NewMarketplaceService(catalog, logger), api.ServerOptions{Logger: logger})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestListingParams(t *testing.T) {
	tests := []struct {
		query, category string
		want            string
	}{
		{"", "", ""},
		{"  ", "All", ""},
		{" drone ", "All", "q=drone"},
		{"", "Electronics", "category=Electronics"},
		{"desk", "Furniture", "category=Furniture&q=desk"},
		{"", "all", "category=all"},
	}

	for _, tt := range tests {
		if got := listingParams(tt.query, tt.category).Encode(); got != tt.want {
			t.Errorf("listingParams(%q, %q) = %q; want %q", tt.query, tt.category, got, tt.want)
		}
	}
}

func TestClientAgainstAPI(t *testing.T) {
	ts := newAPIServer(t)
	c := NewClient(ts.Client()).WithBaseURL(ts.URL + "/")
	ctx := testContext(t)

	status, err := c.Health(ctx)
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("Health: got %q", status.Status)
	}

	listings, err := c.FetchListings(ctx, "", "All")
	if err != nil {
		t.Fatalf("FetchListings: %v", err)
	}
	if len(listings) != 3 {
		t.Errorf("FetchListings all: got %d, want 3", len(listings))
	}

	listings, err = c.FetchListings(ctx, " Verified ", "Electronics")
	if err != nil {
		t.Fatalf("FetchListings: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "lst-1" {
		t.Errorf("FetchListings verified: got %+v", listings)
	}

	listings, err = c.FetchListings(ctx, "pickup", "")
	if err != nil {
		t.Fatalf("FetchListings: %v", err)
	}
	if listings == nil || len(listings) != 0 {
		t.Errorf("FetchListings pickup: got %#v, want empty slice", listings)
	}

	requests, err := c.FetchRequests(ctx)
	if err != nil {
		t.Fatalf("FetchRequests: %v", err)
	}
	if len(requests) != 2 || requests[0].ID != "req-1" || requests[1].ID != "req-2" {
		t.Errorf("FetchRequests: got %+v", requests)
	}
}

func TestClientUnexpectedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.Client()).WithBaseURL(ts.URL).FetchRequests(testContext(t))
	if err == nil || !strings.Contains(err.Error(), "unexpected status: 500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestClientRejectsUnknownUrgency(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"req-9","title":"x","budget":1,"preferredCategories":[],"urgency":"Eventually"}]`)
	}))
	defer ts.Close()

	_, err := NewClient(ts.Client()).WithBaseURL(ts.URL).FetchRequests(testContext(t))
	if err == nil || !strings.Contains(err.Error(), "decoding response") {
		t.Fatalf("expected decode error, got %v", err)
	}
}
