package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogModel "github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
)

func TestResolveEmptyIDsSkipsBackend(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	resolver := NewResolver(srv.URL, 5*time.Second)
	products, err := resolver.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty result, got %d", len(products))
	}
	if called {
		t.Fatal("backend must not be called for empty id list")
	}
}

func TestResolveSendsRepeatedIDParams(t *testing.T) {
	var gotIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotIDs = r.URL.Query()["ids"]
		json.NewEncoder(w).Encode([]catalogModel.Product{
			{ID: "p2", Name: "Pure Hydration Moisturizer"},
			{ID: "p1", Name: "Radiant Glow Serum"},
		})
	}))
	defer srv.Close()

	resolver := NewResolver(srv.URL, 5*time.Second)
	products, err := resolver.Resolve(context.Background(), []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}

	if len(gotIDs) != 2 || gotIDs[0] != "p1" || gotIDs[1] != "p2" {
		t.Fatalf("unexpected ids param: %v", gotIDs)
	}
	// Ordering is the backend's choice; the resolver passes it through.
	if len(products) != 2 || products[0].ID != "p2" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestResolveNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	resolver := NewResolver(srv.URL, 5*time.Second)
	if _, err := resolver.Resolve(context.Background(), []string{"p1"}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
