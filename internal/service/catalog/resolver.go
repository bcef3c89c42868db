package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
)

// Resolver fetches full product records for the opaque identifiers the
// dialogue agent attaches to a reply.
type Resolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewResolver builds a resolver against the catalog endpoint base URL.
func NewResolver(baseURL string, timeout time.Duration) *Resolver {
	return &Resolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve fetches all requested products in a single request. An empty id
// list is a no-op and never reaches the backend. Response ordering is
// whatever the backend returns; ids missing from the catalog are simply
// absent, not an error.
func (r *Resolver) Resolve(ctx context.Context, ids []string) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	for _, id := range ids {
		params.Add("ids", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/products?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("products request failed: status %d", resp.StatusCode)
	}

	var products []catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}

	return products, nil
}
