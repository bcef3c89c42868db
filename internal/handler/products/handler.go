package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogModel "github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
	"github.com/BssMsi/everglow-ai-storefront/pkg/utils"
)

// Handler serves catalog lookups for the simulator.
type Handler struct {
	products catalogModel.Store
}

// New creates the products handler.
func New(products catalogModel.Store) *Handler {
	return &Handler{products: products}
}

// RegisterRoutes registers the products endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.handleList)
}

// handleList returns the products matching the repeated ids parameter.
// Unknown ids are silently absent; no ids at all returns the full catalog.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["ids"]
	if len(ids) == 0 {
		utils.RespondJSON(w, http.StatusOK, h.products.List())
		return
	}

	matched := make([]catalogModel.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := h.products.FindByID(id); ok {
			matched = append(matched, p)
		}
	}

	utils.RespondJSON(w, http.StatusOK, matched)
}
