package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BssMsi/everglow-ai-storefront/internal/handler/chat"
	"github.com/BssMsi/everglow-ai-storefront/internal/handler/products"
	"github.com/BssMsi/everglow-ai-storefront/internal/handler/voiceagent"
	catalogModel "github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
)

// NewRouter wires the simulator's HTTP and websocket routes.
func NewRouter(catalog catalogModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	chatHandler := chat.New(catalog)
	productsHandler := products.New(catalog)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		productsHandler.RegisterRoutes(api)
	})

	voiceagent.New().RegisterRoutes(r)

	return r
}
