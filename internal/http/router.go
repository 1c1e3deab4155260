package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/priyanshi012/studio/internal/auth"
	"github.com/priyanshi012/studio/internal/cart"
	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/checkout"
	"github.com/priyanshi012/studio/internal/events"
	"github.com/priyanshi012/studio/internal/history"
	"github.com/priyanshi012/studio/internal/orders"
	"github.com/priyanshi012/studio/internal/recs"
	"github.com/priyanshi012/studio/internal/session"
)

// Deps bundles everything the router serves. Each service is built once
// at startup and passed in by reference; nothing is reached through
// package-level state.
type Deps struct {
	Catalog        catalog.Store
	Sessions       session.Store
	Cart           *cart.Service
	Auth           *auth.Service
	History        *history.Tracker
	Recs           *recs.Service
	Checkout       *checkout.Service
	Orders         *orders.Store
	Events         events.Publisher
	RequestTimeout time.Duration
}

func NewRouter(deps Deps) http.Handler {
	productHandler := NewProductHandler(deps.Catalog, deps.History)
	cartHandler := NewCartHandler(deps.Cart, deps.Catalog)
	authHandler := NewAuthHandler(deps.Auth)
	recsHandler := NewRecsHandler(deps.Recs, deps.History)
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.Cart, deps.Catalog, deps.Orders, deps.Events)
	ordersHandler := NewOrdersHandler(deps.Orders)

	requireUser := RequireUser(deps.Auth)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Get("/products/{product_id}", productHandler.Get)
		r.Get("/categories", productHandler.Categories)
		r.Get("/recommendations", recsHandler.Recommendations)
		r.Get("/history", recsHandler.History)

		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/logout", authHandler.Logout)

		// Routes behind the login guard
		r.Group(func(r chi.Router) {
			r.Use(requireUser)

			r.Get("/profile", authHandler.Profile)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
				r.Delete("/", cartHandler.ClearCart)
			})

			r.Post("/checkout", checkoutHandler.PlaceOrder)
			r.Get("/orders", ordersHandler.List)
		})
	})

	return r
}
