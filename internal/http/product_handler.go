package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/history"
)

type ProductHandler struct {
	catalog catalog.Store
	tracker *history.Tracker
}

func NewProductHandler(catalogStore catalog.Store, tracker *history.Tracker) *ProductHandler {
	return &ProductHandler{
		catalog: catalogStore,
		tracker: tracker,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	products, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// Get returns a single product and records the view in the session's
// browsing history.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get product")
		return
	}

	if sessionID := getSessionID(r.Context()); sessionID != "" {
		if err := h.tracker.Add(r.Context(), sessionID, productID); err != nil {
			// A product view must never fail because history could not
			// be written
			log.Printf("failed to record browsing history: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list categories")
		return
	}

	respondJSON(w, http.StatusOK, categories)
}
