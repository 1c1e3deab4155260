package http

import (
	"net/http"

	"github.com/priyanshi012/studio/internal/orders"
)

type OrdersHandler struct {
	store *orders.Store
}

func NewOrdersHandler(store *orders.Store) *OrdersHandler {
	return &OrdersHandler{store: store}
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := getUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "login required")
		return
	}

	list, err := h.store.ListByUser(r.Context(), getSessionID(r.Context()), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, list)
}
