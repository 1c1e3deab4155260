package http

import (
	"net/http"

	"github.com/priyanshi012/studio/internal/domain"
	"github.com/priyanshi012/studio/internal/history"
	"github.com/priyanshi012/studio/internal/recs"
)

type RecsHandler struct {
	service *recs.Service
	tracker *history.Tracker
}

func NewRecsHandler(service *recs.Service, tracker *history.Tracker) *RecsHandler {
	return &RecsHandler{
		service: service,
		tracker: tracker,
	}
}

type RecommendationsResponseDTO struct {
	Products []domain.Product `json:"products"`
	Degraded bool             `json:"degraded"`
	Stale    bool             `json:"stale"`
}

type HistoryResponseDTO struct {
	ProductIDs []string `json:"productIds"`
}

// Recommendations returns up to recs.DisplayCount ranked products for
// the session's browsing history. A degraded result is still a 200 with
// an empty list; the oracle's failure is the storefront's problem, not
// the shopper's.
func (h *RecsHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())

	browsingHistory, err := h.tracker.History(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load browsing history")
		return
	}

	result := h.service.Recommend(r.Context(), sessionID, browsingHistory)

	products := result.Products
	if len(products) > recs.DisplayCount {
		products = products[:recs.DisplayCount]
	}

	respondJSON(w, http.StatusOK, RecommendationsResponseDTO{
		Products: products,
		Degraded: result.Degraded,
		Stale:    result.Stale,
	})
}

func (h *RecsHandler) History(w http.ResponseWriter, r *http.Request) {
	browsingHistory, err := h.tracker.History(r.Context(), getSessionID(r.Context()))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load browsing history")
		return
	}

	respondJSON(w, http.StatusOK, HistoryResponseDTO{ProductIDs: browsingHistory})
}
