package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/priyanshi012/studio/internal/cart"
	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/checkout"
	"github.com/priyanshi012/studio/internal/domain"
	"github.com/priyanshi012/studio/internal/events"
	"github.com/priyanshi012/studio/internal/orders"
)

type CheckoutHandler struct {
	service   *checkout.Service
	cart      *cart.Service
	catalog   catalog.Store
	orders    *orders.Store
	publisher events.Publisher
}

func NewCheckoutHandler(
	service *checkout.Service,
	cartService *cart.Service,
	catalogStore catalog.Store,
	orderStore *orders.Store,
	publisher events.Publisher,
) *CheckoutHandler {
	return &CheckoutHandler{
		service:   service,
		cart:      cartService,
		catalog:   catalogStore,
		orders:    orderStore,
		publisher: publisher,
	}
}

type CheckoutRequestDTO struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

type CheckoutResponseDTO struct {
	Success bool         `json:"success"`
	Order   domain.Order `json:"order"`
}

// PlaceOrder runs the whole flow: snapshot the cart, place the order,
// persist it to the session's order list, clear the cart, publish the
// event. Order persistence and cart clearing stay here, on the caller
// side of the checkout service, because there is no durable backend to
// own them.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := getSessionID(ctx)

	user, ok := getUser(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "login required")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items, err := h.cart.Items(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	orderItems, err := h.snapshotItems(r, items)
	if err != nil {
		respondError(w, http.StatusConflict, "stale_cart", "a cart item no longer exists in the catalog")
		return
	}

	order, err := h.service.PlaceOrder(ctx, checkout.Input{
		User:            user,
		Items:           orderItems,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.respondCheckoutError(w, err)
		return
	}

	if err := h.orders.Append(ctx, sessionID, order); err != nil {
		// The charge went through; losing the local record is worse
		// than reporting it
		respondError(w, http.StatusInternalServerError, "internal_error", "order placed but could not be saved")
		return
	}

	if err := h.cart.Clear(ctx, sessionID); err != nil {
		log.Printf("failed to clear cart after checkout for session %s: %v", sessionID, err)
	}

	if err := h.publisher.PublishOrderPlaced(ctx, events.OrderPlacedEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Items:    order.Items,
		Total:    order.Total,
		PlacedAt: order.CreatedAt,
	}); err != nil {
		log.Printf("failed to publish order event for %s: %v", order.ID, err)
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{Success: true, Order: order})
}

// snapshotItems resolves cart items into order items, freezing name and
// price at purchase time.
func (h *CheckoutHandler) snapshotItems(r *http.Request, items []domain.CartItem) ([]domain.OrderItem, error) {
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := h.catalog.Get(r.Context(), item.ProductID)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}
	return orderItems, nil
}

func (h *CheckoutHandler) respondCheckoutError(w http.ResponseWriter, err error) {
	var decline *checkout.DeclineError
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty, nothing to checkout")
	case errors.Is(err, checkout.ErrInvalidAddress):
		respondError(w, http.StatusBadRequest, "invalid_address", "shipping address is incomplete")
	case errors.As(err, &decline):
		respondError(w, http.StatusPaymentRequired, string(decline.Reason), decline.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
	}
}
