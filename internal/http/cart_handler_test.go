package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshi012/studio/internal/cart"
	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/session"
)

type silentNotifier struct{}

func (silentNotifier) Notify(string, string, string) {}

func newCartHandlerForTest() (*CartHandler, *cart.Service) {
	store := session.NewMemoryStore()
	service := cart.NewService(store, silentNotifier{})
	return NewCartHandler(service, catalog.NewMemoryStore()), service
}

func withSession(r *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
	return r.WithContext(ctx)
}

func TestAddItem_Success(t *testing.T) {
	handler, _ := newCartHandlerForTest()

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "prod_001", Quantity: 2})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "s1")

	handler.AddItem(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "prod_001", resp.Items[0].ProductID)
	assert.Equal(t, 2, resp.Items[0].Quantity)
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	handler, _ := newCartHandlerForTest()

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "prod_001"})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "s1")

	handler.AddItem(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestAddItem_UnknownProductIs404(t *testing.T) {
	handler, _ := newCartHandlerForTest()

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "prod_999", Quantity: 1})
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddItem_RejectsBadQuantity(t *testing.T) {
	handler, _ := newCartHandlerForTest()

	for _, quantity := range []int{-1, 100} {
		body, _ := json.Marshal(AddItemRequestDTO{ProductID: "prod_001", Quantity: quantity})
		recorder := httptest.NewRecorder()
		request := withSession(httptest.NewRequest("POST", "/", bytes.NewReader(body)), "s1")

		handler.AddItem(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	}
}

func TestAddItem_InvalidJSONBody(t *testing.T) {
	handler, _ := newCartHandlerForTest()

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{`))), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCart_EmptyCart(t *testing.T) {
	handler, _ := newCartHandlerForTest()

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("GET", "/", nil), "s1")

	handler.GetCart(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Empty(t, resp.Items)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	handler, service := newCartHandlerForTest()
	ctx := context.Background()

	_, err := service.Add(ctx, "s1", "prod_001", 3)
	require.NoError(t, err)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 0})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/", bytes.NewReader(body))

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("product_id", "prod_001")
	request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
	request = withSession(request, "s1")

	handler.UpdateQuantity(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Empty(t, resp.Items)
}
