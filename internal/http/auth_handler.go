package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/priyanshi012/studio/internal/auth"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "invalid_email", "a valid email is required")
		return
	}

	user, err := h.service.Login(r.Context(), getSessionID(r.Context()), req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "login failed")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "invalid_email", "a valid email is required")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name is required")
		return
	}

	user, err := h.service.Signup(r.Context(), getSessionID(r.Context()), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "signup failed")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), getSessionID(r.Context())); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "logout failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"redirect": "/login"})
}

// Profile returns the authenticated user; RequireUser has already put
// it on the context.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := getUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "login required")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
