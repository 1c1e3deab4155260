package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/priyanshi012/studio/internal/auth"
	"github.com/priyanshi012/studio/internal/domain"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	userKey      contextKey = "user"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware resolves the storefront session. A client without a
// session ID gets a fresh one; the ID is always echoed back so the
// client can keep it.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		w.Header().Set(sessionHeader, sessionID)
		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser guards authenticated routes. An anonymous session is not
// an error: it is redirected to the login entry point with the original
// path as the return target.
func RequireUser(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := getSessionID(r.Context())

			user, ok, err := authService.CurrentUser(r.Context(), sessionID)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "internal_error", "failed to load session")
				return
			}
			if !ok {
				respondJSON(w, http.StatusUnauthorized, struct {
					ErrorResponse
					Redirect string `json:"redirect"`
				}{
					ErrorResponse: ErrorResponse{Error: "login required", Code: "unauthorized"},
					Redirect:      "/login?from=" + r.URL.Path,
				})
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

func getUser(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}
