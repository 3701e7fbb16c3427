package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"Plank/models"
	"Plank/services"
)

type contextKey string

const userKey contextKey = "user"

// Auth resolves the Basic credentials that accompany every protected
// request into an identity. There is no session state; each request
// carries and proves its own credentials.
type Auth struct {
	auth *services.AuthService
}

func NewAuth(auth *services.AuthService) *Auth {
	return &Auth{auth: auth}
}

// RequireUser authenticates the request and stores the resolved user in
// the context. Missing or wrong credentials end the request with 401.
func (a *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			slog.Warn("Authentication failed: no credentials", "path", r.URL.Path)
			unauthorized(w)
			return
		}

		user, err := a.auth.Authenticate(username, password)
		if err != nil {
			slog.Warn("Authentication failed", "username", username, "path", r.URL.Path)
			unauthorized(w)
			return
		}

		slog.Debug("Authentication succeeded", "username", username)
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFrom returns the identity RequireUser resolved, or nil outside a
// protected route.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="plank"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"Invalid credentials"}`))
}
