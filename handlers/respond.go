package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Plank/database"
	"Plank/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

// respondError maps the failure taxonomy onto statuses. notFoundDetail
// names the resource for 404s; everything unrecognized is a logged 500.
func respondError(w http.ResponseWriter, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, database.ErrDuplicateUsername):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Username already registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", `Basic realm="plank"`)
		writeJSON(w, http.StatusUnauthorized, errorBody{Detail: "Invalid credentials"})
	case errors.Is(err, services.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Detail: "Not authorized"})
	case errors.Is(err, database.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Detail: notFoundDetail})
	default:
		slog.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "Internal server error"})
	}
}

func badRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Detail: detail})
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
