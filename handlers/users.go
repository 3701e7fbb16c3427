package handlers

import (
	"log/slog"
	"net/http"

	"Plank/middleware"
)

func (api *API) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	if err := api.users.DeleteSelf(user); err != nil {
		respondError(w, err, "User not found")
		return
	}

	slog.Info("Account deleted", "username", user.Username, "user_id", user.ID)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
