package handlers

import (
	"log/slog"
	"net/http"

	"Plank/middleware"
)

type userOut struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func (api *API) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	users, err := api.users.List(user)
	if err != nil {
		respondError(w, err, "User not found")
		return
	}

	slog.Info("Admin requested user list", "username", user.Username)

	out := make([]userOut, 0, len(users))
	for _, u := range users {
		out = append(out, userOut{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin})
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *API) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	id, err := idParam(r)
	if err != nil {
		badRequest(w, "Invalid user ID")
		return
	}

	if err := api.users.Delete(id, user); err != nil {
		respondError(w, err, "User not found")
		return
	}

	slog.Info("Admin deleted user", "username", user.Username, "deleted_user_id", id)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
