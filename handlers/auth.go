package handlers

import (
	"log/slog"
	"net/http"
)

type signupResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

type loginUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	User    *loginUser `json:"user"`
}

func (api *API) Signup(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	slog.Info("Signup attempt", "username", username)

	if username == "" || password == "" {
		badRequest(w, "Username and password are required")
		return
	}

	user, err := api.auth.Register(username, password)
	if err != nil {
		slog.Warn("Signup failed", "username", username, "error", err)
		respondError(w, err, "Not found")
		return
	}

	slog.Info("New user registered", "username", user.Username, "user_id", user.ID)
	writeJSON(w, http.StatusOK, signupResponse{Success: true, Username: user.Username})
}

// Login verifies the supplied Basic credentials and reports the outcome
// in the body. No token or cookie is issued; every later call carries
// credentials of its own.
func (api *API) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		badRequest(w, "Basic credentials are required")
		return
	}

	user, err := api.auth.Authenticate(username, password)
	if err != nil {
		slog.Warn("Login failed", "username", username)
		writeJSON(w, http.StatusOK, loginResponse{Success: false, User: nil})
		return
	}

	slog.Info("Login succeeded", "username", username)
	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User:    &loginUser{Username: user.Username, IsAdmin: user.IsAdmin},
	})
}
