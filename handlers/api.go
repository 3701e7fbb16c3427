package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Plank/middleware"
	"Plank/services"
)

// API is the HTTP surface. It only translates: field extraction, identity
// resolution, dispatch, JSON serialization, error-to-status mapping.
type API struct {
	auth     *services.AuthService
	users    *services.UserService
	posts    *services.PostService
	comments *services.CommentService
	authmw   *middleware.Auth
}

func NewAPI(store services.Store, uploads *services.Uploads) *API {
	auth := services.NewAuthService(store)
	return &API{
		auth:     auth,
		users:    services.NewUserService(store),
		posts:    services.NewPostService(store, uploads),
		comments: services.NewCommentService(store),
		authmw:   middleware.NewAuth(auth),
	}
}

func (api *API) Routes() http.Handler {
	r := chi.NewRouter()

	// Anonymous
	r.Post("/signup", api.Signup)
	r.Post("/login", api.Login)
	r.Get("/posts", api.ListPosts)
	r.Get("/posts/{id}", api.GetPost)
	r.Get("/posts/{id}/comments", api.ListComments)

	// Credentials required; ownership/admin rules apply after identity.
	r.Group(func(r chi.Router) {
		r.Use(api.authmw.RequireUser)
		r.Delete("/users/me", api.DeleteMe)
		r.Get("/admin/users", api.AdminListUsers)
		r.Delete("/admin/users/{id}", api.AdminDeleteUser)
		r.Post("/posts", api.CreatePost)
		r.Delete("/posts/{id}", api.DeletePost)
		r.Post("/posts/{id}/comments", api.AddComment)
		r.Delete("/comments/{id}", api.DeleteComment)
	})

	return r
}
