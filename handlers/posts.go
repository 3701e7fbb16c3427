package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"Plank/middleware"
)

type idResponse struct {
	ID int64 `json:"id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type postSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Views     int64     `json:"views"`
}

type postDetail struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (api *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	title := r.FormValue("title")
	content := r.FormValue("content")
	board := r.FormValue("board")

	if title == "" || content == "" {
		badRequest(w, "Title and content are required")
		return
	}

	var fileName string
	var fileReader io.Reader
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		fileName = header.Filename
		fileReader = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// attachment is optional
	default:
		badRequest(w, "Invalid file upload")
		return
	}

	post, err := api.posts.Create(title, content, board, user, fileName, fileReader)
	if err != nil {
		respondError(w, err, "Post not found")
		return
	}

	slog.Info("Post created",
		"username", user.Username,
		"board", post.Board,
		"title", post.Title,
		"post_id", post.ID)
	writeJSON(w, http.StatusOK, idResponse{ID: post.ID})
}

func (api *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	board := r.URL.Query().Get("board")
	if board == "" {
		badRequest(w, "Board is required")
		return
	}

	posts, err := api.posts.Board(board)
	if err != nil {
		respondError(w, err, "Post not found")
		return
	}

	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, postSummary{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.Author,
			CreatedAt: p.CreatedAt,
			Views:     p.Views,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *API) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "Invalid post ID")
		return
	}

	post, err := api.posts.Get(id)
	if err != nil {
		respondError(w, err, "Post not found")
		return
	}

	writeJSON(w, http.StatusOK, postDetail{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.ImagePath,
		Author:    post.Author,
		CreatedAt: post.CreatedAt,
	})
}

func (api *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	id, err := idParam(r)
	if err != nil {
		badRequest(w, "Invalid post ID")
		return
	}

	if err := api.posts.Delete(id, user); err != nil {
		respondError(w, err, "Post not found")
		return
	}

	slog.Info("Post deleted", "username", user.Username, "post_id", id)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
