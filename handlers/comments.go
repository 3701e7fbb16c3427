package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"Plank/middleware"
)

type commentOut struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (api *API) AddComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	postID, err := idParam(r)
	if err != nil {
		badRequest(w, "Invalid post ID")
		return
	}

	content := r.FormValue("content")
	if content == "" {
		badRequest(w, "Content is required")
		return
	}

	comment, err := api.comments.Add(postID, content, user)
	if err != nil {
		respondError(w, err, "Post not found")
		return
	}

	slog.Info("Comment added",
		"username", user.Username,
		"post_id", postID,
		"comment_id", comment.ID)
	writeJSON(w, http.StatusOK, idResponse{ID: comment.ID})
}

func (api *API) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r)
	if err != nil {
		badRequest(w, "Invalid post ID")
		return
	}

	comments, err := api.comments.List(postID)
	if err != nil {
		respondError(w, err, "Post not found")
		return
	}

	out := make([]commentOut, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentOut{
			ID:        c.ID,
			Content:   c.Content,
			Author:    c.Author,
			CreatedAt: c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *API) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	id, err := idParam(r)
	if err != nil {
		badRequest(w, "Invalid comment ID")
		return
	}

	if err := api.comments.Delete(id, user); err != nil {
		respondError(w, err, "Comment not found")
		return
	}

	slog.Info("Comment deleted", "username", user.Username, "comment_id", id)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
