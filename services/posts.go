package services

import (
	"fmt"
	"io"

	"Plank/models"
)

const defaultBoard = "free"

type PostService struct {
	store   PostStore
	uploads *Uploads
}

func NewPostService(store PostStore, uploads *Uploads) *PostService {
	return &PostService{store: store, uploads: uploads}
}

// Create stores the attachment first (when there is one) and then the
// post. Field contents pass through as-is; an empty board lands on the
// default.
func (s *PostService) Create(title, content, board string, owner *models.User, fileName string, file io.Reader) (*models.Post, error) {
	if board == "" {
		board = defaultBoard
	}

	var imagePath *string
	if file != nil {
		path, err := s.uploads.Store(fileName, file)
		if err != nil {
			return nil, fmt.Errorf("failed to store upload: %w", err)
		}
		imagePath = &path
	}

	return s.store.CreatePost(title, content, board, imagePath, owner.ID)
}

// Board returns every post on the board, newest first.
func (s *PostService) Board(board string) ([]models.Post, error) {
	return s.store.PostsByBoard(board)
}

// Get returns a post and durably bumps its view counter. The returned
// value carries the pre-increment count; only the side effect persists.
func (s *PostService) Get(id int64) (*models.Post, error) {
	post, err := s.store.PostByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.IncrementPostViews(id); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and its comments. Only the owner or an admin may
// delete; everyone else gets ErrForbidden.
func (s *PostService) Delete(id int64, requester *models.User) error {
	post, err := s.store.PostByID(id)
	if err != nil {
		return err
	}
	if !canModify(requester, post.OwnerID) {
		return ErrForbidden
	}
	return s.store.DeletePostCascade(id)
}

// canModify is the owner-or-admin predicate shared by every delete path.
func canModify(requester *models.User, ownerID int64) bool {
	return requester.IsAdmin || requester.ID == ownerID
}
