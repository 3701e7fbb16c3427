package services

import (
	"Plank/models"
)

type CommentService struct {
	store CommentStore
}

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{store: store}
}

// Add attaches a comment to an existing post; a missing post is
// database.ErrNotFound.
func (s *CommentService) Add(postID int64, content string, owner *models.User) (*models.Comment, error) {
	if _, err := s.store.PostByID(postID); err != nil {
		return nil, err
	}
	return s.store.CreateComment(postID, owner.ID, content)
}

// List returns a post's comments oldest first. A missing post is
// database.ErrNotFound, same as Add.
func (s *CommentService) List(postID int64) ([]models.Comment, error) {
	if _, err := s.store.PostByID(postID); err != nil {
		return nil, err
	}
	return s.store.CommentsByPost(postID)
}

// Delete removes a comment, owner-or-admin only.
func (s *CommentService) Delete(id int64, requester *models.User) error {
	comment, err := s.store.CommentByID(id)
	if err != nil {
		return err
	}
	if !canModify(requester, comment.OwnerID) {
		return ErrForbidden
	}
	return s.store.DeleteComment(id)
}
