package services

import (
	"Plank/models"
)

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// List returns every registered user; admin only.
func (s *UserService) List(requester *models.User) ([]models.User, error) {
	if !requester.IsAdmin {
		return nil, ErrForbidden
	}
	return s.store.ListUsers()
}

// Delete removes an arbitrary user by id together with their posts and
// comments; admin only.
func (s *UserService) Delete(id int64, requester *models.User) error {
	if !requester.IsAdmin {
		return ErrForbidden
	}
	return s.store.DeleteUserCascade(id)
}

// DeleteSelf removes the requesting user's own account and everything
// they own.
func (s *UserService) DeleteSelf(requester *models.User) error {
	return s.store.DeleteUserCascade(requester.ID)
}
