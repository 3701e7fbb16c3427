package services

import (
	"Plank/database"
	"Plank/models"
)

// The store interfaces are satisfied by both database.Database and
// database.MemoryStore.

type UserStore interface {
	CreateUser(username, passwordHash string, isAdmin bool) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UserByID(id int64) (*models.User, error)
	ListUsers() ([]models.User, error)
	DeleteUserCascade(id int64) error
}

type PostStore interface {
	CreatePost(title, content, board string, imagePath *string, ownerID int64) (*models.Post, error)
	PostsByBoard(board string) ([]models.Post, error)
	PostByID(id int64) (*models.Post, error)
	IncrementPostViews(id int64) error
	DeletePostCascade(id int64) error
}

type CommentStore interface {
	CreateComment(postID, ownerID int64, content string) (*models.Comment, error)
	CommentByID(id int64) (*models.Comment, error)
	CommentsByPost(postID int64) ([]models.Comment, error)
	DeleteComment(id int64) error
	PostByID(id int64) (*models.Post, error)
}

// Store is the full surface, used for wiring in main.
type Store interface {
	UserStore
	PostStore
	CommentStore
}

var (
	_ Store = (*database.Database)(nil)
	_ Store = (*database.MemoryStore)(nil)
)
