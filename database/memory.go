package database

import (
	"sort"
	"sync"
	"time"

	"Plank/models"
)

// MemoryStore implements the same store surface as Database with plain
// maps. It backs the test suite and the DATABASE_URL=memory development
// mode, so every semantic here must match the SQL implementation,
// cascade ordering included.
type MemoryStore struct {
	mu sync.Mutex

	users    map[int64]*models.User
	posts    map[int64]*models.Post
	comments map[int64]*models.Comment

	nextUserID    int64
	nextPostID    int64
	nextCommentID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]*models.User),
		posts:    make(map[int64]*models.Post),
		comments: make(map[int64]*models.Comment),
	}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) CreateUser(username, passwordHash string, isAdmin bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	m.nextUserID++
	user := &models.User{
		ID:           m.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	m.users[user.ID] = user

	copied := *user
	return &copied, nil
}

func (m *MemoryStore) UserByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UserByID(id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *MemoryStore) ListUsers() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *MemoryStore) DeleteUserCascade(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}

	// Same order as the SQL store: the user's comments anywhere, comments
	// on the user's posts, the user's posts, the user.
	for cid, c := range m.comments {
		if c.OwnerID == id {
			delete(m.comments, cid)
		}
	}
	for pid, p := range m.posts {
		if p.OwnerID != id {
			continue
		}
		for cid, c := range m.comments {
			if c.PostID == pid {
				delete(m.comments, cid)
			}
		}
		delete(m.posts, pid)
	}
	delete(m.users, id)
	return nil
}

func (m *MemoryStore) CreatePost(title, content, board string, imagePath *string, ownerID int64) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextPostID++
	post := &models.Post{
		ID:        m.nextPostID,
		Title:     title,
		Content:   content,
		ImagePath: imagePath,
		Board:     board,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	m.posts[post.ID] = post

	copied := *post
	return &copied, nil
}

func (m *MemoryStore) PostsByBoard(board string) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var posts []models.Post
	for _, p := range m.posts {
		if p.Board != board {
			continue
		}
		copied := *p
		copied.Author = m.username(p.OwnerID)
		posts = append(posts, copied)
	}
	// Newest first, id as tiebreaker like the SQL ORDER BY.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *MemoryStore) PostByID(id int64) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	copied.Author = m.username(p.OwnerID)
	return &copied, nil
}

func (m *MemoryStore) IncrementPostViews(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return ErrNotFound
	}
	p.Views++
	return nil
}

func (m *MemoryStore) DeletePostCascade(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	delete(m.posts, id)
	return nil
}

func (m *MemoryStore) CreateComment(postID, ownerID int64, content string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextCommentID++
	comment := &models.Comment{
		ID:        m.nextCommentID,
		Content:   content,
		PostID:    postID,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	m.comments[comment.ID] = comment

	copied := *comment
	return &copied, nil
}

func (m *MemoryStore) CommentByID(id int64) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	copied.Author = m.username(c.OwnerID)
	return &copied, nil
}

func (m *MemoryStore) CommentsByPost(postID int64) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var comments []models.Comment
	for _, c := range m.comments {
		if c.PostID != postID {
			continue
		}
		copied := *c
		copied.Author = m.username(c.OwnerID)
		comments = append(comments, copied)
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MemoryStore) DeleteComment(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[id]; !ok {
		return ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

// username resolves an owner id for read results; callers hold m.mu.
func (m *MemoryStore) username(id int64) string {
	if u, ok := m.users[id]; ok {
		return u.Username
	}
	return ""
}
