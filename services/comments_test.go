package services

import (
	"errors"
	"testing"

	"Plank/database"
)

func TestAddCommentToMissingPost(t *testing.T) {
	store := database.NewMemoryStore()
	comments := NewCommentService(store)
	alice := newTestUser(t, store, "alice", false)

	if _, err := comments.Add(42, "hello?", alice); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("Add to missing post: got %v, want ErrNotFound", err)
	}
}

func TestListCommentsMissingPost(t *testing.T) {
	store := database.NewMemoryStore()
	comments := NewCommentService(store)

	// Same policy as Add: a missing post is NotFound, not an empty list.
	if _, err := comments.List(42); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("List on missing post: got %v, want ErrNotFound", err)
	}
}

func TestListCommentsOldestFirst(t *testing.T) {
	store := database.NewMemoryStore()
	posts := NewPostService(store, NewUploads(t.TempDir()))
	comments := NewCommentService(store)
	alice := newTestUser(t, store, "alice", false)
	bob := newTestUser(t, store, "bob", false)

	post, err := posts.Create("hi", "hello", "free", alice, "", nil)
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}

	first, err := comments.Add(post.ID, "first", bob)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := comments.Add(post.ID, "second", alice)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := comments.List(post.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("order = [%d %d], want [%d %d]", list[0].ID, list[1].ID, first.ID, second.ID)
	}
	if list[0].Author != "bob" || list[1].Author != "alice" {
		t.Fatalf("authors = [%q %q], want [bob alice]", list[0].Author, list[1].Author)
	}
}

func TestDeleteCommentAuthorization(t *testing.T) {
	store := database.NewMemoryStore()
	posts := NewPostService(store, NewUploads(t.TempDir()))
	comments := NewCommentService(store)
	alice := newTestUser(t, store, "alice", false)
	bob := newTestUser(t, store, "bob", false)
	admin := newTestUser(t, store, "root", true)

	post, err := posts.Create("hi", "hello", "free", alice, "", nil)
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}
	comment, err := comments.Add(post.ID, "Nice!", bob)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := comments.Delete(comment.ID, alice); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner delete: got %v, want ErrForbidden", err)
	}
	if err := comments.Delete(comment.ID, bob); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := comments.Delete(comment.ID, bob); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("double delete: got %v, want ErrNotFound", err)
	}

	again, err := comments.Add(post.ID, "again", bob)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := comments.Delete(again.ID, admin); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}
