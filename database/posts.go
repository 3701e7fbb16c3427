package database

import (
	"database/sql"
	"fmt"

	"Plank/models"
)

func (d *Database) CreatePost(title, content, board string, imagePath *string, ownerID int64) (*models.Post, error) {
	var post models.Post
	err := d.db.QueryRow(
		"INSERT INTO posts (title, content, board, image_path, owner_id) VALUES ($1, $2, $3, $4, $5) RETURNING id, views, created_at",
		title, content, board, imagePath, ownerID,
	).Scan(&post.ID, &post.Views, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post.Title = title
	post.Content = content
	post.Board = board
	post.ImagePath = imagePath
	post.OwnerID = ownerID
	return &post, nil
}

// PostsByBoard returns the full board, newest first.
func (d *Database) PostsByBoard(board string) ([]models.Post, error) {
	rows, err := d.db.Query(
		`SELECT p.id, p.title, p.content, p.image_path, p.board, p.owner_id, u.username, p.views, p.created_at
		 FROM posts p
		 JOIN users u ON p.owner_id = u.id
		 WHERE p.board = $1
		 ORDER BY p.created_at DESC, p.id DESC`,
		board,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.ImagePath,
			&post.Board, &post.OwnerID, &post.Author, &post.Views, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (d *Database) PostByID(id int64) (*models.Post, error) {
	var post models.Post
	err := d.db.QueryRow(
		`SELECT p.id, p.title, p.content, p.image_path, p.board, p.owner_id, u.username, p.views, p.created_at
		 FROM posts p
		 JOIN users u ON p.owner_id = u.id
		 WHERE p.id = $1`,
		id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.ImagePath,
		&post.Board, &post.OwnerID, &post.Author, &post.Views, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &post, nil
}

// IncrementPostViews bumps the view counter in a single UPDATE so
// concurrent reads never lose more than the race the counter tolerates.
func (d *Database) IncrementPostViews(id int64) error {
	result, err := d.db.Exec("UPDATE posts SET views = views + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePostCascade removes a post and its comments, comments first, in
// one transaction.
func (d *Database) DeletePostCascade(id int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM comments WHERE post_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	result, err := tx.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
