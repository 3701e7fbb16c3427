package database

import (
	"database/sql"
	"fmt"

	"Plank/models"
)

func (d *Database) CreateComment(postID, ownerID int64, content string) (*models.Comment, error) {
	var comment models.Comment
	err := d.db.QueryRow(
		"INSERT INTO comments (content, post_id, owner_id) VALUES ($1, $2, $3) RETURNING id, created_at",
		content, postID, ownerID,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.Content = content
	comment.PostID = postID
	comment.OwnerID = ownerID
	return &comment, nil
}

func (d *Database) CommentByID(id int64) (*models.Comment, error) {
	var comment models.Comment
	err := d.db.QueryRow(
		`SELECT c.id, c.content, c.post_id, c.owner_id, u.username, c.created_at
		 FROM comments c
		 JOIN users u ON c.owner_id = u.id
		 WHERE c.id = $1`,
		id,
	).Scan(&comment.ID, &comment.Content, &comment.PostID, &comment.OwnerID,
		&comment.Author, &comment.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &comment, nil
}

// CommentsByPost returns a post's comments oldest first.
func (d *Database) CommentsByPost(postID int64) ([]models.Comment, error) {
	rows, err := d.db.Query(
		`SELECT c.id, c.content, c.post_id, c.owner_id, u.username, c.created_at
		 FROM comments c
		 JOIN users u ON c.owner_id = u.id
		 WHERE c.post_id = $1
		 ORDER BY c.created_at ASC, c.id ASC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.Content, &comment.PostID,
			&comment.OwnerID, &comment.Author, &comment.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (d *Database) DeleteComment(id int64) error {
	result, err := d.db.Exec("DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
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
