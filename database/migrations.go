package database

import (
	"fmt"
)

// RunMigrations creates the schema. Foreign keys deliberately carry no
// ON DELETE CASCADE: cascading deletes are explicit, ordered routines in
// this package so the no-dangling-owner invariant stays visible and
// testable.
func (d *Database) RunMigrations() error {
	usersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := d.db.Exec(usersSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	postsSQL := `
	CREATE TABLE IF NOT EXISTS posts (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		image_path TEXT,
		board VARCHAR(255) NOT NULL DEFAULT 'free',
		owner_id INTEGER NOT NULL REFERENCES users(id),
		views INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_posts_board ON posts(board);
	`
	if _, err := d.db.Exec(postsSQL); err != nil {
		return fmt.Errorf("failed to run posts migration: %w", err)
	}

	commentsSQL := `
	CREATE TABLE IF NOT EXISTS comments (
		id SERIAL PRIMARY KEY,
		content TEXT NOT NULL,
		post_id INTEGER NOT NULL REFERENCES posts(id),
		owner_id INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);
	`
	if _, err := d.db.Exec(commentsSQL); err != nil {
		return fmt.Errorf("failed to run comments migration: %w", err)
	}

	return nil
}
