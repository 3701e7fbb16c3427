package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"Plank/models"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

func (d *Database) CreateUser(username, passwordHash string, isAdmin bool) (*models.User, error) {
	var user models.User
	err := d.db.QueryRow(
		"INSERT INTO users (username, password_hash, is_admin) VALUES ($1, $2, $3) RETURNING id, username, password_hash, is_admin, created_at",
		username, passwordHash, isAdmin,
	).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (d *Database) UserByUsername(username string) (*models.User, error) {
	return scanUser(d.db.QueryRow(
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = $1",
		username,
	))
}

func (d *Database) UserByID(id int64) (*models.User, error) {
	return scanUser(d.db.QueryRow(
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE id = $1",
		id,
	))
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (d *Database) ListUsers() ([]models.User, error) {
	rows, err := d.db.Query("SELECT id, username, password_hash, is_admin, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteUserCascade removes a user together with everything that would
// otherwise dangle: comments they authored anywhere, comments on their
// posts, then their posts, then the user row itself. All in one
// transaction, dependents first.
func (d *Database) DeleteUserCascade(id int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM comments WHERE owner_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete user comments: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE owner_id = $1)", id); err != nil {
		return fmt.Errorf("failed to delete comments on user posts: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM posts WHERE owner_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete user posts: %w", err)
	}

	result, err := tx.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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
