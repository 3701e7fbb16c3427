package models

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImagePath *string   `json:"image"`
	Board     string    `json:"board"`
	OwnerID   int64     `json:"-"`
	Author    string    `json:"author"` // username of the owner, filled by queries
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}
