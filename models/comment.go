package models

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"-"`
	OwnerID   int64     `json:"-"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
