package models

import "time"

type Like struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	PostName  string    `db:"post_name" json:"post_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
