package models

import "time"

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Text      string    `db:"comment_text" json:"comment_text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	IsRead    bool      `db:"is_read" json:"is_read"`
}

// CommentView is a comment joined with its author.
type CommentView struct {
	ID           int64     `json:"id"`
	Text         string    `json:"comment_text"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	ProfileImage *string   `json:"profile_image"`
}

// CommentNotification is an unread comment as shown in the admin inbox.
type CommentNotification struct {
	ID           int64     `json:"id"`
	Text         string    `json:"comment_text"`
	CreatedAt    time.Time `json:"created_at"`
	PostID       int64     `json:"post_id"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	ProfileImage *string   `json:"profile_image"`
	PostName     string    `json:"post_name"`
	PostImage    *string   `json:"post_image"`
	IsRead       bool      `json:"is_read"`
}

// UserComment is a comment listed on its author's profile.
type UserComment struct {
	Comment
	PostTitle string `json:"post_title"`
}
