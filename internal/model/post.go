package model

import "time"

// Post is a social feed item authored by a user.
type Post struct {
	ID        int64      `db:"id" json:"id"`
	UserID    int64      `db:"user_id" json:"user_id"`
	Content   string     `db:"content" json:"content"`
	ImageURL  *string    `db:"image_url" json:"image_url"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
}

// PostLike is a join row between a user and a post.  Uniqueness of the
// (user_id, post_id) pair is owned by the database constraint, not the
// application.
type PostLike struct {
	UserID int64 `db:"user_id" json:"user_id"`
	PostID int64 `db:"post_id" json:"post_id"`
}

// PostComment mirrors the `post_comments` table.
type PostComment struct {
	ID        int64      `db:"id" json:"id"`
	PostID    int64      `db:"post_id" json:"post_id"`
	UserID    int64      `db:"user_id" json:"user_id"`
	Comment   string     `db:"comment" json:"comment"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
}
