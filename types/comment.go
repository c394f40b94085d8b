package types

import "time"

// Comment is a comment attached to a post.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// AuthorUsername is populated by queries joining the author row.
	AuthorUsername string `json:"username,omitempty" db:"-"`
}
