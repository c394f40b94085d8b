package types

import "time"

// Post is a board post written by a user.
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// AuthorUsername is populated by list/detail queries that join
	// the author row. It is not a column of the posts table.
	AuthorUsername string `json:"username,omitempty" db:"-"`
}
