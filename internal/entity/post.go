package entity

import "time"

// Post keeps a copy of its blog's name taken when the post was written or
// last updated.
type Post struct {
	ID               string    `db:"id"`
	Title            string    `db:"title"`
	ShortDescription string    `db:"short_description"`
	Content          string    `db:"content"`
	BlogID           string    `db:"blog_id"`
	BlogName         string    `db:"blog_name"`
	CreatedAt        time.Time `db:"created_at"`
}
