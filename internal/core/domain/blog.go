package domain

import "time"

// Blog is a published article owned by its author.
type Blog struct {
	ID         string    `json:"id"`
	BlogName   string    `json:"blog_name"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Category   string    `json:"category"`
	Article    string    `json:"article"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Category groups blogs under a curated name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
