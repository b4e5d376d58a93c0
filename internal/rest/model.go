package rest

import "time"

// SearchRequest is decoded from query parameters by urlstruct, hence the
// snake_case parameter names.
type SearchRequest struct {
	Query      string
	CategoryID *int
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Post struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Content    string     `json:"content"`
	Published  bool       `json:"published"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	Categories []Category `json:"categories"`
}
