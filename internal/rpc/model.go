package rpc

import (
	"time"
)

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

// DeleteResult reports the outcome of a delete. Deleted is false when no row
// with the id existed ("nothing deleted").
type DeleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}
